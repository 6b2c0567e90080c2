package offline

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"shulelink/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Quote(t *testing.T) {
	g := New(WithSeed(42))
	for i := 0; i < 20; i++ {
		q := g.Quote()
		assert.Equal(t, domain.TierOffline, q.Source)
		q.Source = domain.TierPrimary
		assert.Contains(t, quotes, q)
		assert.NotEmpty(t, q.Author)
	}

	a := New(WithSeed(7)).Quote()
	b := New(WithSeed(7)).Quote()
	assert.Equal(t, a, b, "same seed must pick the same quote")
}

func TestGenerator_Notes(t *testing.T) {
	g := New(WithSeed(1))

	notes := g.Notes("Science", "5", "Photosynthesis")
	assert.GreaterOrEqual(t, utf8.RuneCountInString(notes.Text), 200)
	assert.Contains(t, notes.Text, "Photosynthesis - Science (Grade 5)")
	assert.NotContains(t, notes.Text, "{topic}")

	full := g.ComprehensiveNotes("Science", "5", "Photosynthesis")
	assert.GreaterOrEqual(t, utf8.RuneCountInString(full.Text), 500)
	assert.Contains(t, full.Text, "Complete Learning Guide for Grade 5")
	assert.NotContains(t, full.Text, "{subject}")
}

func TestGenerator_QuizBatch_Structure(t *testing.T) {
	for _, subject := range []string{"Mathematics", "Physics", "Chemistry", "English", "Social Studies"} {
		t.Run(subject, func(t *testing.T) {
			g := New(WithSeed(99))
			questions := g.QuizBatch(subject, "6", "Fractions", 47)
			require.Len(t, questions, 47)

			for i, q := range questions {
				assert.NoError(t, q.Validate(), "question %d", i)
				assert.Equal(t, domain.TierOffline, q.Source)
				assert.Empty(t, q.ID)
				if i > 0 {
					assert.False(t, sameQuestion(questions[i-1], q), "adjacent questions %d and %d are identical", i-1, i)
				}
			}
		})
	}
}

func TestGenerator_QuizBatch_Archetypes(t *testing.T) {
	g := New(WithSeed(3))

	maths := g.QuizBatch("Mathematics", "4", "Area", 8)
	assert.Equal(t, domain.QuestionMultipleChoice, maths[0].Kind)
	assert.Equal(t, domain.QuestionTrueFalse, maths[1].Kind)
	assert.Equal(t, domain.QuestionFillBlank, maths[2].Kind)
	assert.Equal(t, domain.QuestionCalculation, maths[3].Kind)
	assert.Equal(t, domain.QuestionMultipleChoice, maths[4].Kind)
	assert.True(t, maths[3].ShowWorkRequired)
	assert.Equal(t, "Area = length × width", maths[3].Formula)
	assert.Equal(t, "96 square meters", maths[3].CorrectAnswer())

	chem := g.QuizBatch("Chemistry", "7", "Mass", 4)
	assert.Equal(t, "2500 grams", chem[3].CorrectAnswer())

	english := g.QuizBatch("English", "4", "Nouns", 6)
	for _, q := range english {
		assert.NotEqual(t, domain.QuestionCalculation, q.Kind)
	}
	assert.Equal(t, "improve", english[2].BlankAnswer)
}

func TestGenerator_QuizBatch_PartQualifier(t *testing.T) {
	g := New(WithSeed(5))
	questions := g.QuizBatch("Mathematics", "4", "Area", 16)

	// Mathematics has three calculation problems, so the fourth calculation
	// (index 15) starts the second cycle.
	assert.NotContains(t, questions[3].Text, "(Part")
	assert.Contains(t, questions[15].Text, "(Part 2)")
	assert.True(t, strings.HasSuffix(questions[15].Text, "?"))
}

func TestGenerator_QuizBatch_VariationCap(t *testing.T) {
	g := New(WithSeed(5), WithVariationPolicy(VariationPolicy{MaxVariations: 2}))
	questions := g.QuizBatch("English", "4", "Nouns", 60)
	for _, q := range questions {
		assert.NotContains(t, q.Text, "(Part 3)")
	}
	assert.Contains(t, questions[len(questions)-1].Text, "(Part 2)")

	g = New(WithSeed(5), WithVariationPolicy(VariationPolicy{MaxVariations: 1}))
	for _, q := range g.QuizBatch("English", "4", "Nouns", 30) {
		assert.NotContains(t, q.Text, "(Part")
	}
}

func TestGenerator_QuizBatch_Deterministic(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(11)))).QuizBatch("Physics", "8", "Motion", 20)
	b := New(WithSeed(11)).QuizBatch("Physics", "8", "Motion", 20)
	assert.Equal(t, a, b)
}

func TestGenerator_QuizBatch_SpreadsCorrectPositions(t *testing.T) {
	g := New(WithSeed(2024))
	questions := g.QuizBatch("English", "5", "Verbs", 40)

	seen := map[int]bool{}
	for _, q := range questions {
		if q.Kind != domain.QuestionTrueFalse {
			seen[q.CorrectOptionIndex] = true
		}
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerator_QuizBatch_EmptyCount(t *testing.T) {
	g := New(WithSeed(1))
	assert.Empty(t, g.QuizBatch("Math", "1", "Counting", 0))
	assert.Empty(t, g.QuizBatch("Math", "1", "Counting", -3))
}

func TestGenerator_ChatResponse(t *testing.T) {
	g := New(WithSeed(8))

	assert.Contains(t, chatGroups[0].responses, g.ChatResponse("Hello!"))
	assert.Contains(t, chatGroups[1].responses, g.ChatResponse("Can you help me multiply fractions"))
	assert.Contains(t, chatGroups[4].responses, g.ChatResponse("I am stuck on my homework"))
	assert.Contains(t, generalResponses, g.ChatResponse("this is great"))
}

func TestWithPart(t *testing.T) {
	assert.Equal(t, "What is it (Part 3)?", withPart("What is it?", 3))
	assert.Equal(t, "It is fun (Part 2).", withPart("It is fun.", 2))
	assert.Equal(t, "No punctuation (Part 4)", withPart("No punctuation", 4))
}

func TestArrange(t *testing.T) {
	opts := arrange("right", [3]string{"w1", "w2", "w3"}, 2)
	assert.Equal(t, []string{"w1", "w2", "right", "w3"}, opts)
}
