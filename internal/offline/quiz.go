package offline

import (
	"fmt"
	"strings"

	"shulelink/internal/domain"
)

// archetypes returns the question kinds cycled through for subject.
func archetypes(subject string) []domain.QuestionKind {
	kinds := []domain.QuestionKind{
		domain.QuestionMultipleChoice,
		domain.QuestionTrueFalse,
		domain.QuestionFillBlank,
	}
	if IsQuantitative(subject) {
		kinds = append(kinds, domain.QuestionCalculation)
	}
	return kinds
}

// QuizBatch synthesizes count questions. Question i uses archetype
// i mod len(archetypes) and that archetype's pack entry for round
// i / len(archetypes). Correct answers are placed by a seeded permutation
// drawn fresh for every block of four questions.
func (g *Generator) QuizBatch(subject, grade, topic string, count int) []domain.QuizQuestion {
	if count <= 0 {
		return nil
	}

	kinds := archetypes(subject)
	pack := calculationPack(subject)
	questions := make([]domain.QuizQuestion, 0, count)

	var positions []int
	for i := 0; i < count; i++ {
		if i%domain.MaxOptions == 0 {
			positions = g.perm(domain.MaxOptions)
		}
		pos := positions[i%domain.MaxOptions]
		round := i / len(kinds)

		var q domain.QuizQuestion
		switch kinds[i%len(kinds)] {
		case domain.QuestionTrueFalse:
			q = g.trueFalse(subject, topic, round)
		case domain.QuestionFillBlank:
			q = g.fillInBlank(subject, topic, round, pos)
		case domain.QuestionCalculation:
			q = g.calculation(pack, round, pos)
		default:
			q = g.multipleChoice(subject, grade, topic, round, pos)
		}
		q.Source = domain.TierOffline

		if n := len(questions); n > 0 && sameQuestion(questions[n-1], q) {
			q.Text = withPart(q.Text, i+1)
		}
		questions = append(questions, q)
	}
	return questions
}

func (g *Generator) multipleChoice(subject, grade, topic string, round, pos int) domain.QuizQuestion {
	text := fill(questionTemplates[round%len(questionTemplates)], subject, grade, topic)
	if v := g.variation(round, len(questionTemplates)); v > 1 {
		text = withPart(text, v)
	}
	set := optionSets[round%len(optionSets)]
	return domain.QuizQuestion{
		Text:               text,
		Kind:               domain.QuestionMultipleChoice,
		Options:            arrange(set[0], [3]string{set[1], set[2], set[3]}, pos),
		CorrectOptionIndex: pos,
		Explanation:        fmt.Sprintf("This answer correctly relates to the key concepts of %s in %s for Grade %s students.", topic, subject, grade),
	}
}

func (g *Generator) trueFalse(subject, topic string, round int) domain.QuizQuestion {
	st := statements[round%len(statements)]
	text := fill(st.text, subject, "", topic)
	if v := g.variation(round, len(statements)); v > 1 {
		text = withPart(text, v)
	}
	correct := 0
	if !st.isTrue {
		correct = 1
	}
	return domain.QuizQuestion{
		Text:               text + " True or False?",
		Kind:               domain.QuestionTrueFalse,
		Options:            []string{"True", "False"},
		CorrectOptionIndex: correct,
		Explanation:        fill(st.explanation, subject, "", topic),
	}
}

func (g *Generator) fillInBlank(subject, topic string, round, pos int) domain.QuizQuestion {
	fb := fillBlanks[round%len(fillBlanks)]
	text := fill(fb.question, subject, "", topic)
	if v := g.variation(round, len(fillBlanks)); v > 1 {
		text = withPart(text, v)
	}
	return domain.QuizQuestion{
		Text:               text,
		Kind:               domain.QuestionFillBlank,
		Options:            arrange(fb.correct, fb.wrong, pos),
		CorrectOptionIndex: pos,
		Explanation:        fb.explanation,
		BlankAnswer:        fb.correct,
	}
}

func (g *Generator) calculation(pack []calculation, round, pos int) domain.QuizQuestion {
	c := pack[round%len(pack)]
	text := c.question
	if v := g.variation(round, len(pack)); v > 1 {
		text = withPart(text, v)
	}
	return domain.QuizQuestion{
		Text:               text,
		Kind:               domain.QuestionCalculation,
		Options:            arrange(c.correct, c.wrong, pos),
		CorrectOptionIndex: pos,
		Explanation:        c.explanation,
		WorkedSteps:        c.steps,
		Formula:            c.formula,
		Units:              c.units,
		ShowWorkRequired:   true,
	}
}

// variation is the 1-based cycle number of round through a pack of packLen
// entries, wrapped according to the policy.
func (g *Generator) variation(round, packLen int) int {
	v := round/packLen + 1
	if limit := g.policy.MaxVariations; limit > 0 && v > limit {
		if limit == 1 {
			return 1
		}
		v = (v-2)%(limit-1) + 2
	}
	return v
}

// arrange places correct at pos and fills the other slots with wrong in order.
func arrange(correct string, wrong [3]string, pos int) []string {
	options := make([]string, domain.MaxOptions)
	w := 0
	for i := range options {
		if i == pos {
			options[i] = correct
			continue
		}
		options[i] = wrong[w]
		w++
	}
	return options
}

// withPart inserts a "(Part n)" qualifier before the closing punctuation.
func withPart(text string, n int) string {
	part := fmt.Sprintf(" (Part %d)", n)
	if strings.HasSuffix(text, "?") || strings.HasSuffix(text, ".") {
		return text[:len(text)-1] + part + text[len(text)-1:]
	}
	return text + part
}

func sameQuestion(a, b domain.QuizQuestion) bool {
	if a.Text != b.Text || len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if a.Options[i] != b.Options[i] {
			return false
		}
	}
	return true
}
