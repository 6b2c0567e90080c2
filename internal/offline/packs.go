package offline

import (
	"strings"

	"shulelink/internal/domain"
)

var quotes = []domain.Quote{
	{Text: "The more that you read, the more things you will know. The more that you learn, the more places you'll go.", Author: "Dr. Seuss"},
	{Text: "Education is the most powerful weapon which you can use to change the world.", Author: "Nelson Mandela"},
	{Text: "Learning never exhausts the mind.", Author: "Leonardo da Vinci"},
	{Text: "The beautiful thing about learning is that no one can take it away from you.", Author: "B.B. King"},
}

// calculation is one worked problem in a subject pack.
type calculation struct {
	question    string
	correct     string
	wrong       [3]string
	steps       string
	formula     string
	units       string
	explanation string
}

var mathPack = []calculation{
	{
		question:    "A rectangle has a length of 12 meters and width of 8 meters. What is its area?",
		correct:     "96 square meters",
		wrong:       [3]string{"40 square meters", "20 square meters", "104 square meters"},
		steps:       "Step 1: Use the formula Area = length × width\nStep 2: Substitute values: Area = 12m × 8m\nStep 3: Calculate: Area = 96 square meters",
		formula:     "Area = length × width",
		units:       "square meters",
		explanation: "To find the area of a rectangle, multiply the length by the width.",
	},
	{
		question:    "Sarah has 24 apples. She wants to share them equally among 6 friends. How many apples will each friend get?",
		correct:     "4 apples",
		wrong:       [3]string{"6 apples", "3 apples", "5 apples"},
		steps:       "Step 1: Identify the operation: Division (sharing equally)\nStep 2: Set up the division: 24 ÷ 6\nStep 3: Calculate: 24 ÷ 6 = 4 apples per friend",
		formula:     "Total items ÷ Number of groups = Items per group",
		units:       "apples",
		explanation: "When sharing items equally, we use division to find how many each person gets.",
	},
	{
		question:    "A circle has a radius of 5 centimeters. What is its circumference? (Use π = 3.14)",
		correct:     "31.4 centimeters",
		wrong:       [3]string{"15.7 centimeters", "78.5 centimeters", "25 centimeters"},
		steps:       "Step 1: Use the formula C = 2πr\nStep 2: Substitute values: C = 2 × 3.14 × 5\nStep 3: Calculate: C = 31.4 centimeters",
		formula:     "C = 2πr",
		units:       "centimeters",
		explanation: "The circumference of a circle is found using the formula C = 2πr, where r is the radius.",
	},
}

var physicsPack = []calculation{
	{
		question:    "A car travels 120 kilometers in 2 hours. What is its average speed?",
		correct:     "60 km/h",
		wrong:       [3]string{"240 km/h", "122 km/h", "30 km/h"},
		steps:       "Step 1: Use the formula Speed = Distance ÷ Time\nStep 2: Substitute values: Speed = 120 km ÷ 2 hours\nStep 3: Calculate: Speed = 60 km/h",
		formula:     "Speed = Distance ÷ Time",
		units:       "km/h",
		explanation: "Average speed is calculated by dividing the total distance by the total time taken.",
	},
	{
		question:    "A force of 20 Newtons is applied to move an object 5 meters. How much work is done?",
		correct:     "100 Joules",
		wrong:       [3]string{"25 Joules", "4 Joules", "15 Joules"},
		steps:       "Step 1: Use the formula Work = Force × Distance\nStep 2: Substitute values: Work = 20 N × 5 m\nStep 3: Calculate: Work = 100 Joules",
		formula:     "Work = Force × Distance",
		units:       "Joules",
		explanation: "Work is calculated by multiplying the force applied by the distance moved in the direction of the force.",
	},
}

var chemistryPack = []calculation{
	{
		question:    "How many grams are in 2.5 kilograms?",
		correct:     "2500 grams",
		wrong:       [3]string{"250 grams", "25 grams", "0.25 grams"},
		steps:       "Step 1: Remember that 1 kg = 1000 g\nStep 2: Multiply: 2.5 kg × 1000 g/kg\nStep 3: Calculate: 2.5 × 1000 = 2500 grams",
		formula:     "kg × 1000 = grams",
		units:       "grams",
		explanation: "To convert kilograms to grams, multiply by 1000 since there are 1000 grams in 1 kilogram.",
	},
}

var defaultPack = []calculation{
	{
		question:    "What is 15 + 27?",
		correct:     "42",
		wrong:       [3]string{"32", "52", "41"},
		steps:       "Step 1: Line up the numbers\nStep 2: Add ones place: 5 + 7 = 12 (write 2, carry 1)\nStep 3: Add tens place: 1 + 2 + 1 = 4\nStep 4: Answer: 42",
		formula:     "Addition",
		explanation: "When adding two-digit numbers, add the ones place first, then the tens place, carrying over when needed.",
	},
}

// calculationPack picks the worked problems matching subject.
func calculationPack(subject string) []calculation {
	s := strings.ToLower(subject)
	switch {
	case strings.Contains(s, "math"):
		return mathPack
	case strings.Contains(s, "physics"), strings.Contains(s, "science"):
		return physicsPack
	case strings.Contains(s, "chemistry"):
		return chemistryPack
	default:
		return defaultPack
	}
}

// IsQuantitative reports whether subject gets calculation questions.
func IsQuantitative(subject string) bool {
	s := strings.ToLower(subject)
	for _, k := range []string{"math", "physics", "chemistry", "science"} {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

var questionTemplates = []string{
	"What is the main concept of {topic}?",
	"How does {topic} relate to {subject}?",
	"Which of the following best describes {topic}?",
	"What is an important characteristic of {topic}?",
	"Why is {topic} significant in {subject}?",
	"What can we learn from studying {topic}?",
	"How is {topic} used in real life?",
	"What should students know about {topic}?",
	"Which statement about {topic} is most accurate?",
	"What is the relationship between {topic} and other concepts?",
	"How can understanding {topic} help students?",
	"What makes {topic} important for learning?",
	"Which example best illustrates {topic}?",
	"What is a key feature of {topic}?",
	"How does {topic} connect to everyday experiences?",
}

// optionSets list the correct option first.
var optionSets = [][4]string{
	{"A fundamental concept that builds understanding", "An outdated idea with no relevance", "A complex theory beyond grade level", "A simple fact to memorize"},
	{"It provides essential foundational knowledge", "It has no connection to the subject", "It only appears in advanced studies", "It contradicts other concepts"},
	{"An important topic for student learning", "A minor detail in the curriculum", "An optional concept to skip", "A confusing idea to avoid"},
	{"It helps students understand the world", "It creates unnecessary confusion", "It wastes valuable class time", "It has no practical application"},
	{"It builds critical thinking skills", "It prevents student progress", "It complicates simple ideas", "It serves no educational purpose"},
	{"Practical applications in daily life", "Only theoretical with no real use", "Limited to laboratory settings", "Relevant only to experts"},
	{"Clear examples and demonstrations", "Abstract concepts without examples", "Complex formulas and equations", "Memorization of facts only"},
	{"Interactive learning and exploration", "Passive listening without engagement", "Rote memorization techniques", "Avoiding hands-on activities"},
}

type fillBlank struct {
	question    string
	correct     string
	wrong       [3]string
	explanation string
}

var fillBlanks = []fillBlank{
	{
		question:    "The main purpose of studying {topic} is to _____ our understanding.",
		correct:     "improve",
		wrong:       [3]string{"decrease", "ignore", "complicate"},
		explanation: "Studying any topic helps improve our understanding and knowledge.",
	},
	{
		question:    "In {subject}, {topic} is considered a _____ concept.",
		correct:     "fundamental",
		wrong:       [3]string{"useless", "optional", "confusing"},
		explanation: "Most topics in academic subjects are fundamental concepts that build understanding.",
	},
	{
		question:    "Students learn about {topic} to develop their _____ skills.",
		correct:     "thinking",
		wrong:       [3]string{"sleeping", "eating", "playing"},
		explanation: "Academic topics help develop critical thinking and analytical skills.",
	},
}

type statement struct {
	text        string
	isTrue      bool
	explanation string
}

var statements = []statement{
	{
		text:        "{topic} is an important concept in {subject}.",
		isTrue:      true,
		explanation: "Yes, {topic} is indeed an important concept that helps students understand {subject} better.",
	},
	{
		text:        "Learning about {topic} has no practical applications.",
		isTrue:      false,
		explanation: "This is false. {topic} has many practical applications that help us understand the world around us.",
	},
	{
		text:        "Students should skip studying {topic} because it's too difficult.",
		isTrue:      false,
		explanation: "This is false. While {topic} may be challenging, it's important for building a strong foundation in {subject}.",
	},
}
