package service

import (
	"fmt"
	"strings"

	"shulelink/internal/domain"
)

const quotePrompt = `Generate an inspiring and educational quote suitable for primary school students (grades 1-7).
The quote should be motivational, age-appropriate, and encourage learning, curiosity, or personal growth.
Format: 'Quote text' - Author Name
Keep it simple and positive.`

func notesPrompt(tier domain.Tier, subject, grade, topic string) string {
	if tier == domain.TierSecondary {
		return fmt.Sprintf(`Create comprehensive educational notes for Grade %[2]s students about %[3]s in %[1]s.

Include:
1. Introduction to %[3]s
2. Key concepts and definitions
3. Important facts and details
4. Real-world examples
5. How it relates to daily life
6. Summary of main points

Make it engaging and age-appropriate for Grade %[2]s students.

Topic: %[3]s
Subject: %[1]s
Grade: %[2]s

Educational Content:`, subject, grade, topic)
	}

	return fmt.Sprintf(`Generate comprehensive educational notes for Grade %[2]s students on the topic '%[3]s' in %[1]s subject.

The notes should include:

INTRODUCTION
- What is %[3]s?
- Why is it important?

KEY CONCEPTS
- Main definitions and terms
- Important principles

DETAILED EXPLANATION
- How %[3]s works
- Step-by-step breakdown
- Important facts and details

REAL-WORLD EXAMPLES
- Where we see %[3]s in daily life
- Practical applications

INTERESTING FACTS
- Fun facts about %[3]s
- Amazing discoveries

SUMMARY
- Key takeaways
- What students should remember

Make it engaging, educational, and age-appropriate for Grade %[2]s students. Use clear formatting.`, subject, grade, topic)
}

func comprehensiveNotesPrompt(tier domain.Tier, subject, grade, topic string) string {
	if tier == domain.TierSecondary {
		return notesPrompt(tier, subject, grade, topic)
	}

	return fmt.Sprintf(`Generate comprehensive educational content for Grade %[2]s students on '%[3]s' in %[1]s.

Create detailed content that covers the topic from 0-100%% understanding:

INTRODUCTION & OVERVIEW
- What is %[3]s? (Simple definition)
- Why is it important to learn about %[3]s?
- How does %[3]s connect to other subjects?

KEY CONCEPTS & DEFINITIONS
- Essential vocabulary and terms
- Core principles and laws
- Important formulas or rules (if applicable)

DETAILED EXPLANATION
- Step-by-step breakdown of how %[3]s works
- Multiple examples with explanations
- Common misconceptions and clarifications

REAL-WORLD APPLICATIONS
- Where we encounter %[3]s in daily life
- Career connections and practical uses

ACTIVITIES & EXPERIMENTS
- Simple experiments students can try
- Discussion questions
- Problem-solving exercises

FASCINATING FACTS & DISCOVERIES
- Amazing facts that will surprise students
- Important scientists or mathematicians involved

EXAMPLES & CASE STUDIES
- Detailed worked examples
- Step-by-step problem solving

SUMMARY & KEY TAKEAWAYS
- Essential points to remember
- Review questions for self-assessment

ADDITIONAL RESOURCES
- Related topics to explore
- Age-appropriate books and websites

Make this comprehensive enough that a student could learn the entire topic from this content alone.`, subject, grade, topic)
}

func chatPrompt(tier domain.Tier, message string, history []domain.ChatTurn) string {
	if tier == domain.TierSecondary {
		return fmt.Sprintf("Educational AI Assistant: A student asks '%s'. Provide a helpful, encouraging response suitable for primary school students with simple explanations.", message)
	}

	var context strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&context, "%s: %s\n", turn.Role, turn.Text)
	}

	return fmt.Sprintf(`You are ShuleLink AI, an intelligent educational assistant for primary school students (grades 1-7).

IMPORTANT: You must NEVER repeat or echo the user's message. Always provide a unique, helpful response.

User message: '%s'
Previous context: %s

Provide a helpful, engaging, and age-appropriate response that:
1. Never echoes or repeats the user's exact words
2. Directly addresses the user's message with new information
3. Is educational and encouraging
4. Uses simple language suitable for young learners
5. Asks follow-up questions to encourage learning

Keep responses conversational, supportive, and informative. Maximum 200 words.`, message, strings.TrimSpace(context.String()))
}

func checkAnswerPrompt(question, userAnswer, correctAnswer string) string {
	return fmt.Sprintf(`Question: %s
Correct Answer: %s
User Answer: %s

Is the user's answer correct or acceptable? Consider partial credit for close answers.
Respond with only 'TRUE' or 'FALSE'.`, question, correctAnswer, userAnswer)
}

// quizPrompt asks for count questions of one kind. The Secondary tier gets
// the line-oriented format, the Primary tier a JSON array with an example
// element for the requested kind.
func quizPrompt(tier domain.Tier, kind domain.QuestionKind, subject, grade, topic string, count, batch int) string {
	if tier == domain.TierSecondary {
		return fmt.Sprintf(`Generate %[4]d multiple choice questions about %[3]s for Grade %[2]s %[1]s students.

Format each question as:
Q: [Question text]
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]
Correct: [A/B/C/D]
Explanation: [Why this answer is correct]

Topic: %[3]s
Subject: %[1]s
Grade: %[2]s
Batch: %[5]d

Questions:`, subject, grade, topic, count, batch)
	}

	switch kind {
	case domain.QuestionCalculation:
		return fmt.Sprintf(`Generate %[4]d practical calculation questions about %[3]s for Grade %[2]s %[1]s students.

Create questions that require calculations with step-by-step solutions.
Include real-world scenarios and practical applications.
Batch %[5]d - ensure questions test different calculation skills.

Format as JSON array:
[
  {
    "question": "A rectangle has a length of 8 meters and width of 5 meters. What is its area?",
    "optionA": "40 square meters",
    "optionB": "26 square meters",
    "optionC": "13 square meters",
    "optionD": "45 square meters",
    "correctAnswer": "A",
    "explanation": "To find the area of a rectangle, multiply length by width.",
    "calculationSteps": "Step 1: Area = length x width\nStep 2: Area = 8m x 5m\nStep 3: Area = 40 square meters",
    "formula": "Area = length x width",
    "units": "square meters",
    "questionType": "calculation",
    "showWorkRequired": true
  }
]

Make questions age-appropriate for Grade %[2]s level.`, subject, grade, topic, count, batch)

	case domain.QuestionFillBlank:
		return fmt.Sprintf(`Generate %[4]d fill-in-the-blank questions about %[3]s for Grade %[2]s %[1]s students.

Create questions where students need to fill in missing words, numbers, or formulas.
Batch %[5]d - ensure questions are unique and educational.

Format as JSON array:
[
  {
    "question": "The formula for area of a rectangle is length x ___",
    "optionA": "width",
    "optionB": "height",
    "optionC": "perimeter",
    "optionD": "diagonal",
    "correctAnswer": "A",
    "explanation": "Area = length x width.",
    "blankAnswer": "width",
    "questionType": "fill_blank"
  }
]

Make the blanks test key concepts, formulas, or vocabulary about %[3]s.`, subject, grade, topic, count, batch)

	case domain.QuestionTrueFalse:
		return fmt.Sprintf(`Generate %[4]d true/false questions about %[3]s for Grade %[2]s %[1]s students.

Create clear statements that are either true or false.
Batch %[5]d - ensure questions test different concepts.

Format as JSON array:
[
  {
    "question": "The sun is a star. True or False?",
    "optionA": "True",
    "optionB": "False",
    "optionC": "",
    "optionD": "",
    "correctAnswer": "A",
    "explanation": "The sun is our closest star.",
    "questionType": "true_false"
  }
]

Provide explanations for why each statement is true or false.`, subject, grade, topic, count, batch)

	case domain.QuestionShortAnswer:
		return fmt.Sprintf(`Generate %[4]d short answer questions about %[3]s for Grade %[2]s %[1]s students.

Each question should have a short expected answer and four candidate answers.
Batch %[5]d - ensure questions are unique and cover different aspects of %[3]s.

Format as JSON array:
[
  {
    "question": "Name the process plants use to make food.",
    "optionA": "Photosynthesis",
    "optionB": "Respiration",
    "optionC": "Digestion",
    "optionD": "Evaporation",
    "correctAnswer": "A",
    "explanation": "Plants make food from sunlight, water and carbon dioxide by photosynthesis.",
    "questionType": "short_answer"
  }
]`, subject, grade, topic, count, batch)
	}

	return fmt.Sprintf(`Generate %[4]d multiple choice questions about %[3]s for Grade %[2]s %[1]s students.

IMPORTANT: Mix up the correct answers - don't make them all 'A'.
Batch %[5]d - ensure questions are unique and cover different aspects of %[3]s.

Format as JSON array:
[
  {
    "question": "What is the main characteristic of %[3]s?",
    "optionA": "First option",
    "optionB": "Second option",
    "optionC": "Third option",
    "optionD": "Fourth option",
    "correctAnswer": "B",
    "explanation": "Why this is correct and why the other options are wrong",
    "questionType": "multiple_choice"
  }
]

Make distractors plausible but clearly incorrect.
Topic: %[3]s
Subject: %[1]s
Grade: %[2]s`, subject, grade, topic, count, batch)
}
