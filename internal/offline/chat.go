package offline

import "strings"

type responseGroup struct {
	keywords  []string
	responses []string
}

// chatGroups are checked in order; the first group with a matching keyword answers.
var chatGroups = []responseGroup{
	{
		keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon"},
		responses: []string{
			"🌟 Hello there! I'm so excited to help you learn today! What subject would you like to explore? I can help with Math, Science, English, or any other topic you're curious about!",
			"👋 Hi! Welcome to your learning adventure! I'm here to make learning fun and easy. What questions do you have for me today?",
			"🎓 Hello, brilliant student! I'm your learning companion, ready to help you discover amazing things. What would you like to learn about?",
			"✨ Hey there, future genius! I'm thrilled to be your study buddy today. What homework or topic can I help you with?",
		},
	},
	{
		keywords: []string{"math", "number", "calculate", "add", "subtract", "multiply", "divide"},
		responses: []string{
			"🔢 Awesome! Math is like a superpower that helps us solve real-world problems! Whether it's addition, subtraction, multiplication, or division, I'll help you master it step by step. What specific math concept are you working on?",
			"📊 Math time! I love helping students discover the patterns and logic in numbers. Math is everywhere, from counting your allowance to measuring ingredients for cookies! What math problem can I help you solve?",
			"🧮 Perfect! Mathematics is the language of the universe! Let's break down any math problem into simple, easy steps. What would you like to practice?",
		},
	},
	{
		keywords: []string{"science", "experiment", "plant", "animal", "space"},
		responses: []string{
			"🔬 Science is AMAZING! It's all about discovering how our incredible world works! From tiny atoms to massive planets, science explains it all! What scientific mystery would you like to solve today?",
			"🌟 I love your scientific curiosity! Science helps us understand why the sky is blue, how plants grow, and what makes rain fall. What natural phenomenon are you curious about?",
			"🧪 Welcome to the wonderful world of science! Every question you ask is like a scientist making a discovery. What would you like to explore?",
		},
	},
	{
		keywords: []string{"read", "write", "story", "english", "word", "book"},
		responses: []string{
			"📚 Reading and writing are like magic spells that let you travel to any world and share your amazing ideas! What story or writing project are you working on?",
			"✍️ Words are powerful tools that can make people laugh, learn, and dream! Whether you're reading an exciting adventure or writing your own story, I'm here to help. What can I help you with?",
			"📖 Literature opens doors to infinite worlds! Reading makes you smarter and writing makes you creative! What are you reading or writing?",
		},
	},
	{
		keywords: []string{"homework", "assignment", "help", "stuck", "don't understand"},
		responses: []string{
			"📝 Homework time! Don't worry, I'm here to make it easier and more fun! What subject are you working on?",
			"🎯 I'm your homework helper! Let's break down your homework into small, manageable pieces so it feels less overwhelming. What do you need help with?",
			"💪 Homework can be challenging, but that's what makes your brain grow! I'll help you understand each step. What assignment is giving you trouble?",
		},
	},
	{
		keywords: []string{"what", "how", "why", "when", "where", "?"},
		responses: []string{
			"🤔 What an excellent question! Asking questions is how we learn and discover new things. Let me help you find the answer!",
			"💡 I love curious minds like yours! Questions are the keys that unlock knowledge. Let's explore this together!",
			"🔍 That's a fantastic question! Questions show that you're thinking deeply and want to understand the world better. Let me help you discover the answer.",
		},
	},
}

var generalResponses = []string{
	"🌟 I'm here to help you learn and grow! Whether you need help with schoolwork, want to explore a new topic, or just have questions about the world, I'm your learning buddy. What's on your mind today?",
	"💡 Learning is an adventure, and I'm excited to be your guide! Every day is a chance to discover something new and amazing. What would you like to explore or learn about?",
	"🎓 You're in the right place for learning! I love helping students like you understand new concepts and solve problems. What subject or topic interests you most right now?",
	"🚀 Ready for a learning adventure? I can help with any subject: Math, Science, English, History, or anything else you're curious about! What shall we explore together?",
}

// ChatResponse answers a study-buddy message from the keyword tables.
func (g *Generator) ChatResponse(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(msg, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r == '\'')
	}) {
		words[w] = true
	}

	for _, group := range chatGroups {
		for _, kw := range group.keywords {
			if matches(msg, words, kw) {
				return group.responses[g.intn(len(group.responses))]
			}
		}
	}
	return generalResponses[g.intn(len(generalResponses))]
}

// matches treats single words as whole-word matches and anything else as a substring.
func matches(msg string, words map[string]bool, keyword string) bool {
	if strings.ContainsAny(keyword, " ?") {
		return strings.Contains(msg, keyword)
	}
	return words[keyword]
}
