package offline

import (
	"strings"

	"shulelink/internal/domain"
)

const notesTemplate = `📚 {topic} - {subject} (Grade {grade})

🎯 INTRODUCTION
{topic} is a fascinating topic in {subject} that Grade {grade} students need to understand. This concept helps build a strong foundation for future learning and connects to many real-world applications.

🔍 KEY CONCEPTS
• {topic} involves understanding fundamental principles and their applications
• It connects to other important concepts in {subject}
• Students learn through observation, practice, and exploration
• The topic builds upon previous knowledge and prepares for advanced learning

📖 DETAILED EXPLANATION
{topic} works through a series of interconnected processes and principles. When we study {topic}, we discover how different elements work together to create the phenomena we observe.

Key points to understand:
• The basic structure and components involved
• How different parts interact with each other
• The role of {topic} in the broader context of {subject}
• Step-by-step processes that occur

🌍 REAL-WORLD EXAMPLES
We can see {topic} in action in our daily lives:
• Examples from nature and our environment
• Applications in technology and everyday objects
• How {topic} affects our daily experiences
• Connections to other subjects and areas of learning

🎯 SUMMARY
{topic} is an essential concept in {subject} that helps Grade {grade} students understand how the world works. By studying {topic}, students develop critical thinking skills and build knowledge that will serve them throughout their educational journey.

Remember: Learning is a process, and every question you ask helps you understand better!`

const comprehensiveTemplate = `📚 **{topic} - Complete Learning Guide for Grade {grade}**

🌟 **INTRODUCTION & OVERVIEW**
Welcome to your comprehensive guide on {topic}! This topic is an important part of {subject} that will help you understand the world around you better.

What is {topic}?
{topic} is a fundamental concept in {subject} that students your age should understand. It connects to many things you see and experience every day.

Why is it important?
Learning about {topic} helps you:
• Understand how things work in the real world
• Solve problems more effectively
• Connect ideas across different subjects
• Prepare for more advanced learning

🔍 **KEY CONCEPTS & DEFINITIONS**
• **Main Concept**: The central idea behind {topic}
• **Key Principles**: The basic rules that govern how {topic} works
• **Important Terms**: Vocabulary words that are essential for understanding

📖 **DETAILED EXPLANATION**
Step 1: Understanding the Basics
{topic} works by following certain patterns and rules. Think of it like a recipe: there are specific steps that always work.

Step 2: How It Works
The process involves several important parts working together. Each part has a specific job to do.

Step 3: Why It Matters
This concept appears in many different situations, making it very useful to understand.

🌍 **REAL-WORLD APPLICATIONS**
• At Home: Examples of how {topic} affects your daily life
• In Nature: How {topic} appears in the natural world
• In Technology: Ways that {topic} is used in modern devices
• In Other Subjects: Connections to math, science, history, and more

🧪 **ACTIVITIES & EXPERIMENTS**
Activity 1: Observation Exercise
Look around your environment and identify examples of {topic}. Keep a journal of what you find.

Activity 2: Discussion Questions
• What would happen if {topic} didn't exist?
• How does {topic} affect your daily life?
• Can you think of new ways to use {topic}?

💡 **FASCINATING FACTS**
• {topic} has been studied for many years by scientists and researchers
• New discoveries about {topic} continue to be made
• Understanding {topic} helps us make sense of the world around us

📊 **EXAMPLES**
Example 1: Simple Scenario
Think of a situation at school or at home where {topic} shows up, and describe what happens step by step.

Example 2: More Complex Application
In a more advanced case, {topic} can be used to solve bigger problems in {subject}.

🎯 **SUMMARY & KEY TAKEAWAYS**
✓ {topic} is essential for understanding {subject}
✓ It appears in many real-world situations
✓ Understanding {topic} helps you solve problems
✓ This knowledge will help you in future learning

📚 **ADDITIONAL RESOURCES**
• Books: Look for age-appropriate books about {topic}
• Videos: Educational videos that explain {topic} visually
• Games: Online games that make learning {topic} fun

🤔 **REVIEW QUESTIONS**
1. What is the main idea behind {topic}?
2. Can you give three examples of {topic} in real life?
3. Why is {topic} important to learn about?
4. How does {topic} connect to other subjects?

🌟 Great job learning about {topic}! You're well on your way to mastering this important concept in {subject}.`

func fill(tmpl, subject, grade, topic string) string {
	return strings.NewReplacer(
		"{topic}", topic,
		"{subject}", subject,
		"{grade}", grade,
	).Replace(tmpl)
}

// Notes renders the standard study-notes template.
func (g *Generator) Notes(subject, grade, topic string) domain.NotesDocument {
	return domain.NotesDocument{Text: fill(notesTemplate, subject, grade, topic)}
}

// ComprehensiveNotes renders the extended learning-guide template.
func (g *Generator) ComprehensiveNotes(subject, grade, topic string) domain.NotesDocument {
	return domain.NotesDocument{Text: fill(comprehensiveTemplate, subject, grade, topic)}
}
