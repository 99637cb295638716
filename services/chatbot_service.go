package services

import (
	"crypto/md5"
	"fmt"
	"math/big"
	"strings"
)

// The chatbot is a keyword router over canned study advice. Routing order
// matters: the quick-action prompts from the dashboard come first, then the
// broader keyword groups, then the generic fallback.

var lowProgressMessages = []string{
	"Every small step counts! Keep pushing forward and you'll make great progress.",
	"You're just getting started. Consistency will help you reach your goals.",
	"Remember, slow progress is still progress. Keep going!",
	"Don't worry about how much is left. Focus on what you can do today.",
	"You've got this! Break it into smaller parts and tackle them one by one.",
}

var highProgressMessages = []string{
	"Great work! You're doing really well. Keep up the momentum!",
	"You're more than halfway there! Your hard work is paying off.",
	"Impressive progress! Stay consistent and you'll reach your goal soon.",
	"You're crushing it! Keep this pace and you'll finish strong.",
	"Well done! Your dedication is showing. Keep it up!",
}

// MotivationalMessage picks a message for the given progress percentage.
// The pick is deterministic so the dashboard doesn't flicker between
// reloads.
func MotivationalMessage(progressPercent float64) string {
	messages := lowProgressMessages
	if progressPercent > 40 {
		messages = highProgressMessages
	}

	sum := md5.Sum([]byte(fmt.Sprintf("%v", progressPercent)))
	idx := new(big.Int).SetBytes(sum[:])
	return messages[idx.Mod(idx, big.NewInt(int64(len(messages)))).Int64()]
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ChatbotResponse answers a user message with canned, structured study
// advice. The motivation branch folds in the caller's real overall progress.
func ChatbotResponse(message string, userID uint) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case containsAny(msg, "explain this concept in simple words", "explain the concept"):
		return conceptExplanationReply
	case containsAny(msg, "give a clear example for better understanding", "example for understanding"):
		return examplesReply
	case containsAny(msg, "key exam-oriented points", "exam-important points", "points to remember"):
		return examPointsReply
	case containsAny(msg, "hello", "hi", "hey", "greetings"):
		return "👋 Hello! I'm your Study Helper. I can explain concepts simply, provide clear examples, and highlight exam-important points. What would you like help with?"
	case containsAny(msg, "doubt", "confused", "understand", "how", "what is"):
		return doubtReply
	case containsAny(msg, "time", "manage", "hours", "schedule", "daily", "plan"):
		return timeManagementReply
	case containsAny(msg, "motivation", "tired", "stressed", "overwhelmed", "difficult", "hard"):
		return motivationReply(userID)
	case containsAny(msg, "revision", "review", "revise", "remember", "memorize"):
		return revisionReply
	case containsAny(msg, "math", "formula", "calculate", "algebra", "geometry"):
		return mathReply
	case containsAny(msg, "science", "lab", "experiment", "theory", "law", "reaction"):
		return scienceReply
	case containsAny(msg, "history", "geography", "event", "location", "timeline", "map"):
		return historyGeographyReply
	case containsAny(msg, "language", "essay", "grammar", "writing", "sentence", "literature"):
		return languageReply
	default:
		return generalStudyReply
	}
}

func motivationReply(userID uint) string {
	stats, err := GetOverallStats(userID)
	if err != nil {
		return motivationTipsReply
	}
	return fmt.Sprintf("%s\n\nYou are %.1f%% of the way through your total study plan.\n\n%s",
		MotivationalMessage(stats.OverallProgressPercent),
		stats.OverallProgressPercent,
		motivationTipsReply)
}

const conceptExplanationReply = `📚 Breaking Down Concepts:

Step 1: Start with the basics
• Understand what the concept is about
• Identify the main idea

Step 2: Break it into smaller parts
• Divide the concept into simple components
• Focus on one part at a time

Step 3: Use simple language
• Avoid technical jargon
• Use everyday examples you know

Example process:
1. Read the concept carefully
2. Write it in your own simple words
3. Create a mental picture or diagram
4. Explain it to someone else

Pro Tip: The best way to understand is to explain it to a friend without looking at notes!`

const examplesReply = `💡 Learning Through Examples:

Step 1: Find relatable examples
• Connect to things you know
• Use real-world situations

Step 2: Work through the example
• Follow the steps carefully
• Understand each part

Step 3: Create your own example
• Apply the concept yourself
• Test your understanding

Why examples work:
• They make abstract ideas concrete
• Your brain remembers stories better than facts
• You can test if you really understand

Remember: Understanding through examples is much stronger than memorizing definitions!`

const examPointsReply = `📝 Key Exam-Oriented Points:

For any concept, remember these important aspects:

1. Definition & Core Concept
• What is it exactly?
• Why is it important?

2. Important Formulas/Rules
• Learn the exact formula/rule
• Know when to apply it

3. Common Examples
• Most frequently appearing examples
• Things that appear in past papers

4. Common Mistakes
• What mistakes do students make?
• How to avoid them

Exam Tips:
• Read questions carefully
• Start with concepts you're confident about
• Manage your time wisely
• Review your answers before submitting`

const doubtReply = `🤔 Helping You Understand:

I'm here to help in three ways:

1. 📚 Concept Explanation
• Breaking down complex ideas into simple parts
• Step-by-step understanding

2. 💡 Clear Examples
• Real-world examples you can relate to
• Practice problems to try

3. 📝 Exam-Important Points
• Key facts that appear in exams
• Revision tips

How to ask clearly:
• Mention the specific topic or concept
• Share what you've already understood
• Ask what confuses you

I'll explain it step-by-step in simple words!`

const timeManagementReply = `⏰ Smart Time Management:

Step 1: Assess your total time
• Calculate days until exam
• Count available study hours
• Be realistic about your schedule

Step 2: Distribute subjects wisely
• Difficult subjects: more time
• Easy subjects: regular practice
• Balance your load

Step 3: Daily routine
• 45-60 minute study blocks
• 10-15 minute breaks between
• Mix different subjects

Pro Tips:
✓ Study when your mind is fresh
✓ Don't study late night before exam
✓ Review what you learned daily
✓ Adjust schedule based on progress`

const motivationTipsReply = `💪 Staying Motivated:

When feeling overwhelmed:
1. Take a break (not the whole day!)
2. Do something you enjoy
3. Remember your past successes
4. Break tasks into smaller chunks

Daily motivation boosts:
✓ Celebrate small wins
✓ Track your progress
✓ Study with friends
✓ Remember: progress beats perfection

You're doing great! 🎯 Keep going!`

const revisionReply = `🔄 Effective Revision Strategy:

The 24-Hour Rule:
• Review within 24 hours of learning
• Your brain forgets quickly otherwise

Active Revision (Best Method):
1. Close your notes
2. Write/explain from memory
3. Check what you missed
4. Review those parts again

Revision Techniques:
• Active Recall: Test yourself without notes
• Flashcards: For definitions and formulas
• Mind Maps: Show connections
• Teaching: Explain to others

Exam Week:
✓ Short revision sessions (30 min)
✓ Focus on weak areas
✓ Practice past papers
✓ Get enough sleep`

const mathReply = `🔢 Mathematics Learning:

Understanding Math:
1. Learn the concept (not just formula)
2. See why the formula works
3. Practice step-by-step
4. Solve similar problems

Formula learning tips:
✓ Derive it step-by-step
✓ Understand each part
✓ Memorize the 'why'

Practice Strategy:
Level 1: Textbook problems
Level 2: Mixed problems
Level 3: Previous year papers
Level 4: Challenge problems`

const scienceReply = `🔬 Science Learning:

Understanding Concepts:
1. Learn the theory first
2. Understand the working
3. Practice with examples
4. Connect to real world

Study Tips:
✓ Watch animations/videos
✓ Draw your own diagrams
✓ Explain mechanisms step by step

Exam Strategy:
• Label diagrams correctly
• Explain processes clearly
• Use scientific terms properly`

const historyGeographyReply = `📖 History & Geography Learning:

History Study Method:
1. Understand the context (time period)
2. Learn causes → event → effects
3. Remember key dates
4. Create timelines

Geography Study Method:
1. Locate on the map
2. Understand physical features
3. Connect to human impact

Memory Techniques:
• Timeline for events
• Mind maps for causes
• Stories for connecting events`

const languageReply = `📚 Language & Writing:

Grammar Learning:
1. Understand the rule
2. See examples
3. Practice sentences
4. Write your own

Essay Writing:
Step 1: Plan (main idea, key points, examples)
Step 2: Write (introduction, body, conclusion)
Step 3: Review (check grammar, improve flow)

Writing Tips:
✓ Simple, clear sentences
✓ Good flow and structure
✓ Use examples
✓ Review before submitting`

const generalStudyReply = `📝 Smart Study Tips:

Before You Start:
1. Clear your study space
2. Close all distractions
3. Set a realistic goal

During Study:
• Focus for 45-60 minutes
• Take 10-15 minute breaks
• Use active learning (don't just read)
• Make your own notes

Study Techniques:
✓ Active Recall: Test yourself
✓ Spaced Repetition: Review regularly
✓ Practice Problems: Apply concepts
✓ Teaching: Explain to others

Remember: Quality beats quantity! 🎯

What topic would you like help with?`
