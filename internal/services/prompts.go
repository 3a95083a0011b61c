package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

const chatSystemPrompt = `You are a career guidance chatbot that helps users with career planning, skill development,
and job search. You have access to the user's profile information, their quiz responses,
and can suggest career paths, mentors, and job opportunities based on their interests and skills.

Always be supportive, encouraging, and provide personalized guidance. If you don't have enough
information about the user, ask relevant questions to build their profile. Format your responses
in a clear, structured way.`

const chatResponseInstructions = `Please provide a well-structured response that:
1. Directly addresses the user's current question
2. Maintains continuity with our previous conversation
3. Uses clear headings, bullet points, or numbered lists when appropriate
4. Provides specific, actionable advice related to career guidance
5. References relevant information from the user's profile when applicable`

// BuildChatPrompt renders the single prompt sent to the model for one chat message.
func BuildChatPrompt(uc UserContext, chatMemory, message string) string {
	ctxJSON, _ := json.MarshalIndent(uc, "", "  ")

	var b strings.Builder
	b.WriteString(chatSystemPrompt)
	b.WriteString("\n\nUser context: ")
	b.Write(ctxJSON)
	b.WriteString("\n\nChat history:\n")
	b.WriteString(chatMemory)
	b.WriteString("\n\n")
	b.WriteString(chatResponseInstructions)
	b.WriteString("\n\nUser: ")
	b.WriteString(message)
	b.WriteString("\n\nBot:")
	return b.String()
}

// BuildRecommendationPrompt asks for exactly three career paths as a JSON array.
func BuildRecommendationPrompt(name string, quiz []QuizContext) string {
	quizJSON, _ := json.MarshalIndent(quiz, "", "  ")

	return fmt.Sprintf(`Based on the following quiz responses from %s, suggest exactly 3 possible career paths.
For each career path, provide:
1. The name of the career path
2. A brief explanation of why it's a good fit (3-5 sentences)
3. A confidence score (0-100)

Quiz responses:
%s

Format your response as a JSON array with objects containing the fields: career_path, explanation, confidence_score.
Return only the JSON array, without markdown fences or any text before or after it.`, name, quizJSON)
}

func chatUnavailableReply(message string) string {
	return fmt.Sprintf("I'm having trouble connecting to my AI service right now, but I can still help with your career planning. "+
		"You asked about '%s'. Could you share a bit more about your skills, interests, or the kind of role you're aiming for? "+
		"Meanwhile, you can browse mentors and recent job openings, or take the quiz to get career recommendations.", message)
}

const limitedModeReply = "Thank you for your message! I'm currently operating in limited mode. " +
	"I can help you explore career paths, find mentors, and discover job opportunities. " +
	"What specific aspect of your career would you like to discuss?"
