package service

import (
	"fmt"

	"samayak/internal/domain"
)

// TrendingTopicCount is how many suggestions are requested.
const TrendingTopicCount = 5

const topicPromptTemplate = `You are an expert quiz creator for students. Your goal is to generate engaging quizzes from credible, up-to-the-minute information.
Search the web for the absolute latest news, official press releases, and verified authentic information about "%s", and base the quiz on what you find. Generate a challenging %d-question multiple-choice quiz.
Your response MUST be a single JSON object. The JSON object must have a single key "quiz" which is an array of %d question objects.
Each question object must have the following keys:
- "question": (string) The quiz question.
- "options": (array of 4 strings) The multiple-choice options.
- "correctAnswer": (string) The correct answer, which must be one of the strings from the "options" array.
- "explanation": (string) A clear and concise explanation for why the correct answer is right.
- "sources": (array of objects) An array of 1-2 source objects used for the explanation. Each object must have "title" (string) and "uri" (string) keys, linking to the source article.

Do not wrap the JSON in markdown backticks or any other text.`

const documentPromptTemplate = `You are an expert quiz creator. Based on the content of the attached file, generate a challenging %d-question multiple-choice quiz.
Your response MUST be a single JSON object. The JSON object must have a single key "quiz" which is an array of %d question objects.
Each question object must have the keys: "question", "options" (an array of 4 strings), "correctAnswer", and "explanation".
The "correctAnswer" must be one of the strings from the "options" array.
The "sources" key for each question must be an empty array [].
Do not wrap the JSON in markdown backticks or any other text.`

const trendingPrompt = `List %d current hot trending topics that would be interesting for students to take a quiz on, focusing on areas like science, technology, world events, or significant cultural moments. Return your response as a single JSON object with a key "topics" which is an array of %d strings. Do not add any other text or markdown.`

func topicPrompt(topic string, count int) string {
	return fmt.Sprintf(topicPromptTemplate, topic, count, count)
}

func documentPrompt(count int) string {
	return fmt.Sprintf(documentPromptTemplate, count, count)
}

func trendingTopicsPrompt() string {
	return fmt.Sprintf(trendingPrompt, TrendingTopicCount, TrendingTopicCount)
}

var stringSchema = &domain.Schema{Type: domain.SchemaString}

// quizResponseSchema is the structured-output shape for both generation paths.
var quizResponseSchema = &domain.Schema{
	Type: domain.SchemaObject,
	Properties: map[string]*domain.Schema{
		"quiz": {
			Type: domain.SchemaArray,
			Items: &domain.Schema{
				Type: domain.SchemaObject,
				Properties: map[string]*domain.Schema{
					"question":      stringSchema,
					"options":       {Type: domain.SchemaArray, Items: stringSchema},
					"correctAnswer": stringSchema,
					"explanation":   stringSchema,
					"sources": {
						Type: domain.SchemaArray,
						Items: &domain.Schema{
							Type: domain.SchemaObject,
							Properties: map[string]*domain.Schema{
								"title": stringSchema,
								"uri":   stringSchema,
							},
						},
					},
				},
				Required: []string{"question", "options", "correctAnswer", "explanation", "sources"},
			},
		},
	},
	Required: []string{"quiz"},
}

// trendingResponseSchema has no required fields.
var trendingResponseSchema = &domain.Schema{
	Type: domain.SchemaObject,
	Properties: map[string]*domain.Schema{
		"topics": {Type: domain.SchemaArray, Items: stringSchema},
	},
}
