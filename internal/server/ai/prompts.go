package ai

import "fmt"

// personaPrompt is prepended as the system instruction on every call so the
// assistant keeps its identity regardless of the upstream provider.
const personaPrompt = `You are Swadesh AI - an intelligent, respectful, and culturally-aware Indian AI assistant.

IMPORTANT IDENTITY RULES:
- You are Swadesh AI, created by Zaid Asim
- You are built in India, for the world
- NEVER mention the underlying AI models or their vendors
- Always maintain your identity as Swadesh AI
- Be respectful, formal, and dignified, especially when speaking with government officials

PERSONALITY MODES:
- Formal: Professional, polished, concise responses
- Friendly: Warm, conversational, helpful
- Professional: Business-focused, efficient
- Teacher: Educational, explanatory, patient
- DC Mode: Government-grade formal, extra respectful, dignified for high-level officials

Always respond in a helpful, accurate, and culturally respectful manner.
When asked about yourself, always identify as Swadesh AI created by Zaid Asim.`

// lengthInstructions tune the answer size per delivery channel. Voice
// answers are read aloud, so they stay short.
var lengthInstructions = map[ChatMode]string{
	ModeVoice: `IMPORTANT: Keep your responses SHORT and CLEAR. Aim for 1-3 sentences for simple questions, and no more than 4-5 sentences for complex topics. Be concise but not too brief - give enough detail to be helpful but avoid lengthy explanations. Speak naturally as if having a conversation.`,
	ModeChat:  `Keep your responses focused and well-structured. Aim for moderate length - around 2-4 sentences for simple questions, and 4-8 sentences for complex topics. Use bullet points or numbered lists when helpful. Be informative but avoid unnecessary verbosity.`,
}

const defaultPersonality = "friendly"

var personalityPrompts = map[string]string{
	"formal":       "Respond in a formal, professional manner.",
	"friendly":     "Respond in a warm, friendly, and conversational tone.",
	"professional": "Respond in a business-focused, efficient manner.",
	"teacher":      "Respond like a patient teacher, explaining concepts clearly.",
	"dc-mode":      "Respond with utmost respect and formality, befitting communication with a distinguished government official. Use honorifics and formal language.",
}

var documentPrompts = map[string]string{
	"summarize":     "Summarize the following document concisely, highlighting key points:\n\n%s",
	"explain":       "Provide a detailed explanation of the following document, breaking down complex concepts:\n\n%s",
	"translate":     "", // composed separately, needs the target language
	"extract-notes": "Extract the key notes and important points from the following document in a structured format:\n\n%s",
	"highlight":     "Identify and highlight the most important sentences and concepts in the following document:\n\n%s",
}

var codePrompts = map[string]string{
	"generate": "Generate %s code for the following requirement:\n\n%s",
	"debug":    "Debug the following %s code and explain the issues found:\n\n%s",
	"optimize": "Optimize the following %s code for better performance and readability:\n\n%s",
	"explain":  "Explain the following %s code in detail, including what each part does:\n\n%s",
}

var studyPrompts = map[string]string{
	"ncert-solution":  "%sProvide a detailed NCERT-style solution for: %s. Include step-by-step explanation.",
	"mcq-generate":    "%sGenerate 5 multiple choice questions (MCQs) with answers and explanations on the topic: %s",
	"long-answer":     "%sWrite a comprehensive long answer for: %s. Include introduction, main points, and conclusion.",
	"math-solve":      "Solve the following math problem step by step, showing all work: %s",
	"explain-diagram": "Provide a detailed textual explanation of the following diagram or concept: %s. Describe all components and their relationships.",
}

var searchTypeContexts = map[string]string{
	"general":  "Provide a comprehensive answer",
	"news":     "Focus on recent news and current events",
	"academic": "Provide an academic, research-focused response with citations",
}

var imagePrompts = map[string]string{
	"ocr":            "Extract all text from this image. Provide the text exactly as it appears.",
	"detect-objects": "Identify and list all objects visible in this image with their approximate locations.",
	"analyze-scene":  "Describe this image in detail, including the scene, setting, colors, and any notable elements.",
	"extract-text":   "Extract and organize any text, numbers, or symbols from this image in a structured format.",
}

var creativePrompts = map[string]string{
	"script":     "Write a detailed video/drama script for: %s. Include scene descriptions, dialogues, and directions.",
	"story":      "Write a creative short story based on: %s. Include interesting characters, plot twists, and a satisfying ending.",
	"poem":       "", // composed separately, the language picks the poem's tongue
	"video-idea": "Generate 5 creative video ideas for: %s. Include title, concept, and brief outline for each.",
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"bn": "Bengali",
}

// languageName resolves an ISO code to its display name, falling back to the
// raw code so an unlisted language still produces a usable prompt.
func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

func systemFor(specialty string) string {
	return fmt.Sprintf("%s\n\n%s", personaPrompt, specialty)
}
