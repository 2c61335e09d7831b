package ai

import (
	"context"
	"fmt"

	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/logging"
)

// ChatMode selects the response-length instruction for conversational calls.
type ChatMode string

const (
	ModeChat  ChatMode = "chat"
	ModeVoice ChatMode = "voice"
)

// SearchSource is one citation attached to a search summary.
type SearchSource struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchResult is the payload of SearchAndSummarize.
type SearchResult struct {
	Summary string         `json:"summary"`
	Sources []SearchSource `json:"sources"`
}

// Assistant composes feature prompts and forwards them to a Generator. It
// holds no per-user state; every call is a single round-trip.
type Assistant struct {
	gen    Generator
	logger logging.Logger
}

func NewAssistant(gen Generator, logger logging.Logger) *Assistant {
	return &Assistant{gen: gen, logger: logger.With("module", "assistant")}
}

// generate runs one call and substitutes the feature's fallback text when
// the upstream answers with an empty body.
func (a *Assistant) generate(ctx context.Context, req *GenerateRequest, fallback string) (string, error) {
	out, err := a.gen.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if out == "" {
		a.logger.Debug(ctx, "empty upstream answer, substituting fallback text")
		return fallback, nil
	}
	return out, nil
}

// Chat answers a conversational message. An unknown personality silently
// falls back to friendly so stale clients keep working; contextText, when
// present, is prepended to the user message.
func (a *Assistant) Chat(ctx context.Context, message, personality, contextText string, mode ChatMode) (string, error) {
	personaLine, ok := personalityPrompts[personality]
	if !ok {
		personaLine = personalityPrompts[defaultPersonality]
	}
	lengthInstruction, ok := lengthInstructions[mode]
	if !ok {
		lengthInstruction = lengthInstructions[ModeChat]
	}

	system := fmt.Sprintf("%s\n\n%s\n\nCurrent personality: %s", personaPrompt, lengthInstruction, personaLine)
	prompt := message
	if contextText != "" {
		prompt = fmt.Sprintf("Context: %s\n\nUser: %s", contextText, message)
	}

	return a.generate(ctx, &GenerateRequest{System: system, Prompt: prompt},
		"I apologize, but I couldn't generate a response. Please try again.")
}

// AnalyzeDocument runs one of the document actions over pasted text. The
// translate action targets Hindi unless targetLanguage says otherwise.
func (a *Assistant) AnalyzeDocument(ctx context.Context, content, action, targetLanguage string) (string, error) {
	var prompt string
	switch {
	case action == "translate":
		if targetLanguage == "" {
			targetLanguage = "Hindi"
		}
		prompt = fmt.Sprintf("Translate the following text to %s:\n\n%s", targetLanguage, content)
	default:
		tmpl, ok := documentPrompts[action]
		if !ok {
			return "", fmt.Errorf("document action %q: %w", action, common.ErrUnknownAction)
		}
		prompt = fmt.Sprintf(tmpl, content)
	}

	return a.generate(ctx, &GenerateRequest{
		System: systemFor("You are a document analysis expert. Provide clear, accurate, and helpful analysis."),
		Prompt: prompt,
	}, "Unable to analyze the document.")
}

// AnalyzeCode generates, debugs, optimizes or explains code. The generate
// action works from the free-form prompt, the rest from the code itself.
func (a *Assistant) AnalyzeCode(ctx context.Context, code, action, language, prompt string) (string, error) {
	tmpl, ok := codePrompts[action]
	if !ok {
		return "", fmt.Errorf("code action %q: %w", action, common.ErrUnknownAction)
	}
	subject := code
	if action == "generate" {
		subject = prompt
	}

	return a.generate(ctx, &GenerateRequest{
		System: systemFor("You are an expert programmer. Provide clean, well-commented, production-ready code when generating. Be thorough when debugging or explaining."),
		Prompt: fmt.Sprintf(tmpl, language, subject),
	}, "Unable to process the code.")
}

// StudyAssistant answers NCERT-oriented study requests. Grade and subject
// scope the answer only when both are present.
func (a *Assistant) StudyAssistant(ctx context.Context, topic, action, grade, subject string) (string, error) {
	tmpl, ok := studyPrompts[action]
	if !ok {
		return "", fmt.Errorf("study action %q: %w", action, common.ErrUnknownAction)
	}

	var prompt string
	switch action {
	case "math-solve", "explain-diagram":
		prompt = fmt.Sprintf(tmpl, topic)
	default:
		classContext := ""
		if grade != "" && subject != "" {
			classContext = fmt.Sprintf("For Class %s %s: ", grade, subject)
		}
		prompt = fmt.Sprintf(tmpl, classContext, topic)
	}

	return a.generate(ctx, &GenerateRequest{
		System: systemFor("You are an expert Indian education tutor familiar with NCERT curriculum. Provide accurate, student-friendly explanations."),
		Prompt: prompt,
	}, "Unable to provide study assistance.")
}

// Translate converts text between the supported Indian languages, optionally
// adding a Roman transliteration.
func (a *Assistant) Translate(ctx context.Context, text, sourceLang, targetLang string, transliterate bool) (string, error) {
	var prompt string
	if transliterate {
		prompt = fmt.Sprintf("Translate the following %s text to %s, and also provide Roman transliteration:\n\n%s",
			languageName(sourceLang), languageName(targetLang), text)
	} else {
		prompt = fmt.Sprintf("Translate the following %s text to %s:\n\n%s",
			languageName(sourceLang), languageName(targetLang), text)
	}

	return a.generate(ctx, &GenerateRequest{
		System: systemFor("You are a professional translator specializing in Indian languages. Provide accurate, natural-sounding translations."),
		Prompt: prompt,
	}, "Unable to translate.")
}

// SearchAndSummarize answers a query in the requested register and attaches
// the fixed source list; no live web retrieval happens here.
func (a *Assistant) SearchAndSummarize(ctx context.Context, query, searchType string) (*SearchResult, error) {
	typeContext, ok := searchTypeContexts[searchType]
	if !ok {
		return nil, fmt.Errorf("search type %q: %w", searchType, common.ErrUnknownAction)
	}

	summary, err := a.generate(ctx, &GenerateRequest{
		System: systemFor("You are a search and research assistant. Provide accurate, well-organized information."),
		Prompt: fmt.Sprintf("%s for the following query: %s", typeContext, query),
	}, "Unable to find relevant information.")
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Summary: summary,
		Sources: []SearchSource{
			{Title: "Swadesh AI Knowledge Base", URL: "https://swadesh.ai", Snippet: "Powered by Swadesh AI - Built in India"},
			{Title: "Indian Government Portal", URL: "https://india.gov.in", Snippet: "Official portal of the Government of India"},
			{Title: "NCERT Online", URL: "https://ncert.nic.in", Snippet: "National Council of Educational Research and Training"},
		},
	}, nil
}

// AnalyzeImage runs one of the vision actions over a base64-encoded JPEG.
func (a *Assistant) AnalyzeImage(ctx context.Context, imageBase64, action string) (string, error) {
	prompt, ok := imagePrompts[action]
	if !ok {
		return "", fmt.Errorf("image action %q: %w", action, common.ErrUnknownAction)
	}

	return a.generate(ctx, &GenerateRequest{
		Prompt:         prompt,
		ImageBase64:    imageBase64,
		ImageMediaType: "image/jpeg",
	}, "Unable to analyze the image.")
}

// CreativeContent produces scripts, stories, poems or video ideas. Poems are
// written in Hindi when language is "hi", English otherwise.
func (a *Assistant) CreativeContent(ctx context.Context, contentType, prompt, language string) (string, error) {
	var body string
	switch {
	case contentType == "poem":
		tongue := "English"
		if language == "hi" {
			tongue = "Hindi"
		}
		body = fmt.Sprintf("Write a beautiful %s poem about: %s. Use appropriate rhyme scheme and poetic devices.", tongue, prompt)
	default:
		tmpl, ok := creativePrompts[contentType]
		if !ok {
			return "", fmt.Errorf("creative type %q: %w", contentType, common.ErrUnknownAction)
		}
		body = fmt.Sprintf(tmpl, prompt)
	}

	return a.generate(ctx, &GenerateRequest{
		System: systemFor("You are a creative writer and content creator. Generate engaging, original content."),
		Prompt: body,
	}, "Unable to generate creative content.")
}
