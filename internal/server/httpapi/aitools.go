package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/server/ai"
)

type chatRequest struct {
	Message     string `json:"message"`
	Personality string `json:"personality"`
	Context     string `json:"context"`
}

type documentRequest struct {
	Content        string `json:"content"`
	Action         string `json:"action"`
	TargetLanguage string `json:"targetLanguage"`
}

type codeRequest struct {
	Code     string `json:"code"`
	Action   string `json:"action"`
	Language string `json:"language"`
	Prompt   string `json:"prompt"`
}

type studyRequest struct {
	Topic   string `json:"topic"`
	Action  string `json:"action"`
	Grade   string `json:"grade"`
	Subject string `json:"subject"`
}

type languageRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Transliterate  bool   `json:"transliterate"`
}

type searchRequest struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

type imageRequest struct {
	ImageBase64 string `json:"imageBase64"`
	Action      string `json:"action"`
}

type creativeRequest struct {
	Type     string `json:"type"`
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, name)
		}
	}
	return nil
}

// handleChat and handleVoiceChat share everything except the length
// instruction the mode selects.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	s.serveChat(w, r, ai.ModeChat)
}

func (s *Server) handleVoiceChat(w http.ResponseWriter, r *http.Request) {
	s.serveChat(w, r, ai.ModeVoice)
}

func (s *Server) serveChat(w http.ResponseWriter, r *http.Request, mode ai.ChatMode) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireFields(map[string]string{"message": req.Message}); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Personality == "" {
		req.Personality = "friendly"
	}

	contextText, err := s.chatContext(r, req.Context)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.assistant.Chat(r.Context(), req.Message, req.Personality, contextText, mode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": out})
}

// chatContext combines the caller's memories (when logged in) with the
// client-supplied context block.
func (s *Server) chatContext(r *http.Request, clientContext string) (string, error) {
	var parts []string

	if session, ok := sessionFrom(r.Context()); ok {
		memories, err := s.memories.List(r.Context(), session.UserID)
		if err != nil {
			return "", err
		}
		if len(memories) > 0 {
			lines := make([]string, 0, len(memories))
			for _, m := range memories {
				lines = append(lines, "- "+m.Content)
			}
			parts = append(parts, "User's memories for context:\n"+strings.Join(lines, "\n"))
		}
	}

	if clientContext != "" {
		parts = append(parts, clientContext)
	}
	return strings.Join(parts, "\n\n"), nil
}

func (s *Server) handleDocumentTool(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireFields(map[string]string{"content": req.Content, "action": req.Action}); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.assistant.AnalyzeDocument(r.Context(), req.Content, req.Action, req.TargetLanguage)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": out})
}

func (s *Server) handleCodeTool(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireFields(map[string]string{"action": req.Action}); err != nil {
		s.writeError(w, r, err)
		return
	}
	// the generate action works from the prompt, the others from the code
	subject := map[string]string{"code": req.Code}
	if req.Action == "generate" {
		subject = map[string]string{"prompt": req.Prompt}
	}
	if err := requireFields(subject); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Language == "" {
		req.Language = "javascript"
	}

	out, err := s.assistant.AnalyzeCode(r.Context(), req.Code, req.Action, req.Language, req.Prompt)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": out})
}

func (s *Server) handleStudyTool(w http.ResponseWriter, r *http.Request) {
	var req studyRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireFields(map[string]string{"topic": req.Topic, "action": req.Action}); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.assistant.StudyAssistant(r.Context(), req.Topic, req.Action, req.Grade, req.Subject)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": out})
}

func (s *Server) handleLanguageTool(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireFields(map[string]string{
		"text":           req.Text,
		"sourceLanguage": req.SourceLanguage,
		"targetLanguage": req.TargetLanguage,
	}); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.assistant.Translate(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage, req.Transliterate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": out})
}

func (s *Server) handleSearchTool(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireFields(map[string]string{"query": req.Query}); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Type == "" {
		req.Type = "general"
	}

	result, err := s.assistant.SearchAndSummarize(r.Context(), req.Query, req.Type)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleImageTool(w http.ResponseWriter, r *http.Request) {
	var req imageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireFields(map[string]string{"imageBase64": req.ImageBase64, "action": req.Action}); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.assistant.AnalyzeImage(r.Context(), req.ImageBase64, req.Action)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": out})
}

func (s *Server) handleCreativeTool(w http.ResponseWriter, r *http.Request) {
	var req creativeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := requireFields(map[string]string{"type": req.Type, "prompt": req.Prompt}); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	out, err := s.assistant.CreativeContent(r.Context(), req.Type, req.Prompt, req.Language)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": out})
}
