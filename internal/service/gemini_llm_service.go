package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/sciencegrader/config"
	"github.com/lshigami/sciencegrader/internal/grading"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const graderPersona = "너는 친절하지만 정확한 과학 교사다."

var errGeminiUnavailable = errors.New("gemini client not initialized")

// GeminiLLMService returns the raw one-line verdict the model produced for a single answer.
type GeminiLLMService interface {
	GradeAnswer(ctx context.Context, question grading.Question, answer string) (string, error)
	ModelName() string
}

type geminiLLMService struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Every answer will be graded with an API error.")
		return &geminiLLMService{modelName: cfg.Gemini.Model}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(graderPersona)}}
	return &geminiLLMService{client: client, model: model, modelName: cfg.Gemini.Model}, nil
}

func (s *geminiLLMService) ModelName() string {
	return s.modelName
}

// Close releases the underlying client. Safe on a service built without an API key.
func (s *geminiLLMService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *geminiLLMService) GradeAnswer(ctx context.Context, question grading.Question, answer string) (string, error) {
	if s.model == nil {
		return "", errGeminiUnavailable
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(buildGradingPrompt(question, answer)))
	if err != nil {
		log.Error().Err(err).Int("questionIndex", question.Index).Msg("Gemini API error during grading")
		return "", err
	}
	text, err := responseText(resp)
	if err != nil {
		log.Warn().Err(err).Int("questionIndex", question.Index).Msg("Gemini returned no usable text")
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func buildGradingPrompt(question grading.Question, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "문항 번호: %d\n", question.Index)
	fmt.Fprintf(&b, "채점 기준: %s\n", question.Rubric)
	fmt.Fprintf(&b, "학생 답안: %s\n\n", answer)
	b.WriteString("출력 규칙:\n")
	b.WriteString("- 반드시 한 줄로만 출력\n")
	b.WriteString("- 형식은 정확히 'O: ...' 또는 'X: ...'\n")
	fmt.Fprintf(&b, "- 피드백은 학생에게 말하듯 친절하게, %d자 이내\n", grading.MaxRationaleLen)
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return b.String(), nil
}
