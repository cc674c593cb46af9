package service

import (
	"hoctap_backend/internals/configs"
	"hoctap_backend/internals/features/chatbot/dto"
)

// Wire types for the generateContent call.

type GatewayPart struct {
	Text       string             `json:"text,omitempty"`
	InlineData *GatewayInlineData `json:"inline_data,omitempty"`
}

type GatewayInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type GatewayContent struct {
	Parts []GatewayPart `json:"parts"`
}

type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type GatewayRequest struct {
	Contents         []GatewayContent `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// GatewayPayload pairs the request body with the model it should be
// sent to; the assembler picks the vision model when an image rides
// along.
type GatewayPayload struct {
	Model string
	Body  GatewayRequest
}

// Answer-language directives prepended to the user's text. An
// unrecognized code gets no directive and the model answers as it
// pleases.
var languageDirectives = map[string]string{
	"vi": "Hãy trả lời bằng tiếng Việt.",
	"en": "Please respond in English.",
	"zh": "请用中文回答。",
	"ja": "日本語で回答してください。",
	"ko": "한국어로 답변해 주세요.",
	"fr": "Veuillez répondre en français.",
	"es": "Por favor responde en español.",
}

// PromptAssembler builds the gateway request from the sanitized pieces
// of a chat turn. Model ids and generation knobs come from Config.
type PromptAssembler struct {
	cfg *configs.Config
}

func NewPromptAssembler(cfg *configs.Config) *PromptAssembler {
	return &PromptAssembler{cfg: cfg}
}

func (a *PromptAssembler) Assemble(text string, image *dto.ImagePayload, language string) GatewayPayload {
	prompt := text
	if directive, ok := languageDirectives[language]; ok {
		prompt = directive + "\n\n" + text
	}

	parts := []GatewayPart{{Text: prompt}}
	model := a.cfg.FastModel
	if image != nil {
		parts = append(parts, GatewayPart{
			InlineData: &GatewayInlineData{
				MimeType: image.MimeType,
				Data:     image.Base64Data,
			},
		})
		model = a.cfg.VisionModel
	}

	return GatewayPayload{
		Model: model,
		Body: GatewayRequest{
			Contents: []GatewayContent{{Parts: parts}},
			GenerationConfig: GenerationConfig{
				Temperature:     a.cfg.Temperature,
				TopK:            a.cfg.TopK,
				TopP:            a.cfg.TopP,
				MaxOutputTokens: a.cfg.MaxOutputTokens,
			},
		},
	}
}
