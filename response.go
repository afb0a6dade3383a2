package geminizod

import (
	"google.golang.org/genai"

	"github.com/Elransh/gemini-zod/gemini"
	"github.com/Elransh/gemini-zod/zod"
)

// MIMETypeJSON is the response MIME type required for structured output.
const MIMETypeJSON = "application/json"

// ResponseFormat is the response-format part of a generation config.
type ResponseFormat struct {
	MIMEType string         `json:"responseMimeType" yaml:"responseMimeType"`
	Schema   *gemini.Schema `json:"responseSchema" yaml:"responseSchema"`
}

// ResponseSchemaFromZod converts s and pairs it with the JSON MIME type.
func ResponseSchemaFromZod(s zod.Schema) ResponseFormat {
	return ResponseFormat{MIMEType: MIMETypeJSON, Schema: ToGemini(s)}
}

// GenerationConfig returns an SDK generation config constrained to s.
func GenerationConfig(s zod.Schema) *genai.GenerateContentConfig {
	rf := ResponseSchemaFromZod(s)
	return &genai.GenerateContentConfig{
		ResponseMIMEType: rf.MIMEType,
		ResponseSchema:   gemini.ToGenAI(rf.Schema),
	}
}
