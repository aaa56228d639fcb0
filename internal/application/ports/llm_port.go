package ports

import (
	"context"
	"errors"
)

// ErrLLMNotConfigured el adaptador no tiene API key; el caller degrada a ok=false.
var ErrLLMNotConfigured = errors.New("AI: servicio de generación no configurado")

// LLMService define el puerto de salida para el servicio externo de generación de texto.
// Cualquier adaptador (OpenAI, Anthropic, Gemini, mock) debe implementar esta interfaz.
type LLMService interface {
	// Complete envía prompt y devuelve el texto generado, con un tope de maxTokens de salida.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
