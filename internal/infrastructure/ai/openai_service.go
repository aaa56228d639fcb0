package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jhoicas/punto-bazar-api/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenAIService implementa LLMService.
var _ ports.LLMService = (*OpenAIService)(nil)

const openAIBaseURL = "https://api.openai.com/v1"

// OpenAIService adaptador de la API Responses de OpenAI.
type OpenAIService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIService construye el adaptador. Con apiKey vacío Complete devuelve ports.ErrLLMNotConfigured.
func NewOpenAIService(apiKey, model string, opts ...Option) *OpenAIService {
	o := buildOptions(openAIBaseURL, opts)
	return &OpenAIService{apiKey: apiKey, model: model, baseURL: o.baseURL, httpClient: o.httpClient}
}

type openAIRequest struct {
	Model           string `json:"model"`
	Input           string `json:"input"`
	MaxOutputTokens int    `json:"max_output_tokens"`
}

type openAIResponse struct {
	OutputText string `json:"output_text"`
	Output     []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// text prefiere output_text; si no viene, concatena los bloques output_text del arreglo output.
func (r openAIResponse) text() string {
	if r.OutputText != "" {
		return r.OutputText
	}
	var b strings.Builder
	for _, out := range r.Output {
		for _, c := range out.Content {
			if c.Type == "output_text" {
				b.WriteString(c.Text)
			}
		}
	}
	return b.String()
}

// Complete envía el prompt como input del modelo y devuelve el texto generado.
func (s *OpenAIService) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", ports.ErrLLMNotConfigured
	}

	body, err := json.Marshal(openAIRequest{Model: s.model, Input: prompt, MaxOutputTokens: maxTokens})
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	rawBody, status, err := doRequest(ctx, s.httpClient, req)
	if err != nil {
		return "", err
	}

	var resp openAIResponse
	if status != http.StatusOK {
		if jsonErr := json.Unmarshal(rawBody, &resp); jsonErr == nil && resp.Error != nil {
			return "", fmt.Errorf("AI: OpenAI error (%s): %s", resp.Error.Type, resp.Error.Message)
		}
		return "", fmt.Errorf("AI: OpenAI HTTP %d", status)
	}
	if err := json.Unmarshal(rawBody, &resp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta OpenAI: %w", err)
	}
	text := resp.text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}
	return text, nil
}

// doRequest ejecuta la llamada y lee como máximo 64 KiB del cuerpo.
func doRequest(ctx context.Context, client *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, 0, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, 0, fmt.Errorf("AI: leer respuesta: %w", err)
	}
	return rawBody, resp.StatusCode, nil
}
