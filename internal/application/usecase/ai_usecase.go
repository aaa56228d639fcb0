package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/application/ports"
)

// Presupuesto de tokens de salida por operación.
const (
	productDescriptionMaxTokens = 280
	campaignDraftMaxTokens      = 320
)

// AIUseCase arma los prompts de redacción y llama al LLM. Nunca devuelve error al caller:
// ante falta de configuración o falla del servicio responde ok=false y el front usa su texto local.
type AIUseCase struct {
	llm     ports.LLMService
	timeout time.Duration
	log     zerolog.Logger
}

// NewAIUseCase construye el caso de uso. timeout <= 0 usa 20 s.
func NewAIUseCase(llm ports.LLMService, timeout time.Duration, log zerolog.Logger) *AIUseCase {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &AIUseCase{llm: llm, timeout: timeout, log: log}
}

// DescribeProduct redacta la ficha de un producto; devuelve el texto generado tal cual.
func (uc *AIUseCase) DescribeProduct(ctx context.Context, in dto.ProductDescriptionRequest) dto.ProductDescriptionResponse {
	prompt := "Sos el redactor de fichas de producto de un catálogo de bazar. " +
		"Escribí una descripción clara y vendedora en español neutro, 3 a 5 frases, sin emojis.\n\n" +
		fmt.Sprintf("Nombre del producto: %s\n", in.Nombre) +
		fmt.Sprintf("Categoría: %s\n", in.Categoria) +
		fmt.Sprintf("Colores: %s\n", strings.Join(in.Colores.StringList(), ", ")) +
		fmt.Sprintf("Tamaños: %s\n", strings.Join(in.Tamanos.StringList(), ", ")) +
		fmt.Sprintf("Detalles adicionales: %s\n\n", in.Detalles) +
		"El texto tiene que ser fácil de leer por WhatsApp y apto para clientes finales."

	text, ok := uc.complete(ctx, "descripcion-producto", prompt, productDescriptionMaxTokens)
	if !ok {
		return dto.ProductDescriptionResponse{OK: false, Texto: ""}
	}
	return dto.ProductDescriptionResponse{OK: true, Texto: text}
}

// DraftCampaign redacta una campaña y la separa en título, cuerpo, CTA y hashtags.
func (uc *AIUseCase) DraftCampaign(ctx context.Context, in dto.CampaignDraftRequest) dto.CampaignDraftResponse {
	tipo := in.Tipo
	if tipo == "" {
		tipo = "historias"
	}
	tono := in.Tono
	if tono == "" {
		tono = "energico"
	}
	prompt := "Sos especialista en marketing para revendedores de catálogo. " +
		"Generá una campaña breve para usar en historias, estados de WhatsApp o flyers.\n\n" +
		fmt.Sprintf("Idea base: %s\n", in.Idea) +
		fmt.Sprintf("Tipo de campaña: %s\n", tipo) +
		fmt.Sprintf("Tono: %s\n\n", tono) +
		"Devolvé un texto en formato:\n" +
		"TÍTULO:\n...\n\n" +
		"TEXTO:\n...\n\n" +
		"CTA:\n...\n\n" +
		"HASHTAGS:\n..."

	text, ok := uc.complete(ctx, "campania", prompt, campaignDraftMaxTokens)
	if !ok {
		return dto.CampaignDraftResponse{OK: false}
	}
	out := ParseCampaignDraft(text)
	out.OK = true
	return out
}

func (uc *AIUseCase) complete(ctx context.Context, op, prompt string, maxTokens int) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.Complete(ctx, prompt, maxTokens)
	if err != nil {
		ev := uc.log.Warn().Str("op", op)
		if !errors.Is(err, ports.ErrLLMNotConfigured) {
			ev = ev.Err(err)
		}
		ev.Msg("IA no disponible, el front usa su fallback")
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		uc.log.Warn().Str("op", op).Msg("IA devolvió texto vacío")
		return "", false
	}
	return text, true
}

var (
	blockSeparatorRe = regexp.MustCompile(`\n\s*\n`)
	titleLabelRe     = regexp.MustCompile(`(?i)^T[ÍI]TULO:\s*`)
	textLabelRe      = regexp.MustCompile(`(?i)^TEXTO:\s*`)
	ctaLabelRe       = regexp.MustCompile(`(?i)^CTA:\s*`)
	hashtagsLabelRe  = regexp.MustCompile(`(?i)^HASHTAGS:\s*`)
)

// ParseCampaignDraft separa el texto generado en bloques (línea en blanco) y reconoce
// cuatro etiquetas: TÍTULO/TITULO, TEXTO, CTA y HASHTAGS, sin distinguir mayúsculas.
// Los bloques sin etiqueta reconocida se descartan; las secciones ausentes quedan vacías.
func ParseCampaignDraft(text string) dto.CampaignDraftResponse {
	var out dto.CampaignDraftResponse
	upper := cases.Upper(language.Spanish)
	for _, block := range blockSeparatorRe.Split(text, -1) {
		b := strings.TrimSpace(block)
		if b == "" {
			continue
		}
		u := upper.String(b)
		switch {
		case strings.HasPrefix(u, "TÍTULO") || strings.HasPrefix(u, "TITULO"):
			out.Titulo = strings.TrimSpace(titleLabelRe.ReplaceAllString(b, ""))
		case strings.HasPrefix(u, "TEXTO"):
			out.Cuerpo = strings.TrimSpace(textLabelRe.ReplaceAllString(b, ""))
		case strings.HasPrefix(u, "CTA"):
			out.CTA = strings.TrimSpace(ctaLabelRe.ReplaceAllString(b, ""))
		case strings.HasPrefix(u, "HASHTAGS"):
			out.Hashtags = strings.TrimSpace(hashtagsLabelRe.ReplaceAllString(b, ""))
		}
	}
	return out
}
