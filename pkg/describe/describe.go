package describe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hugohenrick/pos-mercearia/pkg/i18n"
	"github.com/hugohenrick/pos-mercearia/pkg/logger"
)

const (
	anthropicAPIEndpoint = "https://api.anthropic.com/v1/messages"
	defaultModel         = "claude-3-5-haiku-20241022"
)

// prompts por idioma da interface para descrições curtas de mercearia
var prompts = map[string]string{
	"ar": "Write a short, appealing product description in Arabic for a grocery item named '%s'. Keep it under 20 words.",
	"fr": "Write a short, appealing product description in French for a grocery item named '%s'. Keep it under 20 words.",
}

// Client gera descrições de produto via API da Anthropic. É um
// colaborador opcional: qualquer falha degrada para uma mensagem fixa
// no idioma pedido e nunca bloqueia o fluxo de salvar o produto.
type Client struct {
	apiKey   string
	endpoint string
	model    string
	client   *http.Client
	logger   logger.Logger
}

// NewClient cria o cliente lendo a chave de ANTHROPIC_API_KEY.
// Chave ausente não é erro: o cliente apenas degrada para o fallback.
func NewClient(log logger.Logger) *Client {
	return &Client{
		apiKey:   os.Getenv("ANTHROPIC_API_KEY"),
		endpoint: anthropicAPIEndpoint,
		model:    defaultModel,
		client:   &http.Client{},
		logger:   log,
	}
}

// Message representa uma mensagem de chat para a API da Anthropic
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// ProductDescription gera uma descrição curta para o produto no idioma
// informado. Retorna a mensagem fixa de falha (já localizada) em
// qualquer erro: chave ausente, transporte, status não-200 ou resposta
// vazia. O cancelamento do contexto descarta a chamada.
func (c *Client) ProductDescription(ctx context.Context, productName, lang string) string {
	fallback := i18n.T(lang, "describe_failed")

	if c.apiKey == "" {
		c.logger.Warn("ANTHROPIC_API_KEY não configurada, descrição indisponível")
		return fallback
	}

	prompt, ok := prompts[lang]
	if !ok {
		prompt = prompts[i18n.DefaultLanguage]
	}

	reqBody := messageRequest{
		Model:     c.model,
		MaxTokens: 100,
		Messages: []Message{
			{Role: "user", Content: fmt.Sprintf(prompt, productName)},
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error("erro ao serializar requisição de descrição", "error", err)
		return fallback
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		c.logger.Error("erro ao criar requisição HTTP", "error", err)
		return fallback
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("erro na chamada da API de descrição", "error", err)
		return fallback
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("erro ao ler resposta da API de descrição", "error", err)
		return fallback
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("API de descrição retornou erro", "status", resp.Status, "body", string(respBody))
		return fallback
	}

	var apiResp messageResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		c.logger.Error("erro ao desserializar resposta da API de descrição", "error", err)
		return fallback
	}

	var text strings.Builder
	for _, content := range apiResp.Content {
		if content.Type == "text" {
			text.WriteString(content.Text)
		}
	}
	description := strings.TrimSpace(text.String())
	if description == "" {
		return fallback
	}
	return description
}
