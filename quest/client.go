package quest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pixel-survivor/components"
)

const (
	DefaultModel    = "gemini-2.5-flash"
	DefaultEndpoint = "https://generativelanguage.googleapis.com"
	DefaultTimeout  = 15 * time.Second

	maxResponseBytes = 1 << 20
)

// ErrNoAPIKey means the client runs offline
var ErrNoAPIKey = errors.New("quest: no api key configured")

// Generator produces a quest for the current player state
// Generate never fails; errors degrade to a labelled fallback quest
type Generator interface {
	Generate(ctx context.Context, p components.Player) components.Quest
}

// Config selects the generation backend
type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// Payload is the structured answer requested from the model
type Payload struct {
	Title       string `json:"title" jsonschema:"description=Short catchy quest title"`
	Description string `json:"description" jsonschema:"description=One or two sentence briefing"`
	Target      string `json:"target" jsonschema:"description=What the survivor must do"`
	Reward      string `json:"reward" jsonschema:"description=Imaginary reward"`
}

// GeminiClient calls the generateContent REST endpoint
type GeminiClient struct {
	cfg    Config
	http   *http.Client
	schema *jsonschema.Schema
	logger zerolog.Logger
}

// NewGeminiClient fills unset config fields with defaults
func NewGeminiClient(cfg Config, logger zerolog.Logger) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &GeminiClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		schema: PayloadSchema(),
		logger: logger,
	}
}

// PayloadSchema reflects the JSON schema of Payload without references
func PayloadSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Payload))
	schema.Version = ""
	return schema
}

// Generate implements Generator
func (c *GeminiClient) Generate(ctx context.Context, p components.Player) components.Quest {
	payload, err := c.Fetch(ctx, p)
	switch {
	case errors.Is(err, ErrNoAPIKey):
		return Offline()
	case err != nil:
		c.logger.Warn().Err(err).Str("model", c.cfg.Model).Msg("quest generation failed")
		return SignalLost()
	}
	return FromPayload(payload)
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType   string             `json:"responseMimeType"`
	ResponseJSONSchema *jsonschema.Schema `json:"responseJsonSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Fetch performs one generation round trip and decodes the model's JSON answer
func (c *GeminiClient) Fetch(ctx context.Context, p components.Player) (Payload, error) {
	if c.cfg.APIKey == "" {
		return Payload{}, ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: Prompt(p)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType:   "application/json",
			ResponseJSONSchema: c.schema,
		},
	})
	if err != nil {
		return Payload{}, errors.Wrap(err, "encode request")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.Endpoint, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Payload{}, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Payload{}, errors.Wrap(err, "post generateContent")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Payload{}, errors.Wrap(err, "read response")
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return Payload{}, errors.Wrapf(err, "decode response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if gr.Error != nil && gr.Error.Message != "" {
			msg = gr.Error.Message
		}
		return Payload{}, errors.Errorf("generateContent status %d: %s", resp.StatusCode, msg)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return Payload{}, errors.New("generateContent returned no candidates")
	}

	var text strings.Builder
	for _, pt := range gr.Candidates[0].Content.Parts {
		text.WriteString(pt.Text)
	}

	var payload Payload
	if err := json.Unmarshal([]byte(text.String()), &payload); err != nil {
		return Payload{}, errors.Wrap(err, "decode quest payload")
	}

	c.logger.Debug().Dur("took", time.Since(start)).Str("title", payload.Title).Msg("quest generated")
	return payload, nil
}

// Prompt describes the survivor to the model
func Prompt(p components.Player) string {
	condition := "Healthy"
	if p.HP < 50 {
		condition = "Badly wounded"
	}

	var b strings.Builder
	b.WriteString("Create a unique survival quest for the player of a pixel art survival game.\n")
	b.WriteString("World context: a post-apocalyptic land overrun by zombies and raiders.\n")
	b.WriteString("Give a catchy title, a short description, a target to accomplish and an imaginary reward.\n\n")
	b.WriteString("Player status:\n")
	fmt.Fprintf(&b, "- Role: %s\n", p.Role)
	fmt.Fprintf(&b, "- Condition: %s\n", condition)
	fmt.Fprintf(&b, "- Level: %d\n\n", p.Level)
	b.WriteString("Output JSON only.")
	return b.String()
}

// FromPayload builds a quest, substituting defaults for empty fields
func FromPayload(p Payload) components.Quest {
	return components.Quest{
		ID:          uuid.NewString(),
		Title:       orDefault(p.Title, "Mysterious Mission"),
		Description: orDefault(p.Description, "Survive by any means."),
		Target:      orDefault(p.Target, "Survive"),
		Reward:      orDefault(p.Reward, "Mysterious Loot"),
	}
}

// Offline is handed out when no API key is configured
func Offline() components.Quest {
	return components.Quest{
		ID:          uuid.NewString(),
		Title:       "Scavenge Supplies (Offline)",
		Description: "Find food and weapons to survive.",
		Target:      "Collect 5 Apples",
		Reward:      "XP & Reputation",
	}
}

// SignalLost is handed out when the service call fails
func SignalLost() components.Quest {
	return components.Quest{
		ID:          uuid.NewString(),
		Title:       "Signal Lost",
		Description: "Failed to reach HQ (AI error). Keep surviving.",
		Target:      "Stay Alive",
		Reward:      "Experience",
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
