// Package ollama resolves transcribed text into structured commands by
// calling an Ollama-compatible chat endpoint with a fixed tool
// catalogue.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/scrivoapp/scrivo/internal/app"
	"github.com/scrivoapp/scrivo/internal/app/config"
	"github.com/scrivoapp/scrivo/internal/application/service"
	"github.com/scrivoapp/scrivo/internal/locale"
)

// Client talks to the language-model backend. It implements
// service.IntentResolver: resolution failures are logged and reported
// as "no call", never as errors.
type Client struct {
	baseURL     string
	model       string
	httpClient  *http.Client
	pingTimeout time.Duration
	loc         *locale.Table
	log         *app.Logger
}

var _ service.IntentResolver = (*Client)(nil)

// New creates a backend client with a bounded request timeout.
func New(cfg config.BackendConfig, loc *locale.Table, log *app.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.URL, "/"),
		model:       cfg.Model,
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
		pingTimeout: cfg.PingTimeout,
		loc:         loc,
		log:         log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Tools    []tool        `json:"tools"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message struct {
		Content   string `json:"content"`
		ToolCalls []struct {
			Function struct {
				Name      string                 `json:"name"`
				Arguments map[string]interface{} `json:"arguments"`
			} `json:"function"`
		} `json:"tool_calls"`
	} `json:"message"`
}

// Resolve sends the text to the backend and extracts the single
// function call the model selected, or nil when nothing resolved.
// Only the first call of a multi-call response is used.
func (c *Client) Resolve(ctx context.Context, text string) *service.Command {
	reqID := ulid.Make().String()

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: c.systemPrompt()},
			{Role: "user", Content: text},
		},
		Tools:  toolCatalogue,
		Stream: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("[%s] encode chat request: %v", reqID, err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		c.log.Error("[%s] build chat request: %v", reqID, err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("[%s] backend request failed: %v", reqID, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Error("[%s] backend returned %d: %s", reqID, resp.StatusCode, raw)
		return nil
	}

	var data chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.log.Error("[%s] decode backend response: %v", reqID, err)
		return nil
	}

	if calls := data.Message.ToolCalls; len(calls) > 0 {
		fn := calls[0].Function
		args := fn.Arguments
		if args == nil {
			args = map[string]interface{}{}
		}
		return &service.Command{Name: fn.Name, Args: args}
	}

	// Some models put the function call into the content as plain
	// JSON. Best effort only; anything unparseable means no call.
	content := strings.TrimSpace(data.Message.Content)
	if content == "" {
		return nil
	}
	c.log.Info("[%s] backend text response: %s", reqID, content)

	var parsed struct {
		Function  string                 `json:"function"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil || parsed.Function == "" {
		return nil
	}
	if parsed.Arguments == nil {
		parsed.Arguments = map[string]interface{}{}
	}
	return &service.Command{Name: parsed.Function, Args: parsed.Arguments}
}

// Ping checks backend reachability with a short timeout. Used for
// startup diagnostics only; it never gates normal operation.
func (c *Client) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// systemPrompt renders the localized instruction embedding the current
// date/time and weekday, so the model can resolve relative times.
func (c *Client) systemPrompt() string {
	now := time.Now()
	return c.loc.Get("system_prompt", locale.Args{
		"now":       now.Format("2006-01-02 15:04"),
		"weekday":   now.Weekday().String(),
		"lang_name": c.loc.LanguageName(),
	})
}
