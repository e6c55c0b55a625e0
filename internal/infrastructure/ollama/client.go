package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"career-os/internal/domain/roadmap"
)

const daysPerWeek = 7

// Client generates weekly study plans through a local Ollama instance. It
// implements roadmap.PlanGenerator; every failure mode comes back as an error
// so the synthesizer can route to the deterministic fallback.
type Client struct {
	baseURL     string
	model       string
	temperature float64
	client      *http.Client
	logger      *log.Logger
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type dailyTask struct {
	Day         int    `json:"day"`
	Task        string `json:"task"`
	Description string `json:"description"`
}

func NewClient(baseURL, model string, timeout time.Duration, logger *log.Logger) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if strings.TrimSpace(model) == "" {
		model = "llama3"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: 0.3,
		client:      &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// WeekPlan asks the model for a 7-day plan for one skill. The model is
// instructed to emit only a JSON array; the response text is still searched
// for the outermost array delimiters because models routinely wrap output in
// prose. Arrays longer than 7 entries are truncated to the first 7, and
// unknown fields on entries are ignored; both are accepted behavior, not
// validation gaps.
func (c *Client) WeekPlan(ctx context.Context, skill, roleContext string) ([]roadmap.DailyTask, error) {
	if c == nil {
		return nil, errors.New("nil ollama client")
	}

	body := generateRequest{
		Model:   c.model,
		Prompt:  buildPrompt(skill, roleContext),
		Stream:  false,
		Options: generateOptions{Temperature: c.temperature},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("ollama generate failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if c.logger != nil {
			c.logger.Printf("Ollama request error | endpoint=%s status=%d", endpoint, resp.StatusCode)
		}
		return nil, err
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	return parseWeekPlan(out.Response)
}

func buildPrompt(skill, roleContext string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a structured 7-day learning plan for mastering %s as part of becoming a %s. ", skill, roleContext)
	sb.WriteString("Return ONLY valid JSON format with no additional text:\n")
	sb.WriteString("[\n")
	sb.WriteString("  { \"day\": 1, \"task\": \"...\", \"description\": \"...\" },\n")
	sb.WriteString("  ...\n")
	sb.WriteString("]\n")
	sb.WriteString("Ensure the array contains exactly 7 objects.")
	return sb.String()
}

func parseWeekPlan(raw string) ([]roadmap.DailyTask, error) {
	extracted, err := extractArray(raw)
	if err != nil {
		return nil, err
	}

	var tasks []dailyTask
	if err := json.Unmarshal([]byte(extracted), &tasks); err != nil {
		return nil, fmt.Errorf("model output is not a valid JSON array: %w", err)
	}
	if len(tasks) < daysPerWeek {
		return nil, fmt.Errorf("expected at least %d plan entries, got %d", daysPerWeek, len(tasks))
	}

	days := make([]roadmap.DailyTask, 0, daysPerWeek)
	for _, t := range tasks[:daysPerWeek] {
		days = append(days, roadmap.DailyTask{
			Day:         t.Day,
			Task:        t.Task,
			Description: t.Description,
		})
	}
	return days, nil
}

func extractArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no JSON array found in model response")
	}
	return raw[start : end+1], nil
}

var _ roadmap.PlanGenerator = (*Client)(nil)
