package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
)

// ParseError reports a generator response that could not be turned into a
// plan: non-JSON output or JSON missing the expected keys. It is a
// user-retryable failure; a malformed plan is never partially applied.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "could not parse generated plan: " + e.Reason
}

// Client talks to a chat-completions style plan generator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// Config configures the generator client. Zero values fall back to the
// defaults in the constants package and a 60 second HTTP timeout.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

func NewClient(cfg Config) *Client {
	c := &Client{
		httpClient: cfg.HTTPClient,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	if c.baseURL == "" {
		c.baseURL = constants.DefaultGeneratorURL
	}
	if c.model == "" {
		c.model = constants.DefaultGeneratorModel
	}
	return c
}

// GenerateWorkout asks for a single workout and returns its three sections.
func (c *Client) GenerateWorkout(ctx context.Context, prompt string, profile *models.Profile) (models.GeneratedWorkout, error) {
	content, err := c.complete(ctx, workoutSystem, withProfile(prompt, profile))
	if err != nil {
		return models.GeneratedWorkout{}, err
	}

	raw, err := extractJSON(content)
	if err != nil {
		return models.GeneratedWorkout{}, err
	}

	var workout models.GeneratedWorkout
	if err := json.Unmarshal(raw, &workout); err != nil {
		return models.GeneratedWorkout{}, &ParseError{Reason: err.Error()}
	}
	if workout.WarmUp == nil && workout.MainSet == nil && workout.CoolDown == nil {
		return models.GeneratedWorkout{}, &ParseError{Reason: "response has none of warmUp, mainSet, coolDown"}
	}
	return workout, nil
}

// GenerateSchedule asks for a multi-day plan.
func (c *Client) GenerateSchedule(ctx context.Context, prompt string, profile *models.Profile) ([]models.ScheduleDay, error) {
	content, err := c.complete(ctx, scheduleSystem, withProfile(prompt, profile))
	if err != nil {
		return nil, err
	}

	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var obj struct {
		Plan []models.ScheduleDay `json:"plan"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	if obj.Plan == nil {
		return nil, &ParseError{Reason: "response is missing the plan array"}
	}
	return obj.Plan, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize generator request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("plan generator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("plan generator returned non-OK status", "status", resp.StatusCode)
		return "", fmt.Errorf("plan generator returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generator response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(data, &cr); err != nil {
		return "", &ParseError{Reason: err.Error()}
	}
	if len(cr.Choices) == 0 {
		return "", &ParseError{Reason: "response has no choices"}
	}
	return cr.Choices[0].Message.Content, nil
}

// extractJSON locates the first "{" ... last "}" span. Generators tend to
// wrap their JSON in prose, so anything around the braces is discarded.
func extractJSON(s string) ([]byte, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return nil, &ParseError{Reason: "no JSON object in response"}
	}
	return []byte(s[start : end+1]), nil
}

// withProfile appends athlete context to the user prompt when a profile is
// available.
func withProfile(prompt string, profile *models.Profile) string {
	if profile == nil {
		return prompt
	}
	var parts []string
	if profile.Age > 0 {
		parts = append(parts, fmt.Sprintf("age %d", profile.Age))
	}
	if profile.Gender != "" {
		parts = append(parts, "gender "+profile.Gender)
	}
	if profile.Height != "" {
		parts = append(parts, "height "+profile.Height)
	}
	if profile.Weight != "" {
		parts = append(parts, "weight "+profile.Weight)
	}
	if profile.Goals != "" {
		parts = append(parts, "goals: "+profile.Goals)
	}
	if len(parts) == 0 {
		return prompt
	}
	return prompt + "\n\nAthlete profile: " + strings.Join(parts, ", ") + "."
}
