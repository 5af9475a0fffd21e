package planner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julianstephens/trainlog/internal/models"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode failed: %v", err)
		}
	}))
}

func TestGenerateSchedule_ParsesPlan(t *testing.T) {
	srv := chatServer(t, `Here is your plan:
{"plan": [{"date": "2025-07-21", "warmUp": ["Arm Circles: 1 minute"], "mainSet": ["Push-ups: 3×12"], "coolDown": []}]}
Enjoy!`)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test", BaseURL: srv.URL})

	days, err := c.GenerateSchedule(context.Background(), "3 day plan", nil)
	if err != nil {
		t.Fatalf("GenerateSchedule failed: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if days[0].Date != "2025-07-21" || days[0].MainSet[0] != "Push-ups: 3×12" {
		t.Errorf("day = %+v", days[0])
	}
	if days[0].Done {
		t.Error("freshly generated day is already done")
	}
}

func TestGenerateSchedule_MissingPlanKey(t *testing.T) {
	srv := chatServer(t, `{"warmUp": [], "mainSet": [], "coolDown": []}`)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test", BaseURL: srv.URL})

	_, err := c.GenerateSchedule(context.Background(), "plan", nil)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestGenerateWorkout_ParsesSections(t *testing.T) {
	srv := chatServer(t, `{"warmUp": ["Jumping Jacks: 1 minute"], "mainSet": ["Squats: 4×10"], "coolDown": ["Stretch: 2 minutes"]}`)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test", BaseURL: srv.URL})

	w, err := c.GenerateWorkout(context.Background(), "leg day", nil)
	if err != nil {
		t.Fatalf("GenerateWorkout failed: %v", err)
	}
	if len(w.MainSet) != 1 || w.MainSet[0] != "Squats: 4×10" {
		t.Errorf("workout = %+v", w)
	}
}

func TestGenerateWorkout_NonJSONResponse(t *testing.T) {
	srv := chatServer(t, `Sorry, I cannot help with that.`)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test", BaseURL: srv.URL})

	_, err := c.GenerateWorkout(context.Background(), "leg day", nil)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestGenerateWorkout_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test", BaseURL: srv.URL})

	_, err := c.GenerateWorkout(context.Background(), "leg day", nil)
	if err == nil {
		t.Fatal("expected error for non-OK status")
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		t.Errorf("transport failure should not be a ParseError: %v", err)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{`{"a":1}`, `{"a":1}`, false},
		{"prose before {\"a\":1} prose after", `{"a":1}`, false},
		{"nested {\"a\":{\"b\":2}} tail", `{"a":{"b":2}}`, false},
		{"no braces here", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := extractJSON(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("extractJSON(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("extractJSON(%q) failed: %v", tt.in, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithProfile(t *testing.T) {
	got := withProfile("plan my week", &models.Profile{Age: 30, Goals: "5k under 25 minutes"})
	want := "plan my week\n\nAthlete profile: age 30, goals: 5k under 25 minutes."
	if got != want {
		t.Errorf("withProfile = %q, want %q", got, want)
	}

	if got := withProfile("plan my week", nil); got != "plan my week" {
		t.Errorf("nil profile altered prompt: %q", got)
	}
}
