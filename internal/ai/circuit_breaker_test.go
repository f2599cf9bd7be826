package ai

import (
	"errors"
	"testing"
	"time"

	"atsgrader/internal/config"

	"google.golang.org/genai"
)

func breakerConfig(enabled bool) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestCircuitBreakerCreation(t *testing.T) {
	cb := NewAICircuitBreaker("Improve", breakerConfig(true), nil)
	if cb == nil {
		t.Fatal("Circuit breaker should not be nil when enabled")
	}

	stats := cb.GetStats()

	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Circuit breaker name not found")
	}
	if name != "AI-Improve" {
		t.Errorf("Expected circuit breaker name 'AI-Improve', got '%s'", name)
	}

	state, ok := stats["state"].(string)
	if !ok {
		t.Fatal("Circuit breaker state not found")
	}
	if state != "closed" {
		t.Errorf("Expected initial state 'closed', got '%s'", state)
	}

	enabled, ok := stats["enabled"].(bool)
	if !ok {
		t.Fatal("Circuit breaker enabled status not found")
	}
	if !enabled {
		t.Error("Circuit breaker should be enabled")
	}

	if !cb.IsHealthy() {
		t.Error("Circuit breaker should be healthy initially")
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	cb := NewAICircuitBreaker("Disabled", breakerConfig(false), nil)

	// Should return nil when disabled
	if cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}

	// A nil breaker still executes the function directly
	called := false
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		called = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Execute() on nil breaker unexpected error: %v", err)
	}
	if !called {
		t.Error("Execute() on nil breaker should call the function directly")
	}

	// And reports itself as healthy with disabled stats
	if !cb.IsHealthy() {
		t.Error("Nil circuit breaker should report healthy")
	}
	stats := cb.GetStats()
	if enabled, ok := stats["enabled"].(bool); !ok || enabled {
		t.Error("Nil circuit breaker stats should report enabled=false")
	}
}

func TestCircuitBreakerPropagatesErrors(t *testing.T) {
	cb := NewAICircuitBreaker("Improve", breakerConfig(true), nil)

	wantErr := errors.New("upstream failure")
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Execute() error = %v, want %v", err, wantErr)
	}

	// A single failure below minRequests must not trip the breaker
	if !cb.IsHealthy() {
		t.Error("Circuit breaker should remain closed after a single failure")
	}
}

func TestModelCircuitBreaker(t *testing.T) {
	mcb := NewModelCircuitBreaker("Improve", breakerConfig(true), nil)
	if mcb == nil {
		t.Fatal("Model circuit breaker should not be nil when enabled")
	}

	stats := mcb.GetStats()
	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Model circuit breaker name not found")
	}
	if name != "AI-Model-Improve" {
		t.Errorf("Expected model circuit breaker name 'AI-Model-Improve', got '%s'", name)
	}

	if !mcb.IsHealthy() {
		t.Error("Model circuit breaker should be healthy initially")
	}

	if NewModelCircuitBreaker("Improve", breakerConfig(false), nil) != nil {
		t.Error("Model circuit breaker should be nil when disabled")
	}
}
