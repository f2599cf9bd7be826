package server

import (
	"net/http/httptest"
	"testing"
)

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		bearer   string
		byAPIKey bool
		byIP     bool
		want     string
	}{
		{
			name:     "api key header preferred",
			apiKey:   "key-123",
			byAPIKey: true,
			byIP:     true,
			want:     "api:key-123",
		},
		{
			name:     "bearer token fallback",
			bearer:   "Bearer tok-456",
			byAPIKey: true,
			want:     "api:tok-456",
		},
		{
			name: "ip fallback",
			byIP: true,
			want: "ip:192.0.2.1",
		},
		{
			name: "no strategy enabled",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/score", nil)
			r.RemoteAddr = "192.0.2.1:1234"
			if tt.apiKey != "" {
				r.Header.Set("X-API-Key", tt.apiKey)
			}
			if tt.bearer != "" {
				r.Header.Set("Authorization", tt.bearer)
			}

			got := getRateLimitKey(r, tt.byAPIKey, tt.byIP)
			if got != tt.want {
				t.Errorf("getRateLimitKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "203.0.113.7:5050",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for first valid ip",
			remoteAddr: "203.0.113.7:5050",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.9, 203.0.113.7"},
			want:       "198.51.100.9",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "203.0.113.7:5050",
			headers:    map[string]string{"X-Real-IP": "198.51.100.20"},
			want:       "198.51.100.20",
		},
		{
			name:       "invalid forwarded entries skipped",
			remoteAddr: "203.0.113.7:5050",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip, 198.51.100.9"},
			want:       "198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/health", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(60, 2, nil)
	defer rl.Close()

	// Burst capacity of 2 allows two immediate requests
	if !rl.Allow("client-a") {
		t.Error("first request should be allowed")
	}
	if !rl.Allow("client-a") {
		t.Error("second request should be allowed within burst")
	}
	if rl.Allow("client-a") {
		t.Error("third immediate request should be rejected")
	}

	// Independent key gets its own bucket
	if !rl.Allow("client-b") {
		t.Error("different key should have its own limiter")
	}

	stats := rl.GetStats()
	if stats["active_limiters"].(int) != 2 {
		t.Errorf("active_limiters = %v, want 2", stats["active_limiters"])
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q, want ****", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("maskAPIKey(long) = %q, want abcdefgh****", got)
	}
}
