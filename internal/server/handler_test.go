package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atsgrader/internal/observability"
	"atsgrader/internal/types"
)

const testResumeJSON = `{
	"personalInfo": {
		"name": "Ada Lovelace",
		"title": "Backend Engineer",
		"email": "ada@example.com",
		"phone": "+1 555 0100",
		"location": "London"
	},
	"summary": "Backend engineer with 6 years of experience building distributed systems in Go and Python.",
	"skills": [
		{"category": "Languages", "skills": ["Go", "Python", "SQL"]},
		{"category": "Infrastructure", "skills": ["Kubernetes", "PostgreSQL"]}
	],
	"experience": [
		{
			"company": "Acme",
			"position": "Senior Engineer",
			"startDate": "2020-01",
			"current": true,
			"bullets": [
				"Reduced p99 latency by 40% by rewriting the ingestion pipeline in Go",
				"Led a team of 4 engineers delivering a Kubernetes migration"
			]
		}
	],
	"education": [
		{"institution": "Imperial College", "degree": "BSc", "field": "Computer Science"}
	]
}`

func newTestObservability(t *testing.T) *observability.ObservabilityManager {
	t.Helper()
	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("NewObservabilityManager failed: %v", err)
	}
	return om
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestScoreHandler(t *testing.T) {
	s := &Server{MaxRequestSize: 1 << 20}
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	body, err := json.Marshal(ScoreRequest{Resume: testResumeJSON})
	if err != nil {
		t.Fatal(err)
	}

	rec := postJSON(t, handler, string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var report types.ScoreReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.Score < 0 || report.Score > 100 {
		t.Errorf("score = %d, want in [0,100]", report.Score)
	}
	if report.Label == "" {
		t.Error("expected a non-empty label")
	}
	if report.Feedback != nil {
		t.Error("expected no feedback without previousScore")
	}
}

func TestScoreHandlerWithPreviousScore(t *testing.T) {
	s := &Server{MaxRequestSize: 1 << 20}
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	previous := 1
	body, err := json.Marshal(ScoreRequest{Resume: testResumeJSON, PreviousScore: &previous})
	if err != nil {
		t.Fatal(err)
	}

	rec := postJSON(t, handler, string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var report types.ScoreReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.Score != previous && report.Feedback == nil {
		t.Error("expected delta feedback when score differs from previousScore")
	}
	if report.Feedback != nil && report.Feedback.Delta != report.Score-previous {
		t.Errorf("feedback delta = %d, want %d", report.Feedback.Delta, report.Score-previous)
	}
}

func TestScoreHandlerValidation(t *testing.T) {
	s := &Server{MaxRequestSize: 1 << 20}
	om := newTestObservability(t)
	handler := s.createScoreHandler(om)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "missing resume",
			body:       `{"jobDescription": "We need a Go engineer"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed JSON body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "resume fails schema validation",
			body:       `{"resume": "{\"summary\": \"no personal info\"}"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler, tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestMatchHandler(t *testing.T) {
	s := &Server{MaxRequestSize: 1 << 20}
	om := newTestObservability(t)
	handler := s.createMatchHandler(om)

	body, err := json.Marshal(MatchRequest{
		Resume:         testResumeJSON,
		JobDescription: "Looking for a senior engineer with Go, Kubernetes and PostgreSQL experience. Rust is a plus.",
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := postJSON(t, handler, string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var analysis types.JDAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if analysis.MatchScore < 0 || analysis.MatchScore > 100 {
		t.Errorf("matchScore = %d, want in [0,100]", analysis.MatchScore)
	}
	if len(analysis.Keywords) == 0 {
		t.Error("expected classified keywords from the job description")
	}
}

func TestMatchHandlerEmptyJobDescription(t *testing.T) {
	s := &Server{MaxRequestSize: 1 << 20}
	om := newTestObservability(t)
	handler := s.createMatchHandler(om)

	rec := postJSON(t, handler, `{"resume": "{}", "jobDescription": "   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestParseJSONRequestContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")

	var v map[string]any
	if err := parseJSONRequest(req, &v); err == nil {
		t.Error("expected error for non-JSON content type")
	}
}
