package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"atsgrader/internal/ai"
	"atsgrader/internal/ats"
	"atsgrader/internal/observability"
	"atsgrader/internal/resume"
	"atsgrader/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the offline scoring pipeline with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atsgrader.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Resume) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "score"),
		)

		doc, err := resume.Parse([]byte(req.Resume))
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "parse"))
			writeErrorResponse(w, "Invalid resume document", err.Error(), http.StatusBadRequest)
			return
		}

		var jd *types.JDAnalysis
		if strings.TrimSpace(req.JobDescription) != "" {
			jd, err = ats.MatchJobDescription(req.JobDescription, doc.FullText())
			if err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.type", "match"))
				writeErrorResponse(w, "Failed to match job description", err.Error(), http.StatusBadRequest)
				return
			}
		}

		report := ats.Evaluate(doc, jd)

		// Delta feedback against a prior pass of the same document
		if req.PreviousScore != nil {
			var tracker ats.ScoreTracker
			tracker.Observe(*req.PreviousScore)
			report.Feedback = tracker.Observe(report.Score)
		}

		metrics := om.GetMetrics()
		metrics.RecordScore(ctx, report.Score, report.Label, om)
		if report.Feedback != nil {
			metrics.RecordScoreDelta(ctx, report.Feedback.Delta, om)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score", report.Score),
			attribute.String("label", report.Label),
		)

		writeJSONResponse(w, span, report)
	}
}

// createMatchHandler wraps the job description matcher with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atsgrader.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Resume) == "" {
			err := fmt.Errorf("missing resume")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume", "resume field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "match"),
		)

		doc, err := resume.Parse([]byte(req.Resume))
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "parse"))
			writeErrorResponse(w, "Invalid resume document", err.Error(), http.StatusBadRequest)
			return
		}

		metrics := om.GetMetrics()

		analysis, err := ats.MatchJobDescription(req.JobDescription, doc.FullText())
		if err != nil {
			span.RecordError(err)
			metrics.RecordJobMatched(ctx, false, om)
			status := http.StatusInternalServerError
			if errors.Is(err, ats.ErrEmptyJobDescription) {
				status = http.StatusBadRequest
			}
			writeErrorResponse(w, "Failed to match job description", err.Error(), status)
			return
		}

		metrics.RecordJobMatched(ctx, true, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("match_score", analysis.MatchScore),
			attribute.Int("keywords_count", len(analysis.Keywords)),
			attribute.Int("missing_count", len(analysis.MissingKeywords)),
		)

		writeJSONResponse(w, span, analysis)
	}
}

// createImproveHandler wraps the AI text improvement handler with observability
func (s *Server) createImproveHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("atsgrader.api")
		ctx, span := tracer.Start(ctx, "api.improve")
		defer span.End()

		var req ImproveRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			err := fmt.Errorf("missing text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing text", "text field is required", http.StatusBadRequest)
			return
		}

		if len(req.Text) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("text too large: %d chars", len(req.Text))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Text too large", fmt.Sprintf("text exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.String("request.section", req.Section),
			attribute.String("operation", "improve"),
		)

		input := types.ImproveTextInput{
			Text:        req.Text,
			Section:     req.Section,
			Instruction: req.Instruction,
		}

		improveConfig := s.AppConfig.GetImproveConfig()
		aiService, err := ai.NewService(&improveConfig, "improve", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var result types.ImproveTextOutput
		err = metrics.TrackAIOperationWithTokens(ctx, "improve", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.ImproveText(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordTextImproved(ctx, false, om)
			writeErrorResponse(w, "Failed to improve text", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordTextImproved(ctx, true, om)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.improved_length", len(result.ImprovedText)),
			attribute.Int("response.alternatives_count", len(result.Alternatives)),
		)

		writeJSONResponse(w, span, result)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(), om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
