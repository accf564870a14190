// Package server provides the HTTP API for the interactive career tools.
package server

import (
	"errors"
	"net/http"

	"github.com/careerkit/career-tools/internal/llm"
	"github.com/careerkit/career-tools/internal/parser"
	"github.com/careerkit/career-tools/internal/validation"
)

// Error discriminants returned in the "error" field. The UI keys its
// messaging off these values, not off HTTP status codes.
const (
	ErrorValidation = "VALIDATION_ERROR"
	ErrorRateLimit  = "RATE_LIMIT_EXCEEDED"
	ErrorUpstream   = "UPSTREAM_ERROR"
	ErrorParse      = "PARSE_ERROR"
)

// ErrorResponse is the JSON body returned for every failed request.
// A response carries either a result or an ErrorResponse, never both.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter,omitempty"` // seconds; rate limit only
}

// classifyError maps a pipeline failure onto an HTTP status and response
// body. Rate-limit denials are handled separately because they originate
// from a quota decision rather than an error value.
func classifyError(err error) (int, ErrorResponse) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error:   ErrorValidation,
			Message: fieldErr.Field + " " + fieldErr.Message,
		}
	}

	var upstreamErr *llm.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.ProviderRateLimit {
			// The provider's own limit, not ours: 429, but still
			// UPSTREAM_ERROR so the UI does not show a quota countdown.
			return http.StatusTooManyRequests, ErrorResponse{
				Error:   ErrorUpstream,
				Message: "The generation provider is currently rate limiting requests. Please try again in a few minutes.",
			}
		}
		return http.StatusBadGateway, ErrorResponse{
			Error:   ErrorUpstream,
			Message: "The generation service is temporarily unavailable. Please try again.",
		}
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway, ErrorResponse{
			Error:   ErrorParse,
			Message: "The generation service returned an unusable response. Please try again.",
		}
	}

	return http.StatusBadGateway, ErrorResponse{
		Error:   ErrorUpstream,
		Message: "The generation service is temporarily unavailable. Please try again.",
	}
}
