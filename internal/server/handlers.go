package server

import (
	"encoding/json"
	"net/http"

	"github.com/careerkit/career-tools/internal/parser"
	"github.com/careerkit/career-tools/internal/prompts"
	"github.com/careerkit/career-tools/internal/tools"
	"github.com/careerkit/career-tools/internal/types"
)

// handleCoverLetter serves the cover letter generator.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	if !s.gate(w, r, tools.CoverLetter) {
		return
	}

	var req types.CoverLetterRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.validator.CoverLetter(&req); err != nil {
		status, resp := classifyError(err)
		s.errorResponse(w, status, resp)
		return
	}

	promptText, err := prompts.BuildCoverLetter(&req)
	if err != nil {
		status, resp := classifyError(err)
		s.errorResponse(w, status, resp)
		return
	}

	s.generateAndRespond(w, r, promptText, func(raw string) (any, error) {
		return parser.ParseCoverLetter(raw)
	})
}

// handleSalary serves the salary analyzer.
func (s *Server) handleSalary(w http.ResponseWriter, r *http.Request) {
	if !s.gate(w, r, tools.Salary) {
		return
	}

	var req types.SalaryRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.validator.Salary(&req); err != nil {
		status, resp := classifyError(err)
		s.errorResponse(w, status, resp)
		return
	}

	promptText, err := prompts.BuildSalary(&req)
	if err != nil {
		status, resp := classifyError(err)
		s.errorResponse(w, status, resp)
		return
	}

	s.generateAndRespond(w, r, promptText, func(raw string) (any, error) {
		return parser.ParseSalary(raw)
	})
}

// handleLeadership serves the leadership readiness assessment.
func (s *Server) handleLeadership(w http.ResponseWriter, r *http.Request) {
	if !s.gate(w, r, tools.Leadership) {
		return
	}

	var req types.LeadershipRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.validator.Leadership(&req); err != nil {
		status, resp := classifyError(err)
		s.errorResponse(w, status, resp)
		return
	}

	promptText, err := prompts.BuildLeadership(&req)
	if err != nil {
		status, resp := classifyError(err)
		s.errorResponse(w, status, resp)
		return
	}

	s.generateAndRespond(w, r, promptText, func(raw string) (any, error) {
		return parser.ParseLeadership(raw)
	})
}

// decodeBody decodes the JSON request body, writing a validation error on
// failure. Returns false if the request has already been answered.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ErrorResponse{
			Error:   ErrorValidation,
			Message: "Invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}

// gate applies the quota check for the tool and sets rate limit headers.
// The increment happens here, before any upstream work: requests abandoned
// mid-flight still count against the window. Returns false if the request
// was denied and answered.
func (s *Server) gate(w http.ResponseWriter, r *http.Request, tool tools.Kind) bool {
	d := s.quotas.Allow(s.extractClientID(r), tool)
	s.setRateLimitHeaders(w, d)
	if !d.Allowed {
		s.rateLimitResponse(w, d)
		return false
	}
	return true
}

// generateAndRespond runs the upstream call and response parsing, writing
// either the parsed result or exactly one error response.
func (s *Server) generateAndRespond(w http.ResponseWriter, r *http.Request, promptText string, parse func(string) (any, error)) {
	raw, err := s.generator.Generate(r.Context(), promptText)
	if err != nil {
		status, resp := classifyError(err)
		s.errorResponse(w, status, resp)
		return
	}

	result, err := parse(raw)
	if err != nil {
		status, resp := classifyError(err)
		s.errorResponse(w, status, resp)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
