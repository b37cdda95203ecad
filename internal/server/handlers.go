package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/prezlab/letter-generator/internal/letters"
	"github.com/prezlab/letter-generator/internal/record"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// GenerateLetterRequest is the request body for POST /letters. Either an
// employee identification number or an inline canonical record is required.
type GenerateLetterRequest struct {
	Template   string `json:"template" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required_without=Record"`

	// Travel fields for the embassy letter, ISO dates.
	Country   string `json:"country,omitempty"`
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	// Record bypasses the store lookup with a pre-normalized record.
	Record *record.Canonical `json:"record,omitempty"`
}

// Validate validates the request using struct tags.
func (r *GenerateLetterRequest) Validate() error {
	return validator.New().Struct(r)
}

// TemplateResponse is one entry of the GET /templates listing.
type TemplateResponse struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	File   string `json:"file"`
	Travel bool   `json:"travel"`
}

// handleGenerateLetter generates a letter and streams the document back.
// A non-fatal notice (ambiguous record match) travels in a response header.
func (s *Server) handleGenerateLetter(w http.ResponseWriter, r *http.Request) {
	var req GenerateLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	requestID := uuid.New()
	result, err := s.letters.Generate(r.Context(), letters.Request{
		TemplateKey: req.Template,
		EmployeeID:  req.EmployeeID,
		Record:      req.Record,
		Extras: record.Extras{
			Country:   req.Country,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
	})
	if err != nil {
		log.Printf("[%s] generation failed: %v", requestID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	log.Printf("[%s] generated %s (%s)", requestID, result.Filename, req.Template)
	if result.Notice != nil {
		w.Header().Set("X-Generation-Notice", result.Notice.Message)
	}
	w.Header().Set("Content-Type", docxMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Bytes); err != nil {
		log.Printf("[%s] failed to write response: %v", requestID, err)
	}
}

// handleListTemplates lists the template registry.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	templates := s.letters.Templates()
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, TemplateResponse{Key: t.Key, Name: t.Name, File: t.File, Travel: t.Travel})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
