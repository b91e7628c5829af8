package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrei/hirescope/internal/barem"
)

// CriteriaPayload is the request body for saving assessment criteria.
type CriteriaPayload struct {
	CategorizedSkills map[string][]string `json:"categorizedSkills" validate:"required"`
	Weights           map[string]int      `json:"weights" validate:"required,dive,gte=0,lte=100"`
}

// DistributeRequest asks for an automatic weight distribution over the given
// categorized skills.
type DistributeRequest struct {
	CategorizedSkills map[string][]string `json:"categorizedSkills" validate:"required"`
}

// handleListCriteria lists all stored assessment criteria
func (s *Server) handleListCriteria(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"criteria": all,
		"total":    len(all),
	})
}

// handleGetCriteria retrieves the criteria for a job title
func (s *Server) handleGetCriteria(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	c, err := s.store.Get(r.Context(), title)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if c == nil {
		s.errorResponse(w, http.StatusNotFound, "No criteria for job title: "+title)
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

// handlePutCriteria saves criteria after validating the payload shape and the
// weight sum. A sum different from 100 is a rejected action, answered with
// the signed delta the user needs to apply.
func (s *Server) handlePutCriteria(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	var payload CriteriaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid criteria payload: "+err.Error())
		return
	}

	c := &barem.Criteria{
		JobTitle:          title,
		CategorizedSkills: payload.CategorizedSkills,
		Weights:           payload.Weights,
	}
	if err := c.Validate(); err != nil {
		s.weightSumRejection(w, err)
		return
	}

	if err := s.store.Put(r.Context(), c); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

// handleDeleteCriteria removes the criteria for a job title
func (s *Server) handleDeleteCriteria(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), r.PathValue("title")); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDistributeCriteria builds and stores an auto-distributed criteria:
// 80/20 between skill categories and languages when both exist, the full
// budget otherwise.
func (s *Server) handleDistributeCriteria(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	var req DistributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid distribute payload: "+err.Error())
		return
	}

	c := barem.AutoDistribute(title, req.CategorizedSkills)
	if err := s.store.Put(r.Context(), c); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

// handleAnalyze is the gated proxy to the scoring backend: stored criteria
// must exist and its weights must sum to 100 before anything is submitted.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.scoring == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Scoring backend not configured")
		return
	}

	title := r.PathValue("title")
	c, err := s.store.Get(r.Context(), title)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Store error: "+err.Error())
		return
	}
	if c == nil {
		s.errorResponse(w, http.StatusNotFound, "No criteria for job title: "+title)
		return
	}
	if err := c.Validate(); err != nil {
		s.weightSumRejection(w, err)
		return
	}

	ack, err := s.scoring.StartAnalysis(r.Context(), title, c)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ack)
}

// weightSumRejection answers a weight-sum validation failure with the signed
// delta needed to reach 100.
func (s *Server) weightSumRejection(w http.ResponseWriter, err error) {
	var sumErr *barem.SumError
	if errors.As(err, &sumErr) {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error": sumErr.Error(),
			"sum":   sumErr.Sum,
			"delta": sumErr.Delta(),
		})
		return
	}
	s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
}
