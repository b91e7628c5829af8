package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/andrei/hirescope/internal/candidates"
	"github.com/andrei/hirescope/internal/catalog"
	"github.com/andrei/hirescope/internal/jobdesc"
)

// JobSummary is the listing shape for one job folder.
type JobSummary struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	CandidateCount int    `json:"candidateCount"`
	HasDescription bool   `json:"hasDescription"`
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleListJobs lists all job folders with candidate counts
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	folders, err := s.scanner.Scan(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobs := make([]JobSummary, 0, len(folders))
	for _, f := range folders {
		jobs = append(jobs, JobSummary{
			Name:           f.Name,
			Slug:           f.Slug,
			CandidateCount: len(f.CVFilenames),
			HasDescription: f.DescriptionPath != "",
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// handleGetJob retrieves a single job folder by slug
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	folder, err := s.findJob(w, r)
	if err != nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, JobSummary{
		Name:           folder.Name,
		Slug:           folder.Slug,
		CandidateCount: len(folder.CVFilenames),
		HasDescription: folder.DescriptionPath != "",
	})
}

// handleListCandidates synthesizes candidate records for a job's CV files.
// Records are regenerated on every request; ordinals follow enumeration order.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	folder, err := s.findJob(w, r)
	if err != nil {
		return
	}

	limit := parseQueryInt(r, "limit", 0, 0)

	records := make([]candidates.Record, 0, len(folder.CVFilenames))
	for i, filename := range folder.CVFilenames {
		if limit > 0 && len(records) == limit {
			break
		}
		records = append(records, candidates.Synthesize(filename, folder.Name, folder.Slug, i+1))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": records,
		"total":      len(records),
	})
}

// handleGetDescription returns the structured job description with
// requirements sections filtered out (requirements render separately).
func (s *Server) handleGetDescription(w http.ResponseWriter, r *http.Request) {
	folder, err := s.findJob(w, r)
	if err != nil {
		return
	}

	text, err := s.scanner.Description(folder)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, structureDescription(text))
}

// structureDescription picks the parsing path by input shape: content that
// already is a structured document only gets the requirements filter, free
// text (or HTML) goes through the line-scanning structurer.
func structureDescription(text string) jobdesc.Document {
	var doc jobdesc.Document
	if err := json.Unmarshal([]byte(text), &doc); err == nil && len(doc.Sections) > 0 {
		return jobdesc.FilterSections(doc)
	}
	return jobdesc.StructureText(jobdesc.Normalize(text))
}

// handleGetRequirements returns the flat extracted requirements list
func (s *Server) handleGetRequirements(w http.ResponseWriter, r *http.Request) {
	folder, err := s.findJob(w, r)
	if err != nil {
		return
	}

	text, err := s.scanner.Description(folder)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	reqs := jobdesc.ExtractRequirements(jobdesc.Normalize(text))
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"requirements": reqs,
		"total":        len(reqs),
	})
}

// handleGetScores proxies the backend's score listing for a job. An upstream
// 404 already arrives normalized to an empty list.
func (s *Server) handleGetScores(w http.ResponseWriter, r *http.Request) {
	if s.scoring == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Scoring backend not configured")
		return
	}

	folder, err := s.findJob(w, r)
	if err != nil {
		return
	}

	scores, err := s.scoring.JobScores(r.Context(), folder.Slug)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, scores)
}

// handleExtractSkills proxies the backend's skill categorization for a job's
// description file.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	if s.scoring == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Scoring backend not configured")
		return
	}

	folder, err := s.findJob(w, r)
	if err != nil {
		return
	}

	text, err := s.scanner.Description(folder)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	extraction, err := s.scoring.ExtractSkills(r.Context(), folder.Name, text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, extraction)
}

// MatchRequest names the CV file to score against a job.
type MatchRequest struct {
	CV string `json:"cv" validate:"required"`
}

// handleMatchCandidate proxies the backend's per-CV match for a job.
func (s *Server) handleMatchCandidate(w http.ResponseWriter, r *http.Request) {
	if s.scoring == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Scoring backend not configured")
		return
	}

	folder, err := s.findJob(w, r)
	if err != nil {
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match payload: "+err.Error())
		return
	}

	result, err := s.scoring.MatchCandidate(r.Context(), folder.Slug, req.CV)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// findJob resolves the {id} path parameter to a job folder, writing the error
// response itself so handlers can simply return on failure.
func (s *Server) findJob(w http.ResponseWriter, r *http.Request) (*catalog.JobFolder, error) {
	id := r.PathValue("id")
	folder, err := s.scanner.Find(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, err
	}
	return folder, nil
}
