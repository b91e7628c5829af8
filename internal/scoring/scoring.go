// Package scoring is the client for the external scoring/analysis backend.
// The backend is a black box consumed as HTTP JSON request/response pairs;
// every response is schema-validated at the boundary and decoded into an
// explicit per-operation type. Nothing in this repository depends on the
// backend being reachable -- synthesized candidate data covers the gap.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultTimeout bounds a single backend call.
const DefaultTimeout = 30 * time.Second

// Client talks to the scoring backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      Cache
}

// NewClient creates a client for the backend at baseURL. cache may be nil.
func NewClient(baseURL string, cache Cache) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		cache:      cache,
	}
}

// SkillExtraction is the backend's categorized-skill response for a job
// description.
type SkillExtraction struct {
	CategorizedSkills map[string][]string `json:"categorizedSkills"`
}

// MatchResult is the backend's per-candidate match against a job. Score is on
// the canonical 0-10 scale after normalization.
type MatchResult struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// CandidateScore is one entry of a job's score listing.
type CandidateScore struct {
	CV    string  `json:"cv"`
	Score float64 `json:"score"`
}

// JobScores holds all backend scores for one job. An upstream 404 decodes to
// an empty (non-nil) Scores list: the dashboard treats "not analyzed yet" as
// no data, not as an error.
type JobScores struct {
	JobSlug string           `json:"jobSlug"`
	Scores  []CandidateScore `json:"scores"`
}

// AnalysisAck is the backend's acknowledgement of a started analysis.
type AnalysisAck struct {
	Status string `json:"status"`
}

// StartAnalysis submits a job's assessment criteria for analysis. Callers
// gate this on weight validation; the backend runs asynchronously and its
// results surface later through JobScores.
func (c *Client) StartAnalysis(ctx context.Context, jobTitle string, criteria any) (*AnalysisAck, error) {
	body := map[string]any{"jobTitle": jobTitle, "criteria": criteria}
	data, err := c.post(ctx, "analyze", "/analyze", body)
	if err != nil {
		return nil, err
	}
	if err := validate("analyze", analysisAckSchema, data); err != nil {
		return nil, err
	}
	var out AnalysisAck
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &DecodeError{Operation: "analyze", Message: "invalid JSON", Cause: err}
	}
	return &out, nil
}

// ExtractSkills asks the backend to categorize the skills in a job
// description. Upstream 404 propagates here; only score listings normalize it.
func (c *Client) ExtractSkills(ctx context.Context, jobTitle, description string) (*SkillExtraction, error) {
	body := map[string]string{"jobTitle": jobTitle, "description": description}
	data, err := c.post(ctx, "extract-skills", "/extract-skills", body)
	if err != nil {
		return nil, err
	}
	if err := validate("extract-skills", skillExtractionSchema, data); err != nil {
		return nil, err
	}
	var out SkillExtraction
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &DecodeError{Operation: "extract-skills", Message: "invalid JSON", Cause: err}
	}
	return &out, nil
}

// MatchCandidate asks the backend to score one CV against a job.
func (c *Client) MatchCandidate(ctx context.Context, jobSlug, cvName string) (*MatchResult, error) {
	body := map[string]string{"jobSlug": jobSlug, "cv": cvName}
	data, err := c.post(ctx, "match", "/match", body)
	if err != nil {
		return nil, err
	}
	if err := validate("match", matchResultSchema, data); err != nil {
		return nil, err
	}
	var out MatchResult
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &DecodeError{Operation: "match", Message: "invalid JSON", Cause: err}
	}
	out.Score = normalizeScore(out.Score)
	return &out, nil
}

// JobScores fetches all backend scores for a job. Upstream 404 is normalized
// to an empty result; a populated cache short-circuits the call and cache
// failures fall through to the backend.
func (c *Client) JobScores(ctx context.Context, jobSlug string) (*JobScores, error) {
	if c.cache != nil {
		if cached, ok := c.cache.GetScores(ctx, jobSlug); ok {
			return cached, nil
		}
	}

	data, err := c.get(ctx, "job-scores", "/jobs/"+jobSlug+"/scores")
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return &JobScores{JobSlug: jobSlug, Scores: []CandidateScore{}}, nil
		}
		return nil, err
	}

	if err := validate("job-scores", jobScoresSchema, data); err != nil {
		return nil, err
	}
	var out JobScores
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &DecodeError{Operation: "job-scores", Message: "invalid JSON", Cause: err}
	}
	out.JobSlug = jobSlug
	for i := range out.Scores {
		out.Scores[i].Score = normalizeScore(out.Scores[i].Score)
	}

	if c.cache != nil {
		if err := c.cache.SetScores(ctx, jobSlug, &out); err != nil {
			log.Printf("[scoring] cache write for %s failed: %v", jobSlug, err)
		}
	}
	return &out, nil
}

// normalizeScore converts to the canonical 0-10 scale. The backend has been
// observed to answer on both the 0-100 percent scale and the 0-10 rating
// scale; anything above 10 is treated as percent.
func normalizeScore(v float64) float64 {
	if v > 10 {
		return v / 10
	}
	return v
}

func (c *Client) post(ctx context.Context, op, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &RequestError{Operation: op, Cause: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &RequestError{Operation: op, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req)
}

func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &RequestError{Operation: op, Cause: err}
	}
	return c.do(op, req)
}

func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Operation: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Operation: op, Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Operation: op, StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// validate checks a response payload against its operation schema.
func validate(op, schema string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &DecodeError{Operation: op, Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return &DecodeError{Operation: op, Message: fmt.Sprintf("schema violation: %s", strings.Join(msgs, "; "))}
	}
	return nil
}
