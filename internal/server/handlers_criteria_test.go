package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() CriteriaPayload {
	return CriteriaPayload{
		CategorizedSkills: map[string][]string{
			"Technical": {"SQL", "Excel"},
			"Languages": {"English"},
		},
		Weights: map[string]int{"Technical": 80, "English": 20},
	}
}

func TestPutAndGetCriteria(t *testing.T) {
	s := newTestServer(t, "")

	rec := doJSON(t, s, http.MethodPut, "/criteria/Data%20Analyst", validPayload())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/criteria/Data%20Analyst", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Data Analyst", body["jobTitle"])
}

func TestGetCriteriaNotFound(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodGet, "/criteria/Unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPutCriteriaBadSum(t *testing.T) {
	s := newTestServer(t, "")

	payload := validPayload()
	payload.Weights = map[string]int{"Technical": 70, "English": 20}
	rec := doJSON(t, s, http.MethodPut, "/criteria/Data%20Analyst", payload)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(90), body["sum"])
	assert.Equal(t, float64(10), body["delta"], "signed difference 100-sum")

	// The rejected save must not have been stored.
	rec = doJSON(t, s, http.MethodGet, "/criteria/Data%20Analyst", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPutCriteriaMissingFields(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodPut, "/criteria/Data%20Analyst", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCriteria(t *testing.T) {
	s := newTestServer(t, "")
	require.Equal(t, http.StatusOK, doJSON(t, s, http.MethodPut, "/criteria/X", validPayload()).Code)

	rec := doJSON(t, s, http.MethodDelete, "/criteria/X", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/criteria/X", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDistributeCriteria(t *testing.T) {
	s := newTestServer(t, "")

	req := DistributeRequest{CategorizedSkills: map[string][]string{
		"Technical":   {"SQL"},
		"Soft Skills": {"Communication"},
		"Languages":   {"English", "French"},
	}}
	rec := doJSON(t, s, http.MethodPost, "/criteria/Data%20Analyst/distribute", req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	weights := body["weights"].(map[string]any)
	sum := 0.0
	for _, v := range weights {
		sum += v.(float64)
	}
	assert.Equal(t, 100.0, sum)
	assert.Equal(t, 10.0, weights["English"])

	// Distribution is persisted.
	rec = doJSON(t, s, http.MethodGet, "/criteria/Data%20Analyst", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyzeGateBlocksBadSum(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("backend must not be called when the weight gate fails")
	}))
	defer upstream.Close()

	s := newTestServer(t, upstream.URL)

	// Seed the store directly with an invalid criteria, as if edited after a
	// valid save.
	payload := validPayload()
	require.Equal(t, http.StatusOK, doJSON(t, s, http.MethodPut, "/criteria/Data%20Analyst", payload).Code)
	c, err := s.store.Get(t.Context(), "Data Analyst")
	require.NoError(t, err)
	c.Weights["English"] = 5
	require.NoError(t, s.store.Put(t.Context(), c))

	rec := doJSON(t, s, http.MethodPost, "/criteria/Data%20Analyst/analyze", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, float64(15), decodeBody(t, rec)["delta"])
}

func TestAnalyzeProxiesBackend(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"started"}`))
	}))
	defer upstream.Close()

	s := newTestServer(t, upstream.URL)
	require.Equal(t, http.StatusOK, doJSON(t, s, http.MethodPut, "/criteria/Data%20Analyst", validPayload()).Code)

	rec := doJSON(t, s, http.MethodPost, "/criteria/Data%20Analyst/analyze", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "started", decodeBody(t, rec)["status"])
}

func TestAnalyzeUpstreamStatusPreserved(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusBadGateway)
	}))
	defer upstream.Close()

	s := newTestServer(t, upstream.URL)
	require.Equal(t, http.StatusOK, doJSON(t, s, http.MethodPut, "/criteria/Data%20Analyst", validPayload()).Code)

	rec := doJSON(t, s, http.MethodPost, "/criteria/Data%20Analyst/analyze", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAnalyzeWithoutCriteria(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer upstream.Close()

	s := newTestServer(t, upstream.URL)
	rec := doJSON(t, s, http.MethodPost, "/criteria/Nope/analyze", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
