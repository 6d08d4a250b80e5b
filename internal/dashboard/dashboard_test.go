package dashboard

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/history"
	"github.com/mariam-attia/dealscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T, mgr contract.StoreManager) *Server {
	t.Helper()
	cfg := &contract.Config{
		Ratings: schema.DefaultRatings(),
		Weight:  schema.DefaultWeight,
		Factors: schema.DefaultSuccessFactors(),
		Addr:    "127.0.0.1:0",
	}
	return New(cfg, mgr, zaptest.NewLogger(t))
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestRatings(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/api/v1/ratings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]ratingInfo](t, rec)
	require.Len(t, got, 6)
	assert.Equal(t, schema.CulturalFit, got[0].Key)
	assert.Equal(t, "Cultural Fit", got[0].Name)
	assert.Equal(t, 8, got[0].Default)
	assert.Equal(t, 7, got[4].Default)
	assert.Equal(t, 10, got[5].Max)
}

func TestScoreQuery(t *testing.T) {
	store := &history.MockHistoryStore{}
	store.On("RecordEvaluation", mock.Anything, schema.HTTPSource, mock.Anything).Return("eval-1", nil)
	mgr := &history.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(store)
	s := newTestServer(t, mgr)

	t.Run("defaults", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/score", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[schema.ScoreResult](t, rec)
		assert.Equal(t, "8.2", got.DisplayScore)
		assert.Equal(t, schema.HighlyLikelyTier, got.Tier)
	})

	t.Run("overrides with either key style", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/score?cultural_fit=6&leadership-retention=6&strategic_alignment=7&financial_structure=7&operational_synergies=6&stakeholder_buy_in=8", "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[schema.ScoreResult](t, rec)
		assert.Equal(t, "6.7", got.DisplayScore)
		assert.Equal(t, schema.ModerateTier, got.Tier)
		assert.Equal(t, schema.OrangeColor, got.Color)
	})

	t.Run("out of range", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/score?cultural_fit=11", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[map[string]string](t, rec)["error"], "cultural-fit")
	})

	t.Run("not an integer", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/score?cultural_fit=high", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	store.AssertNumberOfCalls(t, "RecordEvaluation", 2)
}

func TestRatingsFromQuery(t *testing.T) {
	base := schema.DefaultRatings()

	t.Run("underscore spelling wins over dash", func(t *testing.T) {
		q := url.Values{}
		q.Set("cultural-fit", "9")
		q.Set("cultural_fit", "3")
		for range 20 {
			got, err := ratingsFromQuery(base, q)
			require.NoError(t, err)
			assert.Equal(t, 3, got.Get(schema.CulturalFit))
		}
	})

	t.Run("dash spelling alone", func(t *testing.T) {
		got, err := ratingsFromQuery(base, url.Values{"stakeholder-buy-in": {"4"}})
		require.NoError(t, err)
		assert.Equal(t, 4, got.Get(schema.StakeholderBuyIn))
		assert.Equal(t, base.Get(schema.CulturalFit), got.Get(schema.CulturalFit))
	})

	t.Run("bad underscore value is reported even with a valid dash value", func(t *testing.T) {
		q := url.Values{"cultural_fit": {"high"}, "cultural-fit": {"5"}}
		_, err := ratingsFromQuery(base, q)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"high"`)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		got, err := ratingsFromQuery(base, url.Values{"synergy": {"1"}})
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})
}

func TestScoreBody(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, http.MethodPost, "/api/v1/score", `{"ratings":{"cultural_fit":5,"leadership_retention":5,"strategic_alignment":5,"financial_structure":5,"operational_synergies":5,"stakeholder_buy_in":5}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[schema.ScoreResult](t, rec)
	assert.Equal(t, "5.0", got.DisplayScore)
	assert.Equal(t, schema.HighRiskTier, got.Tier)

	// Missing fields keep the configured ratings.
	rec = do(t, s, http.MethodPost, "/api/v1/score", `{"ratings":{"operational_synergies":9}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[schema.ScoreResult](t, rec)
	assert.Equal(t, 9, got.Ratings.OperationalSynergies)
	assert.Equal(t, 8, got.Ratings.CulturalFit)

	rec = do(t, s, http.MethodPost, "/api/v1/score", `{"ratings":{"cultural_fit":0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/score", `{"rating":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/score", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFactorsQuery(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/api/v1/factors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[schema.FactorAnalysis](t, rec)
	assert.Equal(t, "Success Factor Analysis (Weight: 0.5 Impact, 0.5 Sustainability)", got.Title)
	require.Len(t, got.Factors, 6)
	assert.InDelta(t, 88.5, got.Factors[0].WeightedScore, 1e-9)

	rec = do(t, s, http.MethodGet, "/api/v1/factors?weight=0.5&sort=true&limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[schema.FactorAnalysis](t, rec)
	require.Len(t, got.Factors, 2)
	assert.Equal(t, "Financial Structure", got.Factors[0].Name)
	assert.Equal(t, "Market Synergies", got.Factors[1].Name)

	for _, q := range []string{"weight=1.5", "weight=abc", "weight=NaN", "limit=-1", "sort=maybe"} {
		rec = do(t, s, http.MethodGet, "/api/v1/factors?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestFactorsBody(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, http.MethodPost, "/api/v1/factors", `{"weight":0.7,"factors":[{"name":"Leadership Continuity","impact_score":88,"sustainability_score":70}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[schema.FactorAnalysis](t, rec)
	require.Len(t, got.Factors, 1)
	assert.InDelta(t, 82.6, got.Factors[0].WeightedScore, 1e-9)

	// Omitted weight and factors fall back to the configuration.
	rec = do(t, s, http.MethodPost, "/api/v1/factors", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[schema.FactorAnalysis](t, rec)
	assert.InDelta(t, 0.5, got.Weight, 1e-9)
	assert.Len(t, got.Factors, 6)

	// An explicit zero weight is honored.
	rec = do(t, s, http.MethodPost, "/api/v1/factors", `{"weight":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[schema.FactorAnalysis](t, rec)
	assert.InDelta(t, 85.0, got.Factors[0].WeightedScore, 1e-9)

	rec = do(t, s, http.MethodPost, "/api/v1/factors", `{"factors":[{"name":"X","impact_score":120,"sustainability_score":10}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/factors", `{"factors":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTiers(t *testing.T) {
	rec := do(t, newTestServer(t, nil), http.MethodGet, "/api/v1/tiers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]schema.TierDefinition](t, rec)
	require.Len(t, got, 3)
	assert.Equal(t, "moderate", got[1].Key)
	require.NotNil(t, got[1].MaxScore)
	assert.InDelta(t, 8.0, *got[1].MaxScore, 1e-9)
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/?cultural_fit=5&leadership_retention=5&strategic_alignment=5&financial_structure=5&operational_synergies=5&stakeholder_buy_in=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "background-color: red")
	assert.Contains(t, body, ">5.0<")
	assert.Contains(t, body, "High Risk of Failure")

	rec = do(t, s, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "background-color: green")
	assert.Contains(t, rec.Body.String(), ">8.2<")

	rec = do(t, s, http.MethodGet, "/?stakeholder_buy_in=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, nil)
	s.cfg.CORSOrigins = []string{"https://deals.example.com"}

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/score", nil)
	req.Header.Set("Origin", "https://deals.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	assert.Equal(t, "https://deals.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServe_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newTestServer(t, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, ln) }()

	transport := &http.Transport{}
	client := &http.Client{Transport: transport, Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	transport.CloseIdleConnections()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestListenAndServe_BadAddr(t *testing.T) {
	s := newTestServer(t, nil)
	s.cfg.Addr = "not-an-address"
	err := s.ListenAndServe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
