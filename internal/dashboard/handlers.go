package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mariam-attia/dealscore/core"
	"github.com/mariam-attia/dealscore/schema"
	"go.uber.org/zap"
)

// requestError marks malformed input that never reached the calculator.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

// ratingInfo describes one rated factor for clients building a form.
type ratingInfo struct {
	Key     schema.RatingFactor `json:"key"`
	Name    string              `json:"name"`
	Min     int                 `json:"min"`
	Max     int                 `json:"max"`
	Default int                 `json:"default"`
}

type scoreRequest struct {
	Ratings schema.Ratings `json:"ratings"`
}

type factorsRequest struct {
	Weight  *float64               `json:"weight"`
	Factors []schema.SuccessFactor `json:"factors"`
	Sort    bool                   `json:"sort"`
	Limit   int                    `json:"limit"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRatings(w http.ResponseWriter, _ *http.Request) {
	out := make([]ratingInfo, 0, len(schema.AllRatingFactors))
	for _, f := range schema.AllRatingFactors {
		out = append(out, ratingInfo{
			Key:     f,
			Name:    schema.RatingFactorNames[f],
			Min:     schema.MinRating,
			Max:     schema.MaxRating,
			Default: s.cfg.Ratings.Get(f),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScoreQuery(w http.ResponseWriter, r *http.Request) {
	ratings, err := ratingsFromQuery(s.cfg.Ratings, r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeScore(w, r, ratings)
}

func (s *Server) handleScoreBody(w http.ResponseWriter, r *http.Request) {
	// Fields missing from the body keep the configured ratings
	req := scoreRequest{Ratings: s.cfg.Ratings}
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeScore(w, r, req.Ratings)
}

func (s *Server) writeScore(w http.ResponseWriter, r *http.Request, ratings schema.Ratings) {
	ctx := core.WithSource(r.Context(), schema.HTTPSource)
	result, err := core.GetScoreResult(ctx, ratings, s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleFactorsQuery(w http.ResponseWriter, r *http.Request) {
	req, err := s.factorRequestFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeFactors(w, r, req)
}

func (s *Server) handleFactorsBody(w http.ResponseWriter, r *http.Request) {
	var body factorsRequest
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	req := schema.FactorRequest{
		Factors: body.Factors,
		Weight:  s.cfg.Weight,
		Sort:    body.Sort,
		Limit:   body.Limit,
	}
	if body.Weight != nil {
		req.Weight = *body.Weight
	}
	if body.Factors == nil {
		req.Factors = s.cfg.Factors
	}
	s.writeFactors(w, r, req)
}

func (s *Server) writeFactors(w http.ResponseWriter, r *http.Request, req schema.FactorRequest) {
	ctx := core.WithSource(r.Context(), schema.HTTPSource)
	analysis, err := core.GetFactorAnalysis(ctx, req, s.mgr)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleTiers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schema.TierDefinitions())
}

// ratingsFromQuery overrides base with any rating keys present in q.
// Keys may use underscores or dashes; when both are sent the underscore
// spelling wins. Unknown keys are ignored.
func ratingsFromQuery(base schema.Ratings, q url.Values) (schema.Ratings, error) {
	ratings := base
	for _, f := range schema.AllRatingFactors {
		raw, ok := queryValue(q, strings.ReplaceAll(string(f), "-", "_"), string(f))
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return ratings, badRequest("%s must be an integer (received %q)", f, raw)
		}
		ratings.Set(f, v)
	}
	return ratings, nil
}

// queryValue returns the first value of the first key present in q.
func queryValue(q url.Values, keys ...string) (string, bool) {
	for _, key := range keys {
		if values, ok := q[key]; ok && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

// factorRequestFromQuery reads weight, sort and limit. The factor table is the configured one.
func (s *Server) factorRequestFromQuery(q url.Values) (schema.FactorRequest, error) {
	req := schema.FactorRequest{
		Factors: s.cfg.Factors,
		Weight:  s.cfg.Weight,
		Sort:    s.cfg.SortFactors,
		Limit:   s.cfg.ResultLimit,
	}
	if v := q.Get("weight"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, badRequest("weight must be a number (received %q)", v)
		}
		req.Weight = weight
	}
	if v := q.Get("sort"); v != "" {
		sorted, err := strconv.ParseBool(v)
		if err != nil {
			return req, badRequest("sort must be a boolean (received %q)", v)
		}
		req.Sort = sorted
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return req, badRequest("limit must be an integer (received %q)", v)
		}
		req.Limit = limit
	}
	return req, nil
}

// decodeBody decodes a bounded JSON body and rejects unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	return nil
}

// writeError maps caller mistakes to 400 and everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) || schema.IsValidationError(err) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
