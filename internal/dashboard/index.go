package dashboard

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/mariam-attia/dealscore/core"
	"github.com/mariam-attia/dealscore/schema"
	"go.uber.org/zap"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Deal Success Score</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
.score-block { color: #fff; border-radius: 8px; padding: 1.5rem 2rem; display: inline-block; text-align: center; }
.score-block .score { font-size: 3rem; font-weight: 700; }
table { margin-top: 1.5rem; border-collapse: collapse; }
td { padding: 0.25rem 1rem; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
<div class="score-block" style="background-color: {{.Result.Color}}">
<div>Success Score</div>
<div class="score">{{.Result.DisplayScore}}</div>
<div class="tier">{{.Result.Tier}}</div>
</div>
<table>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Value}} / {{$.Max}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type indexRow struct {
	Name  string
	Value int
}

type indexPage struct {
	Result schema.ScoreResult
	Rows   []indexRow
	Max    int
}

// handleIndex renders the score block for the query ratings.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ratings, err := ratingsFromQuery(s.cfg.Ratings, r.URL.Query())
	if err != nil {
		s.writeIndexError(w, err)
		return
	}
	ctx := core.WithSource(r.Context(), schema.HTTPSource)
	result, err := core.GetScoreResult(ctx, ratings, s.mgr)
	if err != nil {
		s.writeIndexError(w, err)
		return
	}
	s.renderIndex(w, result)
}

// writeIndexError answers the HTML page with plain text, using the same status mapping as the API.
func (s *Server) writeIndexError(w http.ResponseWriter, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) || schema.IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.logger.Error("index failed", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (s *Server) renderIndex(w http.ResponseWriter, result schema.ScoreResult) {
	page := indexPage{Result: result, Max: schema.MaxRating}
	for _, f := range schema.AllRatingFactors {
		page.Rows = append(page.Rows, indexRow{Name: schema.RatingFactorNames[f], Value: result.Ratings.Get(f)})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		s.logger.Error("failed to render index", zap.Error(err))
	}
}
