package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/parquet"
	"github.com/mariam-attia/dealscore/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteScoreResult outputs a success score, dispatching based on the output format configured.
func WriteScoreResult(result schema.ScoreResult, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreCSV(w, result, fmtFloat, cfg.UseEmojis)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreParquet(w, result)
		}, "Wrote Parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreText(w, result, cfg, fmtFloat)
		}, "Wrote text")
	}
}

// writeScoreText prints the score card followed by the ratings behind it.
func writeScoreText(w io.Writer, result schema.ScoreResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	card := renderScoreCard(result, tierLabel(result.Tier, cfg), cfg.UseColors)
	if _, err := fmt.Fprintln(w, card); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Rating"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, f := range schema.AllRatingFactors {
		data = append(data, []string{
			schema.RatingFactorNames[f],
			fmt.Sprintf("%d / %d", result.Ratings.Get(f), schema.MaxRating),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Mean rating: %s (shown as %s)\n", fmtFloat(result.Score), result.DisplayScore)
	return err
}

// scoreCSVHeader lists the rating columns followed by the result columns.
func scoreCSVHeader() []string {
	header := make([]string, 0, len(schema.AllRatingFactors)+4)
	for _, f := range schema.AllRatingFactors {
		header = append(header, string(f))
	}
	return append(header, "mean_score", "display_score", "tier", "color")
}

// writeScoreCSV writes the score as a single CSV row.
func writeScoreCSV(w io.Writer, result schema.ScoreResult, fmtFloat func(float64) string, useEmojis bool) error {
	return writeCSVWithHeader(w, scoreCSVHeader(), func(cw *csv.Writer) error {
		rec := make([]string, 0, len(schema.AllRatingFactors)+4)
		for _, v := range result.Ratings.Values() {
			rec = append(rec, strconv.Itoa(v))
		}
		rec = append(rec,
			fmtFloat(result.Score),
			result.DisplayScore,
			contract.GetPlainLabel(result.Tier, useEmojis),
			string(result.Color),
		)
		return cw.Write(rec)
	})
}

// writeScoreParquet writes the score as a single evaluation row.
func writeScoreParquet(w io.Writer, result schema.ScoreResult) error {
	rows := parquet.ConvertEvaluationRecords([]schema.EvaluationRecord{{
		EvaluatedAt:  time.Now().UTC(),
		Source:       schema.CLISource,
		Ratings:      result.Ratings,
		MeanScore:    result.Score,
		DisplayScore: result.DisplayScore,
		Tier:         result.Tier,
	}})
	return parquet.WriteRows(w, rows)
}
