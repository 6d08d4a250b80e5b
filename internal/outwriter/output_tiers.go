package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/schema"
	"github.com/olekukonko/tablewriter"
)

// WriteTierDefinitions outputs the tier table. It does not depend on any input ratings.
func WriteTierDefinitions(defs []schema.TierDefinition, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTierCSV(w, defs)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return unsupportedOutput(cfg.Output, "tier definitions")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTierTable(w, defs, cfg)
		}, "Wrote table")
	}
}

func writeTierTable(w io.Writer, defs []schema.TierDefinition, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Tier", "Key", "Score Range", "Color"})

	var data [][]string
	for _, d := range defs {
		data = append(data, []string{
			tierLabel(d.Tier, cfg),
			d.Key,
			d.RangeString(),
			string(d.Color),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Scores are the mean of %d ratings from %d to %d; a score on a boundary takes the higher tier.\n",
		len(schema.AllRatingFactors), schema.MinRating, schema.MaxRating)
	return err
}

func writeTierCSV(w io.Writer, defs []schema.TierDefinition) error {
	header := []string{"key", "tier", "min_score", "max_score", "color"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, d := range defs {
			maxScore := ""
			if d.MaxScore != nil {
				maxScore = fmt.Sprintf("%.1f", *d.MaxScore)
			}
			rec := []string{d.Key, string(d.Tier), fmt.Sprintf("%.1f", d.MinScore), maxScore, string(d.Color)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
