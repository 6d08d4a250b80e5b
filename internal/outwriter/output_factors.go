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

// WriteFactorAnalysis outputs a weighted factor table, dispatching based on the output format configured.
func WriteFactorAnalysis(analysis schema.FactorAnalysis, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, analysis)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFactorCSV(w, analysis, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteRows(w, parquet.ConvertFactorAnalysis(analysis, "", time.Now().UTC()))
		}, "Wrote Parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFactorTable(w, analysis, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeFactorTable generates and writes the human-readable table.
func writeFactorTable(w io.Writer, analysis schema.FactorAnalysis, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintln(w, analysis.Title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Factor", "Impact", "Sustainability", "Weighted"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, f := range schema.RankFactorRows(analysis.Factors) {
		data = append(data, []string{
			strconv.Itoa(f.Rank),
			contract.TruncateText(f.Name, nameWidth),
			fmtFloat(f.Impact),
			fmtFloat(f.Sustainability),
			fmtFloat(f.WeightedScore),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d factors\n", len(analysis.Factors))
	return err
}

// writeFactorCSV writes one CSV row per weighted factor.
func writeFactorCSV(w io.Writer, analysis schema.FactorAnalysis, fmtFloat func(float64) string) error {
	header := []string{"rank", "factor", "impact_score", "sustainability_score", "weight", "weighted_score"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, f := range schema.RankFactorRows(analysis.Factors) {
			rec := []string{
				strconv.Itoa(f.Rank),
				f.Name,
				fmtFloat(f.Impact),
				fmtFloat(f.Sustainability),
				strconv.FormatFloat(analysis.Weight, 'f', -1, 64),
				fmtFloat(f.WeightedScore),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
