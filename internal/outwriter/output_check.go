package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/schema"
)

// WriteCheckResult outputs a gate result in a concise format suitable for CI/CD.
func WriteCheckResult(result schema.CheckResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckCSV(w, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return unsupportedOutput(cfg.Output, "check results")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckText(w, result, cfg)
		}, "Wrote text")
	}
}

// writeCheckText prints aligned label/value pairs and a verdict line.
func writeCheckText(w io.Writer, result schema.CheckResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, "Success Check Results:"); err != nil {
		return err
	}

	labels := []string{"Score:", "Tier:", "Fail below:"}
	values := []string{result.DisplayScore, tierLabel(result.Tier, cfg), string(result.FailBelow)}

	maxLabelLen := 0
	for _, label := range labels {
		maxLabelLen = max(maxLabelLen, len(label))
	}
	for i, label := range labels {
		if _, err := fmt.Fprintf(w, "  %-*s %s\n", maxLabelLen+1, label, values[i]); err != nil {
			return err
		}
	}

	var err error
	if result.Passed {
		_, err = fmt.Fprintln(w, "✅ Check passed")
	} else {
		_, err = fmt.Fprintf(w, "❌ Check failed: %s ranks below %s\n", result.Tier, result.FailBelow)
	}
	return err
}

func writeCheckCSV(w io.Writer, result schema.CheckResult) error {
	header := []string{"display_score", "tier", "fail_below", "passed"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			result.DisplayScore,
			string(result.Tier),
			string(result.FailBelow),
			strconv.FormatBool(result.Passed),
		})
	})
}
