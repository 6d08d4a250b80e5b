// Package main times the dealscore CLI end to end. Every command runs several
// times without history and then with a throwaway SQLite history, and the
// averages are written to a CSV file for comparison across releases.
//
// Prerequisites:
// - dealscore binary installed and available in PATH
//
// Usage: go run benchmark/main.go [runs]
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// BenchmarkResult holds the averages for one command.
type BenchmarkResult struct {
	Command       string
	NoHistoryTime string
	SQLiteTime    string
}

// BenchmarkCase is one CLI invocation to time.
type BenchmarkCase struct {
	Name string
	Args []string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout time.Duration
	Runs    int
	Cases   []BenchmarkCase
}

func main() {
	runs := 5
	if len(os.Args) == 2 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Printf("Usage: %s [runs]\n", os.Args[0])
			os.Exit(1)
		}
		runs = n
	}

	config := BenchmarkConfig{
		Timeout: 30 * time.Second,
		Runs:    runs,
		Cases: []BenchmarkCase{
			{Name: "score", Args: []string{"score", "8", "9", "9", "8", "7", "8", "--output", "json"}},
			{Name: "factors", Args: []string{"factors", "--weight", "0.7", "--sort", "--output", "json"}},
			{Name: "check", Args: []string{"check", "8", "9", "9", "8", "7", "8", "--output", "json"}},
			{Name: "tiers", Args: []string{"tiers", "--output", "json"}},
		},
	}

	if _, err := exec.LookPath("dealscore"); err != nil {
		fmt.Println("Prerequisites check failed: dealscore binary not found in PATH")
		os.Exit(1)
	}

	dbDir, err := os.MkdirTemp("", "dealscore-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(dbDir) }()

	results := runBenchmarks(config, filepath.Join(dbDir, "history.db"))

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks times every case with and without history.
func runBenchmarks(config BenchmarkConfig, dbPath string) []BenchmarkResult {
	fmt.Printf("Starting benchmark: %d commands, %d runs each, %v timeout\n", len(config.Cases), config.Runs, config.Timeout)

	var results []BenchmarkResult
	for _, c := range config.Cases {
		fmt.Printf("Benchmarking %s\n", c.Name)
		noHistory := averageTime(config, c.Args, []string{"DEALSCORE_HISTORY_BACKEND=none"})
		withSQLite := averageTime(config, c.Args, []string{
			"DEALSCORE_HISTORY_BACKEND=sqlite",
			"DEALSCORE_HISTORY_DB_CONNECT=" + dbPath,
		})
		fmt.Printf("  No history: %s, SQLite: %s\n", noHistory, withSQLite)
		results = append(results, BenchmarkResult{
			Command:       c.Name,
			NoHistoryTime: noHistory,
			SQLiteTime:    withSQLite,
		})
	}
	return results
}

// averageTime runs the command config.Runs times and formats the mean of the successful runs.
func averageTime(config BenchmarkConfig, args, env []string) string {
	var sum float64
	var ok int
	for range config.Runs {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		cmd := exec.CommandContext(ctx, "dealscore", args...)
		cmd.Env = append(os.Environ(), env...)

		start := time.Now()
		err := cmd.Run()
		elapsed := time.Since(start).Seconds()
		cancel()

		if err == nil {
			sum += elapsed
			ok++
		}
	}
	if ok == 0 {
		return "FAILED"
	}
	return fmt.Sprintf("%.3fs", sum/float64(ok))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("dealscore_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"cmd", "no_history_avg", "sqlite_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Command, result.NoHistoryTime, result.SQLiteTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-8s: No history: %s, SQLite: %s\n", result.Command, result.NoHistoryTime, result.SQLiteTime)
	}
}
