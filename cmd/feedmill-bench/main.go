// Command feedmill-bench is a thin illustrative driver: it runs the
// full normalize -> PMI -> word-extraction pipeline over a single
// input file and prints a summary of each stage's throughput. It is
// not a CLI front-end; argument parsing is deliberately minimal.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/libraz/suzume-feedmill/linefilter"
	"github.com/libraz/suzume-feedmill/lineio"
	"github.com/libraz/suzume-feedmill/logging"
	"github.com/libraz/suzume-feedmill/normalizer"
	"github.com/libraz/suzume-feedmill/pmi"
	"github.com/libraz/suzume-feedmill/progress"
	"github.com/libraz/suzume-feedmill/wordextract"
)

const expectedArgs = 2

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <corpus.txt>\n", os.Args[0])
		os.Exit(1)
	}

	logger := newFileLogger()
	defer logger.Sync() //nolint:errcheck

	inputPath := os.Args[1]
	ctx := context.Background()

	lines, err := lineio.ReadAllLines(inputPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", inputPath, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Read %d lines from %s\n", len(lines), inputPath)

	start := time.Now()

	tracker := progress.NewTracker(progress.ReporterFunc(func(e progress.Event) {
		fmt.Fprintf(os.Stderr, "[%s] %5.1f%%\n", e.Phase, e.OverallRatio*100)
	}))

	normResult, err := normalizer.Run(ctx, lines, normalizer.Options{
		LineFilter: linefilter.Options{MinLength: 2, MaxLength: 1000},
	}, tracker, logging.FromZap(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "normalize: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Normalize: %d -> %d unique lines (%d duplicates) in %.1fms (%.2f MB/s)\n",
		normResult.Stats.Rows, normResult.Stats.Uniques, normResult.Stats.Duplicates,
		normResult.Stats.ElapsedMs, normResult.Stats.MBPerSec)

	pmiResult, err := pmi.Calculate(ctx, normResult.Lines, pmi.Options{N: 2, TopK: 1000, Verbose: true}, tracker, logging.FromZap(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "pmi: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "PMI: scored %d bigrams in %.1fms (%.2f MB/s)\n", pmiResult.Rows, pmiResult.ElapsedMs, pmiResult.MBPerSec)

	var buf bytes.Buffer
	for _, line := range normResult.Lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	pmiFile, err := os.CreateTemp("", "feedmill-pmi-*.tsv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create pmi results file: %v\n", err)
		os.Exit(1)
	}
	pmiPath := pmiFile.Name()
	defer os.Remove(pmiPath)

	if err := pmi.WriteTSV(pmiFile, pmiResult.Scores); err != nil {
		pmiFile.Close()
		fmt.Fprintf(os.Stderr, "write pmi results: %v\n", err)
		os.Exit(1)
	}
	if err := pmiFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close pmi results file: %v\n", err)
		os.Exit(1)
	}

	extractResult, err := wordextract.RunFromFile(ctx, pmiPath, buf.String(), wordextract.DefaultOptions(), tracker, logging.FromZap(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordextract: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Extracted %d candidate words in %s:\n", len(extractResult.Candidates), time.Since(start).Round(time.Millisecond))
	limit := min(20, len(extractResult.Candidates))
	for _, c := range extractResult.Candidates[:limit] {
		fmt.Printf("  %-20s score=%.3f freq=%d\n", c.Text, c.Score, c.Frequency)
	}
}

// newFileLogger wires zap to a rotating file sink via lumberjack, the
// only place in the repo that commits to a concrete logging
// destination.
func newFileLogger() *zap.Logger {
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   "feedmill-bench.log",
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     28,
	})

	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zap.InfoLevel)
	return zap.New(core)
}
