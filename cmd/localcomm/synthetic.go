// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/localcomm/builder"
	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/config"
	"github.com/katalvlaran/localcomm/core"
	"github.com/katalvlaran/localcomm/detector"
	"github.com/katalvlaran/localcomm/metrics"
)

var (
	syntheticReportPath  string
	syntheticMetricsPath string
)

func init() {
	rootCmd.AddCommand(syntheticCmd)
	syntheticCmd.Flags().StringVar(&syntheticReportPath, "report", "", "Write the reference partition report to this file")
	syntheticCmd.Flags().StringVar(&syntheticMetricsPath, "metrics-file", "", "Write detection metrics in Prometheus text format to this file")
}

var syntheticCmd = &cobra.Command{
	Use:   "synthetic",
	Short: "Detect communities in a generated community mixture",
	Long: `Generate a graph with planted communities, take the first member of each
planted community as a seed, and run the configured detector from every seed.
For each seed the reference and detected memberships are printed together
with their overlap.`,
	Args: cobra.NoArgs,
	RunE: runSynthetic,
}

// SeedResult compares one detected community with the planted one.
type SeedResult struct {
	Seed      string
	Reference []string
	Detected  []string
	Overlap   int
}

// Precision is the share of detected members that are planted members.
func (r SeedResult) Precision() float64 {
	if len(r.Detected) == 0 {
		return 0
	}
	return float64(r.Overlap) / float64(len(r.Detected))
}

// Recall is the share of planted members that were detected.
func (r SeedResult) Recall() float64 {
	if len(r.Reference) == 0 {
		return 0
	}
	return float64(r.Overlap) / float64(len(r.Reference))
}

func runSynthetic(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	reg := metrics.NewRegistry()

	part, results, err := runExperiment(cmd.Context(), cfg, log, reg)
	if err != nil {
		return err
	}
	if err = printResults(cmd.OutOrStdout(), cfg.Algorithm, results); err != nil {
		return err
	}

	if syntheticReportPath != "" {
		if err = writeReport(syntheticReportPath, part); err != nil {
			return err
		}
		log.WithField("path", syntheticReportPath).Info("partition report written")
	}
	if syntheticMetricsPath != "" {
		if err = prometheus.WriteToTextfile(syntheticMetricsPath, reg.Prometheus()); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		log.WithField("path", syntheticMetricsPath).Info("metrics written")
	}

	return nil
}

// runExperiment generates the mixture described by cfg and detects the
// community of the first member of every planted community.
func runExperiment(ctx context.Context, cfg *config.Config, log *logrus.Entry, reg *metrics.Registry) (*community.Partition, []SeedResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	part, err := builder.CommunityMixture(cfg.Synthetic,
		[]core.GraphOption{core.WithMeasureCache()},
		builder.WithSeed(cfg.Seed),
		builder.WithLogger(log.WithField("component", "builder")),
	)
	if err != nil {
		return nil, nil, err
	}
	g := part.Graph()
	reg.RecordGraph(g)
	log.WithFields(logrus.Fields{
		"vertices":    g.VertexCount(),
		"edges":       g.EdgeCount(),
		"communities": part.Len(),
	}).Info("community mixture generated")

	d, err := cfg.Detector(log)
	if err != nil {
		return nil, nil, err
	}
	d = metrics.Instrument(d, reg)

	planted := part.Communities()
	seeds := make([]string, 0, len(planted))
	for _, c := range planted {
		seeds = append(seeds, c.Members()[0])
	}

	found, err := detector.DetectAll(ctx, d, g, seeds, cfg.Workers)
	if err != nil {
		return nil, nil, err
	}

	results := make([]SeedResult, len(seeds))
	for i, seed := range seeds {
		ref := planted[i]
		res := SeedResult{Seed: seed, Reference: ref.Members(), Detected: found[i].Members()}
		for _, v := range res.Detected {
			if ref.Contains(v) {
				res.Overlap++
			}
		}
		results[i] = res
	}

	return part, results, nil
}

func printResults(w io.Writer, algorithm string, results []SeedResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "Reference community for vertex %s: [%s]\n", r.Seed, strings.Join(r.Reference, ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Detected community for vertex %s (%s): [%s]\n", r.Seed, algorithm, strings.Join(r.Detected, ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Overlap: %d/%d precision=%.2f recall=%.2f\n\n", r.Overlap, len(r.Reference), r.Precision(), r.Recall()); err != nil {
			return err
		}
	}

	return nil
}

func writeReport(path string, part *community.Partition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err = part.WriteReport(f); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}

	return f.Close()
}
