package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crewplan/crewplan/planner"
	"github.com/crewplan/crewplan/planner/metrics"
	"github.com/crewplan/crewplan/planner/report"
)

var (
	matrixMonths      []int  // Horizons to compare
	matrixOutPath     string // Report destination (stdout if empty)
	matrixMetricsPath string // Optional Prometheus textfile
)

// matrixCmd runs the full comparison matrix and writes the report
var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Compare all network/warehouse scenarios across horizons and write a report",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("Failed to load configuration: %v", err)
		}

		runID := uuid.NewString()
		log := logrus.WithField("run_id", runID)

		out := io.Writer(os.Stdout)
		if matrixOutPath != "" {
			f, err := os.Create(matrixOutPath)
			if err != nil {
				logrus.Fatalf("Failed to create report file: %v", err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		if err := writeMatrix(out, cfg, matrixMonths, runID, matrixMetricsPath); err != nil {
			log.Fatalf("Matrix failed: %v", err)
		}
		if matrixOutPath != "" {
			log.Infof("Report written to %s", matrixOutPath)
		}
	},
}

// writeMatrix runs the matrix over base, writes the report to w and, when
// metricsPath is set, exports the results as a Prometheus textfile.
func writeMatrix(w io.Writer, base planner.Config, months []int, runID, metricsPath string) error {
	results, err := planner.RunMatrix(base, months)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, report.GenerateReport(results)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if metricsPath != "" {
		rec := metrics.NewRecorder()
		rec.SetRunID(runID)
		rec.Observe(results)
		if err := rec.WriteTextfile(metricsPath); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		logrus.WithFields(logrus.Fields{"run_id": runID, "path": metricsPath}).Info("Metrics written")
	}
	return nil
}

func init() {
	addScenarioFlags(matrixCmd)
	matrixCmd.Flags().IntSliceVar(&matrixMonths, "months", []int{2, 3, 4}, "Comma-separated planning horizons in months")
	matrixCmd.Flags().StringVar(&matrixOutPath, "out", "", "Write the report to this file instead of stdout")
	matrixCmd.Flags().StringVar(&matrixMetricsPath, "metrics-file", "", "Also export results in Prometheus textfile format")

	rootCmd.AddCommand(matrixCmd)
}
