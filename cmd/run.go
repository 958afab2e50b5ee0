package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crewplan/crewplan/planner"
	"github.com/crewplan/crewplan/planner/report"
	"github.com/crewplan/crewplan/planner/trace"
)

var (
	runMonths     int    // Horizon in months
	runNetwork    string // Road network type
	runWarehouses int    // Active warehouses
	runExplain    bool   // Print the per-center breakdown
	runJSON       bool   // Emit the result as JSON
)

// runCmd evaluates a single scenario
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Estimate crews and cost for one scenario",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("Failed to load configuration: %v", err)
		}
		if cmd.Flags().Changed("network") {
			network, err := planner.ParseNetworkType(runNetwork)
			if err != nil {
				logrus.Fatalf("Invalid --network: %v", err)
			}
			cfg = cfg.WithNetwork(network)
		}
		if cmd.Flags().Changed("warehouses") {
			cfg = cfg.WithWarehouses(runWarehouses)
		}

		if err := writeScenario(os.Stdout, cfg, runMonths, runJSON, runExplain); err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}
	},
}

// writeScenario solves one scenario and writes it to w as text or JSON.
func writeScenario(w io.Writer, cfg planner.Config, months int, asJSON, explain bool) error {
	result, err := planner.SolveScenario(cfg, months)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(w, "Scenario: %s roads, %d warehouse(s), %d objects\n", cfg.Network.Title(), cfg.Warehouses, cfg.NumObjects)
	fmt.Fprintf(w, "  %s\n", report.FormatLine(result))
	fmt.Fprintf(w, "  avg distance:    %.1f km\n", float64(result.AvgDistance))
	fmt.Fprintf(w, "  objects per day: %d per crew\n", result.ObjectsPerDay)
	if result.Feasible {
		fmt.Fprintf(w, "  wages:           %.2f\n", float64(result.Wages))
		fmt.Fprintf(w, "  vehicles:        %.2f\n", float64(result.VehicleCost))
		fmt.Fprintf(w, "  lodging:         %.2f\n", float64(result.LodgingCost))
		fmt.Fprintf(w, "  per diem:        %.2f\n", float64(result.PerDiemCost))
		fmt.Fprintf(w, "  total:           %.2f\n", float64(result.Total))
	}

	if explain {
		layout := planner.BuildLayout(cfg)
		summary := trace.Summarize(layout.Points, layout.Assignment, cfg)
		fmt.Fprintf(w, "\nAssignment (%d objects, %d empty centers):\n", summary.TotalObjects, summary.EmptyCenters)
		for _, c := range summary.Centers {
			marker := ""
			if c.Index == summary.BusiestCenter {
				marker = " *"
			}
			fmt.Fprintf(w, "  center %d (%.0f, %.0f): %d objects, mean %.1f km, max %.1f km%s\n",
				c.Index, float64(c.Center.X), float64(c.Center.Y), c.Objects,
				float64(c.MeanDistance), float64(c.MaxDistance), marker)
		}
	}
	return nil
}

func init() {
	addScenarioFlags(runCmd)
	runCmd.Flags().IntVar(&runMonths, "months", 2, "Planning horizon in months")
	runCmd.Flags().StringVar(&runNetwork, "network", string(planner.NetworkDirect), "Road network: direct (star) or networked (spider)")
	runCmd.Flags().IntVar(&runWarehouses, "warehouses", 1, "Number of active warehouses")
	runCmd.Flags().BoolVar(&runExplain, "explain", false, "Print the per-center assignment breakdown")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(runCmd)
}
