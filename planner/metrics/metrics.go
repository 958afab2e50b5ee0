// Package metrics exposes scenario results as Prometheus gauges.
package metrics

import (
	"math"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/crewplan/crewplan/planner"
)

var scenarioLabels = []string{"network_type", "warehouses", "months"}

// Recorder owns a dedicated registry so exports never mix with process metrics.
type Recorder struct {
	registry *prometheus.Registry

	crews    *prometheus.GaugeVec
	total    *prometheus.GaugeVec
	cost     *prometheus.GaugeVec
	feasible *prometheus.GaugeVec
	runInfo  *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		crews: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "crewplan_scenario_crews", Help: "Crews required per scenario (+Inf when not achievable)."},
			scenarioLabels,
		),
		total: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "crewplan_scenario_total_cost", Help: "Total cost per feasible scenario."},
			scenarioLabels,
		),
		cost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "crewplan_scenario_cost", Help: "Cost per component per feasible scenario."},
			append(append([]string(nil), scenarioLabels...), "component"),
		),
		feasible: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "crewplan_scenario_feasible", Help: "1 if the scenario is achievable, else 0."},
			scenarioLabels,
		),
		runInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "crewplan_run_info", Help: "Identifies the run that produced the exported results."},
			[]string{"run_id"},
		),
	}
	r.registry.MustRegister(r.crews, r.total, r.cost, r.feasible, r.runInfo)
	return r
}

// SetRunID tags the export with a run identifier.
func (r *Recorder) SetRunID(id string) {
	r.runInfo.Reset()
	r.runInfo.WithLabelValues(id).Set(1)
}

// Observe records every result. Cost gauges are only set for feasible scenarios.
func (r *Recorder) Observe(results planner.ResultSet) {
	for _, res := range results {
		labels := []string{string(res.Network), strconv.Itoa(res.Warehouses), strconv.Itoa(res.Months)}
		if !res.Feasible {
			r.crews.WithLabelValues(labels...).Set(math.Inf(1))
			r.feasible.WithLabelValues(labels...).Set(0)
			continue
		}
		r.crews.WithLabelValues(labels...).Set(float64(res.Crews))
		r.feasible.WithLabelValues(labels...).Set(1)
		r.total.WithLabelValues(labels...).Set(float64(res.Total))

		components := map[string]planner.Money{
			"wages":    res.Wages,
			"vehicle":  res.VehicleCost,
			"lodging":  res.LodgingCost,
			"per_diem": res.PerDiemCost,
		}
		for name, v := range components {
			r.cost.WithLabelValues(append(labels, name)...).Set(float64(v))
		}
	}
}

// Gatherer returns the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics in the text exposition format, suitable
// for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
