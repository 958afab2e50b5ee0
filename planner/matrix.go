package planner

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Fixed axes of the comparison matrix.
var (
	MatrixNetworks   = []NetworkType{NetworkDirect, NetworkNetworked}
	MatrixWarehouses = []int{1, 4}
)

// RunFullMatrix evaluates the comparison matrix over DefaultConfig.
func RunFullMatrix(monthsOptions []int) (ResultSet, error) {
	return RunMatrix(DefaultConfig(), monthsOptions)
}

// RunMatrix evaluates every (network, warehouses, months) combination on top
// of base. Results are ordered network-major, then warehouses, then months in
// the order given, regardless of the order in which scenarios finish.
//
// Scenarios share nothing but the read-only base config, so they run
// concurrently.
func RunMatrix(base Config, monthsOptions []int) (ResultSet, error) {
	if len(monthsOptions) == 0 {
		return nil, errors.New("run matrix: at least one months option required")
	}

	type job struct {
		cfg    Config
		months int
	}
	jobs := make([]job, 0, len(MatrixNetworks)*len(MatrixWarehouses)*len(monthsOptions))
	for _, network := range MatrixNetworks {
		for _, wh := range MatrixWarehouses {
			cfg := base.Clone().WithNetwork(network).WithWarehouses(wh)
			for _, months := range monthsOptions {
				jobs = append(jobs, job{cfg: cfg, months: months})
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"scenarios": len(jobs),
		"months":    monthsOptions,
		"objects":   base.NumObjects,
	}).Info("running scenario matrix")

	results := make(ResultSet, len(jobs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			r, err := SolveScenario(j.cfg, j.months)
			if err != nil {
				return fmt.Errorf("run matrix: %s/%dwh/%dm: %w", j.cfg.Network, j.cfg.Warehouses, j.months, err)
			}
			// Each goroutine owns exactly one slot.
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logrus.WithField("scenarios", len(results)).Info("scenario matrix complete")
	return results, nil
}
