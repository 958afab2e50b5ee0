package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crewplan/crewplan/planner"
)

// Environment variables consulted after the config file and before CLI flags.
const (
	envSeed     = "CREWPLAN_SEED"
	envLogLevel = "CREWPLAN_LOG"
)

// LoadConfigFile overlays the file at path onto cfg. Keys absent from the
// file keep their current value. The format follows the extension: .toml is
// TOML, anything else is YAML. Both decoders are strict, so a misspelled key
// is an error rather than a silently ignored setting.
func LoadConfigFile(path string, cfg *planner.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// Decoders may merge into an existing slice; start the centers empty and
	// restore them if the file does not set any.
	centers := cfg.RegionalCenters
	cfg.RegionalCenters = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(cfg)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		err = decoder.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil // empty file
		}
	}
	if cfg.RegionalCenters == nil {
		cfg.RegionalCenters = centers
	}
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays supported environment variables onto cfg.
func applyEnv(cfg *planner.Config) error {
	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}
	return nil
}

// Scenario flags shared by run and matrix.
var (
	numObjects int   // Number of objects to service
	seed       int64 // Object placement seed
	jitterKm   float64
)

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&numObjects, "objects", 1000, "Number of objects to service")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for object placement")
	cmd.Flags().Float64Var(&jitterKm, "jitter", 20, "Std dev (km) of object spread around a regional center")
}

// resolveConfig layers defaults, config file, environment and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (planner.Config, error) {
	cfg := planner.DefaultConfig()
	if configPath != "" {
		if err := LoadConfigFile(configPath, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("objects") {
		cfg.NumObjects = numObjects
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("jitter") {
		cfg.JitterStdDev = planner.Kilometers(jitterKm)
	}
	return cfg, nil
}
