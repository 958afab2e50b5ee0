package planner

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// NetworkType describes the regional road network.
type NetworkType string

const (
	// NetworkDirect is a hub-and-spoke ("star") network: roads radiate through a hub.
	NetworkDirect NetworkType = "direct"
	// NetworkNetworked is a mesh ("spider") network: roads interconnect directly.
	NetworkNetworked NetworkType = "networked"
)

// legacyNetworkNames maps the historical names still found in older config files.
var legacyNetworkNames = map[string]NetworkType{
	"star":   NetworkDirect,
	"spider": NetworkNetworked,
}

// ParseNetworkType resolves a network name, case-insensitively.
// Accepts "direct", "networked" and the legacy aliases "star" and "spider".
func ParseNetworkType(s string) (NetworkType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch NetworkType(name) {
	case NetworkDirect, NetworkNetworked:
		return NetworkType(name), nil
	}
	if nt, ok := legacyNetworkNames[name]; ok {
		return nt, nil
	}
	return "", fmt.Errorf("unknown network type %q; valid: direct, networked", s)
}

// IsValid reports whether n is one of the known network types.
func (n NetworkType) IsValid() bool {
	return n == NetworkDirect || n == NetworkNetworked
}

// Title returns a capitalized display name.
func (n NetworkType) Title() string {
	switch n {
	case NetworkDirect:
		return "Direct"
	case NetworkNetworked:
		return "Networked"
	}
	return string(n)
}

// MarshalText implements encoding.TextMarshaler.
func (n NetworkType) MarshalText() ([]byte, error) {
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config files may use legacy names.
func (n *NetworkType) UnmarshalText(text []byte) error {
	nt, err := ParseNetworkType(string(text))
	if err != nil {
		return err
	}
	*n = nt
	return nil
}

// Point is a location on the planning plane, in kilometres.
type Point struct {
	X Kilometers `yaml:"x" toml:"x" json:"x"`
	Y Kilometers `yaml:"y" toml:"y" json:"y"`
}

// Config holds every input of a scenario. It is a value type: the With*
// helpers return modified copies and never touch the receiver.
type Config struct {
	NumObjects      int         `yaml:"num_objects" toml:"num_objects"`           // objects to service (0 = nothing to do)
	RegionalCenters []Point     `yaml:"regional_centers" toml:"regional_centers"` // first entry is the single-warehouse depot
	Network         NetworkType `yaml:"network_type" toml:"network_type"`
	Warehouses      int         `yaml:"warehouses" toml:"warehouses"` // 1, or up to len(RegionalCenters)
	WorkingHours    Hours       `yaml:"working_hours" toml:"working_hours"`
	ReplaceMinutes  Minutes     `yaml:"replace_minutes" toml:"replace_minutes"` // on-site time per object
	CarCapacity     int         `yaml:"car_capacity" toml:"car_capacity"`       // max objects per trip
	SpeedKmh        KmPerHour   `yaml:"speed_kmh" toml:"speed_kmh"`

	CarCostPerDay  Money `yaml:"car_cost_per_day" toml:"car_cost_per_day"`
	EngineerSalary Money `yaml:"engineer_salary" toml:"engineer_salary"` // per month
	DriverSalary   Money `yaml:"driver_salary" toml:"driver_salary"`     // per month
	HotelCost      Money `yaml:"hotel_cost" toml:"hotel_cost"`           // per crew per day, may be 0
	AllowanceCost  Money `yaml:"allowance_cost" toml:"allowance_cost"`   // per crew per day, may be 0

	Seed         int64      `yaml:"seed" toml:"seed"`                     // object placement seed
	JitterStdDev Kilometers `yaml:"jitter_std_dev" toml:"jitter_std_dev"` // Gaussian spread around a center
}

// DefaultConfig returns the reference configuration: 1000 objects around the
// four corners of a 100×100 km square, one warehouse, direct roads.
func DefaultConfig() Config {
	return Config{
		NumObjects: 1000,
		RegionalCenters: []Point{
			{X: 0, Y: 0},
			{X: 100, Y: 0},
			{X: 0, Y: 100},
			{X: 100, Y: 100},
		},
		Network:        NetworkDirect,
		Warehouses:     1,
		WorkingHours:   10,
		ReplaceMinutes: 70,
		CarCapacity:    16,
		SpeedKmh:       50,
		CarCostPerDay:  8000,
		EngineerSalary: 80000,
		DriverSalary:   65000,
		HotelCost:      2000,
		AllowanceCost:  1000,
		Seed:           0,
		JitterStdDev:   20,
	}
}

// WithNetwork returns a copy of c using network n.
func (c Config) WithNetwork(n NetworkType) Config {
	c.Network = n
	return c
}

// WithWarehouses returns a copy of c with w active warehouses.
func (c Config) WithWarehouses(w int) Config {
	c.Warehouses = w
	return c
}

// WithNumObjects returns a copy of c servicing n objects.
func (c Config) WithNumObjects(n int) Config {
	c.NumObjects = n
	return c
}

// Clone returns a deep copy; the center slice is not shared.
func (c Config) Clone() Config {
	c.RegionalCenters = append([]Point(nil), c.RegionalCenters...)
	return c
}

// ValidationError describes one invalid Config field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks every field and reports all problems at once.
// NumObjects may be 0 (an empty region costs nothing); hotel and allowance
// rates may be 0; everything else must be positive and finite.
func (c Config) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if c.NumObjects < 0 {
		fail("num_objects", "must be >= 0, got %d", c.NumObjects)
	}
	if len(c.RegionalCenters) == 0 {
		fail("regional_centers", "at least one center required")
	}
	for i, p := range c.RegionalCenters {
		if !isFinite(float64(p.X)) || !isFinite(float64(p.Y)) {
			fail("regional_centers", "center %d has non-finite coordinates", i)
		}
	}
	if !c.Network.IsValid() {
		fail("network_type", "unknown network %q; valid: direct, networked", c.Network)
	}
	if c.Warehouses < 1 {
		fail("warehouses", "must be >= 1, got %d", c.Warehouses)
	} else if c.Warehouses > 1 && c.Warehouses > len(c.RegionalCenters) {
		fail("warehouses", "%d warehouses exceed %d regional centers", c.Warehouses, len(c.RegionalCenters))
	}
	if c.CarCapacity <= 0 {
		fail("car_capacity", "must be positive, got %d", c.CarCapacity)
	}

	positive := []struct {
		field string
		value float64
	}{
		{"working_hours", float64(c.WorkingHours)},
		{"replace_minutes", float64(c.ReplaceMinutes)},
		{"speed_kmh", float64(c.SpeedKmh)},
		{"car_cost_per_day", float64(c.CarCostPerDay)},
		{"engineer_salary", float64(c.EngineerSalary)},
		{"driver_salary", float64(c.DriverSalary)},
	}
	for _, p := range positive {
		if !isFinite(p.value) || p.value <= 0 {
			fail(p.field, "must be positive, got %v", p.value)
		}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"hotel_cost", float64(c.HotelCost)},
		{"allowance_cost", float64(c.AllowanceCost)},
		{"jitter_std_dev", float64(c.JitterStdDev)},
	}
	for _, p := range nonNegative {
		if !isFinite(p.value) || p.value < 0 {
			fail(p.field, "must be >= 0, got %v", p.value)
		}
	}

	return errors.Join(errs...)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
