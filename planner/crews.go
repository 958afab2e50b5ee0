package planner

import (
	"errors"
	"fmt"
)

// ErrInfeasible is returned when a crew cannot finish even one object per
// day, so no finite number of crews completes the work.
var ErrInfeasible = errors.New("work is not achievable: a crew cannot service any object per day")

// UnboundedCrews marks an infeasible crew requirement. It is never a valid
// crew count and must not be used in arithmetic.
const UnboundedCrews = -1

// RequiredCrews returns the minimum number of crews that service all objects
// within months, given the average service distance.
//
// Zero objects need zero crews. Otherwise at least one crew is returned. When
// ObjectsPerDay is 0 the result is UnboundedCrews and an error wrapping
// ErrInfeasible.
func RequiredCrews(cfg Config, months int, avgDistance Kilometers) (int, error) {
	if cfg.NumObjects <= 0 {
		return 0, nil
	}
	if months <= 0 {
		return UnboundedCrews, fmt.Errorf("required crews: horizon must be positive, got %d months: %w", months, ErrInfeasible)
	}
	perDay := ObjectsPerDay(cfg, avgDistance)
	if perDay == 0 {
		return UnboundedCrews, fmt.Errorf("required crews: avg distance %.1f km: %w", float64(avgDistance), ErrInfeasible)
	}
	perCrew := perDay * HorizonDays(months)
	// Ceiling division.
	crews := (cfg.NumObjects + perCrew - 1) / perCrew
	return max(crews, 1), nil
}
