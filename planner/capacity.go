package planner

import "math"

// ObjectsPerDay returns how many objects one crew can service in a working
// day when each visit is a round trip of avgDistance plus the on-site
// replacement time. The count is floored (a partly serviced object does not
// count) and capped by CarCapacity.
//
// A result of 0 means the work is infeasible under these parameters.
func ObjectsPerDay(cfg Config, avgDistance Kilometers) int {
	if cfg.SpeedKmh <= 0 || cfg.CarCapacity <= 0 {
		return 0
	}
	roundTrip := TravelTime(avgDistance*2, cfg.SpeedKmh)
	perObject := cfg.ReplaceMinutes + roundTrip
	if perObject <= 0 {
		return 0
	}
	byTime := int(math.Floor(float64(cfg.WorkingHours.ToMinutes() / perObject)))
	if byTime < 0 {
		return 0
	}
	return min(cfg.CarCapacity, byTime)
}
