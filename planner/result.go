package planner

import "fmt"

// ScenarioKey identifies one point of the comparison matrix.
type ScenarioKey struct {
	Network    NetworkType `json:"network_type"`
	Warehouses int         `json:"warehouses"`
	Months     int         `json:"months"`
}

func (k ScenarioKey) String() string {
	return fmt.Sprintf("%s/%dwh/%dm", k.Network, k.Warehouses, k.Months)
}

// ScenarioResult is the computed outcome of one scenario. Crews is
// UnboundedCrews and every money field is zero when Feasible is false.
type ScenarioResult struct {
	ScenarioKey

	Crews    int  `json:"crews"`
	Feasible bool `json:"feasible"`

	Wages       Money `json:"wages"`
	VehicleCost Money `json:"vehicle_cost"`
	LodgingCost Money `json:"lodging_cost"`
	PerDiemCost Money `json:"per_diem_cost"`
	Total       Money `json:"total"`

	AvgDistance   Kilometers `json:"avg_distance_km"`
	ObjectsPerDay int        `json:"objects_per_day"`
}

// ResultSet is an ordered collection of scenario results.
type ResultSet []ScenarioResult

// Find returns the result for key, if present.
func (rs ResultSet) Find(key ScenarioKey) (ScenarioResult, bool) {
	for _, r := range rs {
		if r.ScenarioKey == key {
			return r, true
		}
	}
	return ScenarioResult{}, false
}
