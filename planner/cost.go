package planner

import "errors"

// CostEstimate sizes the crews for a horizon and prices them.
//
// Every crew (engineer, driver, vehicle) is paid for the whole horizon:
// salaries per month, vehicle, hotel and allowance per calendar day. Costs
// therefore scale linearly with crew count. Total is the exact sum of the four
// components.
//
// An infeasible scenario comes back with Feasible=false and zero costs.
func CostEstimate(cfg Config, months int, avgDistance Kilometers) ScenarioResult {
	result := ScenarioResult{
		ScenarioKey:   ScenarioKey{Network: cfg.Network, Warehouses: cfg.Warehouses, Months: months},
		AvgDistance:   avgDistance,
		ObjectsPerDay: ObjectsPerDay(cfg, avgDistance),
	}

	crews, err := RequiredCrews(cfg, months, avgDistance)
	if errors.Is(err, ErrInfeasible) {
		result.Crews = UnboundedCrews
		return result
	}
	result.Crews = crews
	result.Feasible = true

	n := Money(crews)
	days := Money(HorizonDays(months))
	result.Wages = n * (cfg.EngineerSalary + cfg.DriverSalary) * Money(months)
	result.VehicleCost = n * cfg.CarCostPerDay * days
	result.LodgingCost = n * cfg.HotelCost * days
	result.PerDiemCost = n * cfg.AllowanceCost * days
	result.Total = result.Wages + result.VehicleCost + result.LodgingCost + result.PerDiemCost
	return result
}
