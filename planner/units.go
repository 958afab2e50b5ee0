package planner

// Kilometers is a distance or coordinate component in kilometres.
type Kilometers float64

// Minutes is a duration in minutes.
type Minutes float64

// Hours is a duration in hours.
type Hours float64

// KmPerHour is a travel speed.
type KmPerHour float64

// Money is an amount in the currency of the configured cost rates.
type Money float64

// ToMinutes converts hours to minutes.
func (h Hours) ToMinutes() Minutes {
	return Minutes(h * 60)
}

// TravelTime returns the time needed to cover d at speed v.
// Returns 0 for a non-positive speed; callers validate speed beforehand.
func TravelTime(d Kilometers, v KmPerHour) Minutes {
	if v <= 0 {
		return 0
	}
	return Hours(float64(d) / float64(v)).ToMinutes()
}

// DaysPerMonth is the fixed month length used for every horizon calculation.
const DaysPerMonth = 30

// HorizonDays converts a horizon in months to calendar days.
func HorizonDays(months int) int {
	return months * DaysPerMonth
}
