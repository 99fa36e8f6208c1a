package models

// SunStats holds the sun events of one day at one location. Nil fields mean the
// event does not happen that day (polar day or polar night).
type SunStats struct {
	DayLengthHours  *float64   `json:"day_length_hours"`
	NoonAltitudeDeg *float64   `json:"noon_altitude_deg"`
	SunriseTime     *TimeOfDay `json:"sunrise_time"`
	NoonTime        *TimeOfDay `json:"noon_time"`
	SunsetTime      *TimeOfDay `json:"sunset_time"`
}

// DailyData is one day of energy readings, in kWh.
type DailyData struct {
	Date             Date    `json:"date"`
	HomeKWh          float64 `json:"home_kwh"`
	FromPowerwallKWh float64 `json:"from_powerwall_kwh"`
	SolarEnergyKWh   float64 `json:"solar_energy_kwh"`
	FromGridKWh      float64 `json:"from_grid_kwh"`
	ToGridKWh        float64 `json:"to_grid_kwh"`
}

// MonthlyData is the rollup of one month file.
type MonthlyData struct {
	FirstDayOfMonth  Date    `json:"first_day_of_month"`
	HomeKWh          float64 `json:"home_kwh"`
	FromPowerwallKWh float64 `json:"from_powerwall_kwh"`
	SolarEnergyKWh   float64 `json:"solar_energy_kwh"`
	FromGridKWh      float64 `json:"from_grid_kwh"`
	ToGridKWh        float64 `json:"to_grid_kwh"`
	// NumDaysInMonth counts parsed rows, not calendar days.
	NumDaysInMonth int `json:"num_days_in_month"`
	// NumDaysWithToGridGT2 counts rows exporting more than 2 kWh to the grid.
	NumDaysWithToGridGT2 int `json:"num_days_with_to_grid_gt_2"`
}
