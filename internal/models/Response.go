package models

// Precipitation is one (date, prcp) row of the trailing-year report.
type Precipitation struct {
	Date          string   `gorm:"column:date" json:"date" example:"2017-08-23"`
	Precipitation *float64 `gorm:"column:prcp" json:"precipitation" example:"0.45"`
}

// TemperatureCount holds how many temperature observations were recorded on a date.
type TemperatureCount struct {
	Date         string `gorm:"column:date" json:"date" example:"2017-08-23"`
	Observations int64  `gorm:"column:observations" json:"temperature observations" example:"7"`
}

type TemperatureStats struct {
	TMin *float64 `gorm:"column:tmin" json:"TMIN" example:"58.0"`
	TAvg *float64 `gorm:"column:tavg" json:"TAVG" example:"74.59"`
	TMax *float64 `gorm:"column:tmax" json:"TMAX" example:"87.0"`
}
