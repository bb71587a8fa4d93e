package models

// Measurement is a single station reading for one calendar day.
type Measurement struct {
	ID      int      `gorm:"column:id;primaryKey" json:"id"`
	Station string   `gorm:"column:station" json:"station"`
	Date    string   `gorm:"column:date" json:"date" example:"2017-08-23"`
	Prcp    *float64 `gorm:"column:prcp" json:"prcp" example:"0.08"`
	Tobs    float64  `gorm:"column:tobs" json:"tobs" example:"77.0"`
}

func (Measurement) TableName() string {
	return "measurement"
}
