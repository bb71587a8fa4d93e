package models

type Station struct {
	ID        int     `gorm:"column:id;primaryKey" json:"id"`
	Station   string  `gorm:"column:station" json:"station" example:"USC00519397"`
	Name      string  `gorm:"column:name" json:"name" example:"WAIKIKI 717.2, HI US"`
	Latitude  float64 `gorm:"column:latitude" json:"latitude" example:"21.2716"`
	Longitude float64 `gorm:"column:longitude" json:"longitude" example:"-157.8168"`
	Elevation float64 `gorm:"column:elevation" json:"elevation" example:"3.0"`
}

func (Station) TableName() string {
	return "station"
}
