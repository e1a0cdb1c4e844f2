package gorm

import (
	"time"
)

// Airport is the stored form of an airport coordinate row.
type Airport struct {
	Code      string    `gorm:"column:code;type:varchar(8);primaryKey"`
	City      string    `gorm:"column:city;type:varchar(100)"`
	Latitude  float64   `gorm:"column:latitude;type:numeric(10,6);not null"`
	Longitude float64   `gorm:"column:longitude;type:numeric(10,6);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
