package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType belongs to exactly one hotel. RoomsCount is the capacity used by the
// availability computation; when it is zero the live count of Room rows is used instead.
type RoomType struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	Name         string  `gorm:"size:150" json:"name"`
	Description  string  `gorm:"type:text" json:"description,omitempty"`
	BasePrice    float64 `gorm:"column:base_price" json:"base_price"`
	MaxOccupancy int     `gorm:"column:max_occupancy;default:2" json:"max_occupancy"`
	RoomsCount   int     `gorm:"column:rooms_count;default:0" json:"rooms_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}
