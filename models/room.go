package models

import (
	"gorm.io/gorm"
)

const (
	RoomStatusActive      = "active"
	RoomStatusInactive    = "inactive"
	RoomStatusMaintenance = "maintenance"
)

// Room is one physical unit. Availability is computed from RoomType capacity;
// individual rooms matter for room blocks and the calendar view.
type Room struct {
	gorm.Model

	HotelID    uint   `gorm:"column:hotel_id;uniqueIndex:idx_hotel_room_number" json:"hotel_id"`
	RoomTypeID uint   `gorm:"index;column:room_type_id" json:"room_type_id"`
	RoomNumber string `gorm:"column:room_number;size:50;uniqueIndex:idx_hotel_room_number" json:"room_number"`
	Status     string `gorm:"size:32;default:active" json:"status"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"room_type,omitempty"`
}
