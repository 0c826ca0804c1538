package models

import (
	"time"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking header. CheckOut is always derived from CheckIn + Nights, never edited on
// its own. RoomTypeID is the legacy single-type column and stays null whenever line
// items exist. Deleting a booking removes the row outright (children first), so
// there is no soft delete here; cancellation keeps the row and flips Status.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConfirmationID string `gorm:"column:confirmation_id;size:32;uniqueIndex" json:"confirmation_id"`
	HotelID        uint   `gorm:"column:hotel_id;index" json:"hotel_id"`
	RoomTypeID     *uint  `gorm:"column:room_type_id" json:"room_type_id,omitempty"`
	CustomerID     uint   `gorm:"column:customer_id;index" json:"customer_id"`

	CheckIn    time.Time `gorm:"column:check_in;type:date;index" json:"check_in"`
	CheckOut   time.Time `gorm:"column:check_out;type:date;index" json:"check_out"`
	Nights     int       `gorm:"column:nights" json:"nights"`
	TotalPrice *float64  `gorm:"column:total_price" json:"total_price,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	Status     string    `gorm:"size:32;default:confirmed;index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Hotel    Hotel         `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
	Customer Customer      `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Rooms    []BookingRoom `gorm:"foreignKey:BookingID" json:"rooms"`
}
