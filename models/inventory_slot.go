package models

import "time"

// InventorySlot is one room-night of occupancy. A slot with a non-null BookingID is
// consumed; slot numbers only have to be unique per (hotel, room type, date).
// The composite unique index is what makes concurrent allocation safe: a second
// writer that picked the same slot number gets a duplicate-key error and retries.
type InventorySlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID    uint      `gorm:"column:hotel_id;uniqueIndex:idx_slot_key" json:"hotel_id"`
	RoomTypeID uint      `gorm:"column:room_type_id;uniqueIndex:idx_slot_key" json:"room_type_id"`
	Date       time.Time `gorm:"column:date;type:date;uniqueIndex:idx_slot_key" json:"date"`
	SlotNo     int       `gorm:"column:slot_no;uniqueIndex:idx_slot_key" json:"slot_no"`
	BookingID  *uint     `gorm:"column:booking_id;index" json:"booking_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InventorySlot) TableName() string { return "room_type_inventory_slots" }
