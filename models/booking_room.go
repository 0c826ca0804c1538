package models

import "time"

// BookingRoom is one line item: N rooms of one type within a booking. Edits replace
// the full set (delete then insert), so rows are hard-deleted.
type BookingRoom struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	BookingID  uint  `gorm:"index;column:booking_id" json:"booking_id"`
	RoomTypeID uint  `gorm:"index;column:room_type_id" json:"room_type_id"`
	Quantity   int   `gorm:"column:quantity" json:"quantity"`
	RoomID     *uint `gorm:"column:room_id" json:"room_id,omitempty"` // optional specific-room assignment for the calendar

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"room_type,omitempty"`
}
