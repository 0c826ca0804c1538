package models

import "time"

const (
	BlockTypeOutOfOrder   = "OOO"
	BlockTypeOutOfService = "OOS"
	BlockTypeHold         = "Hold"
)

// RoomBlock is a manual hold on one physical room for one date. It counts against
// the room's type in the availability computation, independent of bookings.
type RoomBlock struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	RoomID uint      `gorm:"column:room_id;uniqueIndex:idx_room_block_date" json:"room_id"`
	Date   time.Time `gorm:"column:date;type:date;uniqueIndex:idx_room_block_date" json:"date"`
	Type   string    `gorm:"size:16" json:"type"`
	Reason string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
