package models

import (
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;uniqueIndex" json:"name"`
	Address  string `gorm:"type:text" json:"address,omitempty"`
	Phone    string `gorm:"size:50" json:"phone,omitempty"`
	Email    string `gorm:"size:150" json:"email,omitempty"`
	Currency string `gorm:"size:8;default:USD" json:"currency"`
	Timezone string `gorm:"size:64;default:UTC" json:"timezone"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
