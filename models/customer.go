package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer is created fresh for every booking; there is no dedup or merge by
// phone/email. Referral holds optional agency metadata as supplied by the caller.
type Customer struct {
	gorm.Model

	Name    string `gorm:"size:255" json:"name"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`
	Email   string `gorm:"size:150" json:"email,omitempty"`
	Country string `gorm:"size:100" json:"country,omitempty"`

	Referral datatypes.JSON `gorm:"column:referral" json:"referral,omitempty"`
}
