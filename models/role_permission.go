package models

// RolePermission grants one "module.action" capability to a role. PolicyService
// counts rows here; the pair is unique so a grant can't be duplicated.
type RolePermission struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoleID     uint   `gorm:"not null;index:idx_role_permission,unique" json:"role_id"`
	Permission string `gorm:"size:150;not null;index:idx_role_permission,unique" json:"permission"`
}
