package services

import (
	"fmt"
	"strings"

	"hotel-booking-admin/models"

	"gorm.io/gorm"
)

// Permission strings are "module.action" and live in role_permissions. Every
// mutating route goes through PolicyService.Can — no scattered role-name checks.
const (
	PermBookingView   = "bookingManagement.view"
	PermBookingCreate = "bookingManagement.create"
	PermBookingEdit   = "bookingManagement.edit"
	PermBookingDelete = "bookingManagement.delete"

	PermCatalogView   = "catalogManagement.view"
	PermCatalogCreate = "catalogManagement.create"
	PermCatalogEdit   = "catalogManagement.edit"
	PermCatalogDelete = "catalogManagement.delete"

	PermRoomView       = "roomManagement.view"
	PermRoomCreate     = "roomManagement.create"
	PermRoomEdit       = "roomManagement.edit"
	PermRoomDelete     = "roomManagement.delete"
	PermRoomEditStatus = "roomManagement.editStatus"

	PermUserView   = "userManagement.view"
	PermUserCreate = "userManagement.create"
	PermUserEdit   = "userManagement.edit"
	PermUserDelete = "userManagement.delete"

	PermRolesView = "rolesAndPermissions.view"
	PermRolesEdit = "rolesAndPermissions.edit"
)

const OwnerRoleName = "owner"

type PolicyService struct {
	DB *gorm.DB
}

func NewPolicyService(db *gorm.DB) *PolicyService {
	return &PolicyService{DB: db}
}

// Can reports whether the admin holds the permission through any of their roles.
// Owners pass every check.
func (s *PolicyService) Can(adminID uint, permission string) (bool, error) {
	var roleIDs []uint
	if err := s.DB.Model(&models.RoleMember{}).
		Where("admin_id = ?", adminID).
		Pluck("role_id", &roleIDs).Error; err != nil {
		return false, fmt.Errorf("failed to load roles for admin %d: %w", adminID, err)
	}
	if len(roleIDs) == 0 {
		return false, nil
	}

	var ownerCount int64
	if err := s.DB.Model(&models.Role{}).
		Where("id IN ? AND LOWER(name) = ?", roleIDs, strings.ToLower(OwnerRoleName)).
		Count(&ownerCount).Error; err != nil {
		return false, fmt.Errorf("failed to check owner role: %w", err)
	}
	if ownerCount > 0 {
		return true, nil
	}

	var permCount int64
	if err := s.DB.Model(&models.RolePermission{}).
		Where("role_id IN ? AND permission = ?", roleIDs, permission).
		Count(&permCount).Error; err != nil {
		return false, fmt.Errorf("failed to check permission %q: %w", permission, err)
	}
	return permCount > 0, nil
}
