package controllers

import (
	"net/http"
	"strings"

	"hotel-booking-admin/models"
	"hotel-booking-admin/services"
	"hotel-booking-admin/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

type rolePermissionsPayload struct {
	Permissions []string `json:"permissions"`
}

type roleMemberResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type roleResponse struct {
	ID          uint                       `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Permissions map[string]map[string]bool `json:"permissions"`
	Members     []roleMemberResponse       `json:"members"`
}

var defaultActionsByModule = map[string][]string{
	"bookingManagement":   {"view", "create", "edit", "delete"},
	"catalogManagement":   {"view", "create", "edit", "delete"},
	"roomManagement":      {"view", "create", "edit", "delete", "editStatus"},
	"userManagement":      {"view", "create", "edit", "delete"},
	"rolesAndPermissions": {"view", "edit"},
}

func buildDefaultPermissions() map[string]map[string]bool {
	permMap := map[string]map[string]bool{}
	for module, actions := range defaultActionsByModule {
		permMap[module] = map[string]bool{}
		for _, action := range actions {
			permMap[module][action] = false
		}
	}
	return permMap
}

func (ctrl *RoleController) GetRoles(c *gin.Context) {
	var roles []models.Role
	if err := ctrl.DB.Preload("Permissions").Preload("Members").Find(&roles).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		permMap := buildDefaultPermissions()
		for _, perm := range role.Permissions {
			parts := strings.Split(perm.Permission, ".")
			if len(parts) != 2 {
				continue
			}
			if _, ok := permMap[parts[0]]; !ok {
				permMap[parts[0]] = map[string]bool{}
			}
			permMap[parts[0]][parts[1]] = true
		}

		members := make([]roleMemberResponse, 0, len(role.Members))
		for _, admin := range role.Members {
			members = append(members, roleMemberResponse{
				ID:    admin.ID,
				Name:  admin.FullName,
				Email: admin.Username,
			})
		}

		responses = append(responses, roleResponse{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: permMap,
			Members:     members,
		})
	}

	utils.JSONSuccess(c, http.StatusOK, responses)
}

// UpdateRolePermissions replaces a role's permission set wholesale. The owner
// role is immutable: it always holds everything.
func (ctrl *RoleController) UpdateRolePermissions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload rolePermissionsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	var role models.Role
	if err := ctrl.DB.First(&role, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "role not found")
		return
	}
	if strings.EqualFold(role.Name, services.OwnerRoleName) {
		utils.JSONError(c, http.StatusForbidden, "owner role permissions cannot be changed")
		return
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", role.ID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		for _, p := range payload.Permissions {
			p = strings.TrimSpace(p)
			if p == "" || !strings.Contains(p, ".") {
				continue
			}
			perm := models.RolePermission{RoleID: role.ID, Permission: p}
			if err := tx.Create(&perm).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		utils.JSONError(c, http.StatusInternalServerError, txErr.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"role_id": role.ID, "permissions": payload.Permissions})
}
