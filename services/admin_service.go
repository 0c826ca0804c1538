package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-admin/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) ListAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.Order("full_name").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

func (s *AdminService) CreateAdmin(fullName, username, password string, roleID uint) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, errors.New("validation: username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		FullName: strings.TrimSpace(fullName),
		Username: username,
		Password: string(hash),
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			if isDuplicateKeyErr(err) {
				return errors.New("username_taken")
			}
			return fmt.Errorf("failed to create admin: %w", err)
		}
		if roleID != 0 {
			var role models.Role
			if err := tx.First(&role, roleID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("role_not_found")
				}
				return fmt.Errorf("db error checking role %d: %w", roleID, err)
			}
			member := models.RoleMember{RoleID: roleID, AdminID: admin.ID}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to assign role: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &admin, nil
}

func (s *AdminService) DeleteAdmin(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("admin_id = ?", id).Delete(&models.RoleMember{}).Error; err != nil {
			return fmt.Errorf("failed to remove role memberships: %w", err)
		}
		return tx.Delete(&models.Admin{}, id).Error
	})
}

// Authenticate verifies the credentials and returns the admin on success.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid_credentials")
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, errors.New("invalid_credentials")
	}
	return &admin, nil
}

func (s *AdminService) AssignRole(adminID, roleID uint) error {
	var role models.Role
	if err := s.DB.First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("role_not_found")
		}
		return fmt.Errorf("db error checking role %d: %w", roleID, err)
	}
	var admin models.Admin
	if err := s.DB.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("admin_not_found")
		}
		return fmt.Errorf("db error checking admin %d: %w", adminID, err)
	}

	member := models.RoleMember{RoleID: roleID, AdminID: adminID}
	if err := s.DB.Create(&member).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil // already a member
		}
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}
