package services

import (
	"errors"
	"fmt"

	"hotel-booking-admin/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) ListRooms(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	query := s.DB.Preload("RoomType").Order("room_number")
	if hotelID != 0 {
		query = query.Where("hotel_id = ?", hotelID)
	}
	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room_not_found")
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) CreateRoom(room *models.Room) error {
	var rt models.RoomType
	if err := s.DB.Where("id = ? AND hotel_id = ?", room.RoomTypeID, room.HotelID).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("room_type_not_found")
		}
		return fmt.Errorf("db error checking room type: %w", err)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusActive
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// UpdateRoom writes the editable columns by name. Status is a constrained enum,
// so an empty value means "leave as is" rather than "clear".
func (s *RoomService) UpdateRoom(room *models.Room) error {
	updates := map[string]interface{}{
		"hotel_id":     room.HotelID,
		"room_type_id": room.RoomTypeID,
		"room_number":  room.RoomNumber,
	}
	if room.Status != "" {
		updates["status"] = room.Status
	}
	return s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(updates).Error
}

func (s *RoomService) UpdateRoomStatus(id uint, status string) error {
	switch status {
	case models.RoomStatusActive, models.RoomStatusInactive, models.RoomStatusMaintenance:
	default:
		return errors.New("validation: unknown room status")
	}
	return s.DB.Model(&models.Room{}).Where("id = ?", id).Update("status", status).Error
}

func (s *RoomService) DeleteRoom(id uint) error {
	return s.DB.Delete(&models.Room{}, id).Error
}
