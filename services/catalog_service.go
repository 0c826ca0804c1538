package services

import (
	"errors"
	"fmt"

	"hotel-booking-admin/models"

	"gorm.io/gorm"
)

// CatalogService reads and administers the hotel / room-type catalog. Read failures
// always propagate: callers must not confuse a failed fetch with an empty catalog.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) ListHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("name").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

func (s *CatalogService) GetHotel(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("hotel_not_found")
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", id, err)
	}
	return &hotel, nil
}

// ListRoomTypes returns a hotel's room types ordered by name, each with its
// capacity resolved. rooms_count is canonical; a zero falls back to a live count
// of the type's room rows.
func (s *CatalogService) ListRoomTypes(hotelID uint) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	if err := s.DB.Where("hotel_id = ?", hotelID).Order("name").Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types for hotel %d: %w", hotelID, err)
	}

	for i := range roomTypes {
		if roomTypes[i].RoomsCount > 0 {
			continue
		}
		var count int64
		if err := s.DB.Model(&models.Room{}).
			Where("room_type_id = ?", roomTypes[i].ID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count rooms for type %d: %w", roomTypes[i].ID, err)
		}
		roomTypes[i].RoomsCount = int(count)
	}

	return roomTypes, nil
}

func (s *CatalogService) GetRoomType(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room_type_not_found")
		}
		return nil, fmt.Errorf("failed to load room type %d: %w", id, err)
	}
	return &rt, nil
}

// ---- admin writes ----

func (s *CatalogService) CreateHotel(hotel *models.Hotel) error {
	if err := s.DB.Create(hotel).Error; err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// UpdateHotel writes the contact columns by name, so clearing a field sticks.
// Currency and timezone always carry a value; empty means "leave as is".
func (s *CatalogService) UpdateHotel(hotel *models.Hotel) error {
	updates := map[string]interface{}{
		"name":    hotel.Name,
		"address": hotel.Address,
		"phone":   hotel.Phone,
		"email":   hotel.Email,
	}
	if hotel.Currency != "" {
		updates["currency"] = hotel.Currency
	}
	if hotel.Timezone != "" {
		updates["timezone"] = hotel.Timezone
	}
	return s.DB.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Updates(updates).Error
}

func (s *CatalogService) DeleteHotel(id uint) error {
	return s.DB.Delete(&models.Hotel{}, id).Error
}

func (s *CatalogService) CreateRoomType(rt *models.RoomType) error {
	if _, err := s.GetHotel(rt.HotelID); err != nil {
		return err
	}
	if err := s.DB.Create(rt).Error; err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}
	return nil
}

// UpdateRoomType writes every editable column; rooms_count and base_price can
// legitimately go back to zero.
func (s *CatalogService) UpdateRoomType(rt *models.RoomType) error {
	return s.DB.Model(&models.RoomType{}).Where("id = ?", rt.ID).Updates(map[string]interface{}{
		"hotel_id":      rt.HotelID,
		"name":          rt.Name,
		"description":   rt.Description,
		"base_price":    rt.BasePrice,
		"max_occupancy": rt.MaxOccupancy,
		"rooms_count":   rt.RoomsCount,
	}).Error
}

func (s *CatalogService) DeleteRoomType(id uint) error {
	return s.DB.Delete(&models.RoomType{}, id).Error
}
