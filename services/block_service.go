package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-admin/models"
	"hotel-booking-admin/utils"

	"gorm.io/gorm"
)

// BlockService manages manual room holds. Blocks count as occupancy against the
// room's type, independent of bookings.
type BlockService struct {
	DB *gorm.DB
}

func NewBlockService(db *gorm.DB) *BlockService {
	return &BlockService{DB: db}
}

func (s *BlockService) ListBlocks(start, end time.Time) ([]models.RoomBlock, error) {
	var blocks []models.RoomBlock
	if err := s.DB.
		Where("date >= ? AND date <= ?", utils.DateOnly(start), utils.DateOnly(end)).
		Order("date").
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to list room blocks: %w", err)
	}
	return blocks, nil
}

// ToggleBlock implements the calendar cell click: no block creates one of the
// requested type, an existing block cycles OOO -> OOS -> Hold -> cleared.
func (s *BlockService) ToggleBlock(roomID uint, date time.Time, requestedType string) (*models.RoomBlock, error) {
	switch requestedType {
	case models.BlockTypeOutOfOrder, models.BlockTypeOutOfService, models.BlockTypeHold:
	default:
		return nil, errors.New("validation: unknown block type")
	}

	day := utils.DateOnly(date)

	var existing models.RoomBlock
	err := s.DB.Where("room_id = ? AND date = ?", roomID, day).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up room block: %w", err)
		}

		var room models.Room
		if err := s.DB.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("room_not_found")
			}
			return nil, fmt.Errorf("db error checking room %d: %w", roomID, err)
		}

		block := models.RoomBlock{
			RoomID: roomID,
			Date:   day,
			Type:   requestedType,
			Reason: requestedType + " block",
		}
		if err := s.DB.Create(&block).Error; err != nil {
			return nil, fmt.Errorf("failed to create room block: %w", err)
		}
		return &block, nil
	}

	var nextType string
	switch existing.Type {
	case models.BlockTypeOutOfOrder:
		nextType = models.BlockTypeOutOfService
	case models.BlockTypeOutOfService:
		nextType = models.BlockTypeHold
	default:
		nextType = "" // clear
	}

	if nextType == "" {
		if err := s.DB.Delete(&models.RoomBlock{}, existing.ID).Error; err != nil {
			return nil, fmt.Errorf("failed to clear room block: %w", err)
		}
		return nil, nil
	}

	if err := s.DB.Model(&existing).Updates(map[string]interface{}{
		"type":   nextType,
		"reason": nextType + " block",
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update room block: %w", err)
	}
	existing.Type = nextType
	existing.Reason = nextType + " block"
	return &existing, nil
}

func (s *BlockService) DeleteBlock(id uint) error {
	return s.DB.Delete(&models.RoomBlock{}, id).Error
}
