package services

import (
	"fmt"
	"sort"
	"time"

	"hotel-booking-admin/models"
	"hotel-booking-admin/utils"

	"gorm.io/gorm"
)

// CalendarService renders occupancy per physical room for the calendar screen.
// It is read-only; booking and block writes happen elsewhere.
type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

type CalendarCell struct {
	RoomID         uint   `json:"room_id"`
	Date           string `json:"date"`
	BlockType      string `json:"block_type,omitempty"`
	BlockReason    string `json:"block_reason,omitempty"`
	BookingID      uint   `json:"booking_id,omitempty"`
	ConfirmationID string `json:"confirmation_id,omitempty"`
}

// RoomOccupancy returns one cell per occupied (room × date) in the range. A room
// is occupied by a block, by a booking line item assigned to it, or — for
// unassigned line items — by the distribution rule: the first N rooms of the type
// in room-number order carry a booking of total quantity N.
func (s *CalendarService) RoomOccupancy(hotelID uint, start, end time.Time) ([]CalendarCell, error) {
	startDay := utils.DateOnly(start)
	endDay := utils.DateOnly(end)

	var rooms []models.Room
	if err := s.DB.
		Where("hotel_id = ? AND status = ?", hotelID, models.RoomStatusActive).
		Order("room_number").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	var blocks []models.RoomBlock
	if err := s.DB.Where("date >= ? AND date <= ?", startDay, endDay).Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to load room blocks: %w", err)
	}

	var bookings []models.Booking
	if err := s.DB.Preload("Rooms").
		Where("hotel_id = ? AND status = ?", hotelID, models.BookingStatusConfirmed).
		Where("check_in <= ? AND check_out >= ?", endDay, startDay).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	// rooms per type in room-number order, for the distribution rule
	roomsByType := map[uint][]models.Room{}
	for _, room := range rooms {
		roomsByType[room.RoomTypeID] = append(roomsByType[room.RoomTypeID], room)
	}
	for _, list := range roomsByType {
		sort.Slice(list, func(i, j int) bool { return list[i].RoomNumber < list[j].RoomNumber })
	}
	roomIndexInType := map[uint]int{}
	for _, list := range roomsByType {
		for idx, room := range list {
			roomIndexInType[room.ID] = idx
		}
	}

	blockByRoomDate := map[string]models.RoomBlock{}
	for _, block := range blocks {
		blockByRoomDate[cellKey(block.RoomID, block.Date)] = block
	}

	var cells []CalendarCell
	for _, room := range rooms {
		for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
			if block, ok := blockByRoomDate[cellKey(room.ID, day)]; ok {
				cells = append(cells, CalendarCell{
					RoomID:      room.ID,
					Date:        utils.FormatDate(day),
					BlockType:   block.Type,
					BlockReason: block.Reason,
				})
				continue
			}
			if booking := s.bookingForCell(bookings, room, day, roomIndexInType); booking != nil {
				cells = append(cells, CalendarCell{
					RoomID:         room.ID,
					Date:           utils.FormatDate(day),
					BookingID:      booking.ID,
					ConfirmationID: booking.ConfirmationID,
				})
			}
		}
	}
	return cells, nil
}

func (s *CalendarService) bookingForCell(bookings []models.Booking, room models.Room, day time.Time, roomIndexInType map[uint]int) *models.Booking {
	for i := range bookings {
		booking := &bookings[i]
		if day.Before(booking.CheckIn) || !day.Before(booking.CheckOut) {
			continue
		}

		for _, br := range booking.Rooms {
			if br.RoomID != nil && *br.RoomID == room.ID {
				return booking
			}
		}

		// unassigned line items of this room's type spread over the first N rooms
		totalUnassigned := 0
		for _, br := range booking.Rooms {
			if br.RoomID == nil && br.RoomTypeID == room.RoomTypeID {
				totalUnassigned += br.Quantity
			}
		}
		if totalUnassigned > 0 && roomIndexInType[room.ID] < totalUnassigned {
			return booking
		}
	}
	return nil
}

func cellKey(roomID uint, day time.Time) string {
	return fmt.Sprintf("%d|%s", roomID, utils.FormatDate(day))
}
