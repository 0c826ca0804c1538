package services

import (
	"fmt"
	"math"
	"time"

	"hotel-booking-admin/models"
	"hotel-booking-admin/utils"

	"gorm.io/gorm"
)

const (
	AvailabilityStatusAvailable = "available"
	AvailabilityStatusLow       = "low"
	AvailabilityStatusSoldOut   = "sold-out"

	// WindowPad is the number of context days rendered on each side of the stay,
	// so the grid can show surroundings without a second query.
	WindowPad = 5
)

// AvailabilityRecord is computed per request and never persisted or cached.
type AvailabilityRecord struct {
	Date       time.Time `json:"-"`
	DateString string    `json:"date"`
	RoomTypeID uint      `json:"room_type_id"`
	Available  int       `json:"available"`
	Total      int       `json:"total"`
	Status     string    `json:"status"`
}

type AvailabilityService struct {
	DB      *gorm.DB
	Catalog *CatalogService
}

func NewAvailabilityService(db *gorm.DB, catalog *CatalogService) *AvailabilityService {
	return &AvailabilityService{DB: db, Catalog: catalog}
}

type slotRow struct {
	RoomTypeID uint      `gorm:"column:room_type_id"`
	Date       time.Time `gorm:"column:date"`
}

type blockRow struct {
	RoomTypeID uint      `gorm:"column:room_type_id"`
	Date       time.Time `gorm:"column:date"`
}

// ComputeAvailability returns one record per (room type × date) over the padded
// window around the stay. Occupancy is loaded with two batch queries for the whole
// window — one for consumed slots, one for blocks — instead of fanning out per
// date/room-type pair.
func (s *AvailabilityService) ComputeAvailability(hotelID uint, checkIn time.Time, nights int) ([]AvailabilityRecord, error) {
	return s.computeExcluding(hotelID, checkIn, nights, 0)
}

// ComputeAvailabilityExcluding ignores one booking's own slots; used when
// validating an edit, where the booking's current allocation must not count
// against itself.
func (s *AvailabilityService) ComputeAvailabilityExcluding(hotelID uint, checkIn time.Time, nights int, excludeBookingID uint) ([]AvailabilityRecord, error) {
	return s.computeExcluding(hotelID, checkIn, nights, excludeBookingID)
}

func (s *AvailabilityService) computeExcluding(hotelID uint, checkIn time.Time, nights int, excludeBookingID uint) ([]AvailabilityRecord, error) {
	dates := utils.WindowDates(checkIn, nights, WindowPad)

	roomTypes, err := s.Catalog.ListRoomTypes(hotelID)
	if err != nil {
		return nil, err
	}
	if len(roomTypes) == 0 {
		return []AvailabilityRecord{}, nil
	}

	slotQuery := s.DB.Model(&models.InventorySlot{}).
		Select("room_type_id, date").
		Where("hotel_id = ? AND date IN ? AND booking_id IS NOT NULL", hotelID, dates)
	if excludeBookingID != 0 {
		slotQuery = slotQuery.Where("booking_id <> ?", excludeBookingID)
	}
	var slots []slotRow
	if err := slotQuery.Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory slots: %w", err)
	}

	var blocks []blockRow
	if err := s.DB.Table("room_blocks").
		Select("rooms.room_type_id AS room_type_id, room_blocks.date AS date").
		Joins("JOIN rooms ON rooms.id = room_blocks.room_id").
		Where("rooms.hotel_id = ? AND rooms.deleted_at IS NULL AND room_blocks.date IN ?", hotelID, dates).
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("failed to load room blocks: %w", err)
	}

	type key struct {
		roomTypeID uint
		date       string
	}
	occupied := make(map[key]int, len(slots)+len(blocks))
	for _, row := range slots {
		occupied[key{row.RoomTypeID, utils.FormatDate(row.Date)}]++
	}
	for _, row := range blocks {
		occupied[key{row.RoomTypeID, utils.FormatDate(row.Date)}]++
	}

	records := make([]AvailabilityRecord, 0, len(roomTypes)*len(dates))
	for _, rt := range roomTypes {
		for _, date := range dates {
			used := occupied[key{rt.ID, utils.FormatDate(date)}]
			available := rt.RoomsCount - used
			if available < 0 {
				available = 0
			}
			records = append(records, AvailabilityRecord{
				Date:       date,
				DateString: utils.FormatDate(date),
				RoomTypeID: rt.ID,
				Available:  available,
				Total:      rt.RoomsCount,
				Status:     ClassifyAvailability(available, rt.RoomsCount),
			})
		}
	}

	return records, nil
}

// ClassifyAvailability: sold-out at zero, low up to ceil(30% of capacity),
// otherwise available.
func ClassifyAvailability(available, capacity int) string {
	if available == 0 {
		return AvailabilityStatusSoldOut
	}
	if available <= int(math.Ceil(float64(capacity)*0.3)) {
		return AvailabilityStatusLow
	}
	return AvailabilityStatusAvailable
}

// MinAvailability returns the minimum available count for one room type across the
// stay's nights. This is the ceiling a requested quantity is validated against.
func MinAvailability(records []AvailabilityRecord, roomTypeID uint, checkIn time.Time, nights int) int {
	min := math.MaxInt
	for _, date := range utils.StayDates(checkIn, nights) {
		ds := utils.FormatDate(date)
		for _, rec := range records {
			if rec.RoomTypeID == roomTypeID && rec.DateString == ds {
				if rec.Available < min {
					min = rec.Available
				}
			}
		}
	}
	if min == math.MaxInt {
		return 0
	}
	return min
}
