package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking-admin/models"
	"hotel-booking-admin/utils"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService owns the booking lifecycle: create, edit, cancel, delete. Every
// multi-step write runs inside one transaction so a failed step never leaves a
// half-written booking behind.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewBookingService(db *gorm.DB, availability *AvailabilityService) *BookingService {
	return &BookingService{DB: db, Availability: availability}
}

type RoomTypeSelection struct {
	RoomTypeID uint `json:"room_type_id"`
	Quantity   int  `json:"quantity"`
}

type CustomerInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Country      string `json:"country"`
	ReferralName string `json:"referral_name"`
	RefAgency    string `json:"ref_agency"`
}

type CreateBookingInput struct {
	HotelID    uint
	RoomTypes  []RoomTypeSelection
	CheckIn    time.Time
	Nights     int
	Customer   CustomerInput
	TotalPrice *float64
	Notes      string
}

type UpdateBookingInput struct {
	CheckIn   *time.Time
	Nights    *int
	HotelID   *uint
	RoomTypes []RoomTypeSelection // nil = keep existing line items
}

type BookingResult struct {
	Booking  models.Booking  `json:"booking"`
	Customer models.Customer `json:"customer"`
}

const (
	maxSlotRetries         = 5
	maxConfirmationRetries = 5
)

// CreateBooking validates the requested quantities against availability, then in a
// single transaction inserts the customer, the booking header, one line item per
// room type and quantity×nights inventory slots per line item.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*BookingResult, error) {
	if err := validateBookingBasics(input.CheckIn, input.Nights, input.RoomTypes); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Customer.Name) == "" {
		return nil, errors.New("validation: customer name is required")
	}

	if err := s.checkQuantities(input.HotelID, input.CheckIn, input.Nights, input.RoomTypes, 0); err != nil {
		return nil, err
	}

	var result BookingResult
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		customer, err := insertCustomer(tx, input.Customer)
		if err != nil {
			return err
		}

		checkIn := utils.DateOnly(input.CheckIn)
		booking := models.Booking{
			HotelID:    input.HotelID,
			RoomTypeID: nil, // line items carry the room types
			CustomerID: customer.ID,
			CheckIn:    checkIn,
			CheckOut:   checkIn.AddDate(0, 0, input.Nights),
			Nights:     input.Nights,
			TotalPrice: input.TotalPrice,
			Notes:      input.Notes,
			Status:     models.BookingStatusConfirmed,
		}
		if err := insertBookingWithConfirmationID(tx, &booking); err != nil {
			return err
		}

		for _, sel := range input.RoomTypes {
			// defend against a stale client-side catalog
			var rt models.RoomType
			if err := tx.Where("id = ? AND hotel_id = ?", sel.RoomTypeID, input.HotelID).First(&rt).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("room_type_not_found: %d", sel.RoomTypeID)
				}
				return fmt.Errorf("db error checking room type %d: %w", sel.RoomTypeID, err)
			}

			br := models.BookingRoom{
				BookingID:  booking.ID,
				RoomTypeID: sel.RoomTypeID,
				Quantity:   sel.Quantity,
			}
			if err := tx.Create(&br).Error; err != nil {
				return fmt.Errorf("failed to create booking room: %w", err)
			}
		}

		if err := s.allocateAllSlots(tx, booking.HotelID, booking.ID, checkIn, input.Nights, input.RoomTypes); err != nil {
			return err
		}

		result.Booking = booking
		result.Customer = *customer
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Customer").Preload("Hotel").Preload("Rooms.RoomType").
		First(&result.Booking, result.Booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &result, nil
}

// UpdateBooking rewrites the header and fully replaces line items and slots — no
// incremental diffing, so no stale slots from the old date range can survive.
// Validation runs before any write, with the booking's own slots excluded.
func (s *BookingService) UpdateBooking(bookingID uint, input UpdateBookingInput) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Rooms").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}
	// a cancelled booking no longer holds inventory; editing it would re-allocate
	// slots under a status the calendar and availability views treat as released
	if booking.Status == models.BookingStatusCancelled {
		return nil, errors.New("booking_cancelled")
	}

	newCheckIn := booking.CheckIn
	if input.CheckIn != nil {
		newCheckIn = utils.DateOnly(*input.CheckIn)
	}
	newNights := booking.Nights
	if input.Nights != nil {
		newNights = *input.Nights
	}
	newHotelID := booking.HotelID
	if input.HotelID != nil {
		newHotelID = *input.HotelID
	}
	newSelections := input.RoomTypes
	if newSelections == nil {
		newSelections = make([]RoomTypeSelection, 0, len(booking.Rooms))
		for _, br := range booking.Rooms {
			newSelections = append(newSelections, RoomTypeSelection{RoomTypeID: br.RoomTypeID, Quantity: br.Quantity})
		}
	}

	if err := validateBookingBasics(newCheckIn, newNights, newSelections); err != nil {
		return nil, err
	}
	if err := s.checkQuantities(newHotelID, newCheckIn, newNights, newSelections, bookingID); err != nil {
		return nil, err
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"hotel_id":  newHotelID,
			"check_in":  newCheckIn,
			"check_out": newCheckIn.AddDate(0, 0, newNights),
			"nights":    newNights,
		}
		if err := tx.Model(&models.Booking{}).Where("id = ?", bookingID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking header: %w", err)
		}

		if input.RoomTypes != nil {
			if err := tx.Where("booking_id = ?", bookingID).Delete(&models.BookingRoom{}).Error; err != nil {
				return fmt.Errorf("failed to clear booking rooms: %w", err)
			}
			for _, sel := range input.RoomTypes {
				var rt models.RoomType
				if err := tx.Where("id = ? AND hotel_id = ?", sel.RoomTypeID, newHotelID).First(&rt).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("room_type_not_found: %d", sel.RoomTypeID)
					}
					return fmt.Errorf("db error checking room type %d: %w", sel.RoomTypeID, err)
				}
				br := models.BookingRoom{BookingID: bookingID, RoomTypeID: sel.RoomTypeID, Quantity: sel.Quantity}
				if err := tx.Create(&br).Error; err != nil {
					return fmt.Errorf("failed to create booking room: %w", err)
				}
			}
		}

		if err := tx.Where("booking_id = ?", bookingID).Delete(&models.InventorySlot{}).Error; err != nil {
			return fmt.Errorf("failed to release inventory slots: %w", err)
		}
		return s.allocateAllSlots(tx, newHotelID, bookingID, newCheckIn, newNights, newSelections)
	})
	if txErr != nil {
		return nil, txErr
	}

	var updated models.Booking
	if err := s.DB.Preload("Customer").Preload("Hotel").Preload("Rooms.RoomType").
		First(&updated, bookingID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &updated, nil
}

// DeleteBooking removes children before the parent so no slot or line item can end
// up referencing a deleted booking. Any failure aborts the whole transaction.
func (s *BookingService) DeleteBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		if err := tx.Where("booking_id = ?", bookingID).Delete(&models.BookingRoom{}).Error; err != nil {
			return fmt.Errorf("failed to delete booking rooms: %w", err)
		}
		if err := tx.Where("booking_id = ?", bookingID).Delete(&models.InventorySlot{}).Error; err != nil {
			return fmt.Errorf("failed to delete inventory slots: %w", err)
		}
		if err := tx.Delete(&models.Booking{}, bookingID).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
}

// CancelBooking is the soft path: the header and line items stay for history, the
// inventory slots are released so the rooms sell again immediately.
func (s *BookingService) CancelBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}
		if booking.Status == models.BookingStatusCancelled {
			return errors.New("booking_already_cancelled")
		}

		if err := tx.Where("booking_id = ?", bookingID).Delete(&models.InventorySlot{}).Error; err != nil {
			return fmt.Errorf("failed to release inventory slots: %w", err)
		}
		if err := tx.Model(&models.Booking{}).Where("id = ?", bookingID).
			Update("status", models.BookingStatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		return nil
	})
}

func (s *BookingService) GetBookingDetails(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Customer").Preload("Hotel").Preload("Rooms.RoomType").
		First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &booking, nil
}

type BookingSearchCriteria struct {
	Name           string
	Phone          string
	Email          string
	ConfirmationID string
	HotelName      string
	Date           *time.Time
}

// SearchBookings filters on the indexed confirmation id directly and pushes the
// related-table filters into joins; a date criterion matches bookings whose stay
// covers that date.
func (s *BookingService) SearchBookings(criteria BookingSearchCriteria) ([]models.Booking, error) {
	query := s.DB.Model(&models.Booking{}).
		Preload("Customer").Preload("Hotel").Preload("Rooms.RoomType")

	if v := strings.TrimSpace(criteria.ConfirmationID); v != "" {
		query = query.Where("bookings.confirmation_id = ?", v)
	}
	if v := strings.TrimSpace(criteria.Name); v != "" {
		query = query.Joins("JOIN customers ON customers.id = bookings.customer_id").
			Where("LOWER(customers.name) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(criteria.Phone); v != "" {
		query = query.Joins("JOIN customers AS cp ON cp.id = bookings.customer_id").
			Where("cp.phone LIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(criteria.Email); v != "" {
		query = query.Joins("JOIN customers AS ce ON ce.id = bookings.customer_id").
			Where("LOWER(ce.email) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(criteria.HotelName); v != "" && !strings.EqualFold(v, "all") {
		query = query.Joins("JOIN hotels ON hotels.id = bookings.hotel_id").
			Where("LOWER(hotels.name) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if criteria.Date != nil {
		d := utils.DateOnly(*criteria.Date)
		query = query.Where("bookings.check_in <= ? AND bookings.check_out >= ?", d, d)
	}

	var bookings []models.Booking
	if err := query.Order("bookings.created_at DESC").Limit(100).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to search bookings: %w", err)
	}
	for i := range bookings {
		if bookings[i].Rooms == nil {
			bookings[i].Rooms = []models.BookingRoom{}
		}
	}
	return bookings, nil
}

func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Customer").Preload("Hotel").Preload("Rooms.RoomType").
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range bookings {
		if bookings[i].Rooms == nil {
			bookings[i].Rooms = []models.BookingRoom{}
		}
	}
	return bookings, nil
}

// ---- internals ----

func validateBookingBasics(checkIn time.Time, nights int, selections []RoomTypeSelection) error {
	if checkIn.IsZero() {
		return errors.New("validation: check-in date is required")
	}
	if nights <= 0 {
		return errors.New("validation: nights must be greater than zero")
	}
	if len(selections) == 0 {
		return errors.New("validation: at least one room type is required")
	}
	for _, sel := range selections {
		if sel.RoomTypeID == 0 {
			return errors.New("validation: invalid room type id")
		}
		if sel.Quantity <= 0 {
			return errors.New("validation: quantity must be greater than zero")
		}
	}
	return nil
}

// checkQuantities enforces the availability ceiling: for each selection the
// minimum available count across every night of the stay must cover the quantity.
// excludeBookingID leaves the edited booking's own slots out of the count.
func (s *BookingService) checkQuantities(hotelID uint, checkIn time.Time, nights int, selections []RoomTypeSelection, excludeBookingID uint) error {
	records, err := s.Availability.ComputeAvailabilityExcluding(hotelID, checkIn, nights, excludeBookingID)
	if err != nil {
		return err
	}
	for _, sel := range selections {
		min := MinAvailability(records, sel.RoomTypeID, checkIn, nights)
		if sel.Quantity > min {
			return fmt.Errorf("validation: room type %d has only %d room(s) available for the requested dates", sel.RoomTypeID, min)
		}
	}
	return nil
}

func insertCustomer(tx *gorm.DB, input CustomerInput) (*models.Customer, error) {
	customer := models.Customer{
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Email:   strings.TrimSpace(input.Email),
		Country: strings.TrimSpace(input.Country),
	}
	if input.ReferralName != "" || input.RefAgency != "" {
		raw, err := json.Marshal(map[string]string{
			"referral_name": input.ReferralName,
			"ref_agency":    input.RefAgency,
		})
		if err == nil {
			customer.Referral = datatypes.JSON(raw)
		}
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func insertBookingWithConfirmationID(tx *gorm.DB, booking *models.Booking) error {
	var lastErr error
	for attempt := 0; attempt < maxConfirmationRetries; attempt++ {
		code, err := utils.GenerateConfirmationID()
		if err != nil {
			return fmt.Errorf("failed to generate confirmation id: %w", err)
		}
		booking.ConfirmationID = code
		lastErr = tx.Create(booking).Error
		if lastErr == nil {
			return nil
		}
		if !isDuplicateKeyErr(lastErr) {
			return fmt.Errorf("failed to create booking: %w", lastErr)
		}
	}
	return fmt.Errorf("failed to create booking after %d confirmation id collisions: %w", maxConfirmationRetries, lastErr)
}

// allocateAllSlots writes quantity×nights slots per selection, one row per
// room-night, all tagged with the booking id.
func (s *BookingService) allocateAllSlots(tx *gorm.DB, hotelID, bookingID uint, checkIn time.Time, nights int, selections []RoomTypeSelection) error {
	for _, sel := range selections {
		for unit := 0; unit < sel.Quantity; unit++ {
			if err := allocateSlots(tx, hotelID, sel.RoomTypeID, checkIn, nights, bookingID); err != nil {
				return err
			}
		}
	}
	return nil
}

// allocateSlots claims one slot per night of the stay. The slot number is read-max
// plus one; the composite unique index turns a concurrent double-pick into a
// duplicate-key error, which is re-read and retried rather than ignored.
func allocateSlots(tx *gorm.DB, hotelID, roomTypeID uint, checkIn time.Time, nights int, bookingID uint) error {
	for _, date := range utils.StayDates(checkIn, nights) {
		var lastErr error
		allocated := false
		for attempt := 0; attempt < maxSlotRetries; attempt++ {
			var maxSlot int
			row := tx.Model(&models.InventorySlot{}).
				Select("COALESCE(MAX(slot_no), 0)").
				Where("hotel_id = ? AND room_type_id = ? AND date = ?", hotelID, roomTypeID, date).
				Row()
			if err := row.Scan(&maxSlot); err != nil {
				return fmt.Errorf("failed to read slot numbers: %w", err)
			}

			slot := models.InventorySlot{
				HotelID:    hotelID,
				RoomTypeID: roomTypeID,
				Date:       date,
				SlotNo:     maxSlot + 1,
				BookingID:  &bookingID,
			}
			lastErr = tx.Create(&slot).Error
			if lastErr == nil {
				allocated = true
				break
			}
			if !isDuplicateKeyErr(lastErr) {
				return fmt.Errorf("failed to allocate slot for %s: %w", utils.FormatDate(date), lastErr)
			}
		}
		if !allocated {
			return fmt.Errorf("slot allocation conflict for %s after %d retries: %w", utils.FormatDate(date), maxSlotRetries, lastErr)
		}
	}
	return nil
}

func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
