package services

import (
	"strings"
	"testing"

	"hotel-booking-admin/models"
	"hotel-booking-admin/utils"
)

func TestCreateBookingAllocatesSlots(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 5)

	checkIn := day(t, "2026-06-10")
	result, err := svc.CreateBooking(CreateBookingInput{
		HotelID:   hotel.ID,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 2}},
		CheckIn:   checkIn,
		Nights:    3,
		Customer:  CustomerInput{Name: "Ada Lovelace", Phone: "555-0101", Email: "ada@example.com"},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	booking := result.Booking
	if !strings.HasPrefix(booking.ConfirmationID, "BK") || len(booking.ConfirmationID) != 10 {
		t.Errorf("confirmation id %q should be BK followed by 8 characters", booking.ConfirmationID)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %q, want confirmed", booking.Status)
	}
	wantCheckOut := checkIn.AddDate(0, 0, 3)
	if !booking.CheckOut.Equal(wantCheckOut) {
		t.Errorf("check-out = %v, want %v", booking.CheckOut, wantCheckOut)
	}
	if len(booking.Rooms) != 1 || booking.Rooms[0].Quantity != 2 {
		t.Fatalf("expected one line item with quantity 2, got %+v", booking.Rooms)
	}
	if result.Customer.Name != "Ada Lovelace" {
		t.Errorf("customer name = %q", result.Customer.Name)
	}

	// quantity 2 over 3 nights is 6 room-nights
	if got := countRows(t, db, &models.InventorySlot{}, "booking_id = ?", booking.ID); got != 6 {
		t.Fatalf("slot count = %d, want 6", got)
	}
	for _, d := range utils.StayDates(checkIn, 3) {
		var slotNos []int
		if err := db.Model(&models.InventorySlot{}).
			Where("booking_id = ? AND date = ?", booking.ID, d).
			Order("slot_no").Pluck("slot_no", &slotNos).Error; err != nil {
			t.Fatalf("failed to load slots: %v", err)
		}
		if len(slotNos) != 2 || slotNos[0] == slotNos[1] {
			t.Errorf("date %s: want 2 distinct slot numbers, got %v", utils.FormatDate(d), slotNos)
		}
	}
}

func TestCreateBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 2)
	checkIn := day(t, "2026-06-10")

	cases := []struct {
		name  string
		input CreateBookingInput
	}{
		{"zero nights", CreateBookingInput{
			HotelID: hotel.ID, RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 1}},
			CheckIn: checkIn, Nights: 0, Customer: CustomerInput{Name: "Ada"},
		}},
		{"no room types", CreateBookingInput{
			HotelID: hotel.ID, CheckIn: checkIn, Nights: 1, Customer: CustomerInput{Name: "Ada"},
		}},
		{"zero quantity", CreateBookingInput{
			HotelID: hotel.ID, RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 0}},
			CheckIn: checkIn, Nights: 1, Customer: CustomerInput{Name: "Ada"},
		}},
		{"missing customer name", CreateBookingInput{
			HotelID: hotel.ID, RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 1}},
			CheckIn: checkIn, Nights: 1,
		}},
		{"quantity above capacity", CreateBookingInput{
			HotelID: hotel.ID, RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 4}},
			CheckIn: checkIn, Nights: 1, Customer: CustomerInput{Name: "Ada"},
		}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateBooking(tc.input); err == nil || !strings.Contains(err.Error(), "validation") {
			t.Errorf("%s: want validation error, got %v", tc.name, err)
		}
	}

	// rejection happens before any write
	if got := countRows(t, db, &models.Booking{}, ""); got != 0 {
		t.Errorf("bookings written on validation failure: %d", got)
	}
	if got := countRows(t, db, &models.Customer{}, ""); got != 0 {
		t.Errorf("customers written on validation failure: %d", got)
	}
}

func TestCreateBookingSoldOut(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Single", 1)

	checkIn := day(t, "2026-06-10")
	first := CreateBookingInput{
		HotelID:   hotel.ID,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 1}},
		CheckIn:   checkIn,
		Nights:    2,
		Customer:  CustomerInput{Name: "Ada"},
	}
	if _, err := svc.CreateBooking(first); err != nil {
		t.Fatalf("first CreateBooking: %v", err)
	}

	second := first
	second.Customer = CustomerInput{Name: "Grace"}
	if _, err := svc.CreateBooking(second); err == nil {
		t.Fatal("overlapping booking on a sold-out type should fail")
	}

	// the night after check-out is free again
	third := first
	third.CheckIn = checkIn.AddDate(0, 0, 2)
	third.Customer = CustomerInput{Name: "Grace"}
	if _, err := svc.CreateBooking(third); err != nil {
		t.Fatalf("back-to-back booking should succeed: %v", err)
	}
}

func TestUpdateBookingReplacesSlots(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 5)

	checkIn := day(t, "2026-06-10")
	result, err := svc.CreateBooking(CreateBookingInput{
		HotelID:   hotel.ID,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 2}},
		CheckIn:   checkIn,
		Nights:    3,
		Customer:  CustomerInput{Name: "Ada"},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	newNights := 5
	updated, err := svc.UpdateBooking(result.Booking.ID, UpdateBookingInput{Nights: &newNights})
	if err != nil {
		t.Fatalf("UpdateBooking: %v", err)
	}
	if updated.Nights != 5 || !updated.CheckOut.Equal(checkIn.AddDate(0, 0, 5)) {
		t.Errorf("header not rewritten: nights=%d check_out=%v", updated.Nights, updated.CheckOut)
	}

	if got := countRows(t, db, &models.InventorySlot{}, "booking_id = ?", result.Booking.ID); got != 10 {
		t.Fatalf("slot count after extend = %d, want 10", got)
	}
	outside := countRows(t, db, &models.InventorySlot{},
		"booking_id = ? AND (date < ? OR date >= ?)", result.Booking.ID, checkIn, checkIn.AddDate(0, 0, 5))
	if outside != 0 {
		t.Errorf("%d stale slots outside the new stay range", outside)
	}
}

func TestUpdateBookingKeepsOwnCapacity(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 2)

	checkIn := day(t, "2026-06-10")
	result, err := svc.CreateBooking(CreateBookingInput{
		HotelID:   hotel.ID,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 2}},
		CheckIn:   checkIn,
		Nights:    2,
		Customer:  CustomerInput{Name: "Ada"},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	// the type is fully booked by this booking; re-saving it at the same
	// quantity must not count its own slots against itself
	sameNights := 2
	if _, err := svc.UpdateBooking(result.Booking.ID, UpdateBookingInput{
		Nights:    &sameNights,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 2}},
	}); err != nil {
		t.Fatalf("update at full capacity with own quantity should pass: %v", err)
	}

	if got := countRows(t, db, &models.InventorySlot{}, "booking_id = ?", result.Booking.ID); got != 4 {
		t.Errorf("slot count = %d, want 4", got)
	}
}

func TestUpdateBookingNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	nights := 2
	if _, err := svc.UpdateBooking(4242, UpdateBookingInput{Nights: &nights}); err == nil || err.Error() != "booking_not_found" {
		t.Fatalf("want booking_not_found, got %v", err)
	}
}

func TestCancelBookingReleasesSlots(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Single", 1)

	checkIn := day(t, "2026-06-10")
	result, err := svc.CreateBooking(CreateBookingInput{
		HotelID:   hotel.ID,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 1}},
		CheckIn:   checkIn,
		Nights:    2,
		Customer:  CustomerInput{Name: "Ada"},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if err := svc.CancelBooking(result.Booking.ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	reloaded, err := svc.GetBookingDetails(result.Booking.ID)
	if err != nil {
		t.Fatalf("GetBookingDetails: %v", err)
	}
	if reloaded.Status != models.BookingStatusCancelled {
		t.Errorf("status = %q, want cancelled", reloaded.Status)
	}
	if got := countRows(t, db, &models.InventorySlot{}, "booking_id = ?", result.Booking.ID); got != 0 {
		t.Errorf("slots not released on cancel: %d", got)
	}
	// line items stay for history
	if got := countRows(t, db, &models.BookingRoom{}, "booking_id = ?", result.Booking.ID); got != 1 {
		t.Errorf("line items should survive a cancel, got %d", got)
	}

	// the room sells again immediately
	if _, err := svc.CreateBooking(CreateBookingInput{
		HotelID:   hotel.ID,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 1}},
		CheckIn:   checkIn,
		Nights:    2,
		Customer:  CustomerInput{Name: "Grace"},
	}); err != nil {
		t.Fatalf("rebooking after cancel should succeed: %v", err)
	}

	if err := svc.CancelBooking(result.Booking.ID); err == nil || err.Error() != "booking_already_cancelled" {
		t.Fatalf("want booking_already_cancelled, got %v", err)
	}
}

func TestUpdateBookingRejectsCancelled(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Single", 1)

	checkIn := day(t, "2026-06-10")
	result, err := svc.CreateBooking(CreateBookingInput{
		HotelID:   hotel.ID,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 1}},
		CheckIn:   checkIn,
		Nights:    2,
		Customer:  CustomerInput{Name: "Ada"},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if err := svc.CancelBooking(result.Booking.ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	nights := 2
	if _, err := svc.UpdateBooking(result.Booking.ID, UpdateBookingInput{Nights: &nights}); err == nil || err.Error() != "booking_cancelled" {
		t.Fatalf("editing a cancelled booking: want booking_cancelled, got %v", err)
	}

	// the rejected edit must not have re-allocated anything
	if got := countRows(t, db, &models.InventorySlot{}, "booking_id = ?", result.Booking.ID); got != 0 {
		t.Fatalf("cancelled booking holds %d slots after rejected edit", got)
	}
	records, err := svc.Availability.ComputeAvailability(hotel.ID, checkIn, 2)
	if err != nil {
		t.Fatalf("ComputeAvailability: %v", err)
	}
	if rec, _ := availabilityFor(records, rt.ID, "2026-06-10"); rec.Available != 1 {
		t.Errorf("cancelled booking still consumes inventory: %+v", rec)
	}
}

func TestDeleteBookingRemovesChildren(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 3)

	checkIn := day(t, "2026-06-10")
	result, err := svc.CreateBooking(CreateBookingInput{
		HotelID:   hotel.ID,
		RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 2}},
		CheckIn:   checkIn,
		Nights:    2,
		Customer:  CustomerInput{Name: "Ada"},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if err := svc.DeleteBooking(result.Booking.ID); err != nil {
		t.Fatalf("DeleteBooking: %v", err)
	}

	if got := countRows(t, db, &models.Booking{}, "id = ?", result.Booking.ID); got != 0 {
		t.Errorf("booking header not deleted")
	}
	if got := countRows(t, db, &models.BookingRoom{}, "booking_id = ?", result.Booking.ID); got != 0 {
		t.Errorf("line items not deleted")
	}
	if got := countRows(t, db, &models.InventorySlot{}, "booking_id = ?", result.Booking.ID); got != 0 {
		t.Errorf("slots not deleted")
	}

	if err := svc.DeleteBooking(result.Booking.ID); err == nil || err.Error() != "booking_not_found" {
		t.Fatalf("second delete: want booking_not_found, got %v", err)
	}
}

func TestSearchBookings(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 5)

	mkBooking := func(name, phone string, checkIn string, nights int) models.Booking {
		t.Helper()
		result, err := svc.CreateBooking(CreateBookingInput{
			HotelID:   hotel.ID,
			RoomTypes: []RoomTypeSelection{{RoomTypeID: rt.ID, Quantity: 1}},
			CheckIn:   day(t, checkIn),
			Nights:    nights,
			Customer:  CustomerInput{Name: name, Phone: phone},
		})
		if err != nil {
			t.Fatalf("CreateBooking(%s): %v", name, err)
		}
		return result.Booking
	}

	ada := mkBooking("Ada Lovelace", "555-0101", "2026-06-10", 2)
	mkBooking("Grace Hopper", "555-0202", "2026-07-01", 3)

	byConf, err := svc.SearchBookings(BookingSearchCriteria{ConfirmationID: ada.ConfirmationID})
	if err != nil {
		t.Fatalf("SearchBookings by confirmation: %v", err)
	}
	if len(byConf) != 1 || byConf[0].ID != ada.ID {
		t.Errorf("confirmation search: got %d results", len(byConf))
	}

	byName, err := svc.SearchBookings(BookingSearchCriteria{Name: "lovelace"})
	if err != nil {
		t.Fatalf("SearchBookings by name: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != ada.ID {
		t.Errorf("case-insensitive name search: got %d results", len(byName))
	}

	stayDate := day(t, "2026-07-02")
	byDate, err := svc.SearchBookings(BookingSearchCriteria{Date: &stayDate})
	if err != nil {
		t.Fatalf("SearchBookings by date: %v", err)
	}
	if len(byDate) != 1 || byDate[0].Customer.Name != "Grace Hopper" {
		t.Errorf("date search should match the stay covering it: got %d results", len(byDate))
	}

	all, err := svc.GetAllBookings()
	if err != nil {
		t.Fatalf("GetAllBookings: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("GetAllBookings: got %d, want 2", len(all))
	}
}
