package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"hotel-booking-admin/models"
	"hotel-booking-admin/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database per test and runs the
// migrations. cache=shared keeps the database alive across the pool's
// connections within one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Role{},
		&models.RolePermission{},
		&models.RoleMember{},
		&models.Hotel{},
		&models.RoomType{},
		&models.Room{},
		&models.Customer{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.InventorySlot{},
		&models.RoomBlock{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func seedHotel(t *testing.T, db *gorm.DB, name string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("failed to seed hotel %q: %v", name, err)
	}
	return hotel
}

func seedRoomType(t *testing.T, db *gorm.DB, hotelID uint, name string, roomsCount int) models.RoomType {
	t.Helper()
	rt := models.RoomType{HotelID: hotelID, Name: name, BasePrice: 100, RoomsCount: roomsCount}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("failed to seed room type %q: %v", name, err)
	}
	return rt
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID, roomTypeID uint, number string) models.Room {
	t.Helper()
	room := models.Room{HotelID: hotelID, RoomTypeID: roomTypeID, RoomNumber: number, Status: models.RoomStatusActive}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room %q: %v", number, err)
	}
	return room
}

func newBookingService(db *gorm.DB) *BookingService {
	catalog := NewCatalogService(db)
	availability := NewAvailabilityService(db, catalog)
	return NewBookingService(db, availability)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
