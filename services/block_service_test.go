package services

import (
	"testing"

	"hotel-booking-admin/models"
)

func TestToggleBlockCycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBlockService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 2)
	room := seedRoom(t, db, hotel.ID, rt.ID, "101")

	target := day(t, "2026-06-10")

	block, err := svc.ToggleBlock(room.ID, target, models.BlockTypeOutOfOrder)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if block == nil || block.Type != models.BlockTypeOutOfOrder {
		t.Fatalf("first toggle should create an OOO block, got %+v", block)
	}

	block, err = svc.ToggleBlock(room.ID, target, models.BlockTypeOutOfOrder)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if block == nil || block.Type != models.BlockTypeOutOfService {
		t.Fatalf("OOO should cycle to OOS, got %+v", block)
	}

	block, err = svc.ToggleBlock(room.ID, target, models.BlockTypeOutOfOrder)
	if err != nil {
		t.Fatalf("third toggle: %v", err)
	}
	if block == nil || block.Type != models.BlockTypeHold {
		t.Fatalf("OOS should cycle to Hold, got %+v", block)
	}

	block, err = svc.ToggleBlock(room.ID, target, models.BlockTypeOutOfOrder)
	if err != nil {
		t.Fatalf("fourth toggle: %v", err)
	}
	if block != nil {
		t.Fatalf("Hold should clear, got %+v", block)
	}
	if got := countRows(t, db, &models.RoomBlock{}, "room_id = ?", room.ID); got != 0 {
		t.Errorf("cleared block still in database: %d rows", got)
	}
}

func TestToggleBlockValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBlockService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 2)
	room := seedRoom(t, db, hotel.ID, rt.ID, "101")

	if _, err := svc.ToggleBlock(room.ID, day(t, "2026-06-10"), "Broken"); err == nil {
		t.Error("unknown block type should be rejected")
	}
	if _, err := svc.ToggleBlock(4242, day(t, "2026-06-10"), models.BlockTypeHold); err == nil || err.Error() != "room_not_found" {
		t.Errorf("want room_not_found, got %v", err)
	}
}

func TestListBlocksRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBlockService(db)
	hotel := seedHotel(t, db, "Seaside")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe", 2)
	room := seedRoom(t, db, hotel.ID, rt.ID, "101")

	for _, d := range []string{"2026-06-01", "2026-06-15", "2026-07-01"} {
		if _, err := svc.ToggleBlock(room.ID, day(t, d), models.BlockTypeHold); err != nil {
			t.Fatalf("ToggleBlock(%s): %v", d, err)
		}
	}

	blocks, err := svc.ListBlocks(day(t, "2026-06-01"), day(t, "2026-06-30"))
	if err != nil {
		t.Fatalf("ListBlocks: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks in June, want 2", len(blocks))
	}
	if !blocks[0].Date.Before(blocks[1].Date) {
		t.Error("blocks not ordered by date")
	}
}
