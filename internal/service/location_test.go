package service

import (
	"context"
	"testing"
)

func TestAdd_EmptyName(t *testing.T) {
	svc := NewLocationService(newFakeLocationStore())

	_, err := svc.Add(context.Background(), 1, "")
	if err != ErrLocationNameRequired {
		t.Errorf("expected ErrLocationNameRequired, got %v", err)
	}
}

func TestList_OnlyOwnRows(t *testing.T) {
	svc := NewLocationService(newFakeLocationStore())

	if _, err := svc.Add(context.Background(), 1, "Paris"); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if _, err := svc.Add(context.Background(), 2, "London"); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	locations, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("List() returned %d locations, want 1", len(locations))
	}
	if locations[0].Name != "Paris" || locations[0].UserID != 1 {
		t.Errorf("List() returned %+v, want Paris owned by user 1", locations[0])
	}
}

func TestDelete_MissingLocation(t *testing.T) {
	svc := NewLocationService(newFakeLocationStore())

	if err := svc.Delete(context.Background(), 42, 1); err != nil {
		t.Errorf("Delete() of missing location should succeed, got %v", err)
	}
}

func TestDelete_ForeignOwnedLocation(t *testing.T) {
	svc := NewLocationService(newFakeLocationStore())

	loc, err := svc.Add(context.Background(), 2, "London")
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	// User 1 deleting user 2's location reports success and changes nothing.
	if err := svc.Delete(context.Background(), loc.ID, 1); err != nil {
		t.Errorf("Delete() of foreign-owned location should succeed, got %v", err)
	}

	remaining, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("owner's locations = %d rows after foreign delete, want 1", len(remaining))
	}
}

func TestDelete_OwnedLocation(t *testing.T) {
	svc := NewLocationService(newFakeLocationStore())

	loc, err := svc.Add(context.Background(), 1, "Paris")
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), loc.ID, 1); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}

	remaining, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("List() returned %d rows after delete, want 0", len(remaining))
	}
}
