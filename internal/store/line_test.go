package store

import (
	"context"
	"errors"
	"testing"
)

func TestLineStore_GetLine(t *testing.T) {
	mr, vc := newTestValkey(t)
	store := NewLineStore(vc)

	mr.HSet("line:0",
		"sub_id", "101",
		"imsi", "440101234567890",
	)

	line, err := store.GetLine(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetLine() error = %v", err)
	}
	if line.Slot != 0 {
		t.Errorf("Slot = %d, want 0", line.Slot)
	}
	if line.SubscriptionID != 101 {
		t.Errorf("SubscriptionID = %d, want 101", line.SubscriptionID)
	}
	if line.IMSI != "440101234567890" {
		t.Errorf("IMSI = %q, want 440101234567890", line.IMSI)
	}
}

func TestLineStore_GetLine_NotFound(t *testing.T) {
	_, vc := newTestValkey(t)
	store := NewLineStore(vc)

	_, err := store.GetLine(context.Background(), 0)
	if !errors.Is(err, ErrLineNotFound) {
		t.Errorf("GetLine() error = %v, want ErrLineNotFound", err)
	}
}

func TestLineStore_GetLine_InvalidSubID(t *testing.T) {
	mr, vc := newTestValkey(t)
	store := NewLineStore(vc)

	mr.HSet("line:0",
		"sub_id", "abc",
		"imsi", "440101234567890",
	)

	_, err := store.GetLine(context.Background(), 0)
	if !errors.Is(err, ErrConfigInvalid) {
		t.Errorf("GetLine() error = %v, want ErrConfigInvalid", err)
	}
}

func TestLineStore_ActiveLines(t *testing.T) {
	mr, vc := newTestValkey(t)
	store := NewLineStore(vc)

	// スロット0と2のみプロビジョニング済み
	mr.HSet("line:0", "sub_id", "101", "imsi", "440101234567890")
	mr.HSet("line:2", "sub_id", "103", "imsi", "440109876543210")

	lines, err := store.ActiveLines(context.Background(), 3)
	if err != nil {
		t.Fatalf("ActiveLines() error = %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Slot != 0 || lines[1].Slot != 2 {
		t.Errorf("slots = %d, %d, want 0, 2", lines[0].Slot, lines[1].Slot)
	}
}

func TestLineStore_ActiveLines_Empty(t *testing.T) {
	_, vc := newTestValkey(t)
	store := NewLineStore(vc)

	lines, err := store.ActiveLines(context.Background(), 2)
	if err != nil {
		t.Fatalf("ActiveLines() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("len(lines) = %d, want 0", len(lines))
	}
}
