package cron

import (
	"testing"
	"time"
)

func TestReminderDateMatchesStoredServiceDate(t *testing.T) {
	// Service dates come in as "YYYY-MM-DD" and parse to UTC midnight
	stored, err := time.Parse("2006-01-02", "2026-08-30")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// The query date must hit the stored instant even on a non-UTC host
	lagos := time.FixedZone("WAT", 3600)
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, lagos)
	if !reminderDate(now).Equal(stored) {
		t.Fatalf("expected %v to equal stored date %v", reminderDate(now), stored)
	}

	// Local midnight is a different instant and would match nothing
	localMidnight := time.Date(2026, 8, 30, 0, 0, 0, 0, lagos)
	if localMidnight.Equal(stored) {
		t.Fatalf("expected local midnight to differ from stored date")
	}

	// UTC hosts are unaffected
	utcNow := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	if !reminderDate(utcNow).Equal(stored) {
		t.Fatalf("expected %v to equal stored date %v", reminderDate(utcNow), stored)
	}
}
