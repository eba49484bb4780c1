package utils

import "testing"

func TestLineRate(t *testing.T) {
	// Two services, 2 hours, $120 total: each line carries 120/2/2 = 30
	if rate := LineRate(120, 2, 2); rate != 30 {
		t.Fatalf("expected rate 30, got %v", rate)
	}

	// Personal Care at $30/hr for 2 hours
	if rate := LineRate(60, 2, 1); rate != 30 {
		t.Fatalf("expected rate 30, got %v", rate)
	}

	// Uneven splits stay even across lines, not itemized per service
	if rate := LineRate(100, 4, 3); rate != 100.0/4.0/3.0 {
		t.Fatalf("expected even split, got %v", rate)
	}
}

func TestLineRateZeroInputs(t *testing.T) {
	if rate := LineRate(60, 0, 2); rate != 0 {
		t.Fatalf("expected 0 for zero duration, got %v", rate)
	}
	if rate := LineRate(60, 2, 0); rate != 0 {
		t.Fatalf("expected 0 for zero services, got %v", rate)
	}
}
