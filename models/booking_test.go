package models

import "testing"

func TestValidBookingStatus(t *testing.T) {
	valid := []BookingStatus{BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled}
	for _, status := range valid {
		if !ValidBookingStatus(status) {
			t.Fatalf("expected status %s to be valid", status)
		}
	}
	if ValidBookingStatus("unknown") {
		t.Fatalf("expected unknown status to be invalid")
	}
	if ValidBookingStatus("") {
		t.Fatalf("expected empty status to be invalid")
	}
}

func TestBookingDefaultStatus(t *testing.T) {
	booking := Booking{}
	if err := booking.BeforeCreate(nil); err != nil {
		t.Fatalf("hook error: %v", err)
	}
	if booking.Status != BookingPending {
		t.Fatalf("expected default status pending, got %s", booking.Status)
	}

	booking = Booking{Status: BookingConfirmed}
	if err := booking.BeforeCreate(nil); err != nil {
		t.Fatalf("hook error: %v", err)
	}
	if booking.Status != BookingConfirmed {
		t.Fatalf("expected status to be kept, got %s", booking.Status)
	}
}

func TestCaregiverProfileDefaultStatus(t *testing.T) {
	profile := CaregiverProfile{}
	if err := profile.BeforeCreate(nil); err != nil {
		t.Fatalf("hook error: %v", err)
	}
	if profile.Status != CaregiverPendingApproval {
		t.Fatalf("expected default status pending_approval, got %s", profile.Status)
	}
}
