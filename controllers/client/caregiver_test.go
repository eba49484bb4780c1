package client

import (
	"testing"

	"github.com/Hephzy-d/elderly-care-connect/models"
)

func caregiverWithServices(id uint, serviceIDs ...uint) models.CaregiverProfile {
	profile := models.CaregiverProfile{}
	profile.ID = id
	for _, serviceID := range serviceIDs {
		profile.Services = append(profile.Services, models.CaregiverService{
			CaregiverID: id,
			ServiceID:   serviceID,
		})
	}
	return profile
}

func TestFilterByServices(t *testing.T) {
	caregivers := []models.CaregiverProfile{
		caregiverWithServices(1, 10, 11),
		caregiverWithServices(2, 12),
		caregiverWithServices(3, 11, 13),
		caregiverWithServices(4),
	}

	// OR semantics: a caregiver matching any requested service is kept
	filtered := filterByServices(caregivers, []uint{11, 12})
	if len(filtered) != 3 {
		t.Fatalf("expected 3 caregivers, got %d", len(filtered))
	}
	for _, caregiver := range filtered {
		if caregiver.ID == 4 {
			t.Fatalf("caregiver with no services should be filtered out")
		}
	}

	// A caregiver does not need to offer every requested service
	filtered = filterByServices(caregivers, []uint{10, 13})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 caregivers, got %d", len(filtered))
	}

	// No requested services keeps everyone
	filtered = filterByServices(caregivers, nil)
	if len(filtered) != 4 {
		t.Fatalf("expected all caregivers, got %d", len(filtered))
	}

	// No matches yields an empty set
	filtered = filterByServices(caregivers, []uint{99})
	if len(filtered) != 0 {
		t.Fatalf("expected no caregivers, got %d", len(filtered))
	}
}

func TestParseServiceIDs(t *testing.T) {
	ids, err := parseServiceIDs("1,2, 3")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}

	ids, err = parseServiceIDs("")
	if err != nil || ids != nil {
		t.Fatalf("expected empty input to parse to nil, got %v err %v", ids, err)
	}

	if _, err := parseServiceIDs("1,abc"); err == nil {
		t.Fatalf("expected invalid id to error")
	}
}
