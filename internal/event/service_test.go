package event

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func validRequest() *CreateEventRequest {
	return &CreateEventRequest{
		Name:       "Hack Day",
		Department: "cse",
		Date:       "2026-03-14",
		Time:       "10:00 AM",
		Venue:      "Main Auditorium",
	}
}

func TestBuildEventDefaults(t *testing.T) {
	e, err := buildEvent(validRequest())
	if err != nil {
		t.Fatalf("buildEvent: %v", err)
	}

	if e.Fee != 0 {
		t.Errorf("default fee = %d, want 0", e.Fee)
	}
	if e.TeamSize != "Individual" {
		t.Errorf("default team size = %q, want Individual", e.TeamSize)
	}
	if !e.RegistrationOpen {
		t.Error("new events should default to registration open")
	}
	if e.RegistrationDeadline != nil {
		t.Error("deadline should be nil when not provided")
	}

	var rules []string
	if err := json.Unmarshal(e.Rules, &rules); err != nil {
		t.Fatalf("rules should marshal to an empty list: %v", err)
	}
	if len(rules) != 0 {
		t.Errorf("default rules = %v, want empty", rules)
	}
}

func TestBuildEventRejectsInvalidDepartment(t *testing.T) {
	req := validRequest()
	req.Department = "physics"

	if _, err := buildEvent(req); !errors.Is(err, ErrInvalidDepartment) {
		t.Fatalf("err = %v, want ErrInvalidDepartment", err)
	}
}

func TestBuildEventRejectsBadDate(t *testing.T) {
	req := validRequest()
	req.Date = "14-03-2026"

	if _, err := buildEvent(req); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestBuildEventRejectsNegativeFee(t *testing.T) {
	fee := -50
	req := validRequest()
	req.Fee = &fee

	if _, err := buildEvent(req); err == nil {
		t.Fatal("expected error for negative fee")
	}
}

func TestBuildEventParsesDeadline(t *testing.T) {
	req := validRequest()
	req.RegistrationDeadline = "2026-03-10"

	e, err := buildEvent(req)
	if err != nil {
		t.Fatalf("buildEvent: %v", err)
	}
	if e.RegistrationDeadline == nil {
		t.Fatal("deadline should be set")
	}
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !e.RegistrationDeadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", e.RegistrationDeadline, want)
	}
}

func TestBuildEventRejectsBadDeadline(t *testing.T) {
	req := validRequest()
	req.RegistrationDeadline = "next friday"

	if _, err := buildEvent(req); err == nil {
		t.Fatal("expected error for malformed deadline")
	}
}

func TestBuildEventHonoursExplicitFields(t *testing.T) {
	fee := 250
	closed := false
	req := validRequest()
	req.Fee = &fee
	req.TeamSize = "2-4 members"
	req.RegistrationOpen = &closed
	req.Rules = []string{"Bring your own laptop"}

	e, err := buildEvent(req)
	if err != nil {
		t.Fatalf("buildEvent: %v", err)
	}
	if e.Fee != 250 {
		t.Errorf("fee = %d, want 250", e.Fee)
	}
	if e.TeamSize != "2-4 members" {
		t.Errorf("team size = %q", e.TeamSize)
	}
	if e.RegistrationOpen {
		t.Error("registration_open should honour explicit false")
	}
}

func TestIsValidDepartment(t *testing.T) {
	for _, d := range Departments {
		if !IsValidDepartment(d) {
			t.Errorf("IsValidDepartment(%q) = false", d)
		}
	}
	if IsValidDepartment("CSE") {
		t.Error("department check is case sensitive, uppercase should fail")
	}
}
