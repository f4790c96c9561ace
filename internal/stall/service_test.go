package stall

import (
	"errors"
	"testing"
)

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc := &Service{}

	for _, bad := range []string{"pending", "open", "APPROVED!", ""} {
		if err := svc.SetStatus(1, bad, 1, "127.0.0.1"); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("SetStatus(%q) err = %v, want ErrInvalidStatus", bad, err)
		}
	}
}
