package merch

import (
	"errors"
	"testing"
)

func TestPlaceOrderRejectsUnknownSize(t *testing.T) {
	svc := &Service{}

	_, err := svc.PlaceOrder(&CreateOrderRequest{
		Name: "Kiran", Email: "k@example.com", Phone: "9876543210",
		Size: "XS", Quantity: 1,
	}, "127.0.0.1")
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}

func TestSetPaymentStatusRejectsUnknownStatus(t *testing.T) {
	svc := &Service{}

	for _, bad := range []string{"pending", "refunded", ""} {
		if err := svc.SetPaymentStatus(1, bad, 1, "127.0.0.1"); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("SetPaymentStatus(%q) err = %v, want ErrInvalidStatus", bad, err)
		}
	}
}

func TestIsValidSize(t *testing.T) {
	for _, s := range []string{"S", "M", "L", "XL", "XXL"} {
		if !IsValidSize(s) {
			t.Errorf("IsValidSize(%q) = false", s)
		}
	}
	for _, s := range []string{"XS", "m", "XXXL", ""} {
		if IsValidSize(s) {
			t.Errorf("IsValidSize(%q) = true", s)
		}
	}
}
