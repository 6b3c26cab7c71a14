package constant_test

import (
	"testing"

	"github.com/mahmudhasan/clothing-shop/constant"
)

func TestValidOrderStatus(t *testing.T) {
	valid := []constant.OrderStatus{
		constant.OrderStatusPending,
		constant.OrderStatusProcessing,
		constant.OrderStatusDelivered,
		constant.OrderStatusCancelled,
	}
	for _, s := range valid {
		if !constant.ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = false, want true", s)
		}
	}

	invalid := []constant.OrderStatus{"", "shipped", "Pending", "PROCESSING", "done"}
	for _, s := range invalid {
		if constant.ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	statuses := []constant.OrderStatus{
		constant.OrderStatusPending,
		constant.OrderStatusProcessing,
		constant.OrderStatusDelivered,
		constant.OrderStatusCancelled,
	}
	allowed := map[constant.OrderStatus]map[constant.OrderStatus]bool{
		constant.OrderStatusPending: {
			constant.OrderStatusProcessing: true,
			constant.OrderStatusCancelled:  true,
		},
		constant.OrderStatusProcessing: {
			constant.OrderStatusDelivered: true,
			constant.OrderStatusCancelled: true,
		},
		constant.OrderStatusDelivered: {},
		constant.OrderStatusCancelled: {},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[from][to]
			if got := constant.CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	if constant.CanTransition("shipped", constant.OrderStatusDelivered) {
		t.Error("CanTransition from unknown status should be false")
	}
	if constant.CanTransition(constant.OrderStatusPending, "shipped") {
		t.Error("CanTransition to unknown status should be false")
	}
}
