package models

import (
	"testing"
	"time"
)

func TestGenerateOrderNumber(t *testing.T) {
	at := time.Date(2025, time.March, 7, 14, 5, 9, 42e6, time.UTC)
	got := GenerateOrderNumber(at)
	want := "ORD-202559-42"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled} {
		if !IsValidStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	for _, status := range []string{"", "shipped", "Pending", "done"} {
		if IsValidStatus(status) {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}
