package api_test

import (
	"encoding/json"
	"testing"
)

func TestBookingLifecycle(t *testing.T) {
	requireServer(t)

	token, _ := registerMember(t)

	created := makeRequest("POST", "/bookings", map[string]string{
		"type":     "class",
		"date":     "2026-12-01",
		"timeSlot": "07:00",
	}, token)
	if !created.IsSuccess() {
		t.Fatalf("create booking failed: %s", created.Message)
	}
	id := created.GetString("id")
	if id == "" {
		t.Fatal("booking response carried no id")
	}

	mine := makeRequest("GET", "/bookings/my", nil, token)
	if !mine.IsSuccess() {
		t.Fatalf("list bookings failed: %s", mine.Message)
	}
	var bookings []map[string]interface{}
	if err := json.Unmarshal(mine.Data, &bookings); err != nil || len(bookings) != 1 {
		t.Fatalf("expected exactly one booking, got %d (err %v)", len(bookings), err)
	}

	cancelled := makeRequest("PATCH", "/bookings/"+id+"/cancel", nil, token)
	if !cancelled.IsSuccess() {
		t.Fatalf("cancel failed: %s", cancelled.Message)
	}
	if got := cancelled.GetString("status"); got != "cancelled" {
		t.Errorf("booking status after cancel = %q, want cancelled", got)
	}
}

func TestBooking_MissingSlot(t *testing.T) {
	requireServer(t)

	token, _ := registerMember(t)

	resp := makeRequest("POST", "/bookings", map[string]string{
		"type": "visit",
		"date": "2026-12-01",
	}, token)
	if resp.IsSuccess() {
		t.Fatal("booking without a time slot succeeded")
	}
}

func TestCancel_ForeignBooking(t *testing.T) {
	requireServer(t)

	owner, _ := registerMember(t)
	stranger, _ := registerMember(t)

	created := makeRequest("POST", "/bookings", map[string]string{
		"type":     "visit",
		"date":     "2026-12-01",
		"timeSlot": "10:00",
	}, owner)
	if !created.IsSuccess() {
		t.Fatalf("create booking failed: %s", created.Message)
	}

	resp := makeRequest("PATCH", "/bookings/"+created.GetString("id")+"/cancel", nil, stranger)
	if resp.IsSuccess() {
		t.Fatal("cancelling another member's booking succeeded")
	}
}
