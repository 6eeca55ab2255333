package api_test

import (
	"testing"
)

func TestContactSubmit(t *testing.T) {
	requireServer(t)

	resp := makeRequest("POST", "/contact", map[string]string{
		"name":    "Visitor",
		"email":   uniqueEmail("visitor"),
		"subject": "Opening hours",
		"message": "Are you open on Sundays?",
	}, "")
	if !resp.IsSuccess() {
		t.Fatalf("contact submission failed: %s", resp.Message)
	}
}

func TestContactSubmit_MissingMessage(t *testing.T) {
	requireServer(t)

	resp := makeRequest("POST", "/contact", map[string]string{
		"name":    "Visitor",
		"email":   uniqueEmail("visitor"),
		"subject": "Opening hours",
	}, "")
	if resp.IsSuccess() {
		t.Fatal("contact submission without a message succeeded")
	}
}

func TestContactInbox_RequiresAdmin(t *testing.T) {
	requireServer(t)

	token, _ := registerMember(t)

	resp := makeRequest("GET", "/contact/all", nil, token)
	if resp.IsSuccess() {
		t.Fatal("member read the contact inbox")
	}
}
