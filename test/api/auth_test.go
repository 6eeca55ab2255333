package api_test

import (
	"testing"
)

func TestRegisterLoginMe(t *testing.T) {
	requireServer(t)

	_, email := registerMember(t)

	login := makeRequest("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": "secret123",
	}, "")
	if !login.IsSuccess() {
		t.Fatalf("login failed: %s", login.Message)
	}
	token := login.GetString("token")

	me := makeRequest("GET", "/auth/me", nil, token)
	if !me.IsSuccess() {
		t.Fatalf("me failed: %s", me.Message)
	}
	if got := me.GetString("email"); got != email {
		t.Errorf("me returned email %q, want %q", got, email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	requireServer(t)

	_, email := registerMember(t)

	resp := makeRequest("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": "not-the-password",
	}, "")
	if resp.IsSuccess() {
		t.Fatal("login with wrong password succeeded")
	}
}

func TestMe_RequiresToken(t *testing.T) {
	requireServer(t)

	resp := makeRequest("GET", "/auth/me", nil, "")
	if resp.IsSuccess() {
		t.Fatal("me without token succeeded")
	}
}
