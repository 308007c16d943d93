package main

import (
	"net/http"
	"testing"
)

func TestHealthy(t *testing.T) {
	server := newTestServer(t)

	var resp struct {
		Status string `json:"status"`
	}
	if err := server.Client().Get(t.Context(), "/api/healthy", &resp); err != nil {
		t.Fatalf("get healthy: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("want status ok, got %q", resp.Status)
	}
}

func TestAuthFlow(t *testing.T) {
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()

	userID := register(t, server)
	if userID == "" {
		t.Fatal("register should return a user ID")
	}

	var session struct {
		Authenticated bool   `json:"authenticated"`
		UserID        string `json:"userId"`
	}
	if err := client.Get(ctx, "/api/session", &session); err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !session.Authenticated || session.UserID != userID {
		t.Fatalf("session should belong to %s, got %+v", userID, session)
	}

	if err := client.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := client.Get(ctx, "/api/session", &session); err != nil {
		t.Fatalf("get session after logout: %v", err)
	}
	if session.Authenticated {
		t.Fatal("session should be gone after logout")
	}

	loggedIn, err := client.Login(ctx)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn != userID {
		t.Errorf("login should restore user %s, got %s", userID, loggedIn)
	}
}

func TestLoginWithUnknownToken(t *testing.T) {
	server := newTestServer(t)

	status, err := server.Client().JSON(t.Context(), http.MethodPost, "/api/login",
		map[string]string{"token": "not-a-real-token"}, nil)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if status != http.StatusUnauthorized {
		t.Errorf("want 401, got %d", status)
	}
}

func TestProtectedEndpointsRequireAuth(t *testing.T) {
	server := newTestServer(t)
	ctx := t.Context()

	for _, path := range []string{"/api/profile", "/api/schedule", "/api/history", "/api/analytics"} {
		status, err := server.Client().JSON(ctx, http.MethodGet, path, nil, nil)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if status != http.StatusUnauthorized {
			t.Errorf("GET %s: want 401, got %d", path, status)
		}
	}
}
