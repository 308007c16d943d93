package main

import (
	"testing"

	"github.com/mkettu/fitweek/internal/e2etest"
	"github.com/mkettu/fitweek/internal/testhelpers"
)

// newTestServer starts the application against an in-memory store and
// returns a client with a fresh cookie jar.
func newTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	env := map[string]string{
		"FITWEEK_ADDR":         "localhost:0",
		"FITWEEK_DOCSTORE_URL": ":memory:",
	}
	lookupEnv := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), lookupEnv, run)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	return server
}

// register creates an account on the server and returns the user ID.
func register(t *testing.T, server *e2etest.Server) string {
	t.Helper()
	userID, err := server.Client().Register(t.Context())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return userID
}
