package envstruct_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mkettu/fitweek/internal/envstruct"
)

type testConfig struct {
	Addr      string `env:"TEST_ADDR" envDefault:"localhost:8080"`
	SqliteURL string `env:"TEST_SQLITE_URL"`
	MaxConns  int    `env:"TEST_MAX_CONNS" envDefault:"10"`
	Verbose   bool   `env:"TEST_VERBOSE" envDefault:"false"`
	untagged  string //nolint:unused // asserts untagged fields are skipped.
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestPopulate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    testConfig
		wantErr bool
	}{
		{
			name: "all set",
			env: map[string]string{
				"TEST_ADDR":       "localhost:0",
				"TEST_SQLITE_URL": ":memory:",
				"TEST_MAX_CONNS":  "25",
				"TEST_VERBOSE":    "true",
			},
			want: testConfig{
				Addr:      "localhost:0",
				SqliteURL: ":memory:",
				MaxConns:  25,
				Verbose:   true,
			},
		},
		{
			name: "defaults apply",
			env:  map[string]string{"TEST_SQLITE_URL": "./app.sqlite3"},
			want: testConfig{
				Addr:      "localhost:8080",
				SqliteURL: "./app.sqlite3",
				MaxConns:  10,
				Verbose:   false,
			},
		},
		{
			name:    "missing required",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "malformed int",
			env: map[string]string{
				"TEST_SQLITE_URL": ":memory:",
				"TEST_MAX_CONNS":  "lots",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg testConfig
			err := envstruct.Populate(&cfg, lookupFrom(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Populate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, cfg, cmp.AllowUnexported(testConfig{})); diff != "" {
				t.Errorf("Populate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPopulateRejectsNonStructs(t *testing.T) {
	lookup := lookupFrom(nil)

	var s string
	if err := envstruct.Populate(&s, lookup); !errors.Is(err, envstruct.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for pointer to string, got %v", err)
	}
	var cfg testConfig
	if err := envstruct.Populate(cfg, lookup); !errors.Is(err, envstruct.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for non-pointer, got %v", err)
	}
}
