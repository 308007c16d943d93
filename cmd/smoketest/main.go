// Command smoketest exercises a running server's core flows: auth,
// profile, plan generation and history. It exits non-zero on the first
// failure, making it suitable for deploy checks.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mkettu/fitweek/internal/e2etest"
	"github.com/mkettu/fitweek/internal/logging"
	"github.com/mkettu/fitweek/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

func testAuth(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()
	var err error

	if _, err = client.Register(ctx); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	if err = client.Logout(ctx); err != nil {
		return fmt.Errorf("logout user: %w", err)
	}
	if _, err = client.Login(ctx); err != nil {
		return fmt.Errorf("login user: %w", err)
	}
	return nil
}

func testSchedule(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	status, err := client.JSON(ctx, http.MethodPut, "/api/profile",
		map[string]any{"weight": 180.0, "height": 70.0, "age": 30, "goal": "Build Muscle"}, nil)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("save profile: unexpected status %d", status)
	}

	var schedule struct {
		Days []struct {
			RoutineName string `json:"routineName"`
		} `json:"days"`
	}
	if status, err = client.JSON(ctx, http.MethodPost, "/api/schedule/generate",
		map[string]any{"replace": true}, &schedule); err != nil {
		return fmt.Errorf("generate schedule: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("generate schedule: unexpected status %d", status)
	}
	if len(schedule.Days) != 7 {
		return fmt.Errorf("generate schedule: want 7 days, got %d", len(schedule.Days))
	}
	return nil
}

func testHistory(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	status, err := client.JSON(ctx, http.MethodPost, "/api/workouts",
		map[string]any{"exerciseId": "squat", "weight": 135.0, "sets": 3, "reps": 8}, nil)
	if err != nil {
		return fmt.Errorf("log workout: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("log workout: unexpected status %d", status)
	}

	var history struct {
		Entries []struct {
			ID string `json:"id"`
		} `json:"entries"`
	}
	if err = client.Get(ctx, "/api/history", &history); err != nil {
		return fmt.Errorf("get history: %w", err)
	}
	if len(history.Entries) == 0 {
		return fmt.Errorf("get history: logged entry missing")
	}
	return nil
}

// testCatalogConcurrently hammers the read-only catalog endpoints to
// shake out races in the shared read pool.
func testCatalogConcurrently(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for range 8 {
		g.Go(func() error {
			var resp struct {
				Exercises []struct {
					ID string `json:"id"`
				} `json:"exercises"`
			}
			if err := client.Get(ctx, "/api/exercises", &resp); err != nil {
				return fmt.Errorf("get exercises: %w", err)
			}
			if len(resp.Exercises) == 0 {
				return fmt.Errorf("get exercises: empty catalog")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("concurrent catalog reads: %w", err)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	// auth must run first to establish the session the others rely on.
	for _, test := range []struct {
		name string
		run  func(*e2etest.Client) error
	}{
		{"auth", testAuth},
		{"schedule", testSchedule},
		{"history", testHistory},
		{"catalog", testCatalogConcurrently},
	} {
		if err = test.run(client); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "smoke test failed",
				slog.String("test", test.name), slog.Any("error", err))
			os.Exit(1)
		}
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
