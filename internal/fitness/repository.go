package fitness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkettu/fitweek/internal/contexthelpers"
	"github.com/mkettu/fitweek/internal/docstore"
)

// repository bundles the per-concern document store repositories.
type repository struct {
	profile  *profileRepository
	routines *routineRepository
	schedule *scheduleRepository
	history  *historyRepository
}

func newRepository(store *docstore.Store, logger *slog.Logger) *repository {
	return &repository{
		profile:  &profileRepository{store: store, logger: logger},
		routines: &routineRepository{store: store, logger: logger},
		schedule: &scheduleRepository{store: store, logger: logger},
		history:  &historyRepository{store: store, logger: logger},
	}
}

// userIDFromContext extracts the authenticated user, set by the web
// layer's session middleware.
func userIDFromContext(ctx context.Context) (string, error) {
	uid := contexthelpers.UserID(ctx)
	if uid == "" {
		return "", ErrNotAuthenticated
	}
	return uid, nil
}

// Document paths. Every user's data hangs under users/{uid}.

func profilePath(uid string) string {
	return fmt.Sprintf("users/%s/profile/info", uid)
}

func routinesPath(uid string) string {
	return fmt.Sprintf("users/%s/routines", uid)
}

func routinePath(uid, id string) string {
	return fmt.Sprintf("users/%s/routines/%s", uid, id)
}

func schedulePath(uid, day string) string {
	return fmt.Sprintf("users/%s/schedule/%s", uid, day)
}

func scheduleCollection(uid string) string {
	return fmt.Sprintf("users/%s/schedule", uid)
}

func historyPath(uid, id string) string {
	return fmt.Sprintf("users/%s/history/%s", uid, id)
}

func historyCollection(uid string) string {
	return fmt.Sprintf("users/%s/history", uid)
}
