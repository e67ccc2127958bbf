package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Nour-Ali/NodeBB-nour/internal/features/groups"
)

// GroupCreator creates groups.
type GroupCreator interface {
	Create(ctx context.Context, in groups.CreateInput) (*groups.Group, error)
}

// SystemGroups are created on first start.
var SystemGroups = []groups.CreateInput{
	{
		Name:                "administrators",
		UserTitle:           "Admin",
		Description:         "Forum Administrators",
		System:              true,
		Private:             "1",
		DisableJoinRequests: "1",
	},
	{
		Name:                "Global Moderators",
		UserTitle:           "Global Moderator",
		Description:         "Forum wide moderators",
		System:              true,
		Private:             "1",
		DisableJoinRequests: "1",
	},
	{Name: "registered-users", System: true, Hidden: "1", Private: "1", DisableJoinRequests: "1"},
	{Name: "verified-users", System: true, Hidden: "1", Private: "1", DisableJoinRequests: "1"},
	{Name: "unverified-users", System: true, Hidden: "1", Private: "1", DisableJoinRequests: "1"},
}

// EnsureSystemGroups creates every missing system group. Groups that already
// exist are left as they are.
func EnsureSystemGroups(ctx context.Context, creator GroupCreator, logger *slog.Logger) error {
	created := 0
	for _, in := range SystemGroups {
		name, _ := in.Name.(string)

		_, err := creator.Create(ctx, in)
		switch {
		case errors.Is(err, groups.ErrGroupAlreadyExists):
			logger.Debug("system group already present", slog.String("name", name))
		case err != nil:
			return fmt.Errorf("create system group %q: %w", name, err)
		default:
			created++
			logger.Info("system group created", slog.String("name", name))
		}
	}

	logger.Info("system groups ensured", slog.Int("created", created), slog.Int("total", len(SystemGroups)))
	return nil
}
