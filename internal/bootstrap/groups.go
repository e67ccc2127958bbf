package bootstrap

import (
	"log/slog"

	"github.com/Nour-Ali/NodeBB-nour/internal/features/groups"
	"github.com/Nour-Ali/NodeBB-nour/internal/settings"
	"github.com/Nour-Ali/NodeBB-nour/pkg/config"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

// Groups bundles the wired group feature.
type Groups struct {
	Settings  *settings.Provider
	Hooks     *groups.Hooks
	Creator   *groups.Creator
	Reader    *groups.Reader
	Validator *groups.Validator
	Handler   *groups.Handler
}

// NewGroups wires the group feature over st.
func NewGroups(st store.Store, cfg *config.Config, logger *slog.Logger) *Groups {
	provider := settings.NewProvider(st, cfg.Groups.MaxNameLength, cfg.Groups.SettingsCacheTTL, logger)
	h := groups.NewHooks(logger)

	creator := groups.NewCreator(st, groups.DefaultNames, provider, h, logger,
		groups.WithAtomicWrites(cfg.Groups.AtomicCreate),
	)
	reader := groups.NewReader(st)
	validator := groups.NewValidator(groups.DefaultNames, provider)

	return &Groups{
		Settings:  provider,
		Hooks:     h,
		Creator:   creator,
		Reader:    reader,
		Validator: validator,
		Handler:   groups.NewHandler(creator, reader, validator, logger),
	}
}
