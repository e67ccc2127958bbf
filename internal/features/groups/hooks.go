package groups

import (
	"log/slog"

	"github.com/Nour-Ali/NodeBB-nour/pkg/hooks"
)

// Hook names.
const (
	HookFilterCreate = "filter:group.create"
	HookActionCreate = "action:group.create"
)

// CreatePayload is handed to filter:group.create listeners. Listeners may
// mutate Group in place or return a payload carrying a different Group; Data
// is the caller's input and is informational.
type CreatePayload struct {
	Group *Group
	Data  CreateInput
}

// CreatedEvent is handed to action:group.create listeners. Group is a copy of
// the stored record; changes to it are not persisted. OwnerUID is empty when
// the group was created without an owner.
type CreatedEvent struct {
	Group    *Group
	OwnerUID string
}

// Hooks are the extension points around group creation.
type Hooks struct {
	FilterCreate *hooks.Filter[*CreatePayload]
	ActionCreate *hooks.Action[CreatedEvent]
}

// NewHooks creates empty hooks. Action listener failures are logged on logger.
func NewHooks(logger *slog.Logger) *Hooks {
	return &Hooks{
		FilterCreate: hooks.NewFilter[*CreatePayload](HookFilterCreate),
		ActionCreate: hooks.NewAction[CreatedEvent](HookActionCreate, logger),
	}
}
