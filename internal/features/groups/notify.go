package groups

import (
	"context"

	"github.com/Nour-Ali/NodeBB-nour/pkg/hooks"
)

// EventGroupCreated is pushed to real-time clients after a visible group is
// created.
const EventGroupCreated = "event:group.created"

// EventGroupOwned is pushed to the owner's sockets when a group is created
// for them, hidden and system groups included.
const EventGroupOwned = "event:group.owned"

// Broadcaster pushes an event to connected clients.
type Broadcaster interface {
	Broadcast(event string, payload any) error
}

// UserEmitter pushes an event to the sockets of one user.
type UserEmitter interface {
	EmitToUser(uid, event string, payload any) error
}

// BroadcastCreated registers an action:group.create listener that announces
// new visible groups on b. Hidden and system groups are not announced.
func BroadcastCreated(h *Hooks, b Broadcaster) {
	h.ActionCreate.Register("realtime:broadcast", hooks.DefaultPriority, func(_ context.Context, ev CreatedEvent) error {
		if ev.Group == nil || ev.Group.Hidden == 1 || ev.Group.System == 1 {
			return nil
		}
		return b.Broadcast(EventGroupCreated, NewView(ev.Group))
	})
}

// NotifyOwner registers an action:group.create listener that tells the initial
// owner about the new group.
func NotifyOwner(h *Hooks, e UserEmitter) {
	h.ActionCreate.Register("realtime:owner", hooks.DefaultPriority, func(_ context.Context, ev CreatedEvent) error {
		if ev.Group == nil || ev.OwnerUID == "" {
			return nil
		}
		return e.EmitToUser(ev.OwnerUID, EventGroupOwned, NewView(ev.Group))
	})
}
