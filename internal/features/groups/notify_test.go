package groups

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
	views  []View
}

func (r *recordingBroadcaster) Broadcast(event string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if v, ok := payload.(View); ok {
		r.views = append(r.views, v)
	}
	return nil
}

func TestBroadcastCreatedAnnouncesVisibleGroups(t *testing.T) {
	t.Parallel()

	creator, h := newTestCreator(t, newTestStore(t))
	rec := &recordingBroadcaster{}
	BroadcastCreated(h, rec)

	mustCreate(t, creator, CreateInput{Name: "Open Club"})
	mustCreate(t, creator, CreateInput{Name: "Closed Club", Hidden: "1"})
	mustCreate(t, creator, CreateInput{Name: "administrators"})
	require.NoError(t, h.ActionCreate.Wait(context.Background()))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{EventGroupCreated}, rec.events)
	require.Len(t, rec.views, 1)
	assert.Equal(t, "Open Club", rec.views[0].Name)
	assert.Equal(t, "Open%20Club", rec.views[0].NameEncoded)
}

type recordingEmitter struct {
	mu    sync.Mutex
	calls map[string][]string
}

func (r *recordingEmitter) EmitToUser(uid, event string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = map[string][]string{}
	}
	v, _ := payload.(View)
	r.calls[uid] = append(r.calls[uid], event+":"+v.Name)
	return nil
}

func TestNotifyOwnerTellsOnlyTheOwner(t *testing.T) {
	t.Parallel()

	creator, h := newTestCreator(t, newTestStore(t))
	rec := &recordingEmitter{}
	NotifyOwner(h, rec)

	mustCreate(t, creator, CreateInput{Name: "Secret Club", Hidden: "1", OwnerUID: float64(9)})
	mustCreate(t, creator, CreateInput{Name: "Nobody's Club"})
	require.NoError(t, h.ActionCreate.Wait(context.Background()))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, map[string][]string{"9": {EventGroupOwned + ":Secret Club"}}, rec.calls)
}
