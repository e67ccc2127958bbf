package groups

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nour-Ali/NodeBB-nour/pkg/hooks"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store/mocks"
)

func TestCreateWritesRecordAndIndices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	creator, _ := newTestCreator(t, st)

	g := mustCreate(t, creator, CreateInput{
		Name:        "Test Group",
		Timestamp:   float64(1000),
		Description: "A test",
		OwnerUID:    "42",
	})

	assert.Equal(t, "Test Group", g.Name)
	assert.Equal(t, "test-group", g.Slug)
	assert.EqualValues(t, 1000, g.CreateTime)
	assert.Equal(t, "Test Group", g.UserTitle)
	assert.Equal(t, "A test", g.Description)
	assert.Equal(t, 1, g.MemberCount)
	assert.Equal(t, 0, g.Hidden)
	assert.Equal(t, 0, g.System)
	assert.Equal(t, 1, g.Private)

	hash, err := st.GetObject(ctx, "group:Test Group")
	require.NoError(t, err)
	assert.Equal(t, "1000", hash["createtime"])
	assert.Equal(t, "test-group", hash["slug"])
	assert.Equal(t, "0", hash["disableJoinRequests"])

	score, ok, err := st.SortedSetScore(ctx, "groups:createtime", "Test Group")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 1000, score)

	isOwner, err := st.IsSetMember(ctx, "group:Test Group:owners", "42")
	require.NoError(t, err)
	assert.True(t, isOwner)

	score, ok, err = st.SortedSetScore(ctx, "group:Test Group:members", "42")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 1000, score)

	score, ok, err = st.SortedSetScore(ctx, "groups:visible:createtime", "Test Group")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 1000, score)

	score, ok, err = st.SortedSetScore(ctx, "groups:visible:memberCount", "Test Group")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 1, score)

	score, ok, err = st.SortedSetScore(ctx, "groups:visible:name", "test group:Test Group")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 0, score)

	name, ok, err := st.GetObjectField(ctx, "groupslug:groupname", "test-group")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Test Group", name)
}

func TestCreateWithoutOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	creator, _ := newTestCreator(t, st)

	g := mustCreate(t, creator, CreateInput{Name: "Lonely"})
	assert.Equal(t, 0, g.MemberCount)
	assert.Equal(t, fixedNow.UnixMilli(), g.CreateTime)

	exists, err := st.Exists(ctx, "group:Lonely:owners")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = st.Exists(ctx, "group:Lonely:members")
	require.NoError(t, err)
	assert.False(t, exists)

	score, ok, err := st.SortedSetScore(ctx, "groups:visible:memberCount", "Lonely")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 0, score)
}

func TestCreateHiddenAndSystemGroupsStayOutOfVisibleIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         CreateInput
		wantHidden int
		wantSystem int
	}{
		{name: "hidden", in: CreateInput{Name: "Secret", Hidden: "1"}, wantHidden: 1},
		{name: "hidden numeric", in: CreateInput{Name: "Secret", Hidden: float64(1)}, wantHidden: 1},
		{name: "system flag", in: CreateInput{Name: "Secret", System: true}, wantSystem: 1},
		{name: "built-in name", in: CreateInput{Name: "registered-users"}, wantSystem: 1},
		{name: "privilege group", in: CreateInput{Name: "cid:1:privileges:groups:find", Hidden: "1"}, wantHidden: 1, wantSystem: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			st := newTestStore(t)
			creator, _ := newTestCreator(t, st)

			g := mustCreate(t, creator, tt.in)
			assert.Equal(t, tt.wantHidden, g.Hidden)
			assert.Equal(t, tt.wantSystem, g.System)

			_, ok, err := st.SortedSetScore(ctx, "groups:createtime", g.Name)
			require.NoError(t, err)
			assert.True(t, ok)

			for _, key := range []string{"groups:visible:createtime", "groups:visible:memberCount", "groups:visible:name"} {
				card, err := st.SortedSetCard(ctx, key)
				require.NoError(t, err)
				assert.Zero(t, card, key)
			}
		})
	}
}

func TestCreateAdministratorsDisablesJoinRequests(t *testing.T) {
	t.Parallel()

	creator, _ := newTestCreator(t, newTestStore(t))
	g := mustCreate(t, creator, CreateInput{Name: "administrators", DisableJoinRequests: "0"})
	assert.Equal(t, 1, g.DisableJoinRequests)
	assert.Equal(t, 1, g.System)
}

func TestCreateNormalisesFlagsAndText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    CreateInput
		check func(t *testing.T, g *Group)
	}{
		{
			name: "private defaults to 1",
			in:   CreateInput{Name: "G"},
			check: func(t *testing.T, g *Group) {
				assert.Equal(t, 1, g.Private)
			},
		},
		{
			name: "private string zero",
			in:   CreateInput{Name: "G", Private: "0"},
			check: func(t *testing.T, g *Group) {
				assert.Equal(t, 0, g.Private)
			},
		},
		{
			name: "private numeric one",
			in:   CreateInput{Name: "G", Private: float64(1)},
			check: func(t *testing.T, g *Group) {
				assert.Equal(t, 1, g.Private)
			},
		},
		{
			name: "flags parse leading digits",
			in:   CreateInput{Name: "G", UserTitleEnabled: "1", DisableLeave: "1x", DisableJoinRequests: "yes"},
			check: func(t *testing.T, g *Group) {
				assert.Equal(t, 1, g.UserTitleEnabled)
				assert.Equal(t, 1, g.DisableLeave)
				assert.Equal(t, 0, g.DisableJoinRequests)
			},
		},
		{
			name: "custom user title",
			in:   CreateInput{Name: "G", UserTitle: "Gurus"},
			check: func(t *testing.T, g *Group) {
				assert.Equal(t, "Gurus", g.UserTitle)
			},
		},
		{
			name: "empty user title falls back to name",
			in:   CreateInput{Name: "G", UserTitle: ""},
			check: func(t *testing.T, g *Group) {
				assert.Equal(t, "G", g.UserTitle)
				assert.Equal(t, "", g.Description)
			},
		},
		{
			name: "numeric owner",
			in:   CreateInput{Name: "G", OwnerUID: float64(7)},
			check: func(t *testing.T, g *Group) {
				assert.Equal(t, 1, g.MemberCount)
			},
		},
		{
			name: "string timestamp",
			in:   CreateInput{Name: "G", Timestamp: "1234"},
			check: func(t *testing.T, g *Group) {
				assert.EqualValues(t, 1234, g.CreateTime)
			},
		},
		{
			name: "unparsable timestamp falls back to now",
			in:   CreateInput{Name: "G", Timestamp: "soon"},
			check: func(t *testing.T, g *Group) {
				assert.Equal(t, fixedNow.UnixMilli(), g.CreateTime)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			creator, _ := newTestCreator(t, newTestStore(t))
			tt.check(t, mustCreate(t, creator, tt.in))
		})
	}
}

func TestCreateRejectsWithoutWriting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, st store.Store, c *Creator)
		in    CreateInput
		want  error
	}{
		{name: "empty name", in: CreateInput{Name: ""}, want: ErrNameTooShort},
		{name: "colon", in: CreateInput{Name: "a:b"}, want: ErrInvalidName},
		{name: "guests", in: CreateInput{Name: "guests"}, want: ErrInvalidName},
		{name: "virtual group", in: CreateInput{Name: "spiders"}, want: ErrGroupAlreadyExists},
		{name: "invalid owner", in: CreateInput{Name: "G", OwnerUID: ""}, want: ErrInvalidOwner},
		{name: "structured owner", in: CreateInput{Name: "G", OwnerUID: map[string]interface{}{}}, want: ErrInvalidOwner},
		{
			name: "user slug taken",
			setup: func(t *testing.T, st store.Store, _ *Creator) {
				require.NoError(t, st.SetObjectField(context.Background(), "userslug:uid", "john", "5"))
			},
			in:   CreateInput{Name: "John"},
			want: ErrGroupAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			st := newTestStore(t)
			creator, _ := newTestCreator(t, st)
			if tt.setup != nil {
				tt.setup(t, st, creator)
			}

			_, err := creator.Create(ctx, tt.in)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, IsInputError(err))

			card, err := st.SortedSetCard(ctx, "groups:createtime")
			require.NoError(t, err)
			assert.Zero(t, card)
		})
	}
}

func TestCreateDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	creator, _ := newTestCreator(t, st)

	mustCreate(t, creator, CreateInput{Name: "Test Group", OwnerUID: "1"})

	_, err := creator.Create(ctx, CreateInput{Name: "Test Group", OwnerUID: "2"})
	require.ErrorIs(t, err, ErrGroupAlreadyExists)

	// same slug, different name
	_, err = creator.Create(ctx, CreateInput{Name: "test group"})
	require.ErrorIs(t, err, ErrGroupAlreadyExists)

	owners, err := st.SetMembers(ctx, "group:Test Group:owners")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, owners)
}

func TestCreateFilterCanReshapeRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	creator, h := newTestCreator(t, st)

	h.FilterCreate.Register("theme", 5, func(_ context.Context, p *CreatePayload) (*CreatePayload, error) {
		if p.Group.Extra == nil {
			p.Group.Extra = map[string]string{}
		}
		color, _ := p.Data.Extra["color"].(string)
		p.Group.Extra["color"] = color
		p.Group.Description = "filtered"
		return p, nil
	})

	g := mustCreate(t, creator, CreateInput{
		Name:  "Painters",
		Extra: map[string]interface{}{"color": "red"},
	})
	assert.Equal(t, "filtered", g.Description)
	assert.Equal(t, "red", g.Extra["color"])

	hash, err := st.GetObject(ctx, "group:Painters")
	require.NoError(t, err)
	assert.Equal(t, "red", hash["color"])
	assert.Equal(t, "filtered", hash["description"])
}

func TestCreateFilterErrorAbortsBeforeWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	creator, h := newTestCreator(t, st)

	veto := errors.New("vetoed")
	h.FilterCreate.Register("veto", hooks.DefaultPriority, func(_ context.Context, p *CreatePayload) (*CreatePayload, error) {
		return p, veto
	})

	_, err := creator.Create(ctx, CreateInput{Name: "Nope"})
	require.ErrorIs(t, err, veto)
	assert.False(t, IsInputError(err))

	exists, err := st.Exists(ctx, "group:Nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateFilterMustReturnGroup(t *testing.T) {
	t.Parallel()

	creator, h := newTestCreator(t, newTestStore(t))
	h.FilterCreate.Register("broken", hooks.DefaultPriority, func(context.Context, *CreatePayload) (*CreatePayload, error) {
		return &CreatePayload{}, nil
	})

	_, err := creator.Create(context.Background(), CreateInput{Name: "G"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), HookFilterCreate)
}

func TestCreateFiresAction(t *testing.T) {
	t.Parallel()

	creator, h := newTestCreator(t, newTestStore(t))

	var (
		mu   sync.Mutex
		seen []string
	)
	h.ActionCreate.Register("record", hooks.DefaultPriority, func(_ context.Context, ev CreatedEvent) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, ev.Group.Name)
		ev.Group.Name = "mutated"
		return nil
	})

	g := mustCreate(t, creator, CreateInput{Name: "Announced"})
	require.NoError(t, h.ActionCreate.Wait(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Announced"}, seen)
	assert.Equal(t, "Announced", g.Name)
}

func TestCreateSequentialWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	creator, _ := newTestCreator(t, st, WithAtomicWrites(false))

	mustCreate(t, creator, CreateInput{Name: "Seq", OwnerUID: "3"})

	_, ok, err := st.GetObjectField(ctx, "groupslug:groupname", "seq")
	require.NoError(t, err)
	assert.True(t, ok)
}

// failingBatchStore fails the last write of every batch.
type failingBatchStore struct {
	*store.SQL
}

type failSlugWriter struct {
	store.Writer
}

func (failSlugWriter) SetObjectField(context.Context, string, string, string) error {
	return errors.New("disk full")
}

func (s failingBatchStore) Batch(ctx context.Context, fn func(w store.Writer) error) error {
	return s.SQL.Batch(ctx, func(w store.Writer) error {
		return fn(failSlugWriter{Writer: w})
	})
}

func TestCreateAtomicBatchLeavesNothingOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sqlStore := newTestStore(t)
	creator, _ := newTestCreator(t, failingBatchStore{SQL: sqlStore})

	_, err := creator.Create(ctx, CreateInput{Name: "Doomed", OwnerUID: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	for _, key := range []string{"groups:createtime", "groups:visible:name", "group:Doomed:members"} {
		card, err := sqlStore.SortedSetCard(ctx, key)
		require.NoError(t, err)
		assert.Zero(t, card, key)
	}
	exists, err := sqlStore.Exists(ctx, "group:Doomed")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateStopsAtFirstFailedWrite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)

	st.EXPECT().Exists(gomock.Any(), "group:Broken").Return(false, nil)
	st.EXPECT().GetObjectField(gomock.Any(), gomock.Any(), "broken").Return("", false, nil).Times(2)
	st.EXPECT().SortedSetAdd(gomock.Any(), "groups:createtime", gomock.Any(), "Broken").Return(errors.New("connection reset"))

	creator, _ := newTestCreator(t, st)
	_, err := creator.Create(context.Background(), CreateInput{Name: "Broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.False(t, IsInputError(err))
}

func TestCreateExistenceErrorIsReported(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().Exists(gomock.Any(), "group:G").Return(false, errors.New("timeout"))

	creator, _ := newTestCreator(t, st)
	_, err := creator.Create(context.Background(), CreateInput{Name: "G"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestCreateInputFromMap(t *testing.T) {
	t.Parallel()

	in := CreateInputFromMap(map[string]interface{}{
		"name":      "G",
		"ownerUid":  float64(4),
		"private":   "0",
		"hidden":    true,
		"timestamp": float64(99),
		"icon":      "fa-users",
	})

	assert.Equal(t, "G", in.Name)
	assert.Equal(t, float64(4), in.OwnerUID)
	assert.Equal(t, "0", in.Private)
	assert.Equal(t, true, in.Hidden)
	assert.Equal(t, float64(99), in.Timestamp)
	assert.Equal(t, map[string]interface{}{"icon": "fa-users"}, in.Extra)
	assert.Nil(t, in.System)
}
