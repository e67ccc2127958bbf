package groups

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Nour-Ali/NodeBB-nour/pkg/metrics"
	"github.com/Nour-Ali/NodeBB-nour/pkg/request"
	"github.com/Nour-Ali/NodeBB-nour/pkg/slugify"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

// CreateInput is the caller's description of a new group. Values are loosely
// typed the way they arrive from JSON bodies and forms: flags may be "1", 1 or
// true. A nil Private or OwnerUID means the key was not supplied.
type CreateInput struct {
	Name                interface{}
	Timestamp           interface{}
	System              interface{}
	Hidden              interface{}
	Private             interface{}
	UserTitle           interface{}
	UserTitleEnabled    interface{}
	Description         interface{}
	DisableJoinRequests interface{}
	DisableLeave        interface{}
	OwnerUID            interface{}

	// Extra carries any other input keys through to filter listeners.
	Extra map[string]interface{}
}

// CreateInputFromMap maps a decoded JSON object onto CreateInput.
func CreateInputFromMap(data map[string]interface{}) CreateInput {
	in := CreateInput{}
	for key, value := range data {
		switch key {
		case "name":
			in.Name = value
		case "timestamp":
			in.Timestamp = value
		case "system":
			in.System = value
		case "hidden":
			in.Hidden = value
		case "private":
			in.Private = value
		case "userTitle":
			in.UserTitle = value
		case "userTitleEnabled":
			in.UserTitleEnabled = value
		case "description":
			in.Description = value
		case "disableJoinRequests":
			in.DisableJoinRequests = value
		case "disableLeave":
			in.DisableLeave = value
		case "ownerUid":
			in.OwnerUID = value
		default:
			if in.Extra == nil {
				in.Extra = make(map[string]interface{})
			}
			in.Extra[key] = value
		}
	}
	return in
}

// Creator runs the group creation pipeline.
type Creator struct {
	store     store.Store
	names     NameClassifier
	validator *Validator
	exists    ExistenceChecker
	reader    *Reader
	hooks     *Hooks
	logger    *slog.Logger
	atomic    bool
	now       func() time.Time
}

// Option customises a Creator.
type Option func(*Creator)

// WithAtomicWrites groups the index writes of one creation into a single
// store batch when the store supports it.
func WithAtomicWrites(enabled bool) Option {
	return func(c *Creator) { c.atomic = enabled }
}

// WithExistenceChecker replaces the store-backed existence check.
func WithExistenceChecker(checker ExistenceChecker) Option {
	return func(c *Creator) { c.exists = checker }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Creator) { c.now = now }
}

// NewCreator wires a Creator over st.
func NewCreator(st store.Store, names NameClassifier, settings Settings, hooks *Hooks, logger *slog.Logger, opts ...Option) *Creator {
	c := &Creator{
		store:     st,
		names:     names,
		validator: NewValidator(names, settings),
		exists:    NewStoreExistence(st, names),
		reader:    NewReader(st),
		hooks:     hooks,
		logger:    logger,
		atomic:    true,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create validates in, writes the group and every index entry derived from
// it, and returns the stored record. Validation and uniqueness failures leave
// the store untouched.
func (c *Creator) Create(ctx context.Context, in CreateInput) (*Group, error) {
	g, err := c.create(ctx, in)
	if err != nil {
		metrics.RecordGroupCreateFailure(failureReason(err))
		return nil, err
	}

	metrics.RecordGroupCreated(g.System == 1, g.Hidden == 1)
	c.logger.InfoContext(ctx, "group created",
		slog.String("name", g.Name),
		slog.String("slug", g.Slug),
		slog.Bool("system", g.System == 1),
		slog.Bool("hidden", g.Hidden == 1),
	)
	return g, nil
}

func (c *Creator) create(ctx context.Context, in CreateInput) (*Group, error) {
	rawName, _ := in.Name.(string)
	isSystem := IsSystemGroup(in.System, rawName, c.names)
	timestamp := c.resolveTimestamp(in.Timestamp)

	disableJoinRequests := request.FlagInt(in.DisableJoinRequests)
	if rawName == "administrators" {
		disableJoinRequests = 1
	}
	disableLeave := request.FlagInt(in.DisableLeave)
	isHidden := request.ParseFlag(in.Hidden)

	name, err := c.validator.Validate(ctx, in.Name)
	if err != nil {
		return nil, err
	}

	exists, err := c.exists.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check group existence: %w", err)
	}
	if exists {
		return nil, ErrGroupAlreadyExists
	}

	var owner string
	hasOwner := in.OwnerUID != nil
	if hasOwner {
		var ok bool
		if owner, ok = request.String(in.OwnerUID); !ok || owner == "" {
			return nil, ErrInvalidOwner
		}
	}

	memberCount := 0
	if hasOwner {
		memberCount = 1
	}
	private := 1
	if in.Private != nil {
		private = request.FlagInt(in.Private)
	}

	userTitle := name
	if request.Truthy(in.UserTitle) {
		if s, ok := request.String(in.UserTitle); ok {
			userTitle = s
		}
	}
	description := ""
	if request.Truthy(in.Description) {
		description, _ = request.String(in.Description)
	}

	g := &Group{
		Name:                name,
		Slug:                slugify.Slugify(name),
		CreateTime:          timestamp,
		UserTitle:           userTitle,
		UserTitleEnabled:    request.FlagInt(in.UserTitleEnabled),
		Description:         description,
		MemberCount:         memberCount,
		Hidden:              boolInt(isHidden),
		System:              boolInt(isSystem),
		Private:             private,
		DisableJoinRequests: disableJoinRequests,
		DisableLeave:        disableLeave,
	}

	payload, err := c.hooks.FilterCreate.Fire(ctx, &CreatePayload{Group: g, Data: in})
	if err != nil {
		return nil, err
	}
	if payload == nil || payload.Group == nil || payload.Group.Name == "" {
		return nil, fmt.Errorf("%s returned no group", HookFilterCreate)
	}
	g = payload.Group

	plan := writePlan{
		group:     g,
		timestamp: timestamp,
		owner:     owner,
		hasOwner:  hasOwner,
		visible:   !isHidden && !isSystem,
	}
	if err := c.persist(ctx, plan); err != nil {
		return nil, fmt.Errorf("persist group %q: %w", g.Name, err)
	}

	stored, err := c.reader.Get(ctx, g.Name)
	if err != nil {
		return nil, fmt.Errorf("reload group %q: %w", g.Name, err)
	}

	c.hooks.ActionCreate.Fire(ctx, CreatedEvent{Group: stored.Clone(), OwnerUID: owner})
	return stored, nil
}

// resolveTimestamp keeps a truthy caller timestamp that parses as an integer
// and falls back to the current time otherwise.
func (c *Creator) resolveTimestamp(raw interface{}) int64 {
	if request.Truthy(raw) {
		if ts, ok := request.ParseInt(raw); ok && ts != 0 {
			return ts
		}
	}
	return c.now().UnixMilli()
}

// writePlan captures what persist writes. Visibility and the membership score
// come from the caller's input, not from the filtered record.
type writePlan struct {
	group     *Group
	timestamp int64
	owner     string
	hasOwner  bool
	visible   bool
}

func (c *Creator) persist(ctx context.Context, plan writePlan) error {
	if batcher, ok := c.store.(store.Batcher); ok && c.atomic {
		return batcher.Batch(ctx, func(w store.Writer) error {
			return writeGroup(ctx, w, plan, false)
		})
	}
	return writeGroup(ctx, c.store, plan, true)
}

// writeGroup issues the writes in their fixed order. Every write is an
// idempotent upsert, so repeating a partially applied sequence converges.
func writeGroup(ctx context.Context, w store.Writer, plan writePlan, checkCtx bool) error {
	g := plan.group
	steps := []func() error{
		func() error {
			return w.SortedSetAdd(ctx, keyCreateTime, float64(g.CreateTime), g.Name)
		},
		func() error {
			return w.SetObject(ctx, groupKey(g.Name), g.toHash())
		},
		func() error {
			if !plan.hasOwner {
				return nil
			}
			if err := w.SetAdd(ctx, ownersKey(g.Name), plan.owner); err != nil {
				return err
			}
			return w.SortedSetAdd(ctx, membersKey(g.Name), float64(plan.timestamp), plan.owner)
		},
		func() error {
			if !plan.visible {
				return nil
			}
			return w.SortedSetAddBulk(ctx, []store.SortedSetEntry{
				{Key: keyVisibleCreateTime, Score: float64(plan.timestamp), Member: g.Name},
				{Key: keyVisibleMembers, Score: float64(g.MemberCount), Member: g.Name},
				{Key: keyVisibleName, Score: 0, Member: alphaMember(g.Name)},
			})
		},
		func() error {
			return w.SetObjectField(ctx, keySlugToName, g.Slug, g.Name)
		},
	}

	for _, step := range steps {
		if checkCtx {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IsInputError reports whether err was caused by the caller's input rather
// than by the store or a hook.
func IsInputError(err error) bool {
	return errors.Is(err, ErrNameTooShort) ||
		errors.Is(err, ErrNameTooLong) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrGroupAlreadyExists) ||
		errors.Is(err, ErrInvalidOwner)
}
