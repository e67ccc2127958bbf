package groups

import (
	"context"
	"fmt"

	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

// Sort orders for ListVisible.
const (
	SortByDate  = "date"
	SortByCount = "count"
	SortByAlpha = "alpha"
	DefaultSort = SortByAlpha
)

// Reader serves lookups over the stored records and indices.
type Reader struct {
	store store.Reader
}

// NewReader builds a Reader.
func NewReader(st store.Reader) *Reader {
	return &Reader{store: st}
}

// Get loads the group stored under name.
func (r *Reader) Get(ctx context.Context, name string) (*Group, error) {
	fields, err := r.store.GetObject(ctx, groupKey(name))
	if err != nil {
		return nil, fmt.Errorf("load group %q: %w", name, err)
	}
	if fields == nil {
		return nil, ErrGroupNotFound
	}
	return groupFromHash(fields), nil
}

// GetBySlug resolves slug to a name and loads that group.
func (r *Reader) GetBySlug(ctx context.Context, slug string) (*Group, error) {
	name, ok, err := r.store.GetObjectField(ctx, keySlugToName, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve slug %q: %w", slug, err)
	}
	if !ok {
		return nil, ErrGroupNotFound
	}
	return r.Get(ctx, name)
}

// ListVisible returns visible groups in the window [start, stop] together
// with the total number of visible groups. Newest first for date, largest
// first for count, case-insensitive ascending for alpha.
func (r *Reader) ListVisible(ctx context.Context, sortBy string, start, stop int) ([]*Group, int64, error) {
	var (
		names []string
		total int64
		err   error
	)

	switch sortBy {
	case SortByDate:
		total, names, err = r.window(ctx, keyVisibleCreateTime, start, stop, true)
	case SortByCount:
		total, names, err = r.window(ctx, keyVisibleMembers, start, stop, true)
	case SortByAlpha, "":
		var members []string
		total, members, err = r.window(ctx, keyVisibleName, start, stop, false)
		names = make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, nameFromAlphaMember(m))
		}
	default:
		return nil, 0, fmt.Errorf("unknown sort %q: %w", sortBy, ErrInvalidSort)
	}
	if err != nil {
		return nil, 0, err
	}

	out := make([]*Group, 0, len(names))
	for _, name := range names {
		g, err := r.Get(ctx, name)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, g)
	}
	return out, total, nil
}

func (r *Reader) window(ctx context.Context, key string, start, stop int, reverse bool) (int64, []string, error) {
	total, err := r.store.SortedSetCard(ctx, key)
	if err != nil {
		return 0, nil, fmt.Errorf("count %s: %w", key, err)
	}

	var members []string
	if reverse {
		members, err = r.store.SortedSetRevRange(ctx, key, start, stop)
	} else {
		members, err = r.store.SortedSetRange(ctx, key, start, stop)
	}
	if err != nil {
		return 0, nil, fmt.Errorf("list %s: %w", key, err)
	}
	return total, members, nil
}

// Owners returns the owner uids of name.
func (r *Reader) Owners(ctx context.Context, name string) ([]string, error) {
	if err := r.mustExist(ctx, name); err != nil {
		return nil, err
	}
	owners, err := r.store.SetMembers(ctx, ownersKey(name))
	if err != nil {
		return nil, fmt.Errorf("load owners of %q: %w", name, err)
	}
	return nonNil(owners), nil
}

// Members returns the member uids of name in join order.
func (r *Reader) Members(ctx context.Context, name string) ([]string, error) {
	if err := r.mustExist(ctx, name); err != nil {
		return nil, err
	}
	members, err := r.store.SortedSetRange(ctx, membersKey(name), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("load members of %q: %w", name, err)
	}
	return nonNil(members), nil
}

func (r *Reader) mustExist(ctx context.Context, name string) error {
	exists, err := r.store.Exists(ctx, groupKey(name))
	if err != nil {
		return fmt.Errorf("check group %q: %w", name, err)
	}
	if !exists {
		return ErrGroupNotFound
	}
	return nil
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
