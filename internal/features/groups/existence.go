package groups

import (
	"context"
	"fmt"

	"github.com/Nour-Ali/NodeBB-nour/pkg/slugify"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

// ExistenceChecker reports whether a name is already taken by a group or a
// user.
type ExistenceChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// StoreExistence answers existence from the store. A name is taken when it is
// a virtual group, when a group record exists under it, or when its slug
// already belongs to a group or a user.
type StoreExistence struct {
	store store.Reader
	names NameClassifier
}

// NewStoreExistence builds a StoreExistence.
func NewStoreExistence(st store.Reader, names NameClassifier) *StoreExistence {
	return &StoreExistence{store: st, names: names}
}

func (e *StoreExistence) Exists(ctx context.Context, name string) (bool, error) {
	if e.names.IsEphemeralGroup(name) {
		return true, nil
	}

	exists, err := e.store.Exists(ctx, groupKey(name))
	if err != nil {
		return false, fmt.Errorf("check group %q: %w", name, err)
	}
	if exists {
		return true, nil
	}

	slug := slugify.Slugify(name)
	if slug == "" {
		return false, nil
	}

	for _, key := range []string{keySlugToName, keyUserSlugToUID} {
		_, taken, err := e.store.GetObjectField(ctx, key, slug)
		if err != nil {
			return false, fmt.Errorf("check slug %q in %s: %w", slug, key, err)
		}
		if taken {
			return true, nil
		}
	}
	return false, nil
}
