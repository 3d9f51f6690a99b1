// Package resolver looks up display names for ids of spells, creatures,
// gameobjects, quests and items referenced by script parameters.
package resolver

import (
	"context"

	"github.com/AaronLay10/SaiScope/internal/definitions"
)

// NameResolver looks up the display name of a foreign id. A miss returns
// ok=false with a nil error; an error means the backing store could not
// answer.
type NameResolver interface {
	ResolveName(ctx context.Context, role definitions.ParamRole, id int64) (name string, ok bool, err error)
}

// Static resolves from a fixed table keyed by role and id.
type Static map[definitions.ParamRole]map[int64]string

// Set adds one entry.
func (s Static) Set(role definitions.ParamRole, id int64, name string) Static {
	if s[role] == nil {
		s[role] = make(map[int64]string)
	}
	s[role][id] = name
	return s
}

func (s Static) ResolveName(_ context.Context, role definitions.ParamRole, id int64) (string, bool, error) {
	name, ok := s[role][id]
	return name, ok, nil
}

// Chain asks each resolver in turn; the first hit wins. Errors are remembered
// and returned only when no later resolver answers.
type Chain []NameResolver

func (c Chain) ResolveName(ctx context.Context, role definitions.ParamRole, id int64) (string, bool, error) {
	var firstErr error
	for _, r := range c {
		if r == nil {
			continue
		}
		name, ok, err := r.ResolveName(ctx, role, id)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if ok {
			return name, true, nil
		}
	}
	return "", false, firstErr
}
