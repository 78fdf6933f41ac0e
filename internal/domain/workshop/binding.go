package workshop

import "strings"

// Binding is a per-subscriber rename of a collection member: invoking `name`
// runs the collectable identified by `id`.
type Binding struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// BindingKind selects which validation rules apply during reconciliation.
type BindingKind int

const (
	BindingKindAlias BindingKind = iota
	BindingKindSnippet
)

// BindingTarget is the minimal view of a collection member the binding engine
// needs: its id and its default invocation name.
type BindingTarget struct {
	ID   string
	Name string
}

// ReservedNames reports whether a name collides with a built-in command and
// therefore cannot be bound to an alias.
type ReservedNames interface {
	IsReserved(name string) bool
}

// ReservedNameSet is a static ReservedNames implementation.
type ReservedNameSet map[string]struct{}

func (s ReservedNameSet) IsReserved(name string) bool {
	_, ok := s[name]
	return ok
}

// ReconcileBindings reconciles a client-supplied binding list against the
// collection's current member set, producing a sanitized, complete list.
//
// A nil proposed list yields the default binding for every member. Otherwise
// members missing from the proposal are gap-filled with their default name so
// every member stays invocable, then every binding is validated: no
// whitespace in names, alias names must not shadow a reserved built-in
// command, snippet names must be at least two characters. Bindings whose id
// is no longer in the member set are silently dropped; a client echoing a
// stale binding for a just-deleted member is not an error.
//
// The first rule violation aborts the whole reconciliation.
func ReconcileBindings(members []BindingTarget, proposed []Binding, kind BindingKind, reserved ReservedNames) ([]Binding, error) {
	if proposed == nil {
		out := make([]Binding, 0, len(members))
		for _, m := range members {
			out = append(out, Binding{Name: m.Name, ID: m.ID})
		}
		return out, nil
	}

	memberIDs := make(map[string]bool, len(members))
	for _, m := range members {
		memberIDs[m.ID] = true
	}

	bindings := make([]Binding, len(proposed))
	copy(bindings, proposed)

	// gap-fill: every member must be bound under some name
	bound := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		bound[b.ID] = true
	}
	for _, m := range members {
		if !bound[m.ID] {
			bindings = append(bindings, Binding{Name: m.Name, ID: m.ID})
		}
	}

	for _, b := range bindings {
		if strings.ContainsAny(b.Name, " \t\n") {
			return nil, ErrBindingWhitespace()
		}
		if kind == BindingKindAlias && reserved != nil && reserved.IsReserved(b.Name) {
			return nil, ErrBindingReserved(b.Name)
		}
		if kind == BindingKindSnippet && len(b.Name) < MinSnippetNameLength {
			return nil, ErrBindingShortName()
		}
	}

	// drop bindings to members that no longer exist
	out := bindings[:0]
	for _, b := range bindings {
		if memberIDs[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}
