package workshop

import (
	"fmt"

	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/id"
)

// Alias is a runnable command script. Root aliases belong directly to a
// collection; sub-aliases hang off a parent alias, forming a command tree.
type Alias struct {
	Collectable
	collectionID  string
	parentID      *string
	subcommandIDs []string
}

// NewAlias creates a root alias or, when parentID is non-nil, a sub-alias.
// The alias starts with the safe stub code and no code versions.
func NewAlias(collectionID, name, docs string, parentID *string, reserved ReservedNames) (*Alias, error) {
	if collectionID == "" {
		return nil, fmt.Errorf("collection ID is required")
	}
	if err := ValidateAliasName(name, parentID == nil, reserved); err != nil {
		return nil, err
	}

	return &Alias{
		Collectable: Collectable{
			id:   id.NewAliasID(),
			name: name,
			docs: docs,
			code: AliasStubCode(name),
		},
		collectionID: collectionID,
		parentID:     parentID,
	}, nil
}

// ReconstructAlias rebuilds an alias from persistence.
func ReconstructAlias(
	aliasID, collectionID, name, docs, code string,
	versions []CodeVersion,
	entitlements []RequiredEntitlement,
	parentID *string,
	subcommandIDs []string,
) (*Alias, error) {
	if aliasID == "" {
		return nil, fmt.Errorf("alias ID is required")
	}
	if collectionID == "" {
		return nil, fmt.Errorf("collection ID is required")
	}

	return &Alias{
		Collectable: Collectable{
			id:           aliasID,
			name:         name,
			docs:         docs,
			code:         code,
			versions:     versions,
			entitlements: entitlements,
		},
		collectionID:  collectionID,
		parentID:      parentID,
		subcommandIDs: subcommandIDs,
	}, nil
}

// CollectionID returns the owning collection's ID.
func (a *Alias) CollectionID() string {
	return a.collectionID
}

// ParentID returns the parent alias ID, or nil for a root alias.
func (a *Alias) ParentID() *string {
	return a.parentID
}

// IsRoot reports whether this alias is listed directly on the collection.
func (a *Alias) IsRoot() bool {
	return a.parentID == nil
}

// SubcommandIDs returns a copy of the child alias ID list.
func (a *Alias) SubcommandIDs() []string {
	out := make([]string, len(a.subcommandIDs))
	copy(out, a.subcommandIDs)
	return out
}

// UpdateInfo renames the alias and replaces its docs.
func (a *Alias) UpdateInfo(name, docs string, reserved ReservedNames) error {
	if err := ValidateAliasName(name, a.IsRoot(), reserved); err != nil {
		return err
	}
	a.updateInfo(name, docs)
	return nil
}

// AttachSubcommand appends a child alias ID.
func (a *Alias) AttachSubcommand(aliasID string) {
	for _, existing := range a.subcommandIDs {
		if existing == aliasID {
			return
		}
	}
	a.subcommandIDs = append(a.subcommandIDs, aliasID)
}

// DetachSubcommand removes a child alias ID.
func (a *Alias) DetachSubcommand(aliasID string) {
	for i, existing := range a.subcommandIDs {
		if existing == aliasID {
			a.subcommandIDs = append(a.subcommandIDs[:i], a.subcommandIDs[i+1:]...)
			return
		}
	}
}

// ValidateAliasName enforces the alias naming rules. Only root alias names
// are checked against the reserved built-in command set, since sub-aliases
// are always invoked behind their parent's name.
func ValidateAliasName(name string, isRoot bool, reserved ReservedNames) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if isRoot && reserved != nil && reserved.IsReserved(name) {
		return errors.NewValidationError(fmt.Sprintf("%s is already a built-in command", name))
	}
	return nil
}
