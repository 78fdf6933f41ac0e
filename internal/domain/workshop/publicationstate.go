package workshop

import (
	"strings"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

// PublicationState represents the publication lifecycle stage of a collection.
type PublicationState string

const (
	StatePrivate   PublicationState = "PRIVATE"
	StateUnlisted  PublicationState = "UNLISTED"
	StatePublished PublicationState = "PUBLISHED"
)

// ValidPublicationStates is the set of recognized publication states.
var ValidPublicationStates = map[PublicationState]bool{
	StatePrivate:   true,
	StateUnlisted:  true,
	StatePublished: true,
}

// ParsePublicationState parses a case-insensitive state string.
func ParsePublicationState(s string) (PublicationState, error) {
	state := PublicationState(strings.ToUpper(s))
	if !ValidPublicationStates[state] {
		return "", errors.NewValidationError(s + " is not a valid publication state")
	}
	return state, nil
}

func (s PublicationState) String() string {
	return string(s)
}
