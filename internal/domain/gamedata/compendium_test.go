package gamedata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

type staticSource struct {
	entities []Entity
	err      error
}

func (s *staticSource) LoadEntities(ctx context.Context) ([]Entity, error) {
	return s.entities, s.err
}

func TestCompendium_LookupBeforeReload(t *testing.T) {
	c := NewCompendium(&staticSource{})

	_, err := c.Lookup("spell", 1)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCompendium_ReloadSwapsSnapshot(t *testing.T) {
	src := &staticSource{entities: []Entity{
		{Type: "spell", ID: 1, Name: "Fireball", IsFree: false},
		{Type: "item", ID: 2, Name: "Rope", IsFree: true},
	}}
	c := NewCompendium(src)
	require.NoError(t, c.Reload(context.Background()))

	e, err := c.Lookup("spell", 1)
	require.NoError(t, err)
	assert.Equal(t, "Fireball", e.Name)
	assert.False(t, e.IsFree)
	assert.Equal(t, 2, c.Size())

	src.entities = []Entity{{Type: "spell", ID: 3, Name: "Haste"}}
	require.NoError(t, c.Reload(context.Background()))

	_, err = c.Lookup("spell", 1)
	assert.True(t, errors.IsNotFoundError(err), "old snapshot entries gone after reload")
	_, err = c.Lookup("spell", 3)
	assert.NoError(t, err)
}

func TestCompendium_ReloadFailureKeepsSnapshot(t *testing.T) {
	src := &staticSource{entities: []Entity{{Type: "spell", ID: 1, Name: "Fireball"}}}
	c := NewCompendium(src)
	require.NoError(t, c.Reload(context.Background()))

	src.err = assert.AnError
	require.Error(t, c.Reload(context.Background()))

	_, err := c.Lookup("spell", 1)
	assert.NoError(t, err, "failed reload must not clobber the snapshot")
}
