package workshop

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

func newTestCollection(t *testing.T) *Collection {
	t.Helper()
	c, err := NewCollection("Spellbook", "A pile of casting aliases", "", 1234)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestNewCollection_ValidInput(t *testing.T) {
	c := newTestCollection(t)

	assert.True(t, strings.HasPrefix(c.ID(), "col_"))
	assert.Equal(t, "Spellbook", c.Name())
	assert.Equal(t, int64(1234), c.Owner())
	assert.Equal(t, StatePrivate, c.State())
	assert.Empty(t, c.AliasIDs())
	assert.Empty(t, c.SnippetIDs())
	assert.Empty(t, c.Tags())
	assert.Zero(t, c.NumSubscribers())
	assert.False(t, c.CreatedAt().IsZero())
}

func TestNewCollection_RequiresNameAndDescription(t *testing.T) {
	_, err := NewCollection("", "desc", "", 1)
	assert.True(t, errors.IsValidationError(err))

	_, err = NewCollection("name", "", "", 1)
	assert.True(t, errors.IsValidationError(err))
}

func TestSetState_SameStateIsNoOp(t *testing.T) {
	c := newTestCollection(t)
	before := c.LastEdited()

	require.NoError(t, c.SetState(StatePrivate, true))
	assert.Equal(t, before, c.LastEdited())
}

func TestSetState_PublishRequiresAChild(t *testing.T) {
	c := newTestCollection(t)

	err := c.SetState(StatePublished, true)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, StatePrivate, c.State())

	c.AttachAlias("als_1")
	require.NoError(t, c.SetState(StatePublished, true))
	assert.Equal(t, StatePublished, c.State())
}

func TestSetState_PublishedIsOneWayForOwners(t *testing.T) {
	c := newTestCollection(t)
	c.AttachAlias("als_1")
	require.NoError(t, c.SetState(StatePublished, true))

	err := c.SetState(StatePrivate, true)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, StatePublished, c.State())
}

func TestSetState_ModeratorOverrideLeavesPublished(t *testing.T) {
	c := newTestCollection(t)
	c.AttachAlias("als_1")
	require.NoError(t, c.SetState(StatePublished, true))

	require.NoError(t, c.SetState(StatePrivate, false))
	assert.Equal(t, StatePrivate, c.State())
}

func TestSetState_ModeratorCanPublishEmptyCollection(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.SetState(StatePublished, false))
	assert.Equal(t, StatePublished, c.State())
}

func TestAddTag_Idempotent(t *testing.T) {
	c := newTestCollection(t)

	c.AddTag("utility")
	c.AddTag("utility")
	c.AddTag("combat")

	assert.Equal(t, []string{"utility", "combat"}, c.Tags())
}

func TestRemoveTag(t *testing.T) {
	c := newTestCollection(t)
	c.AddTag("utility")
	c.AddTag("combat")

	c.RemoveTag("utility")
	assert.Equal(t, []string{"combat"}, c.Tags())

	c.RemoveTag("missing")
	assert.Equal(t, []string{"combat"}, c.Tags())
}

func TestAttachDetachChildren(t *testing.T) {
	c := newTestCollection(t)

	c.AttachAlias("als_1")
	c.AttachAlias("als_1")
	c.AttachSnippet("snp_1")

	assert.Equal(t, []string{"als_1"}, c.AliasIDs())
	assert.Equal(t, []string{"snp_1"}, c.SnippetIDs())

	c.DetachAlias("als_1")
	c.DetachSnippet("snp_1")
	assert.Empty(t, c.AliasIDs())
	assert.Empty(t, c.SnippetIDs())
}

func TestUpdateInfo_BumpsLastEdited(t *testing.T) {
	c := newTestCollection(t)
	before := c.LastEdited()
	time.Sleep(time.Millisecond)

	require.NoError(t, c.UpdateInfo("New Name", "New description", "https://img.example/x.png"))

	assert.Equal(t, "New Name", c.Name())
	assert.Equal(t, "https://img.example/x.png", c.Image())
	assert.True(t, c.LastEdited().After(before))
}

func TestCanDelete_PublishedGuard(t *testing.T) {
	c := newTestCollection(t)
	c.AttachAlias("als_1")
	require.NoError(t, c.SetState(StatePublished, true))

	err := c.CanDelete(true)
	assert.True(t, errors.IsForbiddenError(err))

	assert.NoError(t, c.CanDelete(false))
}

func TestReconstructCollection_RejectsInvalidState(t *testing.T) {
	now := time.Now().UTC()
	_, err := ReconstructCollection("col_x", "n", "d", "", 1, nil, nil, nil, "BOGUS", 0, 0, now, now)
	assert.Error(t, err)
}
