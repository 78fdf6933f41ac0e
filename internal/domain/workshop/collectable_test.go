package workshop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

func newTestAlias(t *testing.T) *Alias {
	t.Helper()
	a, err := NewAlias("col_1", "fireball", "casts fireball", nil, testReserved)
	require.NoError(t, err)
	return a
}

func TestNewAlias_StartsWithStubCode(t *testing.T) {
	a := newTestAlias(t)

	assert.True(t, strings.HasPrefix(a.ID(), "als_"))
	assert.True(t, a.IsRoot())
	assert.Contains(t, a.Code(), "`fireball` alias does not have an active code version")
	assert.Empty(t, a.CodeVersions())
}

func TestNewAlias_RootNameCannotShadowBuiltin(t *testing.T) {
	_, err := NewAlias("col_1", "roll", "", nil, testReserved)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewAlias_SubAliasMayShadowBuiltin(t *testing.T) {
	parent := "als_parent"
	a, err := NewAlias("col_1", "roll", "", &parent, testReserved)
	require.NoError(t, err)
	assert.False(t, a.IsRoot())
}

func TestNewSnippet_StartsWithStubCode(t *testing.T) {
	s, err := NewSnippet("col_1", "adv", "advantage")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s.ID(), "snp_"))
	assert.Contains(t, s.Code(), "`adv` snippet does not have an active code version")
}

func TestNewSnippet_RejectsSingleCharacterName(t *testing.T) {
	_, err := NewSnippet("col_1", "a", "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewCodeVersion_NumbersAreMaxPlusOne(t *testing.T) {
	a := newTestAlias(t)

	v1, err := a.NewCodeVersion("echo one", AliasSizeLimit)
	require.NoError(t, err)
	v2, err := a.NewCodeVersion("echo two", AliasSizeLimit)
	require.NoError(t, err)

	assert.Equal(t, 1, v1.Version)
	assert.Equal(t, 2, v2.Version)
	assert.False(t, v1.IsCurrent, "new versions must not be current")
	assert.False(t, v2.IsCurrent)
	assert.Contains(t, a.Code(), "does not have an active code version", "code unchanged until activation")
}

func TestNewCodeVersion_EnforcesSizeLimit(t *testing.T) {
	a := newTestAlias(t)

	_, err := a.NewCodeVersion(strings.Repeat("x", AliasSizeLimit+1), AliasSizeLimit)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSetActiveCodeVersion_ExactlyOneCurrent(t *testing.T) {
	a := newTestAlias(t)
	_, err := a.NewCodeVersion("echo one", AliasSizeLimit)
	require.NoError(t, err)
	_, err = a.NewCodeVersion("echo two", AliasSizeLimit)
	require.NoError(t, err)

	active, err := a.SetActiveCodeVersion(1)
	require.NoError(t, err)
	assert.True(t, active.IsCurrent)
	assert.Equal(t, "echo one", a.Code())

	_, err = a.SetActiveCodeVersion(2)
	require.NoError(t, err)
	assert.Equal(t, "echo two", a.Code())

	current := 0
	for _, v := range a.CodeVersions() {
		if v.IsCurrent {
			current++
		}
	}
	assert.Equal(t, 1, current)
}

func TestSetActiveCodeVersion_UnknownVersion(t *testing.T) {
	a := newTestAlias(t)

	_, err := a.SetActiveCodeVersion(7)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddEntitlement_Rules(t *testing.T) {
	a := newTestAlias(t)

	err := a.AddEntitlement("spell", 42, true, false)
	assert.True(t, errors.IsValidationError(err), "free entities cannot gate")

	require.NoError(t, a.AddEntitlement("spell", 42, false, false))

	err = a.AddEntitlement("spell", 42, false, false)
	assert.True(t, errors.IsConflictError(err), "duplicate (type, id) pair")

	require.NoError(t, a.AddEntitlement("spell", 43, false, true))
	assert.Len(t, a.Entitlements(), 2)
}

func TestRemoveEntitlement_Rules(t *testing.T) {
	a := newTestAlias(t)
	require.NoError(t, a.AddEntitlement("spell", 42, false, false))
	require.NoError(t, a.AddEntitlement("spell", 43, false, true))

	err := a.RemoveEntitlement("spell", 99, false)
	assert.True(t, errors.IsConflictError(err), "removing an absent entitlement conflicts")

	err = a.RemoveEntitlement("spell", 43, false)
	assert.True(t, errors.IsForbiddenError(err), "required gates need moderator override")

	require.NoError(t, a.RemoveEntitlement("spell", 43, true))
	require.NoError(t, a.RemoveEntitlement("spell", 42, false))
	assert.Empty(t, a.Entitlements())
}

func TestAliasSubcommands(t *testing.T) {
	a := newTestAlias(t)

	a.AttachSubcommand("als_sub1")
	a.AttachSubcommand("als_sub1")
	a.AttachSubcommand("als_sub2")
	assert.Equal(t, []string{"als_sub1", "als_sub2"}, a.SubcommandIDs())

	a.DetachSubcommand("als_sub1")
	assert.Equal(t, []string{"als_sub2"}, a.SubcommandIDs())
}

func TestAliasUpdateInfo(t *testing.T) {
	a := newTestAlias(t)

	err := a.UpdateInfo("roll", "", testReserved)
	assert.True(t, errors.IsValidationError(err))

	err = a.UpdateInfo("fire ball", "", testReserved)
	assert.True(t, errors.IsValidationError(err))

	require.NoError(t, a.UpdateInfo("fb", "shorter", testReserved))
	assert.Equal(t, "fb", a.Name())
	assert.Equal(t, "shorter", a.Docs())
}

func TestAliasEventSubScore(t *testing.T) {
	assert.Equal(t, 1, AliasEvent{Type: EventSubscribe}.SubScore())
	assert.Equal(t, 1, AliasEvent{Type: EventServerSubscribe}.SubScore())
	assert.Equal(t, -1, AliasEvent{Type: EventUnsubscribe}.SubScore())
	assert.Equal(t, -1, AliasEvent{Type: EventServerUnsubscribe}.SubScore())
	assert.Equal(t, 0, AliasEvent{Type: "something_else"}.SubScore())
}

func TestParseExploreOrder(t *testing.T) {
	order, err := ParseExploreOrder("")
	require.NoError(t, err)
	assert.Equal(t, OrderPopular1W, order)

	_, err = ParseExploreOrder("hottest")
	assert.True(t, errors.IsValidationError(err))

	w, ok := OrderPopular6M.Window()
	require.True(t, ok)
	assert.Equal(t, 180*24, int(w.Hours()))

	_, ok = OrderNewest.Window()
	assert.False(t, ok)
}
