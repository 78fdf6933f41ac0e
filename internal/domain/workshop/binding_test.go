package workshop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

var testReserved = ReservedNameSet{"roll": {}, "init": {}, "cast": {}}

func bindingTargets(pairs ...string) []BindingTarget {
	out := make([]BindingTarget, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, BindingTarget{ID: pairs[i], Name: pairs[i+1]})
	}
	return out
}

func TestReconcileBindings_NilProposalYieldsDefaults(t *testing.T) {
	members := bindingTargets("als_1", "fireball", "als_2", "heal")

	got, err := ReconcileBindings(members, nil, BindingKindAlias, testReserved)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Binding{Name: "fireball", ID: "als_1"}, got[0])
	assert.Equal(t, Binding{Name: "heal", ID: "als_2"}, got[1])
}

func TestReconcileBindings_GapFillsMissingMembers(t *testing.T) {
	members := bindingTargets("als_1", "fireball", "als_2", "heal", "als_3", "smite")
	proposed := []Binding{{Name: "fb", ID: "als_1"}}

	got, err := ReconcileBindings(members, proposed, BindingKindAlias, testReserved)

	require.NoError(t, err)
	require.Len(t, got, 3)

	byID := make(map[string]string, len(got))
	for _, b := range got {
		byID[b.ID] = b.Name
	}
	assert.Equal(t, "fb", byID["als_1"], "explicit binding should win over the default")
	assert.Equal(t, "heal", byID["als_2"])
	assert.Equal(t, "smite", byID["als_3"])
}

func TestReconcileBindings_DropsStaleIDsSilently(t *testing.T) {
	members := bindingTargets("als_1", "fireball")
	proposed := []Binding{
		{Name: "fb", ID: "als_1"},
		{Name: "gone", ID: "als_deleted"},
	}

	got, err := ReconcileBindings(members, proposed, BindingKindAlias, testReserved)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "als_1", got[0].ID)
}

func TestReconcileBindings_RejectsWhitespace(t *testing.T) {
	members := bindingTargets("als_1", "fireball")
	proposed := []Binding{{Name: "fire ball", ID: "als_1"}}

	_, err := ReconcileBindings(members, proposed, BindingKindAlias, testReserved)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestReconcileBindings_RejectsReservedAliasName(t *testing.T) {
	members := bindingTargets("als_1", "fireball")
	proposed := []Binding{{Name: "roll", ID: "als_1"}}

	_, err := ReconcileBindings(members, proposed, BindingKindAlias, testReserved)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "built-in command")
}

func TestReconcileBindings_AllowsReservedSnippetName(t *testing.T) {
	members := bindingTargets("snp_1", "adv")
	proposed := []Binding{{Name: "roll", ID: "snp_1"}}

	got, err := ReconcileBindings(members, proposed, BindingKindSnippet, testReserved)

	require.NoError(t, err)
	assert.Equal(t, "roll", got[0].Name)
}

func TestReconcileBindings_RejectsShortSnippetName(t *testing.T) {
	members := bindingTargets("snp_1", "adv")
	proposed := []Binding{{Name: "a", ID: "snp_1"}}

	_, err := ReconcileBindings(members, proposed, BindingKindSnippet, testReserved)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestReconcileBindings_FirstViolationAborts(t *testing.T) {
	members := bindingTargets("als_1", "fireball", "als_2", "heal")
	proposed := []Binding{
		{Name: "bad name", ID: "als_1"},
		{Name: "roll", ID: "als_2"},
	}

	got, err := ReconcileBindings(members, proposed, BindingKindAlias, testReserved)

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestReconcileBindings_EmptyProposalStillGapFills(t *testing.T) {
	members := bindingTargets("als_1", "fireball")

	got, err := ReconcileBindings(members, []Binding{}, BindingKindAlias, testReserved)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Binding{Name: "fireball", ID: "als_1"}, got[0])
}
