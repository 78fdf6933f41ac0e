package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/domain/gamedata"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

type staticEntitySource struct {
	entities []gamedata.Entity
}

func (s *staticEntitySource) LoadEntities(ctx context.Context) ([]gamedata.Entity, error) {
	return s.entities, nil
}

func testCompendium(t *testing.T) *gamedata.Compendium {
	t.Helper()
	c := gamedata.NewCompendium(&staticEntitySource{entities: []gamedata.Entity{
		{Type: "spell", ID: 1, Name: "Fireball", IsFree: false},
		{Type: "spell", ID: 2, Name: "Fire Bolt", IsFree: true},
	}})
	require.NoError(t, c.Reload(context.Background()))
	return c
}

func aliasWithEntitlements(t *testing.T, entitlements []workshop.RequiredEntitlement) *workshop.Alias {
	t.Helper()
	a, err := workshop.ReconstructAlias("als_1", "col_1", "foo", "", "echo hi", nil, entitlements, nil, nil)
	require.NoError(t, err)
	return a
}

func newAddEntitlementFixture(t *testing.T, alias *workshop.Alias) (*AddEntitlementUseCase, *mockAliasRepository) {
	collectionRepo := new(mockCollectionRepository)
	aliasRepo := new(mockAliasRepository)
	snippetRepo := new(mockSnippetRepository)
	subRepo := new(mockSubscriptionRepository)

	aliasRepo.On("FindByID", mock.Anything, "als_1").Return(alias, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").
		Return(testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil), nil)

	uc := NewAddEntitlementUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, testCompendium(t), logger.NewLogger())
	return uc, aliasRepo
}

func TestAddEntitlementUseCase_DuplicateConflicts(t *testing.T) {
	alias := aliasWithEntitlements(t, nil)
	uc, aliasRepo := newAddEntitlementFixture(t, alias)
	aliasRepo.On("Update", mock.Anything, alias).Return(nil)

	cmd := AddEntitlementCommand{Kind: CollectableAlias, ID: "als_1", EntityType: "spell", EntityID: 1}
	require.NoError(t, uc.Execute(context.Background(), cmd, Actor{UserID: 100}))

	err := uc.Execute(context.Background(), cmd, Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestAddEntitlementUseCase_FreeEntityRejected(t *testing.T) {
	uc, aliasRepo := newAddEntitlementFixture(t, aliasWithEntitlements(t, nil))

	err := uc.Execute(context.Background(), AddEntitlementCommand{
		Kind: CollectableAlias, ID: "als_1", EntityType: "spell", EntityID: 2,
	}, Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	aliasRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddEntitlementUseCase_UnknownEntityNotFound(t *testing.T) {
	uc, _ := newAddEntitlementFixture(t, aliasWithEntitlements(t, nil))

	err := uc.Execute(context.Background(), AddEntitlementCommand{
		Kind: CollectableAlias, ID: "als_1", EntityType: "spell", EntityID: 999,
	}, Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRemoveEntitlementUseCase_RequiredNeedsOverride(t *testing.T) {
	alias := aliasWithEntitlements(t, []workshop.RequiredEntitlement{
		{EntityType: "spell", EntityID: 1, Required: true},
	})

	collectionRepo := new(mockCollectionRepository)
	aliasRepo := new(mockAliasRepository)
	snippetRepo := new(mockSnippetRepository)
	subRepo := new(mockSubscriptionRepository)

	aliasRepo.On("FindByID", mock.Anything, "als_1").Return(alias, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").
		Return(testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil), nil)

	uc := NewRemoveEntitlementUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), RemoveEntitlementCommand{
		Kind: CollectableAlias, ID: "als_1", EntityType: "spell", EntityID: 1,
	}, Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	// moderator override strips the gate
	aliasRepo.On("Update", mock.Anything, alias).Return(nil)
	err = uc.Execute(context.Background(), RemoveEntitlementCommand{
		Kind: CollectableAlias, ID: "als_1", EntityType: "spell", EntityID: 1, IgnoreRequired: true,
	}, Actor{UserID: 999, Moderator: true})
	require.NoError(t, err)
	assert.Empty(t, alias.Entitlements())
}
