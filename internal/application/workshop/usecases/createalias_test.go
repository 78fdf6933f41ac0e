package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

func newCreateAliasFixture() (*CreateAliasUseCase, *mockCollectionRepository, *mockAliasRepository, *mockSubscriptionRepository, *mockReservedCommandSource, *mockCollectionIndex) {
	collectionRepo := new(mockCollectionRepository)
	aliasRepo := new(mockAliasRepository)
	subRepo := new(mockSubscriptionRepository)
	reserved := new(mockReservedCommandSource)
	index := new(mockCollectionIndex)

	uc := NewCreateAliasUseCase(collectionRepo, aliasRepo, subRepo, reserved, index, logger.NewLogger())
	return uc, collectionRepo, aliasRepo, subRepo, reserved, index
}

func TestCreateAliasUseCase_PropagatesBindingToSubscribers(t *testing.T) {
	uc, collectionRepo, aliasRepo, subRepo, reserved, index := newCreateAliasFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePublished, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	reserved.On("ReservedNames", mock.Anything).Return(workshop.ReservedNameSet{}, nil)
	aliasRepo.On("Create", mock.Anything, mock.AnythingOfType("*workshop.Alias")).Return(nil)
	collectionRepo.On("Update", mock.Anything, collection).Return(nil)
	subRepo.On("AppendBinding", mock.Anything, "col_1", workshop.BindingKindAlias, mock.MatchedBy(func(b workshop.Binding) bool {
		return b.Name == "foo" && b.ID != ""
	})).Return(nil)
	index.On("Index", mock.Anything, mock.Anything).Return(nil).Maybe()

	result, err := uc.Execute(context.Background(), CreateAliasCommand{
		CollectionID: "col_1",
		Name:         "foo",
		Docs:         "does a thing",
	}, Actor{UserID: 100})
	require.NoError(t, err)

	assert.Equal(t, "foo", result.Name)
	assert.Contains(t, collection.AliasIDs(), result.ID)
	subRepo.AssertExpectations(t)
}

func TestCreateAliasUseCase_SubAliasSkipsBindingPropagation(t *testing.T) {
	uc, collectionRepo, aliasRepo, subRepo, reserved, index := newCreateAliasFixture()

	parent := testRootAlias(t, "als_1", "col_1", "foo")
	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil)

	aliasRepo.On("FindByID", mock.Anything, "als_1").Return(parent, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	reserved.On("ReservedNames", mock.Anything).Return(workshop.ReservedNameSet{}, nil)
	aliasRepo.On("Create", mock.Anything, mock.AnythingOfType("*workshop.Alias")).Return(nil)
	aliasRepo.On("Update", mock.Anything, parent).Return(nil)
	collectionRepo.On("Update", mock.Anything, collection).Return(nil)
	index.On("Index", mock.Anything, mock.Anything).Return(nil).Maybe()

	parentID := "als_1"
	result, err := uc.Execute(context.Background(), CreateAliasCommand{
		ParentAliasID: &parentID,
		Name:          "sub",
	}, Actor{UserID: 100})
	require.NoError(t, err)

	assert.Contains(t, parent.SubcommandIDs(), result.ID)
	subRepo.AssertNotCalled(t, "AppendBinding", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAliasUseCase_ReservedNameRejected(t *testing.T) {
	uc, collectionRepo, aliasRepo, _, reserved, _ := newCreateAliasFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePublished, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	reserved.On("ReservedNames", mock.Anything).Return(workshop.ReservedNameSet{"roll": {}}, nil)

	_, err := uc.Execute(context.Background(), CreateAliasCommand{
		CollectionID: "col_1",
		Name:         "roll",
	}, Actor{UserID: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "built-in command")
	aliasRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAliasUseCase_NonEditorForbidden(t *testing.T) {
	uc, collectionRepo, _, subRepo, _, _ := newCreateAliasFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePublished, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	subRepo.On("Find", mock.Anything, workshop.SubscriptionTypeEditor, int64(7), "col_1").
		Return(nil, workshop.ErrSubscriptionNotFound)

	_, err := uc.Execute(context.Background(), CreateAliasCommand{
		CollectionID: "col_1",
		Name:         "foo",
	}, Actor{UserID: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission")
}
