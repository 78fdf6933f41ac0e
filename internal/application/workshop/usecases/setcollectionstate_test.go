package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

func newSetStateFixture() (*SetCollectionStateUseCase, *mockCollectionRepository, *mockCollectionIndex) {
	collectionRepo := new(mockCollectionRepository)
	subRepo := new(mockSubscriptionRepository)
	index := new(mockCollectionIndex)
	uc := NewSetCollectionStateUseCase(collectionRepo, subRepo, index, logger.NewLogger())
	return uc, collectionRepo, index
}

func TestSetCollectionState_PublishWithoutChildrenFails(t *testing.T) {
	uc, collectionRepo, _ := newSetStateFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)

	_, err := uc.Execute(context.Background(), SetCollectionStateCommand{
		CollectionID: "col_1",
		State:        "PUBLISHED",
	}, Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	collectionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetCollectionState_PublishWithAlias(t *testing.T) {
	uc, collectionRepo, index := newSetStateFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, []string{"als_1"}, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	collectionRepo.On("Update", mock.Anything, collection).Return(nil)
	index.On("Index", mock.Anything, mock.Anything).Return(nil).Maybe()

	result, err := uc.Execute(context.Background(), SetCollectionStateCommand{
		CollectionID: "col_1",
		State:        "PUBLISHED",
	}, Actor{UserID: 100})
	require.NoError(t, err)
	assert.Equal(t, "PUBLISHED", result.PublishState)
}

func TestSetCollectionState_OwnerCannotUnpublish(t *testing.T) {
	uc, collectionRepo, _ := newSetStateFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)

	_, err := uc.Execute(context.Background(), SetCollectionStateCommand{
		CollectionID: "col_1",
		State:        "PRIVATE",
	}, Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestSetCollectionState_ModeratorCanUnpublish(t *testing.T) {
	uc, collectionRepo, index := newSetStateFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	collectionRepo.On("Update", mock.Anything, collection).Return(nil)
	index.On("Index", mock.Anything, mock.Anything).Return(nil).Maybe()

	result, err := uc.Execute(context.Background(), SetCollectionStateCommand{
		CollectionID: "col_1",
		State:        "PRIVATE",
	}, Actor{UserID: 999, Moderator: true})
	require.NoError(t, err)
	assert.Equal(t, "PRIVATE", result.PublishState)
}
