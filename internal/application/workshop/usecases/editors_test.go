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

func newAddEditorFixture() (*AddEditorUseCase, *mockCollectionRepository, *mockSubscriptionRepository) {
	collectionRepo := new(mockCollectionRepository)
	subRepo := new(mockSubscriptionRepository)
	uc := NewAddEditorUseCase(collectionRepo, subRepo, logger.NewLogger())
	return uc, collectionRepo, subRepo
}

func TestAddEditorUseCase_GrantsEditorRecord(t *testing.T) {
	uc, collectionRepo, subRepo := newAddEditorFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	subRepo.On("Find", mock.Anything, workshop.SubscriptionTypeEditor, int64(200), "col_1").
		Return(nil, workshop.ErrSubscriptionNotFound)
	subRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *workshop.Subscription) bool {
		return s.Type == workshop.SubscriptionTypeEditor && s.SubscriberID == 200 && s.ObjectID == "col_1"
	})).Return(true, nil)

	err := uc.Execute(context.Background(), "col_1", 200, Actor{UserID: 100})
	require.NoError(t, err)
	subRepo.AssertExpectations(t)
}

func TestAddEditorUseCase_AlreadyEditorConflicts(t *testing.T) {
	uc, collectionRepo, subRepo := newAddEditorFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	subRepo.On("Find", mock.Anything, workshop.SubscriptionTypeEditor, int64(200), "col_1").
		Return(&workshop.Subscription{
			Type:         workshop.SubscriptionTypeEditor,
			SubscriberID: 200,
			ObjectID:     "col_1",
		}, nil)

	err := uc.Execute(context.Background(), "col_1", 200, Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	subRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAddEditorUseCase_OwnerAsEditorConflicts(t *testing.T) {
	uc, collectionRepo, subRepo := newAddEditorFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)

	err := uc.Execute(context.Background(), "col_1", 100, Actor{UserID: 100})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	subRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAddEditorUseCase_NonOwnerForbidden(t *testing.T) {
	uc, collectionRepo, subRepo := newAddEditorFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)

	err := uc.Execute(context.Background(), "col_1", 300, Actor{UserID: 200})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	subRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveEditorUseCase_EditorMayRemoveSelf(t *testing.T) {
	collectionRepo := new(mockCollectionRepository)
	subRepo := new(mockSubscriptionRepository)
	uc := NewRemoveEditorUseCase(collectionRepo, subRepo, logger.NewLogger())

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	subRepo.On("Delete", mock.Anything, workshop.SubscriptionTypeEditor, int64(200), "col_1").Return(nil)

	err := uc.Execute(context.Background(), "col_1", 200, Actor{UserID: 200})
	require.NoError(t, err)
	subRepo.AssertExpectations(t)
}
