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

func TestGetCollection_MissingIsNotFound(t *testing.T) {
	collectionRepo := new(mockCollectionRepository)
	subRepo := new(mockSubscriptionRepository)
	uc := NewGetCollectionUseCase(collectionRepo, subRepo, logger.NewLogger())

	collectionRepo.On("FindByID", mock.Anything, "col_missing").Return(nil, workshop.ErrCollectionNotFound)

	_, err := uc.Execute(context.Background(), "col_missing", Actor{UserID: 42})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetCollection_PrivateForbiddenForStrangers(t *testing.T) {
	collectionRepo := new(mockCollectionRepository)
	subRepo := new(mockSubscriptionRepository)
	uc := NewGetCollectionUseCase(collectionRepo, subRepo, logger.NewLogger())

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	subRepo.On("Find", mock.Anything, workshop.SubscriptionTypeEditor, int64(42), "col_1").
		Return(nil, workshop.ErrSubscriptionNotFound)

	_, err := uc.Execute(context.Background(), "col_1", Actor{UserID: 42})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetCollection_PrivateVisibleToOwnerEditorModerator(t *testing.T) {
	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, nil, nil)

	cases := []struct {
		name   string
		actor  Actor
		editor bool
	}{
		{name: "owner", actor: Actor{UserID: 100}},
		{name: "moderator", actor: Actor{UserID: 999, Moderator: true}},
		{name: "editor", actor: Actor{UserID: 42}, editor: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			collectionRepo := new(mockCollectionRepository)
			subRepo := new(mockSubscriptionRepository)
			uc := NewGetCollectionUseCase(collectionRepo, subRepo, logger.NewLogger())

			collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
			if tc.editor {
				subRepo.On("Find", mock.Anything, workshop.SubscriptionTypeEditor, tc.actor.UserID, "col_1").
					Return(&workshop.Subscription{Type: workshop.SubscriptionTypeEditor}, nil)
			}

			result, err := uc.Execute(context.Background(), "col_1", tc.actor)
			require.NoError(t, err)
			assert.Equal(t, "col_1", result.ID)
		})
	}
}

func TestGetCollection_UnlistedVisibleToAnyone(t *testing.T) {
	collectionRepo := new(mockCollectionRepository)
	subRepo := new(mockSubscriptionRepository)
	uc := NewGetCollectionUseCase(collectionRepo, subRepo, logger.NewLogger())

	collection := testCollection(t, "col_1", 100, workshop.StateUnlisted, nil, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)

	result, err := uc.Execute(context.Background(), "col_1", Actor{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, "UNLISTED", result.PublishState)
}
