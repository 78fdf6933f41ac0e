package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vellum-app/vellum/internal/application/workshop/dto"
	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

func testCollection(t *testing.T, id string, owner int64, state workshop.PublicationState, aliasIDs, snippetIDs []string) *workshop.Collection {
	t.Helper()
	now := time.Now().UTC()
	c, err := workshop.ReconstructCollection(
		id, "Test", "a test collection", "", owner,
		aliasIDs, snippetIDs, nil, state, 0, 0, now, now,
	)
	require.NoError(t, err)
	return c
}

func testRootAlias(t *testing.T, id, collectionID, name string) *workshop.Alias {
	t.Helper()
	a, err := workshop.ReconstructAlias(id, collectionID, name, "", "echo hi", nil, nil, nil, nil)
	require.NoError(t, err)
	return a
}

func newSubscribeFixture() (*SubscribeUseCase, *mockCollectionRepository, *mockAliasRepository, *mockSnippetRepository, *mockSubscriptionRepository, *mockAliasEventRepository, *mockReservedCommandSource, *mockCollectionIndex) {
	collectionRepo := new(mockCollectionRepository)
	aliasRepo := new(mockAliasRepository)
	snippetRepo := new(mockSnippetRepository)
	subRepo := new(mockSubscriptionRepository)
	eventRepo := new(mockAliasEventRepository)
	reserved := new(mockReservedCommandSource)
	index := new(mockCollectionIndex)

	uc := NewSubscribeUseCase(collectionRepo, aliasRepo, snippetRepo, subRepo, eventRepo, reserved, index, logger.NewLogger())
	return uc, collectionRepo, aliasRepo, snippetRepo, subRepo, eventRepo, reserved, index
}

func TestSubscribeUseCase_DefaultBindings(t *testing.T) {
	uc, collectionRepo, aliasRepo, snippetRepo, subRepo, eventRepo, reserved, index := newSubscribeFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1", "als_2"}, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	aliasRepo.On("FindByIDs", mock.Anything, []string{"als_1", "als_2"}).Return([]*workshop.Alias{
		testRootAlias(t, "als_1", "col_1", "foo"),
		testRootAlias(t, "als_2", "col_1", "bar"),
	}, nil)
	snippetRepo.On("FindByIDs", mock.Anything, []string{}).Return([]*workshop.Snippet{}, nil)
	reserved.On("ReservedNames", mock.Anything).Return(workshop.ReservedNameSet{}, nil)

	var stored *workshop.Subscription
	subRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*workshop.Subscription")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*workshop.Subscription) }).
		Return(true, nil)
	collectionRepo.On("AdjustSubscriberCount", mock.Anything, "col_1", 1).Return(nil)
	eventRepo.On("Append", mock.Anything, mock.MatchedBy(func(e workshop.AliasEvent) bool {
		return e.SubScore() == 1 && e.ObjectID == "col_1"
	})).Return(nil)
	index.On("Index", mock.Anything, mock.Anything).Return(nil).Maybe()

	result, err := uc.Execute(context.Background(), SubscribeCommand{CollectionID: "col_1"}, Actor{UserID: 42})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, workshop.SubscriptionTypeSubscribe, stored.Type)
	require.Len(t, result.AliasBindings, 2)
	assert.Equal(t, "foo", result.AliasBindings[0].Name)
	assert.Equal(t, "als_1", result.AliasBindings[0].ID)
	assert.Equal(t, "bar", result.AliasBindings[1].Name)

	collectionRepo.AssertCalled(t, "AdjustSubscriberCount", mock.Anything, "col_1", 1)
	eventRepo.AssertExpectations(t)
}

func TestSubscribeUseCase_ResubscribeDoesNotBumpCounter(t *testing.T) {
	uc, collectionRepo, aliasRepo, snippetRepo, subRepo, eventRepo, reserved, _ := newSubscribeFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	aliasRepo.On("FindByIDs", mock.Anything, []string{"als_1"}).Return([]*workshop.Alias{
		testRootAlias(t, "als_1", "col_1", "foo"),
	}, nil)
	snippetRepo.On("FindByIDs", mock.Anything, []string{}).Return([]*workshop.Snippet{}, nil)
	reserved.On("ReservedNames", mock.Anything).Return(workshop.ReservedNameSet{}, nil)
	subRepo.On("Upsert", mock.Anything, mock.Anything).Return(false, nil)

	_, err := uc.Execute(context.Background(), SubscribeCommand{CollectionID: "col_1"}, Actor{UserID: 42})
	require.NoError(t, err)

	collectionRepo.AssertNotCalled(t, "AdjustSubscriberCount", mock.Anything, mock.Anything, mock.Anything)
	eventRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubscribeUseCase_PrivateCollectionForbidden(t *testing.T) {
	uc, collectionRepo, _, _, subRepo, _, _, _ := newSubscribeFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePrivate, []string{"als_1"}, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	subRepo.On("Find", mock.Anything, workshop.SubscriptionTypeEditor, int64(42), "col_1").
		Return(nil, workshop.ErrSubscriptionNotFound)

	_, err := uc.Execute(context.Background(), SubscribeCommand{CollectionID: "col_1"}, Actor{UserID: 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private")
}

func TestSubscribeUseCase_RejectsReservedBindingName(t *testing.T) {
	uc, collectionRepo, aliasRepo, snippetRepo, subRepo, _, reserved, _ := newSubscribeFixture()

	collection := testCollection(t, "col_1", 100, workshop.StatePublished, []string{"als_1"}, nil)
	collectionRepo.On("FindByID", mock.Anything, "col_1").Return(collection, nil)
	aliasRepo.On("FindByIDs", mock.Anything, []string{"als_1"}).Return([]*workshop.Alias{
		testRootAlias(t, "als_1", "col_1", "foo"),
	}, nil)
	snippetRepo.On("FindByIDs", mock.Anything, []string{}).Return([]*workshop.Snippet{}, nil)
	reserved.On("ReservedNames", mock.Anything).Return(workshop.ReservedNameSet{"roll": {}}, nil)

	cmd := SubscribeCommand{
		CollectionID:  "col_1",
		AliasBindings: []dto.BindingDTO{{Name: "roll", ID: "als_1"}},
	}
	_, err := uc.Execute(context.Background(), cmd, Actor{UserID: 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "built-in command")
	subRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUnsubscribeUseCase_DropsCounterAndLogsEvent(t *testing.T) {
	collectionRepo := new(mockCollectionRepository)
	subRepo := new(mockSubscriptionRepository)
	eventRepo := new(mockAliasEventRepository)
	uc := NewUnsubscribeUseCase(collectionRepo, subRepo, eventRepo, logger.NewLogger())

	existing := &workshop.Subscription{
		Type:         workshop.SubscriptionTypeSubscribe,
		SubscriberID: 42,
		ObjectID:     "col_1",
	}
	subRepo.On("Find", mock.Anything, workshop.SubscriptionTypeSubscribe, int64(42), "col_1").Return(existing, nil)
	subRepo.On("Delete", mock.Anything, workshop.SubscriptionTypeSubscribe, int64(42), "col_1").Return(nil)
	collectionRepo.On("AdjustSubscriberCount", mock.Anything, "col_1", -1).Return(nil)
	eventRepo.On("Append", mock.Anything, mock.MatchedBy(func(e workshop.AliasEvent) bool {
		return e.SubScore() == -1
	})).Return(nil)

	err := uc.Execute(context.Background(), "col_1", Actor{UserID: 42})
	require.NoError(t, err)
	subRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

func TestUnsubscribeUseCase_NotSubscribed(t *testing.T) {
	collectionRepo := new(mockCollectionRepository)
	subRepo := new(mockSubscriptionRepository)
	eventRepo := new(mockAliasEventRepository)
	uc := NewUnsubscribeUseCase(collectionRepo, subRepo, eventRepo, logger.NewLogger())

	subRepo.On("Find", mock.Anything, workshop.SubscriptionTypeSubscribe, int64(42), "col_1").
		Return(nil, workshop.ErrSubscriptionNotFound)

	err := uc.Execute(context.Background(), "col_1", Actor{UserID: 42})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	subRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
