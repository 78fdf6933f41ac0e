package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vellum-app/vellum/internal/domain/workshop"
)

type mockCollectionRepository struct {
	mock.Mock
}

func (m *mockCollectionRepository) Create(ctx context.Context, collection *workshop.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *mockCollectionRepository) FindByID(ctx context.Context, id string) (*workshop.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Collection), args.Error(1)
}

func (m *mockCollectionRepository) FindByIDs(ctx context.Context, ids []string) ([]*workshop.Collection, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Collection), args.Error(1)
}

func (m *mockCollectionRepository) FindByOwner(ctx context.Context, owner int64) ([]*workshop.Collection, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Collection), args.Error(1)
}

func (m *mockCollectionRepository) Update(ctx context.Context, collection *workshop.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *mockCollectionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCollectionRepository) AdjustSubscriberCount(ctx context.Context, id string, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *mockCollectionRepository) AdjustGuildSubscriberCount(ctx context.Context, id string, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

type mockAliasRepository struct {
	mock.Mock
}

func (m *mockAliasRepository) Create(ctx context.Context, alias *workshop.Alias) error {
	args := m.Called(ctx, alias)
	return args.Error(0)
}

func (m *mockAliasRepository) FindByID(ctx context.Context, id string) (*workshop.Alias, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Alias), args.Error(1)
}

func (m *mockAliasRepository) FindByIDs(ctx context.Context, ids []string) ([]*workshop.Alias, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Alias), args.Error(1)
}

func (m *mockAliasRepository) FindByCollection(ctx context.Context, collectionID string) ([]*workshop.Alias, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Alias), args.Error(1)
}

func (m *mockAliasRepository) Update(ctx context.Context, alias *workshop.Alias) error {
	args := m.Called(ctx, alias)
	return args.Error(0)
}

func (m *mockAliasRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAliasRepository) DeleteByCollection(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

type mockSnippetRepository struct {
	mock.Mock
}

func (m *mockSnippetRepository) Create(ctx context.Context, snippet *workshop.Snippet) error {
	args := m.Called(ctx, snippet)
	return args.Error(0)
}

func (m *mockSnippetRepository) FindByID(ctx context.Context, id string) (*workshop.Snippet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Snippet), args.Error(1)
}

func (m *mockSnippetRepository) FindByIDs(ctx context.Context, ids []string) ([]*workshop.Snippet, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Snippet), args.Error(1)
}

func (m *mockSnippetRepository) FindByCollection(ctx context.Context, collectionID string) ([]*workshop.Snippet, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Snippet), args.Error(1)
}

func (m *mockSnippetRepository) Update(ctx context.Context, snippet *workshop.Snippet) error {
	args := m.Called(ctx, snippet)
	return args.Error(0)
}

func (m *mockSnippetRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSnippetRepository) DeleteByCollection(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Upsert(ctx context.Context, sub *workshop.Subscription) (bool, error) {
	args := m.Called(ctx, sub)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepository) Find(ctx context.Context, typ workshop.SubscriptionType, subscriberID int64, objectID string) (*workshop.Subscription, error) {
	args := m.Called(ctx, typ, subscriberID, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, typ workshop.SubscriptionType, subscriberID int64, objectID string) error {
	args := m.Called(ctx, typ, subscriberID, objectID)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) FindByObject(ctx context.Context, objectID string, typ workshop.SubscriptionType) ([]*workshop.Subscription, error) {
	args := m.Called(ctx, objectID, typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) FindBySubscriber(ctx context.Context, typ workshop.SubscriptionType, subscriberID int64) ([]*workshop.Subscription, error) {
	args := m.Called(ctx, typ, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) CountByObject(ctx context.Context, objectID string, typ workshop.SubscriptionType) (int64, error) {
	args := m.Called(ctx, objectID, typ)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepository) DeleteByObject(ctx context.Context, objectID string) error {
	args := m.Called(ctx, objectID)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) AppendBinding(ctx context.Context, objectID string, kind workshop.BindingKind, binding workshop.Binding) error {
	args := m.Called(ctx, objectID, kind, binding)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) RemoveBinding(ctx context.Context, objectID string, kind workshop.BindingKind, memberID string) error {
	args := m.Called(ctx, objectID, kind, memberID)
	return args.Error(0)
}

type mockAliasEventRepository struct {
	mock.Mock
}

func (m *mockAliasEventRepository) Append(ctx context.Context, event workshop.AliasEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockAliasEventRepository) NetSubScores(ctx context.Context, since time.Time, limit int) ([]workshop.CollectionScore, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workshop.CollectionScore), args.Error(1)
}

type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) FindAll(ctx context.Context) ([]workshop.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workshop.Tag), args.Error(1)
}

func (m *mockTagRepository) Exists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type mockCollectionIndex struct {
	mock.Mock
}

func (m *mockCollectionIndex) Index(ctx context.Context, doc workshop.CollectionDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockCollectionIndex) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCollectionIndex) Search(ctx context.Context, query workshop.SearchQuery) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockCollectionIndex) FilterCandidates(ctx context.Context, ids []string, text string, tags []string) ([]string, error) {
	args := m.Called(ctx, ids, text, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockPopularityCache struct {
	mock.Mock
}

func (m *mockPopularityCache) Get(ctx context.Context, order workshop.ExploreOrder) ([]workshop.CollectionScore, bool, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]workshop.CollectionScore), args.Bool(1), args.Error(2)
}

func (m *mockPopularityCache) Set(ctx context.Context, order workshop.ExploreOrder, scores []workshop.CollectionScore) error {
	args := m.Called(ctx, order, scores)
	return args.Error(0)
}

type mockReservedCommandSource struct {
	mock.Mock
}

func (m *mockReservedCommandSource) ReservedNames(ctx context.Context) (workshop.ReservedNames, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(workshop.ReservedNames), args.Error(1)
}

type mockGuildPermissions struct {
	mock.Mock
}

func (m *mockGuildPermissions) CanEditServerAliases(ctx context.Context, token string, guildID string, userID int64) error {
	args := m.Called(ctx, token, guildID, userID)
	return args.Error(0)
}
