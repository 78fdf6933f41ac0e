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

type exploreFixture struct {
	uc        *ExploreCollectionsUseCase
	eventRepo *mockAliasEventRepository
	tagRepo   *mockTagRepository
	index     *mockCollectionIndex
	cache     *mockPopularityCache
}

func newExploreFixture() (*ExploreCollectionsUseCase, *mockAliasEventRepository, *mockCollectionIndex, *mockPopularityCache) {
	f := newExploreFixtureFull()
	return f.uc, f.eventRepo, f.index, f.cache
}

func newExploreFixtureFull() *exploreFixture {
	eventRepo := new(mockAliasEventRepository)
	tagRepo := new(mockTagRepository)
	index := new(mockCollectionIndex)
	cache := new(mockPopularityCache)
	uc := NewExploreCollectionsUseCase(eventRepo, tagRepo, index, cache, 48, 512, logger.NewLogger())
	return &exploreFixture{uc: uc, eventRepo: eventRepo, tagRepo: tagRepo, index: index, cache: cache}
}

func TestExplore_EmptyEventWindow(t *testing.T) {
	uc, eventRepo, index, cache := newExploreFixture()

	cache.On("Get", mock.Anything, workshop.OrderPopular1W).Return(nil, false, nil)
	eventRepo.On("NetSubScores", mock.Anything, mock.Anything, 512).Return([]workshop.CollectionScore{}, nil)
	cache.On("Set", mock.Anything, workshop.OrderPopular1W, []workshop.CollectionScore{}).Return(nil)

	ids, err := uc.Execute(context.Background(), ExploreQuery{Order: "popular-1w"})
	require.NoError(t, err)
	assert.Empty(t, ids)
	index.AssertNotCalled(t, "FilterCandidates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExplore_PopularPipeline(t *testing.T) {
	uc, eventRepo, index, cache := newExploreFixture()

	scores := []workshop.CollectionScore{
		{CollectionID: "col_2", Score: 10},
		{CollectionID: "col_1", Score: 3},
	}
	cache.On("Get", mock.Anything, workshop.OrderPopular1M).Return(nil, false, nil)
	eventRepo.On("NetSubScores", mock.Anything, mock.Anything, 512).Return(scores, nil)
	cache.On("Set", mock.Anything, workshop.OrderPopular1M, scores).Return(nil)
	index.On("FilterCandidates", mock.Anything, []string{"col_2", "col_1"}, "", []string(nil)).
		Return([]string{"col_2", "col_1"}, nil)

	ids, err := uc.Execute(context.Background(), ExploreQuery{Order: "popular-1m"})
	require.NoError(t, err)
	assert.Equal(t, []string{"col_2", "col_1"}, ids)
}

func TestExplore_CacheHitSkipsAggregation(t *testing.T) {
	uc, eventRepo, index, cache := newExploreFixture()

	scores := []workshop.CollectionScore{{CollectionID: "col_1", Score: 1}}
	cache.On("Get", mock.Anything, workshop.OrderPopular1W).Return(scores, true, nil)
	index.On("FilterCandidates", mock.Anything, []string{"col_1"}, "", []string(nil)).
		Return([]string{"col_1"}, nil)

	ids, err := uc.Execute(context.Background(), ExploreQuery{Order: "popular-1w"})
	require.NoError(t, err)
	assert.Equal(t, []string{"col_1"}, ids)
	eventRepo.AssertNotCalled(t, "NetSubScores", mock.Anything, mock.Anything, mock.Anything)
}

func TestExplore_RelevanceWithoutQueryFallsBackToPopular(t *testing.T) {
	uc, eventRepo, index, cache := newExploreFixture()

	cache.On("Get", mock.Anything, workshop.OrderPopular1W).Return(nil, false, nil)
	eventRepo.On("NetSubScores", mock.Anything, mock.Anything, 512).Return([]workshop.CollectionScore{}, nil)
	cache.On("Set", mock.Anything, workshop.OrderPopular1W, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), ExploreQuery{Order: "relevance"})
	require.NoError(t, err)
	index.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestExplore_RelevanceSearchesIndex(t *testing.T) {
	f := newExploreFixtureFull()

	f.tagRepo.On("Exists", mock.Anything, "combat").Return(true, nil)
	f.index.On("Search", mock.Anything, workshop.SearchQuery{
		Text:  "dragon",
		Tags:  []string{"combat"},
		Sort:  workshop.SortRelevance,
		Limit: 48,
	}).Return([]string{"col_9"}, nil)

	ids, err := f.uc.Execute(context.Background(), ExploreQuery{Order: "relevance", Query: "dragon", Tags: []string{"combat"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"col_9"}, ids)
}

func TestExplore_PopularAllSortsByGuildSubscribers(t *testing.T) {
	f := newExploreFixtureFull()

	f.index.On("Search", mock.Anything, workshop.SearchQuery{
		Sort:  workshop.SortGuildSubs,
		Limit: 48,
	}).Return([]string{"col_popular"}, nil)

	ids, err := f.uc.Execute(context.Background(), ExploreQuery{Order: "popular-all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"col_popular"}, ids)
	f.eventRepo.AssertNotCalled(t, "NetSubScores", mock.Anything, mock.Anything, mock.Anything)
}

func TestExplore_UnknownTagRejected(t *testing.T) {
	f := newExploreFixtureFull()

	f.tagRepo.On("Exists", mock.Anything, "no-such-tag").Return(false, nil)

	_, err := f.uc.Execute(context.Background(), ExploreQuery{Order: "newest", Tags: []string{"no-such-tag"}})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	f.index.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestExplore_InvalidOrder(t *testing.T) {
	uc, _, _, _ := newExploreFixture()

	_, err := uc.Execute(context.Background(), ExploreQuery{Order: "bogus"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestExplore_DefaultOrderIsPopular1W(t *testing.T) {
	uc, eventRepo, _, cache := newExploreFixture()

	cache.On("Get", mock.Anything, workshop.OrderPopular1W).Return(nil, false, nil)
	eventRepo.On("NetSubScores", mock.Anything, mock.Anything, 512).Return([]workshop.CollectionScore{}, nil)
	cache.On("Set", mock.Anything, workshop.OrderPopular1W, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), ExploreQuery{})
	require.NoError(t, err)
	cache.AssertCalled(t, "Get", mock.Anything, workshop.OrderPopular1W)
}
