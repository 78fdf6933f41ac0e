package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/errors"
	"github.com/vellum-app/vellum/internal/shared/logger"
	"github.com/vellum-app/vellum/internal/shared/utils"
)

type ExploreQuery struct {
	Order string
	Query string
	Tags  []string
	Page  int
}

type ExploreCollectionsUseCase struct {
	eventRepo    workshop.AliasEventRepository
	tagRepo      workshop.TagRepository
	index        workshop.CollectionIndex
	cache        workshop.PopularityCache
	pageSize     int
	candidateCap int
	logger       logger.Interface
}

func NewExploreCollectionsUseCase(
	eventRepo workshop.AliasEventRepository,
	tagRepo workshop.TagRepository,
	index workshop.CollectionIndex,
	cache workshop.PopularityCache,
	pageSize, candidateCap int,
	logger logger.Interface,
) *ExploreCollectionsUseCase {
	return &ExploreCollectionsUseCase{
		eventRepo:    eventRepo,
		tagRepo:      tagRepo,
		index:        index,
		cache:        cache,
		pageSize:     pageSize,
		candidateCap: candidateCap,
		logger:       logger,
	}
}

// Execute runs the explore ranking pipeline and returns one page of
// collection ids in rank order.
func (uc *ExploreCollectionsUseCase) Execute(ctx context.Context, query ExploreQuery) ([]string, error) {
	order, err := workshop.ParseExploreOrder(query.Order)
	if err != nil {
		return nil, err
	}
	if query.Page < 1 {
		query.Page = 1
	}

	for _, tag := range query.Tags {
		known, err := uc.tagRepo.Exists(ctx, tag)
		if err != nil {
			return nil, fmt.Errorf("failed to check tag vocabulary: %w", err)
		}
		if !known {
			return nil, errors.NewValidationError(fmt.Sprintf("%s is not a valid tag", tag))
		}
	}

	// relevance without a text query has nothing to rank on
	if order == workshop.OrderRelevance && query.Query == "" {
		order = workshop.OrderPopular1W
	}

	switch order {
	case workshop.OrderRelevance:
		return uc.searchDirect(ctx, query, workshop.SortRelevance)
	case workshop.OrderNewest:
		return uc.searchDirect(ctx, query, workshop.SortNewest)
	case workshop.OrderEditTime:
		return uc.searchDirect(ctx, query, workshop.SortEditTime)
	case workshop.OrderPopularAll:
		// all-time popularity is the stored guild subscriber count, not an
		// event-window aggregate
		return uc.searchDirect(ctx, query, workshop.SortGuildSubs)
	default:
		return uc.searchPopular(ctx, order, query)
	}
}

func (uc *ExploreCollectionsUseCase) searchDirect(ctx context.Context, query ExploreQuery, sort workshop.SearchSort) ([]string, error) {
	ids, err := uc.index.Search(ctx, workshop.SearchQuery{
		Text:   query.Query,
		Tags:   query.Tags,
		Sort:   sort,
		Limit:  uc.pageSize,
		Offset: (query.Page - 1) * uc.pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("explore search failed: %w", err)
	}
	return ids, nil
}

// searchPopular ranks by net subscription score over the order's window, then
// filters the scored candidates through the index. An empty event window
// yields an empty page, not an error.
func (uc *ExploreCollectionsUseCase) searchPopular(ctx context.Context, order workshop.ExploreOrder, query ExploreQuery) ([]string, error) {
	scores, err := uc.popularityScores(ctx, order)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return []string{}, nil
	}

	candidates := make([]string, 0, len(scores))
	for _, s := range scores {
		candidates = append(candidates, s.CollectionID)
	}

	matched, err := uc.index.FilterCandidates(ctx, candidates, query.Query, query.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to filter explore candidates: %w", err)
	}

	start, end := utils.ApplyPagination(len(matched), query.Page, uc.pageSize)
	return matched[start:end], nil
}

func (uc *ExploreCollectionsUseCase) popularityScores(ctx context.Context, order workshop.ExploreOrder) ([]workshop.CollectionScore, error) {
	scores, hit, err := uc.cache.Get(ctx, order)
	if err != nil {
		uc.logger.Warnw("popularity cache read failed", "order", order.String(), "error", err)
	} else if hit {
		return scores, nil
	}

	var since time.Time
	if window, ok := order.Window(); ok {
		since = time.Now().UTC().Add(-window)
	}

	scores, err = uc.eventRepo.NetSubScores(ctx, since, uc.candidateCap)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate popularity scores: %w", err)
	}

	if err := uc.cache.Set(ctx, order, scores); err != nil {
		uc.logger.Warnw("popularity cache write failed", "order", order.String(), "error", err)
	}
	return scores, nil
}
