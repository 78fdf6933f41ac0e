package workshop

import (
	"time"

	"github.com/vellum-app/vellum/internal/shared/errors"
)

// ExploreOrder selects the ranking strategy for the explore pipeline.
type ExploreOrder string

const (
	OrderRelevance  ExploreOrder = "relevance"
	OrderNewest     ExploreOrder = "newest"
	OrderEditTime   ExploreOrder = "edittime"
	OrderPopular1W  ExploreOrder = "popular-1w"
	OrderPopular1M  ExploreOrder = "popular-1m"
	OrderPopular6M  ExploreOrder = "popular-6m"
	OrderPopularAll ExploreOrder = "popular-all"
)

var validExploreOrders = map[ExploreOrder]bool{
	OrderRelevance:  true,
	OrderNewest:     true,
	OrderEditTime:   true,
	OrderPopular1W:  true,
	OrderPopular1M:  true,
	OrderPopular6M:  true,
	OrderPopularAll: true,
}

// ParseExploreOrder parses an order string. Empty input defaults to
// popularity over the last week.
func ParseExploreOrder(s string) (ExploreOrder, error) {
	if s == "" {
		return OrderPopular1W, nil
	}
	order := ExploreOrder(s)
	if !validExploreOrders[order] {
		return "", errors.NewValidationError(s + " is not a valid explore order")
	}
	return order, nil
}

// Window returns the popularity aggregation window for windowed popularity
// orders, and false for every other order.
func (o ExploreOrder) Window() (time.Duration, bool) {
	switch o {
	case OrderPopular1W:
		return 7 * 24 * time.Hour, true
	case OrderPopular1M:
		return 30 * 24 * time.Hour, true
	case OrderPopular6M:
		return 180 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

func (o ExploreOrder) String() string {
	return string(o)
}
