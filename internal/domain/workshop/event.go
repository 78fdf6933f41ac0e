package workshop

import "time"

// Alias event types. Only the subscribe family contributes to popularity.
const (
	EventSubscribe         = "subscribe"
	EventUnsubscribe       = "unsubscribe"
	EventServerSubscribe   = "server_subscribe"
	EventServerUnsubscribe = "server_unsubscribe"
)

// AliasEvent is one append-only log entry feeding the popularity signal.
// Events are never mutated or deleted by normal operations.
type AliasEvent struct {
	Type      string    `json:"type"`
	ObjectID  string    `json:"object_id"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// SubScore returns the signed popularity contribution of the event: +1 for
// subscribe-family events, -1 for unsubscribe-family events, 0 otherwise.
func (e AliasEvent) SubScore() int {
	switch e.Type {
	case EventSubscribe, EventServerSubscribe:
		return 1
	case EventUnsubscribe, EventServerUnsubscribe:
		return -1
	default:
		return 0
	}
}

// CollectionScore is a per-collection net popularity score over a window.
type CollectionScore struct {
	CollectionID string  `json:"collection_id"`
	Score        float64 `json:"score"`
}
