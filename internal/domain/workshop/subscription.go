package workshop

import "time"

// SubscriptionType discriminates the three ledger record kinds.
type SubscriptionType string

const (
	// SubscriptionTypeSubscribe is a personal subscription by a user.
	SubscriptionTypeSubscribe SubscriptionType = "subscribe"
	// SubscriptionTypeServerActive is a whole-guild activation.
	SubscriptionTypeServerActive SubscriptionType = "server_active"
	// SubscriptionTypeEditor grants edit rights independent of ownership.
	SubscriptionTypeEditor SubscriptionType = "editor"
)

// Subscription is one ledger record, keyed by (type, subscriber, object).
// The subscriber ID is a user snowflake for subscribe/editor records and a
// guild snowflake for server_active records. Only subscribe/server_active
// records carry bindings.
type Subscription struct {
	Type            SubscriptionType `json:"type"`
	SubscriberID    int64            `json:"subscriber_id"`
	ObjectID        string           `json:"object_id"`
	AliasBindings   []Binding        `json:"alias_bindings,omitempty"`
	SnippetBindings []Binding        `json:"snippet_bindings,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
