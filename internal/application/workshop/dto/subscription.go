package dto

import (
	"time"

	"github.com/vellum-app/vellum/internal/domain/workshop"
)

// BindingDTO is one name binding inside a subscription.
type BindingDTO struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// SubscriptionDTO is the public view of one subscription ledger record.
type SubscriptionDTO struct {
	Type            string       `json:"type"`
	SubscriberID    string       `json:"subscriber_id"`
	ObjectID        string       `json:"object_id"`
	AliasBindings   []BindingDTO `json:"alias_bindings"`
	SnippetBindings []BindingDTO `json:"snippet_bindings"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ToBindingDTOs converts domain bindings.
func ToBindingDTOs(bindings []workshop.Binding) []BindingDTO {
	out := make([]BindingDTO, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, BindingDTO{Name: b.Name, ID: b.ID})
	}
	return out
}

// FromBindingDTOs converts proposed bindings back to domain form. A nil input
// stays nil so the binding engine can distinguish "no proposal" from "empty".
func FromBindingDTOs(bindings []BindingDTO) []workshop.Binding {
	if bindings == nil {
		return nil
	}
	out := make([]workshop.Binding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, workshop.Binding{Name: b.Name, ID: b.ID})
	}
	return out
}

// ToSubscriptionDTO converts a domain subscription record.
func ToSubscriptionDTO(s *workshop.Subscription) *SubscriptionDTO {
	return &SubscriptionDTO{
		Type:            string(s.Type),
		SubscriberID:    formatSnowflake(s.SubscriberID),
		ObjectID:        s.ObjectID,
		AliasBindings:   ToBindingDTOs(s.AliasBindings),
		SnippetBindings: ToBindingDTOs(s.SnippetBindings),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
