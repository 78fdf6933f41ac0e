package mappers

import (
	"fmt"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*workshop.Subscription, error)
	ToModel(entity *workshop.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*workshop.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*workshop.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	aliasBindings, err := unmarshalJSON[workshop.Binding](model.AliasBindings)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal alias bindings: %w", err)
	}
	snippetBindings, err := unmarshalJSON[workshop.Binding](model.SnippetBindings)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal snippet bindings: %w", err)
	}

	return &workshop.Subscription{
		Type:            workshop.SubscriptionType(model.Type),
		SubscriberID:    model.SubscriberID,
		ObjectID:        model.ObjectSID,
		AliasBindings:   aliasBindings,
		SnippetBindings: snippetBindings,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *workshop.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	aliasBindings, err := marshalJSON(entity.AliasBindings)
	if err != nil {
		return nil, err
	}
	snippetBindings, err := marshalJSON(entity.SnippetBindings)
	if err != nil {
		return nil, err
	}

	return &models.SubscriptionModel{
		Type:            string(entity.Type),
		SubscriberID:    entity.SubscriberID,
		ObjectSID:       entity.ObjectID,
		AliasBindings:   aliasBindings,
		SnippetBindings: snippetBindings,
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*workshop.Subscription, error) {
	entities := make([]*workshop.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
