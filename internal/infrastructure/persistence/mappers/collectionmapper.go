package mappers

import (
	"fmt"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
)

type CollectionMapper interface {
	ToEntity(model *models.CollectionModel) (*workshop.Collection, error)
	ToModel(entity *workshop.Collection) (*models.CollectionModel, error)
	ToEntities(models []*models.CollectionModel) ([]*workshop.Collection, error)
}

type CollectionMapperImpl struct{}

func NewCollectionMapper() CollectionMapper {
	return &CollectionMapperImpl{}
}

func (m *CollectionMapperImpl) ToEntity(model *models.CollectionModel) (*workshop.Collection, error) {
	if model == nil {
		return nil, nil
	}

	aliasIDs, err := unmarshalJSON[string](model.AliasIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal alias ids: %w", err)
	}
	snippetIDs, err := unmarshalJSON[string](model.SnippetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal snippet ids: %w", err)
	}
	tags, err := unmarshalJSON[string](model.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}

	return workshop.ReconstructCollection(
		model.SID,
		model.Name,
		model.Description,
		model.Image,
		model.Owner,
		aliasIDs,
		snippetIDs,
		tags,
		workshop.PublicationState(model.PublishState),
		model.NumSubscribers,
		model.NumGuildSubscribers,
		model.CreatedAt,
		model.LastEdited,
	)
}

func (m *CollectionMapperImpl) ToModel(entity *workshop.Collection) (*models.CollectionModel, error) {
	if entity == nil {
		return nil, nil
	}

	aliasIDs, err := marshalJSON(entity.AliasIDs())
	if err != nil {
		return nil, err
	}
	snippetIDs, err := marshalJSON(entity.SnippetIDs())
	if err != nil {
		return nil, err
	}
	tags, err := marshalJSON(entity.Tags())
	if err != nil {
		return nil, err
	}

	return &models.CollectionModel{
		SID:                 entity.ID(),
		Name:                entity.Name(),
		Description:         entity.Description(),
		Image:               entity.Image(),
		Owner:               entity.Owner(),
		AliasIDs:            aliasIDs,
		SnippetIDs:          snippetIDs,
		Tags:                tags,
		PublishState:        entity.State().String(),
		NumSubscribers:      entity.NumSubscribers(),
		NumGuildSubscribers: entity.NumGuildSubscribers(),
		CreatedAt:           entity.CreatedAt(),
		LastEdited:          entity.LastEdited(),
	}, nil
}

func (m *CollectionMapperImpl) ToEntities(collectionModels []*models.CollectionModel) ([]*workshop.Collection, error) {
	entities := make([]*workshop.Collection, 0, len(collectionModels))
	for _, model := range collectionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
