package mappers

import (
	"fmt"
	"time"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
)

type SnippetMapper interface {
	ToEntity(model *models.SnippetModel) (*workshop.Snippet, error)
	ToModel(entity *workshop.Snippet) (*models.SnippetModel, error)
	ToEntities(models []*models.SnippetModel) ([]*workshop.Snippet, error)
}

type SnippetMapperImpl struct{}

func NewSnippetMapper() SnippetMapper {
	return &SnippetMapperImpl{}
}

func (m *SnippetMapperImpl) ToEntity(model *models.SnippetModel) (*workshop.Snippet, error) {
	if model == nil {
		return nil, nil
	}

	versions, err := unmarshalJSON[workshop.CodeVersion](model.Versions)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal code versions: %w", err)
	}
	entitlements, err := unmarshalJSON[workshop.RequiredEntitlement](model.Entitlements)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal entitlements: %w", err)
	}

	return workshop.ReconstructSnippet(
		model.SID,
		model.CollectionSID,
		model.Name,
		model.Docs,
		model.Code,
		versions,
		entitlements,
	)
}

func (m *SnippetMapperImpl) ToModel(entity *workshop.Snippet) (*models.SnippetModel, error) {
	if entity == nil {
		return nil, nil
	}

	versions, err := marshalJSON(entity.CodeVersions())
	if err != nil {
		return nil, err
	}
	entitlements, err := marshalJSON(entity.Entitlements())
	if err != nil {
		return nil, err
	}

	return &models.SnippetModel{
		SID:           entity.ID(),
		CollectionSID: entity.CollectionID(),
		Name:          entity.Name(),
		Docs:          entity.Docs(),
		Code:          entity.Code(),
		Versions:      versions,
		Entitlements:  entitlements,
		UpdatedAt:     time.Now().UTC(),
	}, nil
}

func (m *SnippetMapperImpl) ToEntities(snippetModels []*models.SnippetModel) ([]*workshop.Snippet, error) {
	entities := make([]*workshop.Snippet, 0, len(snippetModels))
	for _, model := range snippetModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
