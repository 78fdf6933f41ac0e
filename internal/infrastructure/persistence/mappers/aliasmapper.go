package mappers

import (
	"fmt"
	"time"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
)

type AliasMapper interface {
	ToEntity(model *models.AliasModel) (*workshop.Alias, error)
	ToModel(entity *workshop.Alias) (*models.AliasModel, error)
	ToEntities(models []*models.AliasModel) ([]*workshop.Alias, error)
}

type AliasMapperImpl struct{}

func NewAliasMapper() AliasMapper {
	return &AliasMapperImpl{}
}

func (m *AliasMapperImpl) ToEntity(model *models.AliasModel) (*workshop.Alias, error) {
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
	subcommandIDs, err := unmarshalJSON[string](model.SubcommandIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal subcommand ids: %w", err)
	}

	return workshop.ReconstructAlias(
		model.SID,
		model.CollectionSID,
		model.Name,
		model.Docs,
		model.Code,
		versions,
		entitlements,
		model.ParentSID,
		subcommandIDs,
	)
}

func (m *AliasMapperImpl) ToModel(entity *workshop.Alias) (*models.AliasModel, error) {
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
	subcommandIDs, err := marshalJSON(entity.SubcommandIDs())
	if err != nil {
		return nil, err
	}

	return &models.AliasModel{
		SID:           entity.ID(),
		CollectionSID: entity.CollectionID(),
		ParentSID:     entity.ParentID(),
		Name:          entity.Name(),
		Docs:          entity.Docs(),
		Code:          entity.Code(),
		Versions:      versions,
		Entitlements:  entitlements,
		SubcommandIDs: subcommandIDs,
		UpdatedAt:     time.Now().UTC(),
	}, nil
}

func (m *AliasMapperImpl) ToEntities(aliasModels []*models.AliasModel) ([]*workshop.Alias, error) {
	entities := make([]*workshop.Alias, 0, len(aliasModels))
	for _, model := range aliasModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
