package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/mappers"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// SubscriptionRepositoryImpl implements the workshop.SubscriptionRepository interface
type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) workshop.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

// Upsert inserts or replaces the ledger record keyed by (type, subscriber,
// object) and reports whether a new record was created.
func (r *SubscriptionRepositoryImpl) Upsert(ctx context.Context, sub *workshop.Subscription) (bool, error) {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return false, fmt.Errorf("failed to map subscription: %w", err)
	}

	created := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.SubscriptionModel
		findErr := tx.Where("type = ? AND subscriber_id = ? AND object_sid = ?",
			model.Type, model.SubscriberID, model.ObjectSID).
			First(&existing).Error

		switch findErr {
		case nil:
			return tx.Model(&existing).
				Select("alias_bindings", "snippet_bindings").
				Updates(model).Error
		case gorm.ErrRecordNotFound:
			created = true
			return tx.Create(model).Error
		default:
			return findErr
		}
	})
	if err != nil {
		r.logger.Errorw("failed to upsert subscription",
			"type", sub.Type,
			"subscriber", sub.SubscriberID,
			"object", sub.ObjectID,
			"error", err)
		return false, fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return created, nil
}

// Find loads the record for a (type, subscriber, object) key
func (r *SubscriptionRepositoryImpl) Find(ctx context.Context, typ workshop.SubscriptionType, subscriberID int64, objectID string) (*workshop.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("type = ? AND subscriber_id = ? AND object_sid = ?", string(typ), subscriberID, objectID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, workshop.ErrSubscriptionNotFound
		}
		r.logger.Errorw("failed to find subscription", "type", typ, "subscriber", subscriberID, "object", objectID, "error", err)
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Delete removes the record for a (type, subscriber, object) key
func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, typ workshop.SubscriptionType, subscriberID int64, objectID string) error {
	result := r.db.WithContext(ctx).
		Where("type = ? AND subscriber_id = ? AND object_sid = ?", string(typ), subscriberID, objectID).
		Delete(&models.SubscriptionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "type", typ, "subscriber", subscriberID, "object", objectID, "error", result.Error)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return workshop.ErrSubscriptionNotFound
	}

	return nil
}

// FindByObject loads every record of a kind for an object
func (r *SubscriptionRepositoryImpl) FindByObject(ctx context.Context, objectID string, typ workshop.SubscriptionType) ([]*workshop.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("object_sid = ? AND type = ?", objectID, string(typ)).
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to find subscriptions by object", "object", objectID, "type", typ, "error", err)
		return nil, fmt.Errorf("failed to find subscriptions by object: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

// FindBySubscriber loads every record of a kind held by a subscriber
func (r *SubscriptionRepositoryImpl) FindBySubscriber(ctx context.Context, typ workshop.SubscriptionType, subscriberID int64) ([]*workshop.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("type = ? AND subscriber_id = ?", string(typ), subscriberID).
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to find subscriptions by subscriber", "type", typ, "subscriber", subscriberID, "error", err)
		return nil, fmt.Errorf("failed to find subscriptions by subscriber: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

// CountByObject counts records of a kind for an object
func (r *SubscriptionRepositoryImpl) CountByObject(ctx context.Context, objectID string, typ workshop.SubscriptionType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("object_sid = ? AND type = ?", objectID, string(typ)).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "object", objectID, "type", typ, "error", err)
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return count, nil
}

// DeleteByObject removes every ledger record referencing an object
func (r *SubscriptionRepositoryImpl) DeleteByObject(ctx context.Context, objectID string) error {
	result := r.db.WithContext(ctx).
		Where("object_sid = ?", objectID).
		Delete(&models.SubscriptionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscriptions by object", "object", objectID, "error", result.Error)
		return fmt.Errorf("failed to delete subscriptions by object: %w", result.Error)
	}

	r.logger.Infow("subscriptions deleted", "object", objectID, "count", result.RowsAffected)
	return nil
}

// AppendBinding adds a binding to every subscribe and server_active record
// for the object, making new content immediately invocable by subscribers.
func (r *SubscriptionRepositoryImpl) AppendBinding(ctx context.Context, objectID string, kind workshop.BindingKind, binding workshop.Binding) error {
	return r.mutateBindings(ctx, objectID, kind, func(bindings []workshop.Binding) []workshop.Binding {
		for _, b := range bindings {
			if b.ID == binding.ID {
				return bindings
			}
		}
		return append(bindings, binding)
	})
}

// RemoveBinding pulls bindings for a deleted member from every record.
func (r *SubscriptionRepositoryImpl) RemoveBinding(ctx context.Context, objectID string, kind workshop.BindingKind, memberID string) error {
	return r.mutateBindings(ctx, objectID, kind, func(bindings []workshop.Binding) []workshop.Binding {
		out := bindings[:0]
		for _, b := range bindings {
			if b.ID != memberID {
				out = append(out, b)
			}
		}
		return out
	})
}

func (r *SubscriptionRepositoryImpl) mutateBindings(ctx context.Context, objectID string, kind workshop.BindingKind, mutate func([]workshop.Binding) []workshop.Binding) error {
	column := "alias_bindings"
	if kind == workshop.BindingKindSnippet {
		column = "snippet_bindings"
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var records []*models.SubscriptionModel
		if err := tx.Where("object_sid = ? AND type IN ?", objectID,
			[]string{string(workshop.SubscriptionTypeSubscribe), string(workshop.SubscriptionTypeServerActive)}).
			Find(&records).Error; err != nil {
			return fmt.Errorf("failed to load ledger records: %w", err)
		}

		for _, record := range records {
			raw := record.AliasBindings
			if kind == workshop.BindingKindSnippet {
				raw = record.SnippetBindings
			}

			var bindings []workshop.Binding
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &bindings); err != nil {
					return fmt.Errorf("failed to unmarshal bindings: %w", err)
				}
			}

			updated, err := json.Marshal(mutate(bindings))
			if err != nil {
				return fmt.Errorf("failed to marshal bindings: %w", err)
			}

			if err := tx.Model(record).UpdateColumn(column, updated).Error; err != nil {
				return fmt.Errorf("failed to update bindings: %w", err)
			}
		}
		return nil
	})
}
