// Package search implements the collection search index on a denormalized
// mirror table. Writes are fire-and-forget from the caller's point of view,
// so the mirror may briefly lag the source of truth.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/infrastructure/persistence/models"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

// CollectionIndexImpl implements the workshop.CollectionIndex interface
type CollectionIndexImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewCollectionIndex creates a new collection index instance
func NewCollectionIndex(db *gorm.DB, logger logger.Interface) workshop.CollectionIndex {
	return &CollectionIndexImpl{
		db:     db,
		logger: logger,
	}
}

// Index upserts the mirror document for a collection
func (i *CollectionIndexImpl) Index(ctx context.Context, doc workshop.CollectionDocument) error {
	tags, err := marshalTags(doc.Tags)
	if err != nil {
		return err
	}

	model := &models.CollectionDocModel{
		SID:                 doc.ID,
		Name:                doc.Name,
		Description:         doc.Description,
		Tags:                tags,
		PublishState:        doc.State.String(),
		NumSubscribers:      doc.NumSubscribers,
		NumGuildSubscribers: doc.NumGuildSubscribers,
		CreatedAt:           doc.CreatedAt,
		LastEdited:          doc.LastEdited,
	}

	if err := i.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sid"}},
			UpdateAll: true,
		}).
		Create(model).Error; err != nil {
		i.logger.Errorw("failed to index collection document", "sid", doc.ID, "error", err)
		return fmt.Errorf("failed to index collection document: %w", err)
	}

	return nil
}

// Delete removes the mirror document for a collection
func (i *CollectionIndexImpl) Delete(ctx context.Context, id string) error {
	if err := i.db.WithContext(ctx).
		Where("sid = ?", id).
		Delete(&models.CollectionDocModel{}).Error; err != nil {
		i.logger.Errorw("failed to delete collection document", "sid", id, "error", err)
		return fmt.Errorf("failed to delete collection document: %w", err)
	}
	return nil
}

// Search returns PUBLISHED collection IDs matching the query, in query order.
// Relevance weights name matches three times over description matches.
func (i *CollectionIndexImpl) Search(ctx context.Context, query workshop.SearchQuery) ([]string, error) {
	q := i.baseQuery(ctx, query.Text, query.Tags)

	selectExpr := "sid, 0 AS relevance"
	var selectArgs []interface{}

	switch query.Sort {
	case workshop.SortRelevance:
		expr, args := relevanceExpr(query.Text)
		if expr == "" {
			q = q.Order("num_subscribers DESC")
		} else {
			selectExpr = "sid, " + expr + " AS relevance"
			selectArgs = args
			q = q.Order("relevance DESC, num_subscribers DESC")
		}
	case workshop.SortNewest:
		q = q.Order("created_at DESC")
	case workshop.SortEditTime:
		q = q.Order("last_edited DESC")
	case workshop.SortGuildSubs:
		q = q.Order("num_guild_subscribers DESC")
	default:
		return nil, fmt.Errorf("unknown search sort: %s", query.Sort)
	}

	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if query.Offset > 0 {
		q = q.Offset(query.Offset)
	}

	type row struct {
		SID string
	}
	var rows []row
	if err := q.Select(selectExpr, selectArgs...).Scan(&rows).Error; err != nil {
		i.logger.Errorw("failed to search collection index", "sort", query.Sort, "error", err)
		return nil, fmt.Errorf("failed to search collection index: %w", err)
	}

	ids := make([]string, len(rows))
	for idx, rec := range rows {
		ids[idx] = rec.SID
	}
	return ids, nil
}

// FilterCandidates keeps only the candidate IDs matching the text/tag
// criteria among PUBLISHED documents, preserving input order.
func (i *CollectionIndexImpl) FilterCandidates(ctx context.Context, ids []string, text string, tags []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var matched []string
	if err := i.baseQuery(ctx, text, tags).
		Where("sid IN ?", ids).
		Pluck("sid", &matched).Error; err != nil {
		i.logger.Errorw("failed to filter candidates", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to filter candidates: %w", err)
	}

	matchedSet := make(map[string]bool, len(matched))
	for _, id := range matched {
		matchedSet[id] = true
	}
	out := make([]string, 0, len(matched))
	for _, id := range ids {
		if matchedSet[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (i *CollectionIndexImpl) baseQuery(ctx context.Context, text string, tags []string) *gorm.DB {
	q := i.db.WithContext(ctx).
		Model(&models.CollectionDocModel{}).
		Where("publish_state = ?", workshop.StatePublished.String())

	for _, tag := range tags {
		q = q.Where("tags LIKE ?", `%"`+tag+`"%`)
	}

	if text != "" {
		for _, term := range searchTerms(text) {
			pattern := "%" + term + "%"
			q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
	}
	return q
}

// relevanceExpr builds a per-term weighted scoring expression: a name hit
// counts three times a description hit.
func relevanceExpr(text string) (string, []interface{}) {
	terms := searchTerms(text)
	if len(terms) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(terms))
	args := make([]interface{}, 0, len(terms)*2)
	for _, term := range terms {
		pattern := "%" + term + "%"
		parts = append(parts, "(CASE WHEN LOWER(name) LIKE ? THEN 3 ELSE 0 END + CASE WHEN LOWER(description) LIKE ? THEN 1 ELSE 0 END)")
		args = append(args, pattern, pattern)
	}
	return "(" + strings.Join(parts, " + ") + ")", args
}

func searchTerms(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func marshalTags(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}
	return datatypes.JSON(raw), nil
}
