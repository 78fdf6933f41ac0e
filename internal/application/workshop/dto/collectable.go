package dto

import (
	"time"

	"github.com/vellum-app/vellum/internal/domain/workshop"
)

// CodeVersionDTO is one entry of a collectable's version history.
type CodeVersionDTO struct {
	Version   int       `json:"version"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsCurrent bool      `json:"is_current"`
}

// EntitlementDTO is one entitlement gate on a collectable.
type EntitlementDTO struct {
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Required   bool   `json:"required"`
}

// AliasDTO is the public view of an alias. Subcommands are populated only by
// the full-tree endpoints.
type AliasDTO struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Docs          string           `json:"docs"`
	Code          string           `json:"code"`
	CollectionID  string           `json:"collection_id"`
	ParentID      *string          `json:"parent_id,omitempty"`
	SubcommandIDs []string         `json:"subcommand_ids"`
	Entitlements  []EntitlementDTO `json:"entitlements"`
	Versions      []CodeVersionDTO `json:"versions,omitempty"`
	Subcommands   []*AliasDTO      `json:"subcommands,omitempty"`
}

// SnippetDTO is the public view of a snippet.
type SnippetDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Docs         string           `json:"docs"`
	Code         string           `json:"code"`
	CollectionID string           `json:"collection_id"`
	Entitlements []EntitlementDTO `json:"entitlements"`
	Versions     []CodeVersionDTO `json:"versions,omitempty"`
}

// CodeVersionPageDTO is one page of a collectable's version history.
type CodeVersionPageDTO struct {
	Items    []CodeVersionDTO
	Total    int64
	Page     int
	PageSize int
}

// ToCodeVersionDTO converts a domain code version.
func ToCodeVersionDTO(v workshop.CodeVersion) CodeVersionDTO {
	return CodeVersionDTO{
		Version:   v.Version,
		Content:   v.Content,
		CreatedAt: v.CreatedAt,
		IsCurrent: v.IsCurrent,
	}
}

// ToCodeVersionDTOs converts a version history slice.
func ToCodeVersionDTOs(versions []workshop.CodeVersion) []CodeVersionDTO {
	out := make([]CodeVersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, ToCodeVersionDTO(v))
	}
	return out
}

func toEntitlementDTOs(entitlements []workshop.RequiredEntitlement) []EntitlementDTO {
	out := make([]EntitlementDTO, 0, len(entitlements))
	for _, e := range entitlements {
		out = append(out, EntitlementDTO{
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Required:   e.Required,
		})
	}
	return out
}

// ToAliasDTO converts a domain alias. Version history is included only when
// withVersions is set; listing endpoints omit it to keep payloads small.
func ToAliasDTO(a *workshop.Alias, withVersions bool) *AliasDTO {
	d := &AliasDTO{
		ID:            a.ID(),
		Name:          a.Name(),
		Docs:          a.Docs(),
		Code:          a.Code(),
		CollectionID:  a.CollectionID(),
		ParentID:      a.ParentID(),
		SubcommandIDs: a.SubcommandIDs(),
		Entitlements:  toEntitlementDTOs(a.Entitlements()),
	}
	if withVersions {
		d.Versions = ToCodeVersionDTOs(a.CodeVersions())
	}
	return d
}

// ToSnippetDTO converts a domain snippet.
func ToSnippetDTO(s *workshop.Snippet, withVersions bool) *SnippetDTO {
	d := &SnippetDTO{
		ID:           s.ID(),
		Name:         s.Name(),
		Docs:         s.Docs(),
		Code:         s.Code(),
		CollectionID: s.CollectionID(),
		Entitlements: toEntitlementDTOs(s.Entitlements()),
	}
	if withVersions {
		d.Versions = ToCodeVersionDTOs(s.CodeVersions())
	}
	return d
}
