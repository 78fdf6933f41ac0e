package dto

import "github.com/vellum-app/vellum/internal/domain/workshop"

// TagDTO is one entry of the controlled tag vocabulary.
type TagDTO struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// ToTagDTOs converts the tag vocabulary.
func ToTagDTOs(tags []workshop.Tag) []TagDTO {
	out := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagDTO{Slug: t.Slug, Name: t.Name})
	}
	return out
}
