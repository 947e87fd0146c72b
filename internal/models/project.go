package models

import "time"

// Project is a single portfolio entry as stored in the projects table.
// JSON field names match the PostgREST column names.
type Project struct {
	ID            int64     `json:"id"`
	TitleEN       string    `json:"title_en"`
	TitleAR       string    `json:"title_ar"`
	DescriptionEN string    `json:"description_en"`
	DescriptionAR string    `json:"description_ar"`
	Link          string    `json:"link"`
	ImageURL      *string   `json:"image_url"`
	AltText       *string   `json:"alt_text"`
	DisplayOrder  int       `json:"display_order"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Title returns the title for the given language ("en" or "ar").
func (p Project) Title(lang string) string {
	if lang == "ar" {
		return p.TitleAR
	}
	return p.TitleEN
}

// Description returns the description for the given language.
func (p Project) Description(lang string) string {
	if lang == "ar" {
		return p.DescriptionAR
	}
	return p.DescriptionEN
}

// ProjectDraft holds the editable fields of a project. The id and the
// timestamps are assigned by the store and never appear in a draft.
type ProjectDraft struct {
	TitleEN       string  `json:"title_en"`
	TitleAR       string  `json:"title_ar"`
	DescriptionEN string  `json:"description_en"`
	DescriptionAR string  `json:"description_ar"`
	Link          string  `json:"link"`
	ImageURL      *string `json:"image_url"`
	AltText       *string `json:"alt_text"`
	DisplayOrder  int     `json:"display_order"`
	IsActive      bool    `json:"is_active"`
}

// DraftOf copies a project's editable fields into a draft.
func DraftOf(p Project) ProjectDraft {
	return ProjectDraft{
		TitleEN:       p.TitleEN,
		TitleAR:       p.TitleAR,
		DescriptionEN: p.DescriptionEN,
		DescriptionAR: p.DescriptionAR,
		Link:          p.Link,
		ImageURL:      p.ImageURL,
		AltText:       p.AltText,
		DisplayOrder:  p.DisplayOrder,
		IsActive:      p.IsActive,
	}
}
