package models

import (
	"double-optin-service/internal/pkg/dto/responses"
	"strings"
)

type Page struct {
	ID               string `json:"id" bson:"_id"`
	Title            string `json:"title" bson:"title"`
	Slug             string `json:"slug" bson:"slug"`
	Language         string `json:"language" bson:"language"`
	TranslationGroup string `json:"translation_group" bson:"translation_group"`
}

// Permalink builds the canonical URL of the page. Pages in a language other than the default
// one live under a language path segment.
func (p Page) Permalink(baseURL, defaultLanguage string) string {
	var builder strings.Builder
	builder.WriteString(strings.TrimRight(baseURL, "/"))
	builder.WriteString("/")
	if p.Language != "" && p.Language != defaultLanguage {
		builder.WriteString(p.Language)
		builder.WriteString("/")
	}
	if slug := strings.Trim(p.Slug, "/"); slug != "" {
		builder.WriteString(slug)
		builder.WriteString("/")
	}
	return builder.String()
}

func (p Page) ConvertIntoResponse() responses.Page {
	return responses.Page{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Language:         p.Language,
		TranslationGroup: p.TranslationGroup,
	}
}
