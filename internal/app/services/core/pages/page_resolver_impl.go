package pages

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/exceptions"
)

type pageResolver struct {
	PageRepository  contracts.PageRepository
	BaseURL         string
	DefaultLanguage string
}

// NewPageResolver resolves a page id to the page's own permalink and ignores the locale.
func NewPageResolver(pageRepository contracts.PageRepository, internalConfig *config.InternalConfig) contracts.PageResolver {
	return &pageResolver{
		PageRepository:  pageRepository,
		BaseURL:         internalConfig.App.BaseUrl,
		DefaultLanguage: internalConfig.Language.Default,
	}
}

func (r *pageResolver) Resolve(ctx context.Context, pageID, locale string) (string, error) {
	page, err := findPage(ctx, r.PageRepository, pageID)
	if err != nil {
		return "", err
	}
	return page.Permalink(r.BaseURL, r.DefaultLanguage), nil
}

type localizedPageResolver struct {
	PageRepository  contracts.PageRepository
	BaseURL         string
	DefaultLanguage string
}

// NewLocalizedPageResolver resolves a page id to its translation in the request locale. When
// there is none it uses the default-language translation, then the page itself.
func NewLocalizedPageResolver(pageRepository contracts.PageRepository, internalConfig *config.InternalConfig) contracts.PageResolver {
	return &localizedPageResolver{
		PageRepository:  pageRepository,
		BaseURL:         internalConfig.App.BaseUrl,
		DefaultLanguage: internalConfig.Language.Default,
	}
}

func (r *localizedPageResolver) Resolve(ctx context.Context, pageID, locale string) (string, error) {
	page, err := findPage(ctx, r.PageRepository, pageID)
	if err != nil {
		return "", err
	}

	if page.TranslationGroup != "" {
		for _, language := range []string{locale, r.DefaultLanguage} {
			if language == "" {
				continue
			}
			if language == r.pageLanguage(page) {
				break
			}
			translated, err := r.PageRepository.FindTranslation(ctx, page.TranslationGroup, language)
			if err != nil {
				return "", err
			}
			if translated != nil {
				return translated.Permalink(r.BaseURL, r.DefaultLanguage), nil
			}
		}
	}

	return page.Permalink(r.BaseURL, r.DefaultLanguage), nil
}

func (r *localizedPageResolver) pageLanguage(page *models.Page) string {
	if page.Language == "" {
		return r.DefaultLanguage
	}
	return page.Language
}

func findPage(ctx context.Context, pageRepository contracts.PageRepository, pageID string) (*models.Page, error) {
	if pageID == "" {
		return nil, exceptions.ErrPageNotFound(nil, pageID)
	}
	page, err := pageRepository.FindByID(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, exceptions.ErrPageNotFound(nil, pageID)
	}
	return page, nil
}
