package middlewares

import (
	"context"
	"double-optin-service/internal/pkg/constvars"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Language stores the request locale in the context: a supported lang query parameter first,
// then the best Accept-Language match, then the default language.
func (m *Middlewares) Language(next http.Handler) http.Handler {
	defaultLanguage := m.InternalConfig.Language.Default
	if defaultLanguage == "" {
		defaultLanguage = constvars.DefaultLanguage
	}

	supported := []language.Tag{language.Make(defaultLanguage)}
	for _, code := range m.InternalConfig.Language.Supported {
		tag, err := language.Parse(strings.TrimSpace(code))
		if err != nil || tag == supported[0] {
			continue
		}
		supported = append(supported, tag)
	}
	matcher := language.NewMatcher(supported)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := negotiateLocale(r, supported, matcher, defaultLanguage)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_LOCALE_KEY, locale)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func negotiateLocale(r *http.Request, supported []language.Tag, matcher language.Matcher, defaultLanguage string) string {
	if query := r.URL.Query().Get(constvars.LanguageQueryParam); query != "" {
		if code, ok := exactMatch(supported, query); ok {
			return code
		}
	}
	if header := r.Header.Get(constvars.HeaderAcceptLanguage); header != "" {
		_, index, confidence := matcher.Match(parseAcceptLanguage(header)...)
		if confidence != language.No {
			return baseCode(supported[index])
		}
	}
	return defaultLanguage
}

func exactMatch(supported []language.Tag, code string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", false
	}
	for _, candidate := range supported {
		if candidate == tag || baseCode(candidate) == baseCode(tag) {
			return baseCode(candidate), true
		}
	}
	return "", false
}

func parseAcceptLanguage(header string) []language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

func baseCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
