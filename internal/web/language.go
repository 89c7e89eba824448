package web

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/modegarage/website/internal/cms"
	platformi18n "github.com/modegarage/website/internal/platform/i18n"
)

const (
	// langParam is the query parameter used to select a language.
	langParam = "lang"
	// langCookieName stores the visitor's language preference.
	langCookieName = "mg_lang"
)

// resolveLanguage determines the best site language for the request, checking
// the lang query parameter, then the preference cookie, then Accept-Language.
// A language chosen via query parameter is persisted as a cookie.
func resolveLanguage(w http.ResponseWriter, r *http.Request) cms.Language {
	tag := platformi18n.DefaultTag()

	if value := strings.TrimSpace(r.URL.Query().Get(langParam)); value != "" {
		if parsed, ok := platformi18n.ParseTag(value); ok {
			setLanguageCookie(w, parsed)
			return languageForTag(parsed)
		}
	}

	if cookie, err := r.Cookie(langCookieName); err == nil {
		if parsed, ok := platformi18n.ParseTag(cookie.Value); ok {
			return languageForTag(parsed)
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			tag = platformi18n.MatchTags(tags)
		}
	}

	return languageForTag(tag)
}

// setLanguageCookie persists the selected language on the response.
func setLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     langCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// languageForTag maps a resolved tag onto a content language.
func languageForTag(tag language.Tag) cms.Language {
	if tag == language.English {
		return cms.LanguageEnglish
	}
	return cms.LanguageKorean
}

// toggledLanguage returns the other supported language.
func toggledLanguage(lang cms.Language) cms.Language {
	if lang == cms.LanguageKorean {
		return cms.LanguageEnglish
	}
	return cms.LanguageKorean
}
