package web

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/modegarage/website/internal/ai"
	"github.com/modegarage/website/internal/cms"
	"github.com/modegarage/website/internal/web/templates"
)

// handler owns the route table and the repositories it reads and mutates.
type handler struct {
	store    *cms.Store
	ai       *ai.Client
	markdown goldmark.Markdown
}

// NewHandler builds the HTTP handler for the site and admin panel.
func NewHandler(store *cms.Store, aiClient *ai.Client) http.Handler {
	h := &handler{
		store: store,
		ai:    aiClient,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleHome)
	mux.HandleFunc("/blog/", h.handlePost)
	mux.HandleFunc("/admin", h.handleAdminDashboard)
	mux.HandleFunc("/admin/toggle", h.handleAdminToggle)
	mux.HandleFunc("/admin/advice", h.handleAdminAdvice)
	mux.HandleFunc("/admin/content", h.handleAdminContent)
	mux.HandleFunc("/admin/posts", h.handleAdminPosts)
	mux.HandleFunc("/admin/posts/save", h.handleAdminPostSave)
	mux.HandleFunc("/admin/posts/delete", h.handleAdminPostDelete)
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler()))
	mux.HandleFunc("/admin/settings", h.handleAdminSettings)
	return mux
}

// pageContext assembles the shared layout context for a request.
func (h *handler) pageContext(w http.ResponseWriter, r *http.Request) (templates.Page, cms.Language) {
	lang := resolveLanguage(w, r)
	settings := h.store.Settings()
	other := toggledLanguage(lang)

	label := "EN"
	if other == cms.LanguageKorean {
		label = "KO"
	}

	return templates.Page{
		Lang:            string(lang),
		SEOTitle:        settings.SEOTitle,
		SEODescription:  settings.SEODescription,
		PrimaryColor:    settings.PrimaryColor,
		AccentColor:     settings.AccentColor,
		FontFamily:      settings.FontFamily,
		Socials: templates.Socials{
			Instagram: settings.Socials.Instagram,
			YouTube:   settings.Socials.YouTube,
			Facebook:  settings.Socials.Facebook,
		},
		IsAdmin:         isAdmin(r),
		ToggleLangURL:   r.URL.Path + "?lang=" + string(other),
		ToggleLangLabel: label,
	}, lang
}

// writePage renders a full document for the request.
func (h *handler) writePage(w http.ResponseWriter, r *http.Request, page templates.Page, body templ.Component, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := templates.Layout(page, body).Render(r.Context(), w); err != nil {
		// The status line is already out; all we can do is log.
		logRenderError(r, err)
	}
}

// renderErrorPage writes a localized-enough error document.
func (h *handler) renderErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, heading, message string) {
	page, _ := h.pageContext(w, r)
	page.Title = heading
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := templates.ErrorPage(page, heading, message).Render(r.Context(), w); err != nil {
		logRenderError(r, err)
	}
}

// methodNotAllowed answers non-supported methods with the Allow header set.
func (h *handler) methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	h.renderErrorPage(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", "This page does not support that request method.")
}
