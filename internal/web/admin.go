package web

import (
	"net/http"
	"strings"

	"github.com/modegarage/website/internal/ai"
	"github.com/modegarage/website/internal/cms"
	"github.com/modegarage/website/internal/web/templates"
)

// adminCookieName marks the session as admin. This is a UI-level toggle, not
// authentication: the admin surface ships with the demo site by design.
const adminCookieName = "mg_admin"

// isAdmin reports whether the request carries the admin-mode cookie.
func isAdmin(r *http.Request) bool {
	cookie, err := r.Cookie(adminCookieName)
	return err == nil && cookie.Value == "1"
}

// requireAdmin gates an admin route, rendering the entry page when the
// session is not in admin mode.
func (h *handler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if isAdmin(r) {
		return true
	}
	page, _ := h.pageContext(w, r)
	page.Title = "Admin"
	h.writePage(w, r, page, templates.AdminGate(), http.StatusOK)
	return false
}

func (h *handler) handleAdminToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w, r, http.MethodPost)
		return
	}

	value, maxAge := "1", 0
	target := "/admin"
	if isAdmin(r) {
		value, maxAge = "", -1
		target = "/"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *handler) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w, r, http.MethodGet)
		return
	}
	if !h.requireAdmin(w, r) {
		return
	}

	data := templates.DashboardData{
		Tip: h.ai.MarketingAdvice(r.Context(), ai.DefaultAdvicePrompt),
	}
	for _, point := range cms.Analytics() {
		data.Analytics = append(data.Analytics, templates.AnalyticsRow{
			Name:        point.Name,
			Visits:      point.Visits,
			Conversions: point.Conversions,
		})
	}

	page, _ := h.pageContext(w, r)
	page.Title = "Performance - Admin"
	h.writePage(w, r, page, templates.AdminShell(templates.AdminTabDashboard, templates.Dashboard(data)), http.StatusOK)
}

func (h *handler) handleAdminAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if !isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	// Advice is fetched fresh on every dashboard render; the refresh action
	// just round-trips back to it.
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// contentFieldLabels maps editable field paths to form labels.
var contentFieldLabels = map[cms.ContentField]string{
	cms.FieldHeroTitle:        "Hero Title",
	cms.FieldHeroSubtitle:     "Hero Subtitle",
	cms.FieldHeroCTA:          "Hero CTA",
	cms.FieldAboutTitle:       "About Title",
	cms.FieldAboutDescription: "About Description",
}

// multilineContentFields lists fields edited through a textarea.
var multilineContentFields = map[cms.ContentField]bool{
	cms.FieldHeroSubtitle:     true,
	cms.FieldAboutDescription: true,
}

func (h *handler) handleAdminContent(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleAdminContentGet(w, r)
	case http.MethodPost:
		h.handleAdminContentPost(w, r)
	default:
		h.methodNotAllowed(w, r, http.MethodGet+", "+http.MethodPost)
	}
}

// editedLanguage picks the language being edited in the admin panel. It is
// independent of the visitor-facing language preference and defaults to
// Korean, the primary site language.
func editedLanguage(r *http.Request) cms.Language {
	if cms.Language(r.URL.Query().Get(langParam)) == cms.LanguageEnglish {
		return cms.LanguageEnglish
	}
	return cms.LanguageKorean
}

func (h *handler) handleAdminContentGet(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	lang := editedLanguage(r)
	content, err := h.store.Content(lang)
	if err != nil {
		h.renderErrorPage(w, r, http.StatusInternalServerError, "Something Went Wrong", "Content unavailable.")
		return
	}

	data := templates.ContentEditorData{Lang: string(lang)}
	for _, l := range cms.Languages() {
		data.Languages = append(data.Languages, string(l))
	}
	for _, field := range cms.ContentFields() {
		value, err := content.Field(field)
		if err != nil {
			continue
		}
		data.Fields = append(data.Fields, templates.ContentFieldInput{
			Name:      string(field),
			Label:     contentFieldLabels[field],
			Value:     value,
			Multiline: multilineContentFields[field],
		})
	}

	page, _ := h.pageContext(w, r)
	page.Title = "Visual Editor - Admin"
	h.writePage(w, r, page, templates.AdminShell(templates.AdminTabContent, templates.ContentEditor(data)), http.StatusOK)
}

func (h *handler) handleAdminContentPost(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest, "Bad Request", "The submitted form could not be read.")
		return
	}

	lang := editedLanguage(r)
	content, err := h.store.Content(lang)
	if err != nil {
		h.renderErrorPage(w, r, http.StatusInternalServerError, "Something Went Wrong", "Content unavailable.")
		return
	}

	// Field-level updates: only submitted fields whose value changed are
	// written, so untouched copy never churns the store.
	for _, field := range cms.ContentFields() {
		if !r.PostForm.Has(string(field)) {
			continue
		}
		value := r.PostFormValue(string(field))
		current, err := content.Field(field)
		if err != nil || value == current {
			continue
		}
		if err := h.store.UpdateContentField(r.Context(), lang, field, value); err != nil {
			h.renderErrorPage(w, r, http.StatusInternalServerError, "Something Went Wrong", "The copy update failed.")
			return
		}
	}

	http.Redirect(w, r, "/admin/content?lang="+string(lang), http.StatusSeeOther)
}

func (h *handler) handleAdminPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w, r, http.MethodGet)
		return
	}
	if !h.requireAdmin(w, r) {
		return
	}

	data := templates.PostsAdminData{}
	for _, post := range h.store.Posts() {
		data.Posts = append(data.Posts, templates.PostRow{
			ID:       post.ID,
			Title:    post.Title,
			Category: post.Category,
			Date:     post.Date,
			Keywords: strings.Join(post.SEOKeywords, ", "),
		})
	}

	switch edit := r.URL.Query().Get("edit"); edit {
	case "":
	case "new":
		data.Edit = &templates.PostFormData{}
	default:
		if post, ok := h.store.Post(edit); ok {
			data.Edit = &templates.PostFormData{
				ID:       post.ID,
				Title:    post.Title,
				Excerpt:  post.Excerpt,
				Content:  post.Content,
				Author:   post.Author,
				Date:     post.Date,
				Image:    post.Image,
				Category: post.Category,
				Slug:     post.Slug,
			}
		}
	}

	page, _ := h.pageContext(w, r)
	page.Title = "Blog & SEO - Admin"
	h.writePage(w, r, page, templates.AdminShell(templates.AdminTabPosts, templates.PostsAdmin(data)), http.StatusOK)
}

func (h *handler) handleAdminPostSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if !isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest, "Bad Request", "The submitted form could not be read.")
		return
	}

	candidate := cms.BlogPost{
		ID:       strings.TrimSpace(r.PostFormValue("id")),
		Title:    r.PostFormValue("title"),
		Excerpt:  r.PostFormValue("excerpt"),
		Content:  r.PostFormValue("content"),
		Author:   r.PostFormValue("author"),
		Date:     r.PostFormValue("date"),
		Image:    r.PostFormValue("image"),
		Category: r.PostFormValue("category"),
		Slug:     r.PostFormValue("slug"),
	}

	// Pre-save enrichment: keywords are attached before the upsert commits.
	// The call never fails the save; it falls back to fixed keywords.
	candidate.SEOKeywords = h.ai.GenerateKeywords(r.Context(), candidate.Title, candidate.Content)

	if _, err := h.store.UpsertPost(r.Context(), candidate); err != nil {
		h.renderErrorPage(w, r, http.StatusInternalServerError, "Something Went Wrong", "The post could not be saved.")
		return
	}
	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

func (h *handler) handleAdminPostDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if !isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest, "Bad Request", "The submitted form could not be read.")
		return
	}

	h.store.DeletePost(r.Context(), strings.TrimSpace(r.PostFormValue("id")))
	http.Redirect(w, r, "/admin/posts", http.StatusSeeOther)
}

func (h *handler) handleAdminSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleAdminSettingsGet(w, r)
	case http.MethodPost:
		h.handleAdminSettingsPost(w, r)
	default:
		h.methodNotAllowed(w, r, http.MethodGet+", "+http.MethodPost)
	}
}

func (h *handler) handleAdminSettingsGet(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	settings := h.store.Settings()
	data := templates.SettingsFormData{
		PrimaryColor:   settings.PrimaryColor,
		AccentColor:    settings.AccentColor,
		FontFamily:     settings.FontFamily,
		SEOTitle:       settings.SEOTitle,
		SEODescription: settings.SEODescription,
		Instagram:      settings.Socials.Instagram,
		YouTube:        settings.Socials.YouTube,
		Facebook:       settings.Socials.Facebook,
	}

	page, _ := h.pageContext(w, r)
	page.Title = "Site Config - Admin"
	h.writePage(w, r, page, templates.AdminShell(templates.AdminTabSettings, templates.SettingsAdmin(data)), http.StatusOK)
}

func (h *handler) handleAdminSettingsPost(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest, "Bad Request", "The submitted form could not be read.")
		return
	}

	patch := cms.SettingsPatch{
		PrimaryColor:   formField(r, "primary_color"),
		AccentColor:    formField(r, "accent_color"),
		FontFamily:     formField(r, "font_family"),
		SEOTitle:       formField(r, "seo_title"),
		SEODescription: formField(r, "seo_description"),
	}
	socials := cms.SocialsPatch{
		Instagram: formField(r, "instagram"),
		YouTube:   formField(r, "youtube"),
		Facebook:  formField(r, "facebook"),
	}
	if socials.Instagram != nil || socials.YouTube != nil || socials.Facebook != nil {
		patch.Socials = &socials
	}

	h.store.UpdateSettings(r.Context(), patch)
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}

// formField returns a pointer to the submitted value, or nil when the field
// was not part of the form. Absent fields stay untouched in the patch.
func formField(r *http.Request, name string) *string {
	if !r.PostForm.Has(name) {
		return nil
	}
	value := r.PostFormValue(name)
	return &value
}
