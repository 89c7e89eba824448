package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/modegarage/website/internal/platform/branding"
)

// Admin tab identifiers used for sidebar highlighting.
const (
	AdminTabDashboard = "dashboard"
	AdminTabContent   = "content"
	AdminTabPosts     = "posts"
	AdminTabSettings  = "settings"
)

// adminNav lists the sidebar entries in display order.
var adminNav = []struct {
	Tab   string
	URL   string
	Label string
}{
	{Tab: AdminTabDashboard, URL: "/admin", Label: "Performance"},
	{Tab: AdminTabContent, URL: "/admin/content", Label: "Visual Editor"},
	{Tab: AdminTabPosts, URL: "/admin/posts", Label: "Blog & SEO"},
	{Tab: AdminTabSettings, URL: "/admin/settings", Label: "Site Config"},
}

// AdminShell wraps an admin tab body with the shared sidebar chrome.
func AdminShell(activeTab string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<div class=\"admin\">\n<aside class=\"admin-sidebar\">\n")
		fmt.Fprintf(&b, "<h2>%s</h2>\n<nav>\n", esc(branding.AdminName))
		for _, item := range adminNav {
			class := ""
			if item.Tab == activeTab {
				class = " class=\"active\""
			}
			fmt.Fprintf(&b, "<a%s href=%q>%s</a>\n", class, esc(item.URL), esc(item.Label))
		}
		b.WriteString("</nav>\n")
		b.WriteString("<form method=\"post\" action=\"/admin/toggle\"><button type=\"submit\">Exit Admin</button></form>\n")
		b.WriteString("</aside>\n<section class=\"admin-content\">\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</section>\n</div>\n")
		return err
	})
}

// AdminGate renders the admin-mode entry page shown to non-admin visitors.
func AdminGate() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<section class=\"admin-gate\">\n")
		fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(branding.AdminName))
		b.WriteString("<form method=\"post\" action=\"/admin/toggle\">\n")
		b.WriteString("<button type=\"submit\">Enter Admin Mode</button>\n")
		b.WriteString("</form>\n</section>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AnalyticsRow is one formatted dashboard analytics entry.
type AnalyticsRow struct {
	Name        string
	Visits      int
	Conversions int
}

// DashboardData is the view data for the admin dashboard tab.
type DashboardData struct {
	Tip       string
	Analytics []AnalyticsRow
}

// Dashboard renders the performance tab: demo analytics and the AI tip.
func Dashboard(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Performance</h1>\n")

		b.WriteString("<div class=\"ai-tip\">\n<h3>Marketing Tip</h3>\n")
		fmt.Fprintf(&b, "<p>%s</p>\n", esc(data.Tip))
		b.WriteString("<form method=\"post\" action=\"/admin/advice\" onsubmit=\"this.querySelector('button').disabled=true\">\n")
		b.WriteString("<button type=\"submit\">Refresh Advice</button>\n</form>\n</div>\n")

		b.WriteString("<table class=\"analytics\">\n<thead><tr><th>Day</th><th>Visits</th><th>Conversions</th></tr></thead>\n<tbody>\n")
		for _, row := range data.Analytics {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				esc(row.Name), strconv.Itoa(row.Visits), strconv.Itoa(row.Conversions))
		}
		b.WriteString("</tbody>\n</table>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ContentFieldInput is one editable copy field in the visual editor.
type ContentFieldInput struct {
	// Name is the form field name (the content field path).
	Name string
	// Label is the human-readable field name.
	Label string
	// Value is the current stored copy.
	Value string
	// Multiline selects a textarea over a single-line input.
	Multiline bool
}

// ContentEditorData is the view data for the visual editor tab.
type ContentEditorData struct {
	// Lang is the language being edited.
	Lang string
	// Languages lists the available language tabs.
	Languages []string
	Fields    []ContentFieldInput
}

// ContentEditor renders the per-language copy editing form.
func ContentEditor(data ContentEditorData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Visual Editor</h1>\n<nav class=\"lang-tabs\">\n")
		for _, lang := range data.Languages {
			class := ""
			if lang == data.Lang {
				class = " class=\"active\""
			}
			fmt.Fprintf(&b, "<a%s href=\"/admin/content?lang=%s\">%s</a>\n", class, esc(lang), esc(strings.ToUpper(lang)))
		}
		b.WriteString("</nav>\n")

		fmt.Fprintf(&b, "<form method=\"post\" action=\"/admin/content?lang=%s\" onsubmit=\"this.querySelector('button[type=submit]').disabled=true\">\n", esc(data.Lang))
		for _, field := range data.Fields {
			fmt.Fprintf(&b, "<label for=%q>%s</label>\n", esc(field.Name), esc(field.Label))
			if field.Multiline {
				fmt.Fprintf(&b, "<textarea id=%q name=%q rows=\"3\">%s</textarea>\n",
					esc(field.Name), esc(field.Name), esc(field.Value))
			} else {
				fmt.Fprintf(&b, "<input id=%q name=%q value=%q>\n",
					esc(field.Name), esc(field.Name), esc(field.Value))
			}
		}
		b.WriteString("<button type=\"submit\">Save Copy</button>\n</form>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// PostRow is one formatted entry in the admin posts table.
type PostRow struct {
	ID       string
	Title    string
	Category string
	Date     string
	Keywords string
}

// PostFormData is the view data for the post editor form.
type PostFormData struct {
	ID       string
	Title    string
	Excerpt  string
	Content  string
	Author   string
	Date     string
	Image    string
	Category string
	Slug     string
}

// PostsAdminData is the view data for the blog tab.
type PostsAdminData struct {
	Posts []PostRow
	// Edit is non-nil when the editor form is open.
	Edit *PostFormData
}

// PostsAdmin renders the post list and, when requested, the editor form.
func PostsAdmin(data PostsAdminData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Blog & SEO</h1>\n")
		b.WriteString("<a class=\"button\" href=\"/admin/posts?edit=new\">New Post</a>\n")

		b.WriteString("<table class=\"posts\">\n<thead><tr><th>Title</th><th>Category</th><th>Date</th><th>Keywords</th><th></th></tr></thead>\n<tbody>\n")
		for _, post := range data.Posts {
			b.WriteString("<tr>")
			fmt.Fprintf(&b, "<td><a href=\"/admin/posts?edit=%s\">%s</a></td>", esc(post.ID), esc(post.Title))
			fmt.Fprintf(&b, "<td>%s</td><td>%s</td><td>%s</td>", esc(post.Category), esc(post.Date), esc(post.Keywords))
			fmt.Fprintf(&b, "<td><form method=\"post\" action=\"/admin/posts/delete\"><input type=\"hidden\" name=\"id\" value=%q><button type=\"submit\">Delete</button></form></td>", esc(post.ID))
			b.WriteString("</tr>\n")
		}
		b.WriteString("</tbody>\n</table>\n")

		if data.Edit != nil {
			writePostForm(&b, *data.Edit)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writePostForm emits the post editor. Saving runs the SEO enrichment step,
// so the submit button locks while the request is in flight.
func writePostForm(b *strings.Builder, form PostFormData) {
	b.WriteString("<form class=\"post-form\" method=\"post\" action=\"/admin/posts/save\" onsubmit=\"this.querySelector('button[type=submit]').disabled=true\">\n")
	fmt.Fprintf(b, "<input type=\"hidden\" name=\"id\" value=%q>\n", esc(form.ID))
	writeTextInput(b, "title", "Title", form.Title)
	b.WriteString("<label for=\"excerpt\">Excerpt</label>\n")
	fmt.Fprintf(b, "<textarea id=\"excerpt\" name=\"excerpt\" rows=\"2\">%s</textarea>\n", esc(form.Excerpt))
	b.WriteString("<label for=\"content\">Content (Markdown)</label>\n")
	fmt.Fprintf(b, "<textarea id=\"content\" name=\"content\" rows=\"10\">%s</textarea>\n", esc(form.Content))
	writeTextInput(b, "author", "Author", form.Author)
	writeTextInput(b, "date", "Date", form.Date)
	writeTextInput(b, "image", "Image URL", form.Image)
	writeTextInput(b, "category", "Category", form.Category)
	writeTextInput(b, "slug", "Slug", form.Slug)
	b.WriteString("<button type=\"submit\">Save & Generate SEO</button>\n</form>\n")
}

func writeTextInput(b *strings.Builder, name, label, value string) {
	fmt.Fprintf(b, "<label for=%q>%s</label>\n", esc(name), esc(label))
	fmt.Fprintf(b, "<input id=%q name=%q value=%q>\n", esc(name), esc(name), esc(value))
}

// SettingsFormData is the view data for the site config tab.
type SettingsFormData struct {
	PrimaryColor   string
	AccentColor    string
	FontFamily     string
	SEOTitle       string
	SEODescription string
	Instagram      string
	YouTube        string
	Facebook       string
}

// SettingsAdmin renders the site configuration form.
func SettingsAdmin(data SettingsFormData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Site Config</h1>\n")
		b.WriteString("<form method=\"post\" action=\"/admin/settings\" onsubmit=\"this.querySelector('button[type=submit]').disabled=true\">\n")
		b.WriteString("<fieldset>\n<legend>Branding</legend>\n")
		writeTextInput(&b, "primary_color", "Primary Color", data.PrimaryColor)
		writeTextInput(&b, "accent_color", "Accent Color", data.AccentColor)
		writeTextInput(&b, "font_family", "Font Family", data.FontFamily)
		b.WriteString("</fieldset>\n<fieldset>\n<legend>SEO</legend>\n")
		writeTextInput(&b, "seo_title", "SEO Title", data.SEOTitle)
		b.WriteString("<label for=\"seo_description\">SEO Description</label>\n")
		fmt.Fprintf(&b, "<textarea id=\"seo_description\" name=\"seo_description\" rows=\"2\">%s</textarea>\n", esc(data.SEODescription))
		b.WriteString("</fieldset>\n<fieldset>\n<legend>Social Links</legend>\n")
		writeTextInput(&b, "instagram", "Instagram", data.Instagram)
		writeTextInput(&b, "youtube", "YouTube", data.YouTube)
		writeTextInput(&b, "facebook", "Facebook", data.Facebook)
		b.WriteString("</fieldset>\n<button type=\"submit\">Save Settings</button>\n</form>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
