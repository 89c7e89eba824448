// Package templates renders the site's pages as templ components.
//
// Components are plain Go functions returning templ.Component so view data
// stays typed and testable; all dynamic text is escaped before interpolation.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/modegarage/website/internal/platform/branding"
)

// esc escapes dynamic text for HTML interpolation.
func esc(value string) string {
	return templ.EscapeString(value)
}

// Socials holds the footer social links.
type Socials struct {
	Instagram string
	YouTube   string
	Facebook  string
}

// Page provides shared layout context for every rendered page.
type Page struct {
	// Lang is the active content language tag (ko or en).
	Lang string
	// Title is the document title; empty falls back to the SEO title.
	Title string
	// SEOTitle and SEODescription come from site settings.
	SEOTitle       string
	SEODescription string
	// Branding colors and font, injected as CSS variables.
	PrimaryColor string
	AccentColor  string
	FontFamily   string
	// Socials renders in the footer.
	Socials Socials
	// IsAdmin toggles the admin chrome link.
	IsAdmin bool
	// ToggleLangURL switches the site to the other language.
	ToggleLangURL string
	// ToggleLangLabel names the other language in the switcher.
	ToggleLangLabel string
}

// DocumentTitle resolves the title shown in the browser tab.
func (p Page) DocumentTitle() string {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return p.SEOTitle
	}
	return title + " | " + branding.AppName
}

// Layout wraps a body component with the shared document chrome.
func Layout(page Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n")
		fmt.Fprintf(&b, "<html lang=%q>\n<head>\n<meta charset=\"utf-8\">\n", esc(page.Lang))
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(&b, "<title>%s</title>\n", esc(page.DocumentTitle()))
		fmt.Fprintf(&b, "<meta name=\"description\" content=%q>\n", esc(page.SEODescription))
		fmt.Fprintf(&b, "<style>:root{--primary:%s;--accent:%s;--font:%s}</style>\n",
			esc(page.PrimaryColor), esc(page.AccentColor), esc(page.FontFamily))
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/site.css\">\n")
		b.WriteString("</head>\n<body>\n")

		// Header chrome.
		b.WriteString("<header class=\"site-header\">\n")
		fmt.Fprintf(&b, "<a class=\"brand\" href=\"/\">%s</a>\n", esc(branding.AppName))
		b.WriteString("<nav>\n")
		labels := chromeLabels(page.Lang)
		fmt.Fprintf(&b, "<a href=\"/#services\">%s</a>\n", esc(labels.Services))
		fmt.Fprintf(&b, "<a href=\"/#about\">%s</a>\n", esc(labels.About))
		fmt.Fprintf(&b, "<a href=\"/#blog\">%s</a>\n", esc(labels.Blog))
		fmt.Fprintf(&b, "<a class=\"lang-toggle\" href=%q>%s</a>\n", esc(page.ToggleLangURL), esc(page.ToggleLangLabel))
		if page.IsAdmin {
			fmt.Fprintf(&b, "<a class=\"admin-link\" href=\"/admin\">%s</a>\n", esc(labels.Admin))
		}
		b.WriteString("</nav>\n</header>\n<main>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		var f strings.Builder
		f.WriteString("</main>\n<footer class=\"site-footer\">\n<div class=\"socials\">\n")
		writeSocialLink(&f, "Instagram", page.Socials.Instagram)
		writeSocialLink(&f, "YouTube", page.Socials.YouTube)
		writeSocialLink(&f, "Facebook", page.Socials.Facebook)
		f.WriteString("</div>\n")
		fmt.Fprintf(&f, "<p>© %s</p>\n", esc(branding.AppName))
		f.WriteString("</footer>\n</body>\n</html>\n")
		_, err := io.WriteString(w, f.String())
		return err
	})
}

// writeSocialLink emits one footer link, skipping placeholder URLs.
func writeSocialLink(b *strings.Builder, name, url string) {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" || trimmed == "#" {
		return
	}
	fmt.Fprintf(b, "<a href=%q rel=\"noopener\">%s</a>\n", esc(trimmed), esc(name))
}

// ErrorPage renders a minimal error document.
func ErrorPage(page Page, heading, message string) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"<section class=\"error-page\">\n<h1>%s</h1>\n<p>%s</p>\n<a href=\"/\">← %s</a>\n</section>\n",
			esc(heading), esc(message), esc(branding.AppName))
		return err
	}))
}

// chrome holds the fixed navigation labels per language.
type chrome struct {
	Services string
	About    string
	Blog     string
	Admin    string
}

// chromeLabels returns navigation labels for a language tag. Site copy lives
// in the content repository; only this fixed chrome is translated here.
func chromeLabels(lang string) chrome {
	if lang == "en" {
		return chrome{Services: "Services", About: "About", Blog: "Insights", Admin: "Admin"}
	}
	return chrome{Services: "서비스", About: "소개", Blog: "인사이트", Admin: "관리자"}
}
