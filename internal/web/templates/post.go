package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PostView holds the formatted data for the blog detail page.
type PostView struct {
	Title    string
	Author   string
	Date     string
	Image    string
	Category string
	// BodyHTML is the post content already rendered from Markdown. It is
	// operator-authored and inserted without further escaping.
	BodyHTML string
	Keywords []string
}

// Post renders the blog detail page body.
func Post(view PostView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString("<article class=\"post\">\n<header>\n")
		fmt.Fprintf(&b, "<span class=\"category\">%s</span>\n", esc(view.Category))
		fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(view.Title))
		fmt.Fprintf(&b, "<p class=\"byline\">%s · %s</p>\n", esc(view.Author), esc(view.Date))
		b.WriteString("</header>\n")
		if view.Image != "" {
			fmt.Fprintf(&b, "<img src=%q alt=%q>\n", esc(view.Image), esc(view.Title))
		}
		b.WriteString("<div class=\"post-body\">\n")
		b.WriteString(view.BodyHTML)
		b.WriteString("\n</div>\n")
		if len(view.Keywords) > 0 {
			b.WriteString("<ul class=\"keywords\">\n")
			for _, keyword := range view.Keywords {
				fmt.Fprintf(&b, "<li>#%s</li>\n", esc(keyword))
			}
			b.WriteString("</ul>\n")
		}
		b.WriteString("</article>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
