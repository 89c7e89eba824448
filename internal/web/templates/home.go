package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ServiceCard holds the formatted data for one services-grid entry.
type ServiceCard struct {
	// Icon is the Lucide symbol name, already resolved through the catalog
	// so unrecognized stored values fall back to the default icon.
	Icon        string
	Title       string
	Description string
}

// PostCard holds the formatted data for one blog preview card.
type PostCard struct {
	URL      string
	Title    string
	Excerpt  string
	Author   string
	Date     string
	Image    string
	Category string
}

// VideoCard holds one embedded video in the video story section.
type VideoCard struct {
	EmbedURL string
	Title    string
}

// ContactChannelLink is one social channel listed in the inquiry section.
type ContactChannelLink struct {
	Name   string
	Handle string
	URL    string
}

// ContactData is the view data for the quick inquiry section. The hero CTA
// anchors to this section, so the landing page always renders it.
type ContactData struct {
	Heading            string
	HotlineLabel       string
	HotlinePrimary     string
	HotlineSecondary   string
	AddressLabel       string
	Address            string
	Channels           []ContactChannelLink
	NamePlaceholder    string
	CarPlaceholder     string
	MessagePlaceholder string
	SubmitLabel        string
}

// HomeData is the view data for the marketing landing page.
type HomeData struct {
	HeroTitle    string
	HeroSubtitle string
	HeroCTA      string
	AboutTitle   string
	AboutText    string
	Services     []ServiceCard
	Posts        []PostCard
	BlogHeading  string
	VideoHeading string
	Videos       []VideoCard
	Contact      ContactData
}

// Home renders the landing page body: hero, services grid, about, and the
// blog preview section.
func Home(data HomeData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString("<section class=\"hero\">\n")
		fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(data.HeroTitle))
		fmt.Fprintf(&b, "<p>%s</p>\n", esc(data.HeroSubtitle))
		fmt.Fprintf(&b, "<a class=\"cta\" href=\"#contact\">%s</a>\n", esc(data.HeroCTA))
		b.WriteString("</section>\n")

		b.WriteString("<section id=\"services\" class=\"services\">\n<div class=\"grid\">\n")
		for _, svc := range data.Services {
			b.WriteString("<article class=\"service-card\">\n")
			fmt.Fprintf(&b, "<i data-lucide=%q class=\"icon\"></i>\n", esc(svc.Icon))
			fmt.Fprintf(&b, "<h3>%s</h3>\n", esc(svc.Title))
			fmt.Fprintf(&b, "<p>%s</p>\n", esc(svc.Description))
			b.WriteString("</article>\n")
		}
		b.WriteString("</div>\n</section>\n")

		b.WriteString("<section id=\"about\" class=\"about\">\n")
		fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(data.AboutTitle))
		fmt.Fprintf(&b, "<p>%s</p>\n", esc(data.AboutText))
		b.WriteString("</section>\n")

		b.WriteString("<section id=\"blog\" class=\"blog\">\n")
		fmt.Fprintf(&b, "<h2>%s</h2>\n<div class=\"grid\">\n", esc(data.BlogHeading))
		for _, post := range data.Posts {
			b.WriteString("<article class=\"post-card\">\n")
			if post.Image != "" {
				fmt.Fprintf(&b, "<img src=%q alt=%q loading=\"lazy\">\n", esc(post.Image), esc(post.Title))
			}
			fmt.Fprintf(&b, "<span class=\"category\">%s</span>\n", esc(post.Category))
			fmt.Fprintf(&b, "<h3><a href=%q>%s</a></h3>\n", esc(post.URL), esc(post.Title))
			fmt.Fprintf(&b, "<p>%s</p>\n", esc(post.Excerpt))
			fmt.Fprintf(&b, "<footer>%s · %s</footer>\n", esc(post.Author), esc(post.Date))
			b.WriteString("</article>\n")
		}
		b.WriteString("</div>\n</section>\n")

		b.WriteString("<section id=\"videos\" class=\"videos\">\n")
		fmt.Fprintf(&b, "<h2>%s</h2>\n<div class=\"grid\">\n", esc(data.VideoHeading))
		for _, video := range data.Videos {
			b.WriteString("<div class=\"video-frame\">\n")
			fmt.Fprintf(&b, "<iframe src=%q title=%q loading=\"lazy\" allowfullscreen></iframe>\n",
				esc(video.EmbedURL), esc(video.Title))
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n</section>\n")

		writeContact(&b, data.Contact)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeContact emits the quick inquiry section: hotline, address, social
// channels, and the inquiry form. The form is presentational; there is no
// server-side inquiry intake.
func writeContact(b *strings.Builder, contact ContactData) {
	b.WriteString("<section id=\"contact\" class=\"contact\">\n")
	fmt.Fprintf(b, "<h2>%s</h2>\n<div class=\"contact-grid\">\n<div class=\"contact-details\">\n", esc(contact.Heading))

	fmt.Fprintf(b, "<h3>%s</h3>\n", esc(contact.HotlineLabel))
	fmt.Fprintf(b, "<p class=\"hotline\">%s</p>\n", esc(contact.HotlinePrimary))
	fmt.Fprintf(b, "<p class=\"hotline secondary\">%s</p>\n", esc(contact.HotlineSecondary))
	fmt.Fprintf(b, "<h3>%s</h3>\n", esc(contact.AddressLabel))
	fmt.Fprintf(b, "<p class=\"address\">%s</p>\n", esc(contact.Address))

	b.WriteString("<div class=\"channels\">\n")
	for _, channel := range contact.Channels {
		fmt.Fprintf(b, "<a href=%q rel=\"noopener\">%s %s</a>\n",
			esc(channel.URL), esc(channel.Name), esc(channel.Handle))
	}
	b.WriteString("</div>\n</div>\n")

	b.WriteString("<form class=\"inquiry\">\n")
	fmt.Fprintf(b, "<input name=\"contact\" placeholder=%q>\n", esc(contact.NamePlaceholder))
	fmt.Fprintf(b, "<input name=\"car\" placeholder=%q>\n", esc(contact.CarPlaceholder))
	fmt.Fprintf(b, "<textarea name=\"message\" rows=\"5\" placeholder=%q></textarea>\n", esc(contact.MessagePlaceholder))
	fmt.Fprintf(b, "<button type=\"submit\">%s</button>\n", esc(contact.SubmitLabel))
	b.WriteString("</form>\n</div>\n</section>\n")
}
