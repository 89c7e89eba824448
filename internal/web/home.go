package web

import (
	"log"
	"net/http"

	"github.com/modegarage/website/internal/cms"
	"github.com/modegarage/website/internal/platform/icons"
	"github.com/modegarage/website/internal/web/templates"
)

// blogPreviewLimit caps how many posts show on the landing page.
const blogPreviewLimit = 6

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.renderErrorPage(w, r, http.StatusNotFound, "Page Not Found", "The page you are looking for does not exist.")
		return
	}
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w, r, http.MethodGet)
		return
	}

	page, lang := h.pageContext(w, r)
	content, err := h.store.Content(lang)
	if err != nil {
		// The language set is fixed, so this is a defect, not user error.
		log.Printf("web: load content for %s: %v", lang, err)
		h.renderErrorPage(w, r, http.StatusInternalServerError, "Something Went Wrong", "Please try again later.")
		return
	}

	data := templates.HomeData{
		HeroTitle:    content.Hero.Title,
		HeroSubtitle: content.Hero.Subtitle,
		HeroCTA:      content.Hero.CTA,
		AboutTitle:   content.About.Title,
		AboutText:    content.About.Description,
		BlogHeading:  blogHeading(lang),
		VideoHeading: "Video Story",
		Contact:      contactData(lang),
	}
	for _, video := range cms.Videos() {
		data.Videos = append(data.Videos, templates.VideoCard{
			EmbedURL: "https://www.youtube.com/embed/" + video.VideoID,
			Title:    video.Title,
		})
	}
	for _, svc := range content.Services {
		data.Services = append(data.Services, templates.ServiceCard{
			Icon:        icons.LucideNameOrDefault(svc.Icon),
			Title:       svc.Title,
			Description: svc.Description,
		})
	}
	for _, post := range h.store.Posts() {
		if len(data.Posts) >= blogPreviewLimit {
			break
		}
		data.Posts = append(data.Posts, templates.PostCard{
			URL:      "/blog/" + post.ID,
			Title:    post.Title,
			Excerpt:  post.Excerpt,
			Author:   post.Author,
			Date:     post.Date,
			Image:    post.Image,
			Category: post.Category,
		})
	}

	h.writePage(w, r, page, templates.Home(data), http.StatusOK)
}

func blogHeading(lang cms.Language) string {
	if lang == cms.LanguageEnglish {
		return "Insights"
	}
	return "인사이트"
}

// contactData assembles the inquiry section: fixed garage contact details
// plus per-language form labels.
func contactData(lang cms.Language) templates.ContactData {
	info := cms.Contact()
	data := templates.ContactData{
		Heading:          "Quick Inquiry",
		HotlinePrimary:   info.HotlinePrimary,
		HotlineSecondary: info.HotlineSecondary,
		Address:          info.Address,
	}
	for _, channel := range info.Channels {
		data.Channels = append(data.Channels, templates.ContactChannelLink{
			Name:   channel.Name,
			Handle: channel.Handle,
			URL:    channel.URL,
		})
	}

	if lang == cms.LanguageEnglish {
		data.HotlineLabel = "Hotline"
		data.AddressLabel = "Directions"
		data.NamePlaceholder = "Name or phone number"
		data.CarPlaceholder = "Car model (e.g. Porsche 911)"
		data.MessagePlaceholder = "What can we help with?"
		data.SubmitLabel = "Request a Call"
		return data
	}
	data.HotlineLabel = "긴급 상담"
	data.AddressLabel = "오시는 길"
	data.NamePlaceholder = "성함 또는 연락처"
	data.CarPlaceholder = "차종 (예: 포르쉐 911)"
	data.MessagePlaceholder = "상담 내용"
	data.SubmitLabel = "신청하기"
	return data
}

func logRenderError(r *http.Request, err error) {
	log.Printf("web: render %s: %v", r.URL.Path, err)
}
