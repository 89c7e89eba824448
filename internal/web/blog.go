package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/modegarage/website/internal/cms"
	"github.com/modegarage/website/internal/web/templates"
)

func (h *handler) handlePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w, r, http.MethodGet)
		return
	}

	key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/blog/"), "/")
	if key == "" {
		http.Redirect(w, r, "/#blog", http.StatusFound)
		return
	}

	post, ok := h.lookupPost(key)
	if !ok {
		h.renderErrorPage(w, r, http.StatusNotFound, "Post Not Found", "This post may have been removed.")
		return
	}

	var body bytes.Buffer
	if err := h.markdown.Convert([]byte(post.Content), &body); err != nil {
		logRenderError(r, err)
		h.renderErrorPage(w, r, http.StatusInternalServerError, "Something Went Wrong", "Please try again later.")
		return
	}

	page, _ := h.pageContext(w, r)
	page.Title = post.Title

	view := templates.PostView{
		Title:    post.Title,
		Author:   post.Author,
		Date:     post.Date,
		Image:    post.Image,
		Category: post.Category,
		BodyHTML: body.String(),
		Keywords: post.SEOKeywords,
	}
	h.writePage(w, r, page, templates.Post(view), http.StatusOK)
}

// lookupPost resolves a URL key against post ids first, then slugs. Slugs are
// not unique, so a slug match returns the first post carrying it.
func (h *handler) lookupPost(key string) (cms.BlogPost, bool) {
	if post, ok := h.store.Post(key); ok {
		return post, true
	}
	for _, post := range h.store.Posts() {
		if post.Slug != "" && post.Slug == key {
			return post, true
		}
	}
	return cms.BlogPost{}, false
}
