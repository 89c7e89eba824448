package cms

// BlogPost is one entry in the insights feed.
//
// ID is assigned by the store on creation and is the sole identity key for
// update and delete; it never changes afterwards. Slug is caller-supplied,
// may be empty, and is deliberately not derived from the title or checked
// for uniqueness.
type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	Date        string   `json:"date"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Slug        string   `json:"slug"`
	SEOKeywords []string `json:"seoKeywords"`
}

// clone returns a copy that does not alias the keywords slice.
func (p BlogPost) clone() BlogPost {
	out := p
	out.SEOKeywords = make([]string, len(p.SEOKeywords))
	copy(out.SEOKeywords, p.SEOKeywords)
	return out
}
