package cms

// ContactChannel is one external channel listed in the inquiry section.
type ContactChannel struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

// ContactInfo holds the fixed inquiry details shown on the landing page.
// Contact data is static seed material and never mutated.
type ContactInfo struct {
	HotlinePrimary   string           `json:"hotlinePrimary"`
	HotlineSecondary string           `json:"hotlineSecondary"`
	Address          string           `json:"address"`
	Channels         []ContactChannel `json:"channels"`
}

// Video is one entry in the landing page video section.
type Video struct {
	ID      string `json:"id"`
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
}

var contactInfo = ContactInfo{
	HotlinePrimary:   "1533-1410",
	HotlineSecondary: "010-7340-8559",
	Address:          "경기도 성남시 분당구 새마을로51번길 20 지하2층",
	Channels: []ContactChannel{
		{Name: "Instagram", Handle: "@modegarage_", URL: "https://instagram.com/modegarage_"},
		{Name: "YouTube", Handle: "@mode1554", URL: "https://youtube.com/@mode1554"},
	},
}

var videos = []Video{
	{ID: "1", VideoID: "dQw4w9WgXcQ", Title: "슈퍼카 정비의 모든 것"},
	{ID: "2", VideoID: "dQw4w9WgXcQ", Title: "모드개러지 랩핑 시공기"},
}

// Contact returns the static inquiry details.
func Contact() ContactInfo {
	out := contactInfo
	out.Channels = make([]ContactChannel, len(contactInfo.Channels))
	copy(out.Channels, contactInfo.Channels)
	return out
}

// Videos returns the static landing page video list.
func Videos() []Video {
	out := make([]Video, len(videos))
	copy(out, videos)
	return out
}
