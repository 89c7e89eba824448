package cms

// SocialLinks holds the site's social profile URLs. Placeholder values such
// as "#" are allowed.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	Facebook  string `json:"facebook"`
}

// SiteSettings is the singleton branding and SEO record. Updates replace
// individual fields; the record itself is never swapped out.
type SiteSettings struct {
	PrimaryColor   string      `json:"primaryColor"`
	AccentColor    string      `json:"accentColor"`
	FontFamily     string      `json:"fontFamily"`
	SEOTitle       string      `json:"seoTitle"`
	SEODescription string      `json:"seoDescription"`
	Socials        SocialLinks `json:"socials"`
}

// SocialsPatch carries optional social link updates. Nil fields are left
// untouched, so changing one link never erases the other two.
type SocialsPatch struct {
	Instagram *string
	YouTube   *string
	Facebook  *string
}

// SettingsPatch carries optional settings updates. Nil fields are left
// untouched; the merge is shallow at the top level with Socials merged as
// its own nested record.
type SettingsPatch struct {
	PrimaryColor   *string
	AccentColor    *string
	FontFamily     *string
	SEOTitle       *string
	SEODescription *string
	Socials        *SocialsPatch
}

// apply merges the patch into the settings record.
func (s *SiteSettings) apply(patch SettingsPatch) {
	if patch.PrimaryColor != nil {
		s.PrimaryColor = *patch.PrimaryColor
	}
	if patch.AccentColor != nil {
		s.AccentColor = *patch.AccentColor
	}
	if patch.FontFamily != nil {
		s.FontFamily = *patch.FontFamily
	}
	if patch.SEOTitle != nil {
		s.SEOTitle = *patch.SEOTitle
	}
	if patch.SEODescription != nil {
		s.SEODescription = *patch.SEODescription
	}
	if patch.Socials != nil {
		if patch.Socials.Instagram != nil {
			s.Socials.Instagram = *patch.Socials.Instagram
		}
		if patch.Socials.YouTube != nil {
			s.Socials.YouTube = *patch.Socials.YouTube
		}
		if patch.Socials.Facebook != nil {
			s.Socials.Facebook = *patch.Socials.Facebook
		}
	}
}
