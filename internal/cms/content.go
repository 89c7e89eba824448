package cms

import "errors"

// Language identifies one of the site's published languages.
type Language string

const (
	// LanguageKorean is the default site language.
	LanguageKorean Language = "ko"
	// LanguageEnglish is the secondary site language.
	LanguageEnglish Language = "en"
)

// Languages returns the supported languages in priority order.
func Languages() []Language {
	return []Language{LanguageKorean, LanguageEnglish}
}

// HeroContent holds the landing hero copy.
type HeroContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// AboutContent holds the about-section copy.
type AboutContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service describes one entry in the services grid. Icon stores a catalog
// identifier; unrecognized values resolve to the default icon at render time.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// SiteContent is the full marketing copy for one language.
type SiteContent struct {
	Hero     HeroContent  `json:"hero"`
	About    AboutContent `json:"about"`
	Services []Service    `json:"services"`
}

// ContentField names an editable leaf field of SiteContent.
type ContentField string

const (
	FieldHeroTitle        ContentField = "hero.title"
	FieldHeroSubtitle     ContentField = "hero.subtitle"
	FieldHeroCTA          ContentField = "hero.cta"
	FieldAboutTitle       ContentField = "about.title"
	FieldAboutDescription ContentField = "about.description"
)

// ContentFields returns the editable leaf fields in display order.
func ContentFields() []ContentField {
	return []ContentField{
		FieldHeroTitle,
		FieldHeroSubtitle,
		FieldHeroCTA,
		FieldAboutTitle,
		FieldAboutDescription,
	}
}

// ErrUnknownLanguage indicates a language with no content variant. The
// language set is fixed, so hitting this is a caller defect rather than a
// recoverable runtime condition.
var ErrUnknownLanguage = errors.New("unknown language")

// ErrUnknownField indicates an unrecognized content field path.
var ErrUnknownField = errors.New("unknown content field")

// ErrUnknownService indicates a service id absent from a language's services.
var ErrUnknownService = errors.New("unknown service")

// setField replaces a single leaf field, leaving everything else untouched.
func (c *SiteContent) setField(field ContentField, value string) error {
	switch field {
	case FieldHeroTitle:
		c.Hero.Title = value
	case FieldHeroSubtitle:
		c.Hero.Subtitle = value
	case FieldHeroCTA:
		c.Hero.CTA = value
	case FieldAboutTitle:
		c.About.Title = value
	case FieldAboutDescription:
		c.About.Description = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Field returns the current value of a leaf field.
func (c SiteContent) Field(field ContentField) (string, error) {
	switch field {
	case FieldHeroTitle:
		return c.Hero.Title, nil
	case FieldHeroSubtitle:
		return c.Hero.Subtitle, nil
	case FieldHeroCTA:
		return c.Hero.CTA, nil
	case FieldAboutTitle:
		return c.About.Title, nil
	case FieldAboutDescription:
		return c.About.Description, nil
	default:
		return "", ErrUnknownField
	}
}

// clone returns a deep copy so callers never share the stored services slice.
func (c SiteContent) clone() SiteContent {
	out := c
	out.Services = make([]Service, len(c.Services))
	copy(out.Services, c.Services)
	return out
}
