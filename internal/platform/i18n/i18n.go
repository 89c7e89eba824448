// Package i18n defines the languages the site publishes content in.
//
// Site copy is stored per language in the content repository, so this package
// only resolves which supported tag a request maps to; it does not hold any
// message catalogs.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.Korean,
	language.English,
}

var matcher = language.NewMatcher(supportedTags)

// DefaultTag returns the language used when nothing else matches.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses a raw tag value and reports whether it maps to a supported
// language.
func ParseTag(value string) (language.Tag, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if tag == parsed {
			return tag, true
		}
	}
	// Collapse regional variants (ko-KR, en-US) onto their base language.
	base, confidence := parsed.Base()
	if confidence == language.No {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		supportedBase, _ := tag.Base()
		if supportedBase == base {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported tag for the caller's preference list.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
