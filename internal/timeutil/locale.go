package timeutil

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale holds the phrases used by the friendly time formatter.
type Locale struct {
	tag        language.Tag
	justNow    string
	secondsAgo string // %d
	minutesAgo string // %d
	today      string // %s is HH:MM
	yesterday  string // %s is HH:MM
}

var (
	English = Locale{
		tag:        language.English,
		justNow:    "just now",
		secondsAgo: "%d seconds ago",
		minutesAgo: "%d minutes ago",
		today:      "today %s",
		yesterday:  "yesterday %s",
	}

	Chinese = Locale{
		tag:        language.Chinese,
		justNow:    "刚刚",
		secondsAgo: "%d秒前",
		minutesAgo: "%d分钟前",
		today:      "今天%s",
		yesterday:  "昨天%s",
	}
)

// The first entry is the fallback for unsupported tags.
var supportedLocales = []Locale{English, Chinese}

var localeMatcher = language.NewMatcher(localeTags())

func localeTags() []language.Tag {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.tag
	}
	return tags
}

// ParseLocale resolves a BCP 47 tag such as "zh-CN" or "en-US" to the closest
// supported locale. Well-formed but unsupported tags fall back to English.
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return LocaleFor(tag), nil
}

// LocaleFor returns the supported locale closest to tag.
func LocaleFor(tag language.Tag) Locale {
	_, idx, _ := localeMatcher.Match(tag)
	return supportedLocales[idx]
}

// Tag returns the locale's language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) String() string {
	return l.tag.String()
}

func (l Locale) isZero() bool {
	return l.justNow == ""
}
