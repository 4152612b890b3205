package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale holds the calendar words and clock style used for display.
type Locale struct {
	Tag    language.Tag
	months [12]string
	date   func(day int, month string, year int) string
	hour12 bool
}

var supportedLocales = []Locale{
	{
		Tag:    language.AmericanEnglish,
		months: [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		date:   func(d int, m string, y int) string { return fmt.Sprintf("%s %d, %d", m, d, y) },
		hour12: true,
	},
	{
		Tag:    language.BritishEnglish,
		months: [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		date:   func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
	{
		Tag:    language.German,
		months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		date:   func(d int, m string, y int) string { return fmt.Sprintf("%d. %s %d", d, m, y) },
	},
	{
		Tag:    language.French,
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		date:   func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
	{
		Tag:    language.Spanish,
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		date:   func(d int, m string, y int) string { return fmt.Sprintf("%d de %s de %d", d, m, y) },
	},
}

var localeMatcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.Tag
	}
	return tags
}

// ResolveLocale maps a BCP 47 or POSIX locale name (de_DE.UTF-8) to the
// closest supported locale. Unknown or empty names resolve to en-US.
func ResolveLocale(name string) Locale {
	tag, ok := parseLocaleName(name)
	if !ok {
		return supportedLocales[0]
	}
	_, idx, confidence := localeMatcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(supportedLocales) {
		return supportedLocales[0]
	}
	return supportedLocales[idx]
}

// LocaleFromEnv picks the first non-empty of LC_ALL, LC_TIME and LANG.
func LocaleFromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func parseLocaleName(name string) (language.Tag, bool) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
