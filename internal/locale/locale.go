// Package locale provides the date formatting table and localized labels for
// the three supported locales.
package locale

import (
	"fmt"
	"sync"

	"cloud.google.com/go/civil"
	"golang.org/x/text/language"
)

// Locale is an active UI language.
type Locale string

// Supported locales.
const (
	Korean   Locale = "ko"
	Japanese Locale = "ja"
	English  Locale = "en"
)

// Default is the locale used when nothing else is selected.
const Default = Korean

// Supported lists the locales in switcher order.
var Supported = []Locale{Korean, Japanese, English}

// Parse validates a locale code.
func Parse(s string) (Locale, error) {
	for _, l := range Supported {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale: %q", s)
}

// DateFormat describes how dates display in one locale.
type DateFormat struct {
	Pattern      string `json:"pattern"`
	Placeholder  string `json:"placeholder"`
	PickerLocale string `json:"pickerLocale"`
	render       func(year, month, day int) string
}

var dateFormats = map[Locale]DateFormat{
	Korean: {
		Pattern: "YYYY년 MM월 DD일", Placeholder: "2024년 01월 01일", PickerLocale: "ko-KR",
		render: func(y, m, d int) string { return fmt.Sprintf("%04d년 %02d월 %02d일", y, m, d) },
	},
	Japanese: {
		Pattern: "YYYY年MM月DD日", Placeholder: "2024年01月01日", PickerLocale: "ja-JP",
		render: func(y, m, d int) string { return fmt.Sprintf("%04d年%02d月%02d日", y, m, d) },
	},
	English: {
		Pattern: "MM/DD/YYYY", Placeholder: "01/01/2024", PickerLocale: "en-US",
		render: func(y, m, d int) string { return fmt.Sprintf("%02d/%02d/%04d", m, d, y) },
	},
}

var fallbackFormat = DateFormat{
	Pattern: "YYYY-MM-DD", Placeholder: "2024-01-01", PickerLocale: "en-US",
	render: func(y, m, d int) string { return fmt.Sprintf("%04d-%02d-%02d", y, m, d) },
}

// FormatFor returns the date format of l, or the ISO fallback for unknown locales.
func FormatFor(l Locale) DateFormat {
	if f, ok := dateFormats[l]; ok {
		return f
	}
	return fallbackFormat
}

// FormatDate renders d in the pattern of l. A nil date renders as "".
func FormatDate(d *civil.Date, l Locale) string {
	if d == nil {
		return ""
	}
	return FormatFor(l).render(d.Year, int(d.Month), d.Day)
}

// FormatMonth renders d in the compact MM/YYYY form used by the free-form layout.
func FormatMonth(d *civil.Date) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%02d/%04d", int(d.Month), d.Year)
}

// FormatRange renders a compact start - end range. A current entry without an
// end date ends with "Present".
func FormatRange(start, end *civil.Date, current bool) string {
	from := FormatMonth(start)
	to := FormatMonth(end)
	if current && end == nil {
		to = "Present"
	}
	switch {
	case from == "" && to == "":
		return ""
	case to == "":
		return from
	case from == "":
		return to
	}
	return from + " - " + to
}

var (
	matcherOnce sync.Once
	matcher     language.Matcher
)

// Negotiate picks the best supported locale for an Accept-Language header.
// Unparseable or empty headers yield Default.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default
	}
	matcherOnce.Do(func() {
		tags := make([]language.Tag, 0, len(Supported))
		for _, l := range Supported {
			tags = append(tags, language.Make(string(l)))
		}
		matcher = language.NewMatcher(tags)
	})
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}
