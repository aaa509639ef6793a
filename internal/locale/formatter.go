package locale

import "cloud.google.com/go/civil"

// Formatter binds the formatting functions to a session's active locale.
// Listeners registered with OnChange run synchronously after every SetLocale,
// so callers holding the session lock observe the new locale immediately.
type Formatter struct {
	locale    Locale
	listeners []func(Locale)
}

// NewFormatter returns a formatter for l. Unsupported locales use Default.
func NewFormatter(l Locale) *Formatter {
	if _, err := Parse(string(l)); err != nil {
		l = Default
	}
	return &Formatter{locale: l}
}

// Locale returns the active locale.
func (f *Formatter) Locale() Locale {
	return f.locale
}

// SetLocale switches the active locale and notifies listeners when it changed.
func (f *Formatter) SetLocale(l Locale) error {
	if _, err := Parse(string(l)); err != nil {
		return err
	}
	if l == f.locale {
		return nil
	}
	f.locale = l
	for _, fn := range f.listeners {
		fn(l)
	}
	return nil
}

// OnChange registers fn to run after each locale switch.
func (f *Formatter) OnChange(fn func(Locale)) {
	f.listeners = append(f.listeners, fn)
}

// Date formats d in the active locale.
func (f *Formatter) Date(d *civil.Date) string {
	return FormatDate(d, f.locale)
}

// DateFormat returns the active date format.
func (f *Formatter) DateFormat() DateFormat {
	return FormatFor(f.locale)
}

// Text returns the localized message for key.
func (f *Formatter) Text(key string) string {
	return Text(f.locale, key)
}

// OrNotEntered returns s, or the localized "not entered" label when s is empty.
func (f *Formatter) OrNotEntered(s string) string {
	if s == "" {
		return f.Text(MsgNotEntered)
	}
	return s
}
