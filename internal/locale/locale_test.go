package locale

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	d := &civil.Date{Year: 2024, Month: time.January, Day: 5}

	tests := []struct {
		locale Locale
		want   string
	}{
		{Korean, "2024년 01월 05일"},
		{Japanese, "2024年01月05日"},
		{English, "01/05/2024"},
		{Locale("de"), "2024-01-05"},
	}
	for _, tt := range tests {
		t.Run(string(tt.locale), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(d, tt.locale))
		})
	}
}

func TestFormatDate_Nil(t *testing.T) {
	for _, l := range append(Supported, "xx") {
		assert.Equal(t, "", FormatDate(nil, l))
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, "2024년 01월 01일", FormatFor(Korean).Placeholder)
	assert.Equal(t, "YYYY年MM月DD日", FormatFor(Japanese).Pattern)
	assert.Equal(t, "en-US", FormatFor(English).PickerLocale)
	assert.Equal(t, "ja-JP", FormatFor(Japanese).PickerLocale)

	fb := FormatFor("fr")
	assert.Equal(t, "YYYY-MM-DD", fb.Pattern)
	assert.Equal(t, "2024-01-01", fb.Placeholder)
}

func TestFormatRange(t *testing.T) {
	start := &civil.Date{Year: 2019, Month: time.March, Day: 1}
	end := &civil.Date{Year: 2022, Month: time.November, Day: 30}

	assert.Equal(t, "03/2019 - 11/2022", FormatRange(start, end, false))
	assert.Equal(t, "03/2019 - Present", FormatRange(start, nil, true))
	assert.Equal(t, "03/2019 - 11/2022", FormatRange(start, end, true), "an explicit end date wins")
	assert.Equal(t, "03/2019", FormatRange(start, nil, false))
	assert.Equal(t, "", FormatRange(nil, nil, false))
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", Korean},
		{"ja-JP,ja;q=0.9,en;q=0.8", Japanese},
		{"en-US,en;q=0.9", English},
		{"ko-KR", Korean},
		{"fr-FR", Korean},
		{";;;invalid", Korean},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header))
		})
	}
}

func TestParse(t *testing.T) {
	l, err := Parse("ja")
	require.NoError(t, err)
	assert.Equal(t, Japanese, l)

	_, err = Parse("zh")
	assert.Error(t, err)
}

func TestText_Fallbacks(t *testing.T) {
	assert.Equal(t, "미입력", Text(Korean, MsgNotEntered))
	assert.Equal(t, "未入力", Text(Japanese, MsgNotEntered))
	assert.Equal(t, "Not entered", Text(English, MsgNotEntered))
	assert.Equal(t, "미입력", Text("xx", MsgNotEntered))
	assert.Equal(t, "no.such.key", Text(English, "no.such.key"))
	assert.Equal(t, "졸업예정", StatusText(Korean, "expected"))
	assert.Equal(t, "", StatusText(Korean, ""))
}

func TestFormatter_SetLocale(t *testing.T) {
	f := NewFormatter("")
	assert.Equal(t, Default, f.Locale())

	var seen []Locale
	f.OnChange(func(l Locale) { seen = append(seen, l) })

	require.NoError(t, f.SetLocale(English))
	require.NoError(t, f.SetLocale(English))
	assert.Error(t, f.SetLocale("zz"))
	assert.Equal(t, []Locale{English}, seen)

	d := &civil.Date{Year: 2024, Month: time.January, Day: 5}
	assert.Equal(t, "01/05/2024", f.Date(d))
	assert.Equal(t, "en-US", f.DateFormat().PickerLocale)
	assert.Equal(t, "Not entered", f.OrNotEntered(""))
	assert.Equal(t, "x", f.OrNotEntered("x"))
}
