package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResumeType(t *testing.T) {
	for _, rt := range ResumeTypes {
		got, err := ParseResumeType(string(rt))
		require.NoError(t, err)
		assert.Equal(t, rt, got)
	}

	got, err := ParseResumeType("")
	require.NoError(t, err)
	assert.Equal(t, ResumeTypeStandard, got)

	_, err = ParseResumeType("fancy")
	assert.Error(t, err)
}

func TestResumeType_IsFreeForm(t *testing.T) {
	assert.True(t, ResumeTypeFreeForm.IsFreeForm())
	assert.False(t, ResumeTypeCareer.IsFreeForm())
}

func TestCareerEntry_JSONDates(t *testing.T) {
	start := civil.Date{Year: 2021, Month: time.March, Day: 2}
	entry := CareerEntry{CompanyName: "Acme", StartDate: &start}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"startDate":"2021-03-02"`)
	assert.Contains(t, string(data), `"endDate":null`)

	var decoded CareerEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.StartDate)
	assert.Equal(t, start, *decoded.StartDate)
	assert.Nil(t, decoded.EndDate)
}

func TestBasicInfo_Issues_Missing(t *testing.T) {
	info := BasicInfo{}
	issues := info.Issues()

	fields := map[string]string{}
	for _, is := range issues {
		fields[is.Field] = is.Rule
	}
	assert.Equal(t, "required", fields["basicInfo.name"])
	assert.Equal(t, "required", fields["basicInfo.email"])
	assert.Equal(t, "required", fields["basicInfo.phone"])
	assert.NotContains(t, fields, "basicInfo.address")
}

func TestBasicInfo_Issues_BadEmail(t *testing.T) {
	info := BasicInfo{Name: "홍길동", Email: "not-an-email", Phone: "010-1234-5678"}
	issues := info.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, FieldIssue{Field: "basicInfo.email", Rule: "email"}, issues[0])
}

func TestBasicInfo_Valid(t *testing.T) {
	info := BasicInfo{Name: "홍길동", Email: "hong@example.com", Phone: "010-1234-5678"}
	assert.NoError(t, info.Validate())
	assert.Empty(t, info.Issues())
}

func TestSelfIntro_LengthHints(t *testing.T) {
	s := SelfIntro{
		Motivation: strings.Repeat("가", SoftTextLimit),
		Strengths:  strings.Repeat("a", SoftTextLimit+1),
	}
	hints := s.LengthHints()
	require.Len(t, hints, 1)
	assert.Equal(t, "selfIntro.strengths", hints[0].Field)
}

func TestAllOptions_ReturnsCopies(t *testing.T) {
	opts := AllOptions()
	opts.Languages[0] = "changed"
	assert.Equal(t, "영어", LanguageOptions[0])
	assert.Len(t, opts.EducationStatuses, 5)
	assert.Len(t, opts.ResumeTypes, 4)
}
