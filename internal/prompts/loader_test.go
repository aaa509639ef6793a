package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(DraftFile, "motivation")
	require.NoError(t, err)
	assert.Contains(t, prompt, "200-300자 내외")
	assert.Contains(t, prompt, "{{.CompanyName}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(DraftFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRender(t *testing.T) {
	ClearCache()

	prompt, err := Render(DraftFile, "strengths", map[string]string{
		"CompanyName":    "네이버",
		"Position":       "백엔드 개발자",
		"AdditionalInfo": "",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "- 지원 회사: 네이버")
	assert.Contains(t, prompt, "- 지원 직무: 백엔드 개발자")
	assert.Contains(t, prompt, "STAR 기법")
	assert.NotContains(t, prompt, "{{.")
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Company}}!", map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	})
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestFormat_ValuesAreNotExpanded(t *testing.T) {
	data := map[string]string{
		"CompanyName": "{{.Position}}",
		"Position":    "백엔드 개발자",
	}
	for i := 0; i < 50; i++ {
		assert.Equal(t, "{{.Position}} / 백엔드 개발자", Format("{{.CompanyName}} / {{.Position}}", data))
	}
}
