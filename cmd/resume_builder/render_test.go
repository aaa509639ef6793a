package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
		"testing"

	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "type": "standard",
  "basicInfo": {"name": "홍길동", "email": "hong@example.com", "phone": "010-1234-5678", "resumeDate": "2024-03-15"},
  "career": [{"companyName": "Acme", "position": "Backend", "startDate": "2021-03-02", "endDate": null}],
  "selfIntro": {"motivation": "열심히 하겠습니다."}
}`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetRenderFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		renderInput, renderOutput, renderFormat = "", "", "html"
		renderLocale, renderType, renderZoom = "ko", "", preview.DefaultZoom
	})
	renderInput, renderOutput, renderFormat = "", "", "html"
	renderLocale, renderType, renderZoom = "ko", "", preview.DefaultZoom
}

func TestLoadDocument(t *testing.T) {
	doc, err := loadDocument(writeSample(t, sampleDocument), "")
	require.NoError(t, err)
	assert.Equal(t, types.ResumeTypeStandard, doc.Type)
	assert.Equal(t, "홍길동", doc.BasicInfo.Name)
	assert.Len(t, doc.Career, 1)
	// empty sections get one default entry
	assert.Len(t, doc.Education, 1)
	assert.Len(t, doc.Languages, 1)

	doc, err = loadDocument(writeSample(t, sampleDocument), "free-form")
	require.NoError(t, err)
	assert.Equal(t, types.ResumeTypeFreeForm, doc.Type)

	_, err = loadDocument(writeSample(t, sampleDocument), "fancy")
	assert.Error(t, err)
}

func TestLoadDocument_SchemaViolation(t *testing.T) {
	_, err := loadDocument(writeSample(t, `{"type": "standard", "basicInfo": {"resumeDate": "15/03/2024"}}`), "")
	assert.Error(t, err)

	_, err = loadDocument(writeSample(t, `{"unknown": true}`), "")
	assert.Error(t, err)
}

func TestRunRender_HTMLToStdout(t *testing.T) {
	resetRenderFlags(t)
	renderInput = writeSample(t, sampleDocument)
	renderLocale = "en"

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, runRender(cmd, nil))
	html := out.String()
	assert.Contains(t, html, `id="resume-preview"`)
	assert.Contains(t, html, "홍길동")
	assert.Contains(t, html, "Acme")
}

func TestRunRender_HTMLToFile(t *testing.T) {
	resetRenderFlags(t)
	renderInput = writeSample(t, sampleDocument)
	renderOutput = filepath.Join(t.TempDir(), "out", "resume.html")

	require.NoError(t, runRender(&cobra.Command{}, nil))
	data, err := os.ReadFile(renderOutput)
	require.NoError(t, err)
	assert.Contains(t, string(data), "이력서")
}

func TestRunRender_InvalidFlags(t *testing.T) {
	resetRenderFlags(t)
	renderInput = writeSample(t, sampleDocument)

	renderFormat = "docx"
	assert.ErrorContains(t, runRender(&cobra.Command{}, nil), "unsupported format")

	renderFormat = "html"
	renderLocale = "fr"
	assert.Error(t, runRender(&cobra.Command{}, nil))
}

func TestDefaultPDFName(t *testing.T) {
	assert.Equal(t, "홍길동_이력서", defaultPDFName(" 홍길동 ", locale.NewFormatter(locale.Korean)))
	assert.Equal(t, "Résumé", defaultPDFName("", locale.NewFormatter(locale.English)))
}

func TestRenderCommand_MissingInFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "render", "--format", "html")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"in\" not set")
}

func TestRunRender_Verbose(t *testing.T) {
	resetRenderFlags(t)
	renderInput = writeSample(t, sampleDocument)
	verbose = true
	t.Cleanup(func() { verbose = false })

	cmd := &cobra.Command{}
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, runRender(cmd, nil))
	assert.Contains(t, errOut.String(), "RÉSUMÉ DOCUMENT")
	assert.Contains(t, errOut.String(), "NO ISSUES FOUND")
	assert.NotContains(t, out.String(), "RÉSUMÉ DOCUMENT")
}
