package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRenderer_Defaults(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	body, err := r.Render(TemplateVerification, TemplateData{"Link": "https://app.test/verify?token=abc"})
	require.NoError(t, err)
	assert.Contains(t, body, "https://app.test/verify?token=abc")
	assert.Contains(t, body, "Confirm email")

	body, err = r.Render(TemplatePasswordReset, TemplateData{"Link": "https://app.test/reset?token=xyz"})
	require.NoError(t, err)
	assert.Contains(t, body, "Reset password")
}

func TestHTMLRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	_, err = r.Render("does-not-exist", nil)
	assert.Error(t, err)
}

func TestHTMLRenderer_EscapesHTML(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	require.NoError(t, r.AddTemplate("greeting", "<p>Hello {{.Name}}</p>"))

	body, err := r.Render("greeting", TemplateData{"Name": "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestHTMLRenderer_LoadTemplatesOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	custom := `<html><body>Custom verification: <a href="{{.Link}}">here</a></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "verification.html"), []byte(custom), 0644))
	// Non-html files are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644))

	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	require.NoError(t, r.LoadTemplates(dir))

	body, err := r.Render(TemplateVerification, TemplateData{"Link": "https://x.test/v"})
	require.NoError(t, err)
	assert.Contains(t, body, "Custom verification")
}

func TestSMTPConfig_Validate(t *testing.T) {
	cfg := &SMTPConfig{}
	assert.Error(t, cfg.Validate())

	cfg = &SMTPConfig{Host: "smtp.test", Port: 587, FromEmail: "noreply@test.com"}
	assert.NoError(t, cfg.Validate())
}

func TestSMTPConfig_FromAddress(t *testing.T) {
	cfg := &SMTPConfig{FromEmail: "noreply@test.com", FromName: "WealthCoach"}
	assert.Equal(t, "WealthCoach <noreply@test.com>", cfg.FromAddress())

	cfg = &SMTPConfig{FromEmail: "noreply@test.com"}
	assert.Equal(t, "noreply@test.com", cfg.FromAddress())
}
