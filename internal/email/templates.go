package email

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	TemplateVerification  = "verification"
	TemplatePasswordReset = "password_reset"
)

var defaultTemplates = map[string]string{
	TemplateVerification: `<html><body>
<h2>Welcome{{if .Name}}, {{.Name}}{{end}}!</h2>
<p>Please confirm your email address by clicking the link below. The link is valid for 24 hours.</p>
<p><a href="{{.Link}}">Confirm email</a></p>
<p>If you did not create an account, you can ignore this message.</p>
</body></html>`,

	TemplatePasswordReset: `<html><body>
<h2>Password reset</h2>
<p>A password reset was requested for your account. The link is valid for one hour.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>If you did not request a reset, you can ignore this message.</p>
</body></html>`,
}

// HTMLRenderer keeps parsed templates in memory. It starts with the built-in
// defaults; LoadTemplates overrides them from .html files on disk.
type HTMLRenderer struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	r := &HTMLRenderer{templates: make(map[string]*template.Template)}
	for name, body := range defaultTemplates {
		if err := r.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *HTMLRenderer) Render(templateName string, data TemplateData) (string, error) {
	r.mu.RLock()
	tmpl, ok := r.templates[templateName]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("email template '%s' not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template '%s': %w", templateName, err)
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) AddTemplate(name string, body string) error {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("failed to parse template '%s': %w", name, err)
	}
	r.mu.Lock()
	r.templates[name] = tmpl
	r.mu.Unlock()
	return nil
}

func (r *HTMLRenderer) LoadTemplates(dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read templates dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		body, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read template file '%s': %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".html")
		if err := r.AddTemplate(name, string(body)); err != nil {
			return err
		}
	}
	return nil
}
