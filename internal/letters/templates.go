package letters

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prezlab/letter-generator/internal/docx"
	"github.com/prezlab/letter-generator/internal/record"
)

// Template is one entry of the fixed letter registry.
type Template struct {
	// Key is the stable identifier used by the CLI and API.
	Key string
	// Name is the operator-facing label.
	Name string
	// File is the template's filename under the template directory.
	File string
	// Arabic marks templates whose full-name slot takes the Arabic name.
	Arabic bool
	// Travel marks templates that use the caller-supplied travel fields.
	Travel bool
}

// registry lists the four letters the system produces. Each template uses
// its own subset of the placeholder vocabulary.
var registry = []Template{
	{Key: "employment", Name: "Employment letter", File: "Employment Letter .docx"},
	{Key: "employment-arabic", Name: "Employment letter - Arabic", File: "Employment Letter - ARABIC.docx", Arabic: true},
	{Key: "embassy", Name: "Employment letter to embassies", File: "Employment Letter to Embassies.docx", Travel: true},
	{Key: "experience", Name: "Experience letter", File: "Experience Letter.docx"},
}

// Templates returns the registry in declaration order.
func Templates() []Template {
	out := make([]Template, len(registry))
	copy(out, registry)
	return out
}

// LookupTemplate resolves a registry key.
func LookupTemplate(key string) (Template, error) {
	for _, t := range registry {
		if t.Key == key {
			return t, nil
		}
	}
	return Template{}, &UnknownTemplateError{Key: key}
}

// SuggestedFilename derives the download filename from the resolved
// employee name.
func SuggestedFilename(fullName string) string {
	safe := strings.ReplaceAll(strings.TrimSpace(fullName), " ", "_")
	return "Employment_Letter_" + safe + ".docx"
}

// Generator loads templates from a directory and fills them. The file on
// disk is never mutated; every call parses a fresh copy.
type Generator struct {
	dir string
	now func() time.Time
}

// NewGenerator creates a generator over a template directory.
func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir, now: time.Now}
}

// Generate fills the named template with the record's placeholder table and
// returns the document bytes plus the suggested filename.
func (g *Generator) Generate(tpl Template, rec *record.Canonical) ([]byte, string, error) {
	path := filepath.Join(g.dir, tpl.File)
	doc, err := docx.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", &TemplateNotFoundError{Name: tpl.Name, Path: path}
		}
		return nil, "", &TemplateCorruptError{Name: tpl.Name, Cause: err}
	}

	placeholders := BuildPlaceholders(rec, Options{Now: g.now(), Arabic: tpl.Arabic})
	out, err := Fill(doc, placeholders)
	if err != nil {
		return nil, "", &TemplateCorruptError{Name: tpl.Name, Cause: err}
	}
	return out, SuggestedFilename(rec.FullName), nil
}
