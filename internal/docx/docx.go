// Package docx provides a minimal WordprocessingML document model for
// placeholder substitution. It parses only the text-bearing parts of the
// container (the body, headers and footers); every other part is carried
// through to the output byte-identical, which is what preserves styles,
// numbering, images and relationships without modeling them.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

const (
	documentPart = "word/document.xml"
	headerPrefix = "word/header"
	footerPrefix = "word/footer"
)

// Document is an open WordprocessingML package. It is mutable: paragraph and
// run edits apply in memory until Save serializes the whole container.
type Document struct {
	partOrder []string
	parts     map[string][]byte
	parsed    map[string]*etree.Document

	headerParts []string
	footerParts []string
}

// ParseError represents a container or XML parsing failure.
type ParseError struct {
	Part    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx parse error in %s: %s: %v", e.Part, e.Message, e.Cause)
	}
	return fmt.Sprintf("docx parse error in %s: %s", e.Part, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Open reads and parses a document from disk.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return OpenBytes(data)
}

// OpenBytes parses a document from an in-memory container.
func OpenBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Part: "container", Message: "not a valid zip archive", Cause: err}
	}

	d := &Document{
		parts:  make(map[string][]byte),
		parsed: make(map[string]*etree.Document),
	}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, &ParseError{Part: f.Name, Message: "failed to open part", Cause: err}
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &ParseError{Part: f.Name, Message: "failed to read part", Cause: err}
		}
		d.partOrder = append(d.partOrder, f.Name)
		d.parts[f.Name] = content
	}

	if _, ok := d.parts[documentPart]; !ok {
		return nil, &ParseError{Part: documentPart, Message: "part missing from container"}
	}

	for _, name := range d.partOrder {
		if !isTextPart(name) {
			continue
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(d.parts[name]); err != nil {
			return nil, &ParseError{Part: name, Message: "invalid XML", Cause: err}
		}
		d.parsed[name] = doc
		switch {
		case strings.HasPrefix(name, headerPrefix):
			d.headerParts = append(d.headerParts, name)
		case strings.HasPrefix(name, footerPrefix):
			d.footerParts = append(d.footerParts, name)
		}
	}

	if d.bodyElement() == nil {
		return nil, &ParseError{Part: documentPart, Message: "no w:body element"}
	}
	return d, nil
}

func isTextPart(name string) bool {
	if name == documentPart {
		return true
	}
	if !strings.HasSuffix(name, ".xml") {
		return false
	}
	return strings.HasPrefix(name, headerPrefix) || strings.HasPrefix(name, footerPrefix)
}

func (d *Document) bodyElement() *etree.Element {
	root := d.parsed[documentPart].Root()
	if root == nil {
		return nil
	}
	return root.SelectElement("w:body")
}

// Body returns the main document body as a block container.
func (d *Document) Body() Container {
	return Container{el: d.bodyElement()}
}

// Headers returns one container per header part, in part order.
func (d *Document) Headers() []Container {
	return d.rootContainers(d.headerParts)
}

// Footers returns one container per footer part, in part order.
func (d *Document) Footers() []Container {
	return d.rootContainers(d.footerParts)
}

func (d *Document) rootContainers(names []string) []Container {
	out := make([]Container, 0, len(names))
	for _, name := range names {
		if root := d.parsed[name].Root(); root != nil {
			out = append(out, Container{el: root})
		}
	}
	return out
}

// Save serializes the container. Parsed parts are re-serialized from their
// element trees; all other parts are written back byte-identical.
func (d *Document) Save() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range d.partOrder {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create part %s: %w", name, err)
		}
		content := d.parts[name]
		if doc, ok := d.parsed[name]; ok {
			content, err = doc.WriteToBytes()
			if err != nil {
				return nil, fmt.Errorf("failed to serialize part %s: %w", name, err)
			}
		}
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write part %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize container: %w", err)
	}
	return buf.Bytes(), nil
}
