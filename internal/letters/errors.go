package letters

import "fmt"

// TemplateNotFoundError indicates the named template has no file on disk.
type TemplateNotFoundError struct {
	Name string
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found at %s", e.Name, e.Path)
}

// TemplateCorruptError indicates the template file exists but cannot be
// parsed as a valid document.
type TemplateCorruptError struct {
	Name  string
	Cause error
}

func (e *TemplateCorruptError) Error() string {
	return fmt.Sprintf("template %q is not a valid document: %v", e.Name, e.Cause)
}

func (e *TemplateCorruptError) Unwrap() error {
	return e.Cause
}

// UnknownTemplateError indicates a template key outside the registry.
type UnknownTemplateError struct {
	Key string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.Key)
}
