package template

import (
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"gopkg.in/ini.v1"
)

// Field is one placeholder found in a template.
type Field struct {
	Section   string
	Key       string
	Directive Directive
}

// Template is an INI settings template. Section and key order are preserved
// from the source and carried through to the rendered output.
type Template struct {
	file *ini.File
}

// loadOptions keeps values raw: no inline comment stripping, no quote
// trimming, no backslash joining, no key case folding. Indented lines continue
// the previous value.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:        true,
	PreserveSurroundedQuote:    true,
	IgnoreContinuation:         true,
	AllowPythonMultilineValues: true,
}

// Load parses the template at path.
func Load(path string) (*Template, error) {
	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidTemplate, path, err)
	}
	return &Template{file: file}, nil
}

// Parse parses a template from memory.
func Parse(data []byte) (*Template, error) {
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidTemplate, err)
	}
	return &Template{file: file}, nil
}

// Sections returns the named sections in template order.
// The implicit default section is left out.
func (t *Template) Sections() []string {
	var names []string
	for _, s := range t.file.Sections() {
		if s.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, s.Name())
	}
	return names
}

// Fields returns every placeholder in template order.
func (t *Template) Fields() []Field {
	var fields []Field
	for _, name := range t.Sections() {
		for _, key := range t.file.Section(name).Keys() {
			d, ok := ParseDirective(key.Value())
			if !ok {
				continue
			}
			fields = append(fields, Field{Section: name, Key: key.Name(), Directive: d})
		}
	}
	return fields
}

// Value returns the raw value stored at section/key.
func (t *Template) Value(section, key string) (string, bool) {
	s, err := t.file.GetSection(section)
	if err != nil || !s.HasKey(key) {
		return "", false
	}
	return s.Key(key).Value(), true
}

// Set replaces the value at section/key, keeping its position.
func (t *Template) Set(section, key, value string) {
	t.file.Section(section).Key(key).SetValue(value)
}

// Clone returns an independent copy of the template.
func (t *Template) Clone() (*Template, error) {
	clone := ini.Empty(loadOptions)
	for _, s := range t.file.Sections() {
		dst := clone.Section(s.Name())
		for _, k := range s.Keys() {
			if _, err := dst.NewKey(k.Name(), k.Value()); err != nil {
				return nil, fmt.Errorf("failed to copy [%s] %s: %w", s.Name(), k.Name(), err)
			}
		}
	}
	return &Template{file: clone}, nil
}

// WriteTo renders the template as INI text.
func (t *Template) WriteTo(w io.Writer) (int64, error) {
	return t.file.WriteTo(w)
}
