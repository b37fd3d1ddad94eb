// Package schema loads declarative form definitions from YAML and realizes
// them as live controllers and adapters.
//
// A definition describes the form-level autovalidate mode and a list of
// fields with their initial values and built-in validation rules:
//
//	form:
//	  autovalidate: true
//	fields:
//	  - name: email
//	    required: true
//	    pattern: ".+@.+"
//	  - name: plan
//	    type: select
//	    initial: basic
//	    options:
//	      - value: basic
//	        label: Basic
//	      - value: pro
//	        label: Pro
//
// Definitions are validated eagerly on parse: unknown field types, duplicate
// names, non-compiling patterns, and selection defaults that do not match
// exactly one enabled option are all construction errors, never runtime
// validation failures.
package schema

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/formstate/pkg/adapter"
	"github.com/go-drift/formstate/pkg/form"
)

// Field types recognized in a definition. An empty type means TypeText.
const (
	TypeText   = "text"
	TypeSelect = "select"
)

// Definition is a declarative form description.
type Definition struct {
	Form   FormDef    `yaml:"form"`
	Fields []FieldDef `yaml:"fields"`
}

// FormDef contains form-level settings.
type FormDef struct {
	Autovalidate bool `yaml:"autovalidate,omitempty"`
}

// FieldDef describes one field.
type FieldDef struct {
	Name         string      `yaml:"name"`
	Type         string      `yaml:"type,omitempty"`
	Initial      string      `yaml:"initial,omitempty"`
	Autovalidate bool        `yaml:"autovalidate,omitempty"`
	Disabled     bool        `yaml:"disabled,omitempty"`
	Required     bool        `yaml:"required,omitempty"`
	MinLength    int         `yaml:"minLength,omitempty"`
	MaxLength    int         `yaml:"maxLength,omitempty"`
	Pattern      string      `yaml:"pattern,omitempty"`
	Options      []OptionDef `yaml:"options,omitempty"`
}

// OptionDef describes one selectable option of a select field.
type OptionDef struct {
	Value    string `yaml:"value"`
	Label    string `yaml:"label,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Parse decodes and validates a YAML definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse form definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and parses a YAML definition from a file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form definition: %w", err)
	}
	return Parse(data)
}

func (d *Definition) validate() error {
	if len(d.Fields) == 0 {
		return errors.New("form definition has no fields")
	}
	seen := make(map[string]struct{}, len(d.Fields))
	for i := range d.Fields {
		if err := d.Fields[i].validate(); err != nil {
			return err
		}
		name := d.Fields[i].Name
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate field name %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func (f *FieldDef) validate() error {
	if f.Name == "" {
		return errors.New("field is missing a name")
	}
	switch f.Type {
	case "", TypeText:
		if len(f.Options) > 0 {
			return fmt.Errorf("field %q: options are only valid for select fields", f.Name)
		}
	case TypeSelect:
		if len(f.Options) == 0 {
			return fmt.Errorf("field %q: select field needs at least one option", f.Name)
		}
		matches := 0
		for _, opt := range f.Options {
			if opt.Value == "" {
				return fmt.Errorf("field %q: option with empty value", f.Name)
			}
			if !opt.Disabled && opt.Value == f.Initial {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("field %q: initial value %q must match exactly one enabled option, matched %d",
				f.Name, f.Initial, matches)
		}
	default:
		return fmt.Errorf("field %q: unknown type %q", f.Name, f.Type)
	}
	if f.MinLength < 0 || f.MaxLength < 0 {
		return fmt.Errorf("field %q: negative length bound", f.Name)
	}
	if f.MaxLength > 0 && f.MinLength > f.MaxLength {
		return fmt.Errorf("field %q: minLength %d exceeds maxLength %d", f.Name, f.MinLength, f.MaxLength)
	}
	if f.Pattern != "" {
		if _, err := regexp.Compile(f.Pattern); err != nil {
			return fmt.Errorf("field %q: invalid pattern: %w", f.Name, err)
		}
	}
	return nil
}

// Built is a realized definition: the form controller plus the adapters for
// each field, keyed by field name. Fields are already mounted into the form.
type Built struct {
	Form    *form.Controller
	Texts   map[string]*adapter.Text
	Selects map[string]*adapter.Select[string]
}

// Build realizes the definition. The definition is re-validated first, so
// Build is safe on hand-constructed definitions too.
func (d *Definition) Build() (*Built, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	built := &Built{
		Form:    form.NewController(form.Config{Autovalidate: d.Form.Autovalidate}),
		Texts:   make(map[string]*adapter.Text),
		Selects: make(map[string]*adapter.Select[string]),
	}

	for i := range d.Fields {
		fd := d.Fields[i]
		validator := fd.buildValidator()

		switch fd.Type {
		case TypeSelect:
			options := make([]adapter.Option[string], len(fd.Options))
			for j, opt := range fd.Options {
				label := opt.Label
				if label == "" {
					label = opt.Value
				}
				options[j] = adapter.Option[string]{
					Value:    opt.Value,
					Label:    label,
					Disabled: opt.Disabled,
				}
			}
			sel := adapter.NewSelect(adapter.SelectConfig[string]{
				Options:      options,
				InitialValue: fd.Initial,
				Validator:    validator,
				Autovalidate: fd.Autovalidate,
				Disabled:     fd.Disabled,
			})
			sel.Field().Mount(built.Form)
			built.Selects[fd.Name] = sel
		default:
			text := adapter.NewText(adapter.TextConfig{
				InitialText:  fd.Initial,
				Validator:    validator,
				Autovalidate: fd.Autovalidate,
				Disabled:     fd.Disabled,
			})
			text.Field().Mount(built.Form)
			built.Texts[fd.Name] = text
		}
	}

	return built, nil
}
