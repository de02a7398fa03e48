// Package validation checks tuning documents against embedded JSON Schemas.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against named in-memory schemas
type SchemaValidator interface {
	// Validate checks data against schema. The schema is compiled on first
	// use and cached under name; later calls with the same name reuse it.
	Validate(data []byte, name string, schema []byte) error
}

// Violation is one failed keyword at one location in the document
type Violation struct {
	Location string
	Keyword  string
}

func (v Violation) String() string {
	if v.Keyword == "" {
		return fmt.Sprintf("at %s: invalid", v.Location)
	}
	return fmt.Sprintf("at %s: %s", v.Location, v.Keyword)
}

// Error lists every violation found in a document
type Error struct {
	Schema     string
	Violations []Violation
}

func (e *Error) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = "  - " + v.String()
	}
	return fmt.Sprintf("%s: schema validation failed:\n%s", e.Schema, strings.Join(lines, "\n"))
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator with an empty schema cache
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) Validate(data []byte, name string, schema []byte) error {
	compiled, err := v.schema(name, schema)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	err = compiled.Validate(doc)
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		out := &Error{Schema: name}
		collect(verr, &out.Violations)
		return out
	}
	return err
}

func (v *validator) schema(name string, raw []byte) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[name]; ok {
		return s, nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	s, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	v.schemas[name] = s
	return s, nil
}

// collect flattens the cause tree, keeping leaf failures only
func collect(err *jsonschema.ValidationError, out *[]Violation) {
	if len(err.Causes) > 0 {
		for _, c := range err.Causes {
			collect(c, out)
		}
		return
	}

	loc := "(root)"
	if len(err.InstanceLocation) > 0 {
		loc = "/" + strings.Join(err.InstanceLocation, "/")
	}
	var kw string
	if err.ErrorKind != nil {
		kw = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	*out = append(*out, Violation{Location: loc, Keyword: kw})
}
