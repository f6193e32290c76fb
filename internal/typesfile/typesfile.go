// Package typesfile reads log type definitions from a YAML document.
//
//	types:
//	  task:
//	    attrs:
//	      priority: {default: medium}
//	      owner: {}
//	      notes: {hidden: true, default: ""}
//
// An attribute without a default key is required. `default: ""` is a real
// (empty) default.
package typesfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/logbook/internal/domain"
)

type document struct {
	Types map[string]typeDef `yaml:"types"`
}

type typeDef struct {
	Attrs domain.LogAttrs `yaml:"attrs"`
}

// Load reads and validates the types file at path.
func Load(path string) (domain.LogTypes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typesfile: read %s: %w", path, err)
	}

	types, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typesfile: %s: %w", path, err)
	}
	return types, nil
}

// Parse decodes a types document. Unknown keys are rejected. An empty
// document yields no types.
func Parse(data []byte) (domain.LogTypes, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	var errs []domain.FieldError
	types := make(domain.LogTypes, len(doc.Types))
	for name, def := range doc.Types {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, domain.FieldError{Field: "types", Message: "type name must not be empty"})
			continue
		}
		for attr := range def.Attrs {
			if strings.TrimSpace(attr) == "" {
				errs = append(errs, domain.FieldError{
					Field:   "types." + name + ".attrs",
					Message: "attribute name must not be empty",
				})
			}
		}
		types[name] = def.Attrs.Clone()
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return types, nil
}
