// Package conform reconciles caller-supplied log properties against a
// registered log type: defaults are filled in, required attributes are
// enforced and, in conform mode, undeclared keys are dropped.
package conform

import (
	"maps"
	"slices"

	"github.com/heartmarshall/logbook/internal/domain"
)

type schemaLookup interface {
	Lookup(name string) (domain.LogAttrs, bool)
}

// Engine resolves property sets. It holds no state of its own.
type Engine struct {
	schemas schemaLookup
}

// NewEngine creates an Engine reading schemas from the given lookup.
func NewEngine(schemas schemaLookup) *Engine {
	return &Engine{schemas: schemas}
}

// slotState tracks a property while defaults and supplied values are merged.
type slotState uint8

const (
	slotUnfilled slotState = iota // declared, no default, not supplied
	slotDefault                   // declared with a default
	slotResolved                  // supplied by the caller
)

type slot struct {
	state slotState
	value string
}

func (s slot) ok() bool { return s.state != slotUnfilled }

// Resolve produces the final property set for a recording.
//
// With typeName nil the supplied props are returned as-is and conform is
// ignored. Otherwise the type's schema seeds the result; with conform set
// only declared keys are taken from props, without it every key is.
// Resolve never touches storage.
func (e *Engine) Resolve(typeName *string, props map[string]string, conform bool) (map[string]string, error) {
	if typeName == nil {
		return maps.Clone(nonNil(props)), nil
	}

	attrs, ok := e.schemas.Lookup(*typeName)
	if !ok {
		return nil, &domain.UnknownLogTypeError{Name: *typeName}
	}

	work := make(map[string]slot, len(attrs)+len(props))
	for key, attr := range attrs {
		if attr.Default != nil {
			work[key] = slot{state: slotDefault, value: *attr.Default}
		} else {
			work[key] = slot{state: slotUnfilled}
		}
	}

	for key, val := range props {
		if _, declared := work[key]; conform && !declared {
			continue
		}
		work[key] = slot{state: slotResolved, value: val}
	}

	var missing []string
	for key, s := range work {
		if !s.ok() {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &domain.MissingFieldError{Type: *typeName, Fields: missing}
	}

	resolved := make(map[string]string, len(work))
	for key, s := range work {
		resolved[key] = s.value
	}
	return resolved, nil
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
