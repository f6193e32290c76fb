package domain

// LogAttr describes one attribute of a log type.
// Hidden is a display hint only; it never affects conformance.
// A nil Default means the attribute is required when the type is used.
type LogAttr struct {
	Hidden  bool    `yaml:"hidden" json:"hidden"`
	Default *string `yaml:"default" json:"default,omitempty"`
}

// HasDefault reports whether the attribute carries a default value.
func (a LogAttr) HasDefault() bool {
	return a.Default != nil
}

// Clone returns a copy that does not share the Default pointer.
func (a LogAttr) Clone() LogAttr {
	if a.Default == nil {
		return LogAttr{Hidden: a.Hidden}
	}
	def := *a.Default
	return LogAttr{Hidden: a.Hidden, Default: &def}
}

// LogAttrs maps attribute name to its schema entry.
type LogAttrs map[string]LogAttr

// Clone returns a deep copy. A nil map clones to an empty one.
func (a LogAttrs) Clone() LogAttrs {
	out := make(LogAttrs, len(a))
	for k, v := range a {
		out[k] = v.Clone()
	}
	return out
}

// LogType is a named schema of expected property keys.
type LogType struct {
	Name  string
	Attrs LogAttrs
}

// LogTypes maps type name to its attribute schema.
type LogTypes map[string]LogAttrs

// Clone returns a deep copy.
func (t LogTypes) Clone() LogTypes {
	out := make(LogTypes, len(t))
	for name, attrs := range t {
		out[name] = attrs.Clone()
	}
	return out
}

// StrPtr returns a pointer to s. Handy for building defaults.
func StrPtr(s string) *string {
	return &s
}
