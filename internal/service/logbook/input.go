package logbook

// RecordLogInput holds the parameters of a typed recording.
type RecordLogInput struct {
	Name        string
	Description string
	// Type names a registered log type. Nil records the props untouched.
	Type *string
	// Props are the caller-supplied properties. May be nil.
	Props map[string]string
	// Conform drops props the type does not declare. Ignored without Type.
	Conform bool
}

// typeLabel returns the type name for log output.
func (i RecordLogInput) typeLabel() string {
	if i.Type == nil {
		return ""
	}
	return *i.Type
}
