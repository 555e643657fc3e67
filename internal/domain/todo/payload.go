package todo

// Mode selects which rule set the validator applies.
type Mode int

const (
	ModeCreate Mode = iota
	ModeReplace
	ModePatch
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeReplace:
		return "full-replace"
	case ModePatch:
		return "partial-update"
	default:
		return "unknown"
	}
}

// recognizedFields lists the body keys each mode accepts. Create only takes a
// title: new todos always start incomplete.
func (m Mode) recognizedFields() []string {
	if m == ModeCreate {
		return []string{FieldTitle}
	}
	return []string{FieldTitle, FieldCompleted}
}

// Field is a raw body value that keeps "absent" and "explicit null" apart.
// Present is false when the key was missing; a present field whose Value is
// nil was sent as JSON null.
type Field struct {
	Present bool
	Value   any
}

// RawPayload is a request body projected onto the recognized schema. Values
// are still untyped; the rule engine decides whether they are acceptable.
type RawPayload struct {
	Title     Field
	Completed Field
}

// Empty reports whether no recognized field was supplied.
func (p RawPayload) Empty() bool {
	return !p.Title.Present && !p.Completed.Present
}

// Project strips every key the mode does not recognize from a decoded body
// and returns what remains. A body holding only unknown keys projects to an
// empty payload.
func Project(mode Mode, body map[string]any) RawPayload {
	var p RawPayload
	for _, name := range mode.recognizedFields() {
		v, ok := body[name]
		if !ok {
			continue
		}
		switch name {
		case FieldTitle:
			p.Title = Field{Present: true, Value: v}
		case FieldCompleted:
			p.Completed = Field{Present: true, Value: v}
		}
	}
	return p
}

// CreatePayload is a validated create body.
type CreatePayload struct {
	Title string
}

// ReplacePayload is a validated full-replace body. Completed is false when
// the client omitted it.
type ReplacePayload struct {
	Title     string
	Completed bool
}

// Apply returns t with every mutable field replaced.
func (p ReplacePayload) Apply(t Todo) Todo {
	t.Title = p.Title
	t.Completed = p.Completed
	return t
}

// PatchPayload is a validated partial-update body. Only fields flagged as
// present are applied.
type PatchPayload struct {
	TitlePresent     bool
	Title            string
	CompletedPresent bool
	Completed        bool
}

// Apply returns t with the present fields overwritten.
func (p PatchPayload) Apply(t Todo) Todo {
	if p.TitlePresent {
		t.Title = p.Title
	}
	if p.CompletedPresent {
		t.Completed = p.Completed
	}
	return t
}
