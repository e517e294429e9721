// Package form implements the client-side draft state machine.
//
// A Form moves between Empty, Editing, and Submitting. Every field change
// re-validates the whole draft against the client rule set, and submission
// is gated on the draft being dirty, valid, and not already in flight.
// This gate duplicates the server's validation; the server stays the final
// authority.
//
// The client rule set mirrors internal/validation; the two are implemented
// separately on purpose and kept in agreement by a conformance test.
package form

import (
	"strconv"

	"github.com/trailhead-labs/issuetrack/internal/types"
)

// State is the lifecycle position of the draft.
type State int

const (
	// StateEmpty is a blank create-mode draft.
	StateEmpty State = iota
	// StateEditing means the user has an in-progress draft.
	StateEditing
	// StateSubmitting means a request is in flight; input is ignored.
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

// Mode distinguishes creating a new issue from editing an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Field names a draft input.
type Field string

const (
	FieldID          Field = "id"
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
)

// Client-side rule messages. An empty or non-numeric ID shares one message;
// absence and type error are deliberately indistinguishable here, while the
// server reports absence through its all-fields gate instead.
const (
	MsgIDNumberRequired    = "ID must be a number and its required"
	MsgIDFourDigit         = "ID must be a 4-digit number"
	MsgTitleRequired       = "Title is required"
	MsgDescriptionRequired = "Description is required"
)

// values holds the three raw field strings.
type values struct {
	id          string
	title       string
	description string
}

// Form is the draft state machine. The zero value is not usable; call New.
type Form struct {
	state    State
	mode     Mode
	targetID int

	draft    values
	baseline values
	errors   map[Field]string
}

// New returns a blank create-mode form in the Empty state.
func New() *Form {
	return &Form{errors: map[Field]string{}}
}

// State returns the current lifecycle state.
func (f *Form) State() State { return f.state }

// Mode returns the current draft mode.
func (f *Form) Mode() Mode { return f.mode }

// TargetID returns the ID of the issue being edited. Only meaningful in
// edit mode.
func (f *Form) TargetID() int { return f.targetID }

// Value returns the current raw value of a field.
func (f *Form) Value(field Field) string {
	switch field {
	case FieldID:
		return f.draft.id
	case FieldTitle:
		return f.draft.title
	case FieldDescription:
		return f.draft.description
	}
	return ""
}

// FieldError returns the current error message for a field, or "".
func (f *Form) FieldError(field Field) string {
	return f.errors[field]
}

// IDLocked reports whether the ID input is disabled. The ID is immutable
// once an issue exists, so edit mode locks it at the form level too.
func (f *Form) IDLocked() bool {
	return f.mode == ModeEdit
}

// SetField records a field change and re-validates the draft. Changes are
// ignored while a submission is in flight, and the ID cannot change in
// edit mode.
func (f *Form) SetField(field Field, value string) {
	if f.state == StateSubmitting {
		return
	}
	if field == FieldID && f.IDLocked() {
		return
	}

	switch field {
	case FieldID:
		f.draft.id = value
	case FieldTitle:
		f.draft.title = value
	case FieldDescription:
		f.draft.description = value
	default:
		return
	}

	f.state = StateEditing
	f.revalidate()
}

// BeginEdit loads an existing issue into the draft and switches to edit
// mode. The loaded values become the dirty-check baseline, so submission
// stays disabled until the user changes something.
func (f *Form) BeginEdit(issue types.Issue) {
	if f.state == StateSubmitting {
		return
	}
	loaded := values{
		id:          strconv.Itoa(issue.ID),
		title:       issue.Title,
		description: issue.Description,
	}
	f.mode = ModeEdit
	f.targetID = issue.ID
	f.draft = loaded
	f.baseline = loaded
	f.state = StateEditing
	f.revalidate()
}

// Cancel discards the draft and returns to a blank create-mode form.
// Only available in edit mode, and never while submitting.
func (f *Form) Cancel() {
	if f.mode != ModeEdit || f.state == StateSubmitting {
		return
	}
	f.reset()
}

// Dirty reports whether the draft differs from its last-saved baseline.
func (f *Form) Dirty() bool {
	return f.draft != f.baseline
}

// Valid reports whether every field currently passes the client rules.
func (f *Form) Valid() bool {
	return validateAll(f.draft, f.mode) == nil
}

// CanSubmit reports whether the submit affordance is enabled: the draft
// must be dirty, valid, and no submission may already be in flight.
func (f *Form) CanSubmit() bool {
	return f.state != StateSubmitting && f.Dirty() && f.Valid()
}

// BeginSubmit transitions to Submitting. It returns false, leaving the
// state untouched, when the submit gate is closed.
func (f *Form) BeginSubmit() bool {
	if !f.CanSubmit() {
		return false
	}
	f.state = StateSubmitting
	return true
}

// Issue returns the draft as a record for dispatch. Call only after
// BeginSubmit has accepted the draft, so the ID is known to parse.
func (f *Form) Issue() types.Issue {
	id, _ := strconv.Atoi(f.draft.id)
	if f.mode == ModeEdit {
		id = f.targetID
	}
	return types.Issue{ID: id, Title: f.draft.title, Description: f.draft.description}
}

// SubmitSucceeded clears the draft and returns to a blank create-mode form.
func (f *Form) SubmitSucceeded() {
	if f.state != StateSubmitting {
		return
	}
	f.reset()
}

// SubmitFailedDuplicate attaches the server's duplicate-ID message to the
// ID field and returns to Editing with the draft preserved.
func (f *Form) SubmitFailedDuplicate(message string) {
	if f.state != StateSubmitting {
		return
	}
	f.state = StateEditing
	f.errors[FieldID] = message
}

// SubmitFailed returns to Editing after any other failure. The draft is
// left untouched and no field error surfaces; the caller is expected to
// log the failure.
func (f *Form) SubmitFailed() {
	if f.state != StateSubmitting {
		return
	}
	f.state = StateEditing
	f.revalidate()
}

func (f *Form) reset() {
	f.state = StateEmpty
	f.mode = ModeCreate
	f.targetID = 0
	f.draft = values{}
	f.baseline = values{}
	f.errors = map[Field]string{}
}

func (f *Form) revalidate() {
	f.errors = map[Field]string{}
	for field, msg := range validateAll(f.draft, f.mode) {
		f.errors[field] = msg
	}
}

// ValidateField evaluates one field against the client rules and returns
// the error message, or "".
func ValidateField(field Field, value string) string {
	switch field {
	case FieldID:
		n, err := strconv.Atoi(value)
		if err != nil {
			return MsgIDNumberRequired
		}
		if !types.ValidID(n) {
			return MsgIDFourDigit
		}
	case FieldTitle:
		if value == "" {
			return MsgTitleRequired
		}
	case FieldDescription:
		if value == "" {
			return MsgDescriptionRequired
		}
	}
	return ""
}

// validateAll applies every rule; rules are independent, so multiple
// simultaneous errors can surface. In edit mode the ID field is locked to
// a known-good value and skipped.
func validateAll(v values, mode Mode) map[Field]string {
	errs := map[Field]string{}
	if mode != ModeEdit {
		if msg := ValidateField(FieldID, v.id); msg != "" {
			errs[FieldID] = msg
		}
	}
	if msg := ValidateField(FieldTitle, v.title); msg != "" {
		errs[FieldTitle] = msg
	}
	if msg := ValidateField(FieldDescription, v.description); msg != "" {
		errs[FieldDescription] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
