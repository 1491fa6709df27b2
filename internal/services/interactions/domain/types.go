// Package domain holds interaction types independent of the platform wire schema
package domain

// InteractionType is the kind of interaction delivered by the platform
type InteractionType uint8

const (
	// TypePing is the endpoint liveness probe
	TypePing InteractionType = 1

	// TypeCommand is a slash command invocation
	TypeCommand InteractionType = 2

	// TypeAutocomplete asks for suggestions for a focused option
	TypeAutocomplete InteractionType = 4
)

// Interaction is one decoded, already authenticated request
// Command is nil for pings and for commands that arrived without data
type Interaction struct {
	ID      string
	Type    InteractionType
	Command *Invocation
}

// Invocation names a command and its options in the order they were sent
type Invocation struct {
	Name    string
	Options []Option
}

// Option is one named argument
type Option struct {
	Name  string
	Value OptionValue
}

// Tag discriminates OptionValue
type Tag uint8

const (
	TagString Tag = iota + 1
	TagInteger
	TagBoolean
	TagFocusedString
)

func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagInteger:
		return "integer"
	case TagBoolean:
		return "boolean"
	case TagFocusedString:
		return "focused_string"
	default:
		return "unknown"
	}
}

// OptionValue is a tagged union; only the field selected by Tag is meaningful
type OptionValue struct {
	Tag  Tag
	Str  string
	Int  int64
	Bool bool
}

// String wraps a string option
func String(s string) OptionValue { return OptionValue{Tag: TagString, Str: s} }

// Integer wraps an integer option
func Integer(n int64) OptionValue { return OptionValue{Tag: TagInteger, Int: n} }

// Boolean wraps a boolean option
func Boolean(b bool) OptionValue { return OptionValue{Tag: TagBoolean, Bool: b} }

// Focused wraps the partially typed string the user is currently editing
func Focused(s string) OptionValue { return OptionValue{Tag: TagFocusedString, Str: s} }

// EpochArgs are the resolved arguments of the epoch command
type EpochArgs struct {
	Timezone string `json:"timezone" validate:"required"`
	Year     int32  `json:"year"`
	Month    int8   `json:"month" validate:"min=1,max=12"`
	Day      int8   `json:"day" validate:"min=1,max=31"`
	Hour     int8   `json:"hour" validate:"min=0,max=23"`
	Minute   int8   `json:"minute" validate:"min=0,max=59"`
	Second   int8   `json:"second" validate:"min=0,max=60"`
	Preview  bool   `json:"preview"`
}

// DefaultEpochArgs returns the optional-field defaults
func DefaultEpochArgs() EpochArgs {
	return EpochArgs{Month: 1, Day: 1, Preview: true}
}
