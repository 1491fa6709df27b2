package domain

import stderrs "errors"

// Kind is the closed set of failures a command can surface to the user
type Kind uint8

const (
	AmbiguousTime Kind = iota + 1
	Fatal
	InvalidArgs
	MissingPayload
	MissingRequired
	UnknownCommand
	UnknownTimezone
	UnsupportedInteractionType
	OutOfRange
)

var messages = map[Kind]string{
	AmbiguousTime:              "Provided date and time are ambiguous (i.e. more than one possible interpretation).",
	Fatal:                      "Unrecoverable error. This is unexpected behavior. Please file a bug report.",
	InvalidArgs:                "Invalid command arguments.",
	MissingPayload:             "No interaction data present.",
	MissingRequired:            "Required arguments not provided.",
	UnknownCommand:             "Unknown command name.",
	UnknownTimezone:            "Unknown timezone. Please ensure that it is in the IANA Time Zone Database.",
	UnsupportedInteractionType: "Unsupported interaction type.",
	OutOfRange:                 "A value is out of range. It is either too large or too small.",
}

// Error implements error with the user facing message
func (k Kind) Error() string {
	if m, ok := messages[k]; ok {
		return m
	}
	return messages[Fatal]
}

// KindOf extracts a Kind from err; anything foreign is Fatal
func KindOf(err error) Kind {
	var k Kind
	if stderrs.As(err, &k) {
		return k
	}
	return Fatal
}
