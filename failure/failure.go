package failure

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	Unknown Kind = iota
	MissingInput
	InvalidInput
	UpstreamStatus
	UserNotFoundInContest
	Transport
)

func (k Kind) String() string {
	switch k {
	case MissingInput:
		return "missing input"
	case InvalidInput:
		return "invalid input"
	case UpstreamStatus:
		return "upstream status"
	case UserNotFoundInContest:
		return "user not found in contest"
	case Transport:
		return "transport"
	}
	return "unknown"
}

// Error is the failure variant of every lookup. Total is set for
// UserNotFoundInContest, where participants were counted but the handle was not.
type Error struct {
	Kind    Kind
	Method  string
	Comment string
	Total   int
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Method != `` {
		msg = e.Method + ": " + msg
	}
	if e.Comment != `` {
		msg += ": " + e.Comment
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Missing(field string) error {
	return &Error{Kind: MissingInput, Comment: field + " is empty"}
}

func Invalid(field, value string) error {
	return &Error{Kind: InvalidInput, Comment: fmt.Sprintf("%s %q", field, value)}
}

func Status(method, status, comment string) error {
	c := status
	if comment != `` {
		c += " (" + comment + ")"
	}
	return &Error{Kind: UpstreamStatus, Method: method, Comment: c}
}

func NotFound(handle string, contestID, total int) error {
	return &Error{
		Kind:    UserNotFoundInContest,
		Method:  "contest.standings",
		Comment: fmt.Sprintf("%s in contest %d", handle, contestID),
		Total:   total,
	}
}

func Wrap(method string, err error, message string) error {
	return &Error{Kind: Transport, Method: method, Err: errors.Wrap(err, message)}
}

// KindOf reports the kind of err, looking through pkg/errors wrapping.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return Unknown
}

func Is(err error, k Kind) bool {
	return KindOf(err) == k
}

// IsInput reports failures detected before any network call.
func IsInput(err error) bool {
	k := KindOf(err)
	return k == MissingInput || k == InvalidInput
}
