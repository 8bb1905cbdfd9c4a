package lifecycle

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindSelfRequest       Kind = "SELF_REQUEST"
	KindItemUnavailable   Kind = "ITEM_UNAVAILABLE"
	KindDuplicateRequest  Kind = "DUPLICATE_REQUEST"
	KindNotOwner          Kind = "NOT_OWNER"
	KindWrongRole         Kind = "WRONG_ROLE"
	KindInvalidState      Kind = "INVALID_STATE"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindInvalidArgument   Kind = "INVALID_ARGUMENT"
)

type Op string

const (
	OpCreate         Op = "create"
	OpDecide         Op = "decide"
	OpMarkAsLent     Op = "mark_as_lent"
	OpConfirmReceipt Op = "confirm_receipt"
	OpMarkDone       Op = "mark_done"
	OpConfirmReturn  Op = "confirm_return"
	OpMessage        Op = "message"
)

// Error is returned by every failed operation. Match with errors.Is against the
// Err* sentinels.
type Error struct {
	Kind Kind
	Op   Op
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return string(e.Kind)
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is matches on Kind; a target with an Op also has to match the Op.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

var (
	ErrSelfRequest       = &Error{Kind: KindSelfRequest}
	ErrItemUnavailable   = &Error{Kind: KindItemUnavailable}
	ErrDuplicateRequest  = &Error{Kind: KindDuplicateRequest}
	ErrNotOwner          = &Error{Kind: KindNotOwner}
	ErrWrongRole         = &Error{Kind: KindWrongRole}
	ErrInvalidState      = &Error{Kind: KindInvalidState}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
)

// KindOf returns the lifecycle kind of err, or "" when err is not a lifecycle error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func fail(op Op, k Kind, msg string) error {
	return &Error{Kind: k, Op: op, Msg: msg}
}
