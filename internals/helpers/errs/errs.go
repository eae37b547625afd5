// file: internals/helpers/errs/errs.go
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind mengelompokkan error domain supaya controller bisa memetakan status
// HTTP tanpa tahu detail layanan.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindNotFound
	KindOverlap
	KindDuplicate
	KindStillReferenced
	KindStorage
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Storage membungkus error tak terduga dari lapisan persistence.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Msg: "database error", Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }

// HTTPStatus memetakan kind ke status code:
// 400 invalid, 404 not found, 409 overlap/duplicate/masih direferensikan,
// 500 sisanya.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindOverlap, KindDuplicate, KindStillReferenced:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
