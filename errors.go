package ncnews

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponder is implemented by errors that know how to write themselves
// as an HTTP response.
type ErrorResponder interface {
	RespondError(w http.ResponseWriter, r *http.Request) bool
}

// Kind classifies a failure into the small set of outcomes the API exposes.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindInvalidCommentInput
	KindSelfFollow
	KindNotFound
)

// Status returns the HTTP status code for a kind.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput, KindInvalidCommentInput, KindSelfFollow:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidCommentInput:
		return "InvalidCommentInput"
	case KindSelfFollow:
		return "SelfFollow"
	case KindNotFound:
		return "NotFound"
	default:
		return "Internal"
	}
}

const (
	msgInvalidInput        = "invalid input"
	msgInvalidCommentInput = "invalid comment input"
	msgSelfFollow          = "A user cannot follow themselves."
	msgNotFound            = "not found"
	msgEndpointNotFound    = "endpoint not found"
	msgInternal            = "internal server error"
)

// Error is the failure type returned by every Board operation. Msg is sent as
// is to the client, err is kept for logging only.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Msg, e.err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

// RespondError writes {"msg": ...} with the status matching the error kind.
func (e *Error) RespondError(w http.ResponseWriter, r *http.Request) bool {
	writeMsg(w, e.Kind.Status(), e.Msg)
	return true
}

// InvalidInput reports a malformed identifier, parameter or body field.
func InvalidInput(err error) *Error {
	return &Error{Kind: KindInvalidInput, Msg: msgInvalidInput, err: err}
}

// InvalidCommentInput reports a comment body that lacks username or body.
func InvalidCommentInput(err error) *Error {
	return &Error{Kind: KindInvalidCommentInput, Msg: msgInvalidCommentInput, err: err}
}

// SelfFollow reports a user trying to follow themselves.
func SelfFollow() *Error {
	return &Error{Kind: KindSelfFollow, Msg: msgSelfFollow}
}

// NotFound reports a missing entity. An empty entity yields the generic message.
func NotFound(entity string) *Error {
	if entity == "" {
		return &Error{Kind: KindNotFound, Msg: msgNotFound}
	}
	return &Error{Kind: KindNotFound, Msg: entity + " not found"}
}

// Internal wraps any unanticipated failure. Its message never leaks err.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: msgInternal, err: err}
}

// StorageClass is the class of a storage level failure, as identified by the
// driver's error code.
type StorageClass int

const (
	ClassUnknown StorageClass = iota
	// ClassInvalidText is a value the database could not parse into the
	// column type (postgres 22P02).
	ClassInvalidText
	// ClassForeignKey is a foreign key violation (postgres 23503).
	ClassForeignKey
	// ClassUnique is a unique or primary key violation (postgres 23505).
	ClassUnique
)

func (c StorageClass) String() string {
	switch c {
	case ClassInvalidText:
		return "invalid_text_representation"
	case ClassForeignKey:
		return "foreign_key_violation"
	case ClassUnique:
		return "unique_violation"
	default:
		return "unknown"
	}
}

// StorageError wraps a driver error with its class.
type StorageError struct {
	Class StorageClass
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error (%v): %v", e.Class, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

var storageKinds = map[StorageClass]Kind{
	ClassInvalidText: KindInvalidInput,
	ClassForeignKey:  KindInvalidInput,
	ClassUnique:      KindInvalidInput,
}

// AsError turns any error returned by a Board operation into an *Error. Typed
// errors pass through, storage errors are mapped by class, everything else is
// internal.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var se *StorageError
	if errors.As(err, &se) {
		if kind, ok := storageKinds[se.Class]; ok {
			return &Error{Kind: kind, Msg: msgInvalidInput, err: err}
		}
	}

	return Internal(err)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
