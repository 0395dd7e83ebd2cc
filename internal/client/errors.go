package client

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a failed call the way the dashboards report it
type Kind int

const (
	KindRequest Kind = iota
	KindAuth
	KindValidation
	KindInvalidToken
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindInvalidToken:
		return "invalid token"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	}
	return "request"
}

// Error is returned by every client operation that fails.
// Fields carries per-field messages for validation failures.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string]string
	Err     error
}

// Sentinels for errors.Is; they match any *Error of the same Kind
var (
	ErrRequest      = &Error{Kind: KindRequest}
	ErrAuth         = &Error{Kind: KindAuth}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrInvalidToken = &Error{Kind: KindInvalidToken}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
)

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Status == 0 && t.Err == nil
}

// validationError builds a KindValidation error whose message joins fields in key order
func validationError(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: joinFields(fields), Fields: fields}
}

func joinFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}

// RoomOpError reports which room transition failed
type RoomOpError struct {
	Op     string
	RoomID uint
	Err    error
}

func (e *RoomOpError) Error() string {
	if e.RoomID == 0 {
		return fmt.Sprintf("%s room: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s room %d: %v", e.Op, e.RoomID, e.Err)
}

func (e *RoomOpError) Unwrap() error {
	return e.Err
}

// PartialFailureError is returned by PrescribeTests when at least one lab rejected its request.
// Requests that were created stay created.
type PartialFailureError struct {
	Failed    []LabResult
	Succeeded int
}

func (e *PartialFailureError) Error() string {
	ids := make([]string, len(e.Failed))
	for i, r := range e.Failed {
		ids[i] = fmt.Sprintf("%d", r.LabID)
	}
	return fmt.Sprintf("lab test request failed for %d of %d labs (lab %s)",
		len(e.Failed), len(e.Failed)+e.Succeeded, strings.Join(ids, ", "))
}
