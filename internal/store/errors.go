package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownVehicleKind is returned when a vehicle is neither a bus nor a van.
var ErrUnknownVehicleKind = errors.New("unknown vehicle kind")

// ErrorKind classifies storage failures.
type ErrorKind string

const (
	KindRead   ErrorKind = "read"
	KindDecode ErrorKind = "decode"
	KindEncode ErrorKind = "encode"
	KindWrite  ErrorKind = "write"
)

// OpError is a storage failure on one collection file.
type OpError struct {
	Op         string // "load", "save" or "add"
	Kind       ErrorKind
	Collection string // file name without extension, e.g. "vehicles"
	Path       string
	Err        error
}

func newOpError(op string, kind ErrorKind, path string, err error) *OpError {
	return &OpError{
		Op:         op,
		Kind:       kind,
		Collection: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:       path,
		Err:        err,
	}
}

// Error reads like "save vehicles: encode failed (utms_data/vehicles.json): ...".
func (e *OpError) Error() string {
	msg := fmt.Sprintf("%s %s: %s failed", e.Op, e.Collection, e.Kind)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OpError) Unwrap() error { return e.Err }

// IsKind reports whether err wraps an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Kind == kind
}
