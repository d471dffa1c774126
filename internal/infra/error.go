package infra

import (
	"log/slog"

	"storefront-cart/internal/pkg/errs"
)

// ErrorKind classifies failures of the cart store and the marketplace backend.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindStoreFailure    ErrorKind = "STORE_FAILURE"
	KindVersionConflict ErrorKind = "VERSION_CONFLICT"
	KindCorrupt         ErrorKind = "CORRUPT"
	KindBackendFailure  ErrorKind = "BACKEND_FAILURE"
)

type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// WrapErr logs and classifies an infrastructure failure. Version conflicts and
// missing entries are part of normal operation and only reach debug level.
func WrapErr(logger *slog.Logger, kind ErrorKind, msg string, err error) error {
	attrs := []any{slog.String("kind", string(kind))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}

	switch kind {
	case KindVersionConflict, KindNotFound:
		logger.Debug("Infrastructure error: "+msg, attrs...)
	case KindCorrupt:
		logger.Warn("Infrastructure error: "+msg, attrs...)
	default:
		logger.Error("Infrastructure error: "+msg, attrs...)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
