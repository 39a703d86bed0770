package failure

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// AuthKind classifies a failed authentication attempt.
type AuthKind string

const (
	AuthInvalidCredentials AuthKind = "invalid_credentials"
	AuthNetwork            AuthKind = "network"
	AuthExpired            AuthKind = "expired"
	AuthUnknown            AuthKind = "unknown"
)

// StoreKind classifies a failed call against the record store.
type StoreKind string

const (
	StoreTransient  StoreKind = "transient"
	StorePermission StoreKind = "permission"
	StoreValidation StoreKind = "validation"
	StoreNotFound   StoreKind = "not_found"
	StoreUnknown    StoreKind = "unknown"
)

// UploadKind classifies a failed image upload.
type UploadKind string

const (
	UploadNetwork UploadKind = "network"
	UploadQuota   UploadKind = "quota"
	UploadInvalid UploadKind = "invalid"
	UploadUnknown UploadKind = "unknown"
)

type AuthError struct {
	Kind    AuthKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Code() int {
	switch e.Kind {
	case AuthInvalidCredentials, AuthExpired:
		return http.StatusUnauthorized
	case AuthNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type StoreError struct {
	Kind    StoreKind
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Code() int {
	switch e.Kind {
	case StoreNotFound:
		return http.StatusNotFound
	case StoreValidation:
		return http.StatusBadRequest
	case StorePermission:
		return http.StatusForbidden
	case StoreTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type UploadError struct {
	Kind    UploadKind
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	return e.Message
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func (e *UploadError) Code() int {
	switch e.Kind {
	case UploadInvalid:
		return http.StatusBadRequest
	case UploadQuota:
		return http.StatusRequestEntityTooLarge
	case UploadNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Auth(kind AuthKind, message string, err error) error {
	return &AuthError{Kind: kind, Message: message, Err: err}
}

func Store(kind StoreKind, message string, err error) error {
	return &StoreError{Kind: kind, Message: message, Err: err}
}

func Upload(kind UploadKind, message string, err error) error {
	return &UploadError{Kind: kind, Message: message, Err: err}
}

// StoreNotFoundError reports a record that does not exist.
func StoreNotFoundError(entity string) error {
	return &StoreError{Kind: StoreNotFound, Message: entity + " not found"}
}

// IsAuthKind reports whether err carries an AuthError of the given kind.
func IsAuthKind(err error, kind AuthKind) bool {
	var authErr *AuthError

	return errors.As(err, &authErr) && authErr.Kind == kind
}

// IsStoreKind reports whether err carries a StoreError of the given kind.
func IsStoreKind(err error, kind StoreKind) bool {
	var storeErr *StoreError

	return errors.As(err, &storeErr) && storeErr.Kind == kind
}

// IsUploadKind reports whether err carries an UploadError of the given kind.
func IsUploadKind(err error, kind UploadKind) bool {
	var uploadErr *UploadError

	return errors.As(err, &uploadErr) && uploadErr.Kind == kind
}

// ClassifyStore wraps a database error into a StoreError. Errors that already
// carry a Failure or StoreError are returned untouched.
func ClassifyStore(message string, err error) error {
	if err == nil {
		return nil
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return err
	}

	return &StoreError{Kind: StoreKindOf(err), Message: message, Err: err}
}

// StoreKindOf maps driver errors to a StoreKind using the SQLSTATE class.
func StoreKindOf(err error) StoreKind {
	if errors.Is(err, sql.ErrNoRows) {
		return StoreNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, sql.ErrConnDone) {
		return StoreTransient
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)

		switch {
		case code == "42501":
			return StorePermission
		case code == "40001", code == "40P01":
			return StoreTransient
		case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P"), strings.HasPrefix(code, "53"):
			return StoreTransient
		case strings.HasPrefix(code, "22"), strings.HasPrefix(code, "23"):
			return StoreValidation
		}

		return StoreUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return StoreTransient
	}

	return StoreUnknown
}

// ClassifyUpload wraps a provider error into an UploadError. Errors that
// already carry an UploadError are returned untouched.
func ClassifyUpload(message string, err error) error {
	if err == nil {
		return nil
	}

	var uploadErr *UploadError
	if errors.As(err, &uploadErr) {
		return err
	}

	return &UploadError{Kind: UploadKindOf(err), Message: message, Err: err}
}

// UploadKindOf maps provider errors to an UploadKind. HTTP answers are read
// through any error exposing HTTPStatusCode, as SDK and API errors do.
func UploadKindOf(err error) UploadKind {
	var status interface{ HTTPStatusCode() int }
	if errors.As(err, &status) {
		switch code := status.HTTPStatusCode(); {
		case code == http.StatusRequestEntityTooLarge, code == http.StatusTooManyRequests, code == http.StatusInsufficientStorage:
			return UploadQuota
		case code == http.StatusBadRequest, code == http.StatusUnsupportedMediaType:
			return UploadInvalid
		case code >= http.StatusInternalServerError:
			return UploadNetwork
		}

		return UploadUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return UploadNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return UploadNetwork
	}

	return UploadUnknown
}

// Category names the tagged kind carried by err, such as "store.not_found",
// or "http.<code>" for a plain Failure. Untagged errors yield "unknown".
func Category(err error) string {
	var (
		authErr   *AuthError
		storeErr  *StoreError
		uploadErr *UploadError
		fail      *Failure
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &authErr):
		return "auth." + string(authErr.Kind)
	case errors.As(err, &storeErr):
		return "store." + string(storeErr.Kind)
	case errors.As(err, &uploadErr):
		return "upload." + string(uploadErr.Kind)
	case errors.As(err, &fail):
		return "http." + strconv.Itoa(fail.Code)
	}

	return "unknown"
}
