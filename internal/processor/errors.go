package processor

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"
)

// maxErrorBody bounds how much of an upstream body is kept for diagnostics
const maxErrorBody = 512

var (
	// ErrMissingID is reported for records that carry no transaction id
	ErrMissingID = errors.New("record has no transaction id")

	// ErrUnexpectedStatus marks a non-2xx response that is not a credential rejection
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// AuthError is returned when every configured authentication strategy was
// rejected. It is not retryable without operator action.
type AuthError struct {
	Attempts   []string
	Body       string
	StatusCode int
}

func (e *AuthError) Error() string {
	msg := fmt.Sprintf("authentication failed: processor rejected all %d strategies (%s)",
		len(e.Attempts), strings.Join(e.Attempts, ", "))
	if e.StatusCode != 0 {
		msg += fmt.Sprintf("; last status %d", e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// NetworkError wraps transport failures and timeouts. Callers may retry.
type NetworkError struct {
	Err      error
	Strategy string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("processor request failed (%s): %v", e.Strategy, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Temporary reports that the failure may clear on its own
func (e *NetworkError) Temporary() bool {
	return true
}

// Timeout reports whether the underlying failure was a timeout
func (e *NetworkError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ResponseError is returned for a 2xx response whose body could not be
// understood, and for non-2xx statuses that say nothing about credentials
// such as 429 or 5xx
type ResponseError struct {
	Err        error
	Body       string
	StatusCode int
}

func (e *ResponseError) Error() string {
	if errors.Is(e.Err, ErrUnexpectedStatus) {
		msg := fmt.Sprintf("processor unavailable: status %d", e.StatusCode)
		if e.Body != "" {
			msg += ": " + e.Body
		}
		return msg
	}
	return fmt.Sprintf("malformed processor response (status %d): %v", e.StatusCode, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// isCredentialRejection reports whether a status means the processor did
// not accept the credential shape, so the next strategy is worth trying
func isCredentialRejection(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}

// truncate bounds a body for diagnostics. The result is always valid UTF-8
// since it ends up in text columns.
func truncate(body []byte) string {
	s := strings.ToValidUTF8(strings.TrimSpace(string(body)), "\uFFFD")
	if len(s) <= maxErrorBody {
		return s
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
