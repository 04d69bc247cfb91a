package redact

import "strings"

// Placeholder replaces any occurrence of the credential in sanitized text.
const Placeholder = "[REDACTED]"

// prefixLen is the shortest credential prefix considered identifying.
const prefixLen = 8

// String removes the secret, and any prefix of it long enough to be
// identifying, from the given message. An empty secret leaves the message
// unchanged.
func String(message, secret string) string {
	if secret == "" {
		return message
	}
	if strings.Contains(message, secret) {
		message = strings.ReplaceAll(message, secret, Placeholder)
	}
	if len(secret) > prefixLen {
		if prefix := secret[:prefixLen]; strings.Contains(message, prefix) {
			message = strings.ReplaceAll(message, prefix, Placeholder)
		}
	}
	return message
}

// Error returns an error whose message has been sanitized with String while
// still matching the original error chain via errors.Is / errors.As.
// A nil error returns nil.
func Error(err error, secret string) error {
	if err == nil {
		return nil
	}
	msg := String(err.Error(), secret)
	if msg == err.Error() {
		return err
	}
	return &redactedError{msg: msg, cause: err}
}

type redactedError struct {
	msg   string
	cause error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.cause }
