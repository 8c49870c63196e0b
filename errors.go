package safenorm

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported by Walk and logged by Normalize.
const (
	CodeMarshalerFailed = "marshaler_failed"
	CodeEncodeFailed    = "encode_failed"
	CodeDecodeFailed    = "decode_failed"
	CodePanic           = "panic"
)

// Issue describes why a value could not be normalized.
type Issue struct {
	Path    string // JSON Pointer of the offending node (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of normalization failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. marshaler_failed at /path: boom
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is and errors.As see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func newIssue(path, code string, cause error) Issues {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return Issues{{Path: path, Code: code, Message: msg, Cause: cause}}
}
