package gemini

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilSchema is returned when a schema document is empty or null.
var ErrNilSchema = errors.New("gemini: nil schema")

// Issue codes reported by Check.
const (
	CodeUnknownType          = "unknown_type"
	CodeMissingItems         = "missing_items"
	CodeUnexpectedItems      = "unexpected_items"
	CodeUnexpectedProperties = "unexpected_properties"
	CodeUnknownRequired      = "unknown_required"
	CodeDuplicateRequired    = "duplicate_required"
	CodeEmptyRequired        = "empty_required"
	CodeEnumType             = "enum_type"
)

// Severity expresses how serious an issue is.
type Severity int

const (
	Warn Severity = iota + 1
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return "ignore"
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Issue is a single finding about a schema tree.
type Issue struct {
	Path     string   `json:"path" yaml:"path"` // JSON Pointer (for example: /properties/tags/items).
	Code     string   `json:"code" yaml:"code"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	// Params carries structured parameters (for example {"name": "id"}).
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Issues is a collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasErrors reports whether any issue has Error severity.
func (iss Issues) HasErrors() bool {
	for _, it := range iss {
		if it.Severity == Error {
			return true
		}
	}
	return false
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
