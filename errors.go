package shapematch

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNameMismatch   = "name_mismatch"
	CodeKindMismatch   = "kind_mismatch"
	CodeUnknownVariant = "unknown_variant"
	CodeTooFewFields   = "too_few_fields"
	CodeTypeMismatch   = "type_mismatch"
	CodeTooDeep        = "too_deep"
	// Shape construction (dsl builders)
	CodeDuplicateField = "duplicate_field"
	CodeEmptyName      = "empty_name"
)

// Issue records one reason a descriptor was rejected.
type Issue struct {
	Path    string // JSON Pointer over descriptor field names (for example: /address/street).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"want":"mood", "got":"feeling"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of rejection reasons that implements error.
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
		// e.g. kind_mismatch at /address
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes returns the issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Code)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
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

// ErrTooDeep reports that nested acceptors exceeded MatchOpt.MaxDepth, which
// usually means the declared shape graph is cyclic.
var ErrTooDeep = errors.New("shapematch: cyclic or too-deep declared shape")

// DepthError carries the location where the recursion guard tripped.
type DepthError struct {
	Path  string
	Limit int
}

func (e *DepthError) Error() string {
	if e == nil {
		return ErrTooDeep.Error()
	}
	return fmt.Sprintf("%s: depth limit %d exceeded at %s", ErrTooDeep.Error(), e.Limit, e.Path)
}

func (e *DepthError) Is(target error) bool { return target == ErrTooDeep }
