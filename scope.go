package genopts

import "fmt"

// Scope names the schema definition an options message is attached to.
// The message body is identical at every scope; only the consumer's
// interpretation differs, so the scope travels next to the decoded
// value instead of changing its shape.
type Scope int

const (
	ScopeFile Scope = iota
	ScopeMessage
	ScopeField
)

func (s Scope) String() string {
	switch s {
	case ScopeFile:
		return "file"
	case ScopeMessage:
		return "message"
	case ScopeField:
		return "field"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// ParseScope maps the textual scope names back to Scope values.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "file":
		return ScopeFile, nil
	case "message":
		return ScopeMessage, nil
	case "field":
		return ScopeField, nil
	default:
		return 0, fmt.Errorf("unknown scope %q", s)
	}
}
