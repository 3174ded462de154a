package cli

import (
	"fmt"
	"strings"
)

// ref is an id/name pair a command argument can be resolved against.
type ref struct {
	ID   string
	Name string
}

// resolveRef maps user input to a full record ID: exact ID first, then
// ID prefix, then exact name (case-insensitive). Ambiguous prefixes are
// an error rather than a guess.
func resolveRef(kind, input string, refs []ref) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, r := range refs {
		if r.ID == input {
			return r.ID, nil
		}
	}

	var matches []string
	for _, r := range refs {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}

	for _, r := range refs {
		if strings.EqualFold(r.Name, input) {
			return r.ID, nil
		}
	}

	return "", fmt.Errorf("%s not found: %q", kind, input)
}
