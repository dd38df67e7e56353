// Package invites holds the invite moderation toggle and the background sweep
// that enforces it.
package invites

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const defaultPolicyFile = "invites.txt"

// Policy is a single boolean persisted as a one-character text file:
// '1' means invite links are allowed, '0' means they get revoked.
type Policy struct {
	path string
}

func NewPolicy(path string) *Policy {
	if path == "" {
		path = defaultPolicyFile
	}
	return &Policy{path: path}
}

func (p *Policy) SetAllowed(allowed bool) error {
	text := "0"
	if allowed {
		text = "1"
	}
	if err := os.WriteFile(p.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write invite policy: %w", err)
	}
	return nil
}

// Allowed reports whether invite links may stay up. A missing policy file
// counts as allowed, so a fresh deployment never starts revoking invites
// before anyone has run /invites.
func (p *Policy) Allowed() (bool, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read invite policy: %w", err)
	}
	return strings.TrimSpace(string(data)) == "1", nil
}
