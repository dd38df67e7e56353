package status

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound means no status panel was found within the scan window.
// The user can recover by running /track or clearing out the channel.
var ErrRecordNotFound = errors.New("no status panel found in the scan window")

// AlreadyClaimedError reports a claim attempt on an account somebody else is
// already using. It is a normal branch, not a fault.
type AlreadyClaimedError struct {
	Account string
	Holder  string
	Reason  string
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("account %s is already claimed by %s", e.Account, e.Holder)
}

// NotClaimedError reports a release attempt on an account nobody holds.
type NotClaimedError struct {
	Account string
}

func (e *NotClaimedError) Error() string {
	return fmt.Sprintf("account %s is not claimed", e.Account)
}

// MalformedFieldError means a status field no longer matches the grammar.
// Since only the bot writes these fields, it indicates external tampering and
// is surfaced distinctly instead of being treated as any valid state.
type MalformedFieldError struct {
	Account string
	Text    string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("status field for account %s is malformed: %q", e.Account, e.Text)
}
