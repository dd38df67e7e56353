// Package status keeps the authoritative "who is logged into what" record.
// The record lives in a single Discord message: a titled embed with one field
// per account, whose value text doubles as the persisted state. This package
// owns the field grammar, the record transitions and the message plumbing.
package status

import (
	"fmt"
	"regexp"
)

const (
	loggedOutText = "Status: Logged out"
	fieldPrefix   = "Account: "
)

// The claimed form is "Status: Logged in by <holder>\nFor: <reason>". The
// reason capture stops at a line break, so a reason containing one truncates
// there. That is long-standing behavior and decode must keep it.
var claimedPattern = regexp.MustCompile(`^Status: Logged in by (.*)\nFor: (.*)`)

// Status is the state of a single account. The zero value means free; a
// non-empty Holder means claimed.
type Status struct {
	Holder string
	Reason string
}

func (s Status) Claimed() bool {
	return s.Holder != ""
}

// EncodeStatus renders a status into its canonical field text.
func EncodeStatus(s Status) string {
	if !s.Claimed() {
		return loggedOutText
	}
	return fmt.Sprintf("Status: Logged in by %s\nFor: %s", s.Holder, s.Reason)
}

// DecodeStatus parses canonical field text back into a Status. Only this bot
// ever writes the field, so anything outside the grammar means the record was
// tampered with and is reported as an error, never coerced to a valid state.
func DecodeStatus(text string) (Status, error) {
	if text == loggedOutText {
		return Status{}, nil
	}
	m := claimedPattern.FindStringSubmatch(text)
	if m == nil {
		return Status{}, fmt.Errorf("text matches neither status form")
	}
	return Status{Holder: m[1], Reason: m[2]}, nil
}
