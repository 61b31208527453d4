// Package cli implements the command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// plainOutput switches from the JSON envelope (the default; the tool is
// agent-facing) to styled human output.
var plainOutput bool

// errReported marks errors whose JSON envelope already went to stderr, so
// Execute only has to set the exit code.
var errReported = errors.New("error already reported")

// respond prints the success envelope for an action to stdout. v is flattened
// into the envelope, so every action-specific field sits next to
// action/success at the top level.
func respond(action string, v interface{}) error {
	out := map[string]interface{}{}
	if v != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
	}
	out["action"] = action
	out["success"] = true

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// failMsg reports a failure. In JSON mode the error envelope goes to stderr
// and the process exits non-zero; in plain mode the message surfaces through
// Execute.
func failMsg(action, code, message string) error {
	if plainOutput {
		return fmt.Errorf("%s", message)
	}

	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]interface{}{
		"action":  action,
		"success": false,
		"code":    code,
		"error":   message,
	})
	return errReported
}

// fail reports a failure from a Go error.
func fail(action, code string, err error) error {
	return failMsg(action, code, err.Error())
}
