package operation

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// runScript executes an AppleScript snippet through osascript and returns
// trimmed stdout.
func runScript(script string) (string, error) {
	cmd := exec.Command("osascript", "-e", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("applescript error: %s", msg)
		}
		return "", fmt.Errorf("failed to execute osascript: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// escapeScriptString makes a user-provided value safe to splice into a quoted
// AppleScript string literal.
func escapeScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
