package operation

import (
	"fmt"
	"strconv"
)

// audio represents the audio subsystem.
type audio struct{}

// Audio is the exported instance.
var Audio audio

// GetOutputLevel returns the output volume as a whole percent (0-100).
func (a *audio) GetOutputLevel() (int, error) {
	out, err := runScript("output volume of (get volume settings)")
	if err != nil {
		return 0, err
	}

	lvl, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("failed to parse volume: %q", out)
	}
	return lvl, nil
}

// SetOutputLevel sets the output volume (0-100). Setting a non-zero level
// also unmutes the output.
func (a *audio) SetOutputLevel(lvl int) error {
	lvl = clampLevel(lvl)

	if _, err := runScript(fmt.Sprintf("set volume output volume %d", lvl)); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}

	if lvl > 0 {
		_ = a.UnmuteOutput()
	}
	return nil
}

func (a *audio) MuteOutput() error {
	_, err := runScript("set volume with output muted")
	return err
}

func (a *audio) UnmuteOutput() error {
	_, err := runScript("set volume without output muted")
	return err
}

func (a *audio) ToggleMuteOutput() error {
	out, err := runScript("output muted of (get volume settings)")
	if err != nil {
		return err
	}
	if out == "true" {
		return a.UnmuteOutput()
	}
	return a.MuteOutput()
}

// GetInputLevel returns the input (microphone) volume as a whole percent.
func (a *audio) GetInputLevel() (int, error) {
	out, err := runScript("input volume of (get volume settings)")
	if err != nil {
		return 0, err
	}

	lvl, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("failed to parse volume: %q", out)
	}
	return lvl, nil
}

func (a *audio) SetInputLevel(lvl int) error {
	lvl = clampLevel(lvl)

	if _, err := runScript(fmt.Sprintf("set volume input volume %d", lvl)); err != nil {
		return fmt.Errorf("failed to set input volume: %w", err)
	}
	return nil
}

func clampLevel(lvl int) int {
	if lvl < 0 {
		return 0
	}
	if lvl > 100 {
		return 100
	}
	return lvl
}
