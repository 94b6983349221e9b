package operation

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// music represents Apple Music control.
type music struct{}

// Music is the exported instance.
var Music music

// MusicApp is the application the music scripts address. Overridable through
// the music.app config key for Music.app forks or the legacy iTunes.
var MusicApp = "Music"

func tellMusic(body string) string {
	return fmt.Sprintf("tell application %q to %s", MusicApp, body)
}

func (m *music) Play() error {
	_, err := runScript(tellMusic("play"))
	return err
}

func (m *music) Pause() error {
	_, err := runScript(tellMusic("pause"))
	return err
}

func (m *music) Next() error {
	_, err := runScript(tellMusic("next track"))
	return err
}

func (m *music) Previous() error {
	_, err := runScript(tellMusic("previous track"))
	return err
}

// Current returns "Track - Artist" for the playing track, or "Not playing".
func (m *music) Current() (string, error) {
	script := fmt.Sprintf(`
		tell application %q
			if player state is playing then
				set trackName to name of current track
				set artistName to artist of current track
				return trackName & " - " & artistName
			else
				return "Not playing"
			end if
		end tell
	`, MusicApp)

	return runScript(script)
}

func (m *music) IsPlaying() (bool, error) {
	state, err := runScript(tellMusic("return player state as string"))
	if err != nil {
		return false, err
	}
	return state == "playing", nil
}

// Playlists returns the names of all playlists.
func (m *music) Playlists() ([]string, error) {
	out, err := runScript(tellMusic("return name of playlists"))
	if err != nil {
		return nil, err
	}
	return parsePlaylists(out), nil
}

func (m *music) PlayPlaylist(name string) error {
	_, err := runScript(tellMusic(fmt.Sprintf("play playlist named \"%s\"", escapeScriptString(name))))
	return err
}

func (m *music) SetShuffle(on bool) error {
	_, err := runScript(tellMusic(fmt.Sprintf("set shuffle enabled to %t", on)))
	return err
}

// PlayPlaylistInteractive pipes the playlist names through fzf and plays the
// selection. Returns the selected name.
func (m *music) PlayPlaylistInteractive() (string, error) {
	playlists, err := m.Playlists()
	if err != nil {
		return "", err
	}
	if len(playlists) == 0 {
		return "", errors.New("no playlists found")
	}

	cmd := exec.Command("fzf", "--prompt=Select playlist: ", "--height=40%", "--reverse")
	cmd.Stdin = strings.NewReader(strings.Join(playlists, "\n"))
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("failed to start fzf (is it installed?): %w", err)
		}
		return "", errors.New("no playlist selected")
	}

	selected := strings.TrimSpace(out.String())
	if selected == "" {
		return "", errors.New("no playlist selected")
	}

	if err := m.PlayPlaylist(selected); err != nil {
		return "", err
	}
	return selected, nil
}

// parsePlaylists splits AppleScript's comma-separated list output.
func parsePlaylists(out string) []string {
	playlists := []string{}
	for _, name := range strings.Split(out, ", ") {
		if name = strings.TrimSpace(name); name != "" {
			playlists = append(playlists, name)
		}
	}
	return playlists
}
