package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlaylists(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"several", "Library, Chill Mix, Workout", []string{"Library", "Chill Mix", "Workout"}},
		{"single", "Library", []string{"Library"}},
		{"empty", "", []string{}},
		{"stray whitespace", "Library,  Focus ", []string{"Library", "Focus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePlaylists(tt.in))
		})
	}
}

func TestEscapeScriptString(t *testing.T) {
	assert.Equal(t, `my \"best\" mix`, escapeScriptString(`my "best" mix`))
	assert.Equal(t, `a\\b`, escapeScriptString(`a\b`))
	assert.Equal(t, "plain", escapeScriptString("plain"))
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 0, clampLevel(-5))
	assert.Equal(t, 100, clampLevel(150))
	assert.Equal(t, 60, clampLevel(60))
}
