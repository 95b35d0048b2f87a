package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineUI_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"full yes", "YES\n", true},
		{"no", "n\n", false},
		{"default is no", "\n", false},
		{"eof is no", "", false},
		{"retry after invalid", "maybe\ny\n", true},
		{"invalid then eof", "maybe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ui := NewLineUI(strings.NewReader(tt.input), &out)
			got, err := ui.Confirm("Compatibility", "install it?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Compatibility: install it?")
			assert.Contains(t, out.String(), "Compatibility [y/N]: ")
		})
	}
}

func TestLineUI_ConfirmRetryMessage(t *testing.T) {
	var out bytes.Buffer
	ui := NewLineUI(strings.NewReader("maybe\nn\n"), &out)
	_, err := ui.Confirm("Compatibility", "install it?")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Please answer y or n.")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestLineUI_ConfirmReadError(t *testing.T) {
	ui := NewLineUI(failingReader{}, &bytes.Buffer{})
	_, err := ui.Confirm("Compatibility", "install it?")
	assert.Error(t, err)
}

func TestLineUI_Alert(t *testing.T) {
	var out bytes.Buffer
	ui := NewLineUI(strings.NewReader(""), &out)
	require.NoError(t, ui.Alert("Compatibility", "The game will not be started."))
	assert.Equal(t, "Compatibility: The game will not be started.\n", out.String())
}
