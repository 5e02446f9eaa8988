package editor

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEditor_EnvEditor(t *testing.T) {
	t.Setenv("EDITOR", "nvim")
	t.Setenv("VISUAL", "code")

	assert.Equal(t, "nvim", detectEditor())
}

func TestDetectEditor_EnvVisual(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "code")

	assert.Equal(t, "code", detectEditor())
}

func TestDetectEditor_BlankTreatedAsUnset(t *testing.T) {
	t.Setenv("EDITOR", "   ")
	t.Setenv("VISUAL", "vscode")

	assert.Equal(t, "vscode", detectEditor())
}

func TestDetectEditor_FallbackNano(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	want := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		want = "nano"
	}
	assert.Equal(t, want, detectEditor())
}

func TestCommand_SplitsArguments(t *testing.T) {
	t.Setenv("EDITOR", "code --wait")

	cmd := Command(t.Context(), "/tmp/.env")
	assert.Equal(t, []string{"code", "--wait", "/tmp/.env"}, cmd.Args)
}

func TestOpen_Integration(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping integration test on windows (uses shell script mock)")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "mock-editor.sh")
	outputFile := filepath.Join(tmpDir, "output.txt")

	// The mock editor records its arguments.
	script := "#!/bin/sh\necho \"$@\" > " + outputFile + "\n"
	require.NoError(t, os.WriteFile(mockEditor, []byte(script), 0o755))

	t.Setenv("EDITOR", mockEditor)

	targetFile := filepath.Join(tmpDir, ".env")
	require.NoError(t, os.WriteFile(targetFile, []byte("A=1\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, Open(t.Context(), targetFile, Streams{In: strings.NewReader(""), Out: &out, Err: &out}))

	got, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(got), targetFile)
}

func TestOpen_NoEditor(t *testing.T) {
	t.Setenv("EDITOR", "non-existent-binary-12345")
	t.Setenv("VISUAL", "")

	err := Open(t.Context(), "test.env", Streams{})
	assert.Error(t, err)
}
