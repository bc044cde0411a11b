package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat/internal/config"
)

func TestLoad_TrimsFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  You are a test assistant.  \n\n"), 0644))

	assert.Equal(t, "You are a test assistant.", Load(path))
}

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	assert.Equal(t, config.DefaultSystemPrompt, Load(path))
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	assert.Equal(t, config.DefaultSystemPrompt, Load(""))
}

func TestLoad_BlankFileUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\t\n"), 0644))

	assert.Equal(t, config.DefaultSystemPrompt, Load(path))
}
