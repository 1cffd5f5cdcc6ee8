package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeb(t *testing.T) {
	for _, name := range []string{"index.html", "main.js", "style.css"} {
		data, err := fs.ReadFile(Web(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestWeb_ScriptBinding(t *testing.T) {
	data, err := fs.ReadFile(Web(), "main.js")
	require.NoError(t, err)
	js := string(data)

	// The WASM module is configured like the server's converter.
	assert.Contains(t, js, `fetch("/api/config")`)
	assert.Contains(t, js, "window.colorconvInit(await loadConfig())")

	// Stale responses are dropped and the default state never clears typed input.
	assert.Contains(t, js, "if (ticket !== latestTicket)")
	assert.Contains(t, js, "latestTicket === 0 && fieldsEmpty()")
}
