package cmd

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/colorconv/internal/converter"
	"github.com/MeKo-Tech/colorconv/internal/worker"
)

func TestReadTasks(t *testing.T) {
	in := "#fff\n\n  rgb(0,0,0)  \n   \nnope\n"

	tasks, err := readTasks(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []worker.Task{
		{Line: 1, Input: "#fff"},
		{Line: 3, Input: "rgb(0,0,0)"},
		{Line: 5, Input: "nope"},
	}, tasks)
}

func TestReadTasks_Empty(t *testing.T) {
	tasks, err := readTasks(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCollectResults_OrdersByLine(t *testing.T) {
	logger = newLogger(io.Discard, false, "text")

	results := []worker.Result{
		{Task: worker.Task{Line: 3, Input: "#000"}, Conversion: converter.Convert("#000")},
		{Task: worker.Task{Line: 1, Input: "#fff"}, Conversion: converter.Convert("#fff")},
		{Task: worker.Task{Line: 2, Input: "bad"}, Conversion: converter.Convert("bad")},
	}

	conversions, invalid, err := collectResults(results)
	require.NoError(t, err)
	assert.Equal(t, 1, invalid)
	require.Len(t, conversions, 3)
	assert.Equal(t, "#fff", conversions[0].Input)
	assert.Equal(t, "bad", conversions[1].Input)
	assert.Equal(t, "#000", conversions[2].Input)
}

func TestCollectResults_Cancelled(t *testing.T) {
	logger = newLogger(io.Discard, false, "text")

	results := []worker.Result{
		{Task: worker.Task{Line: 1, Input: "#fff"}, Conversion: converter.Convert("#fff")},
		{Task: worker.Task{Line: 2, Input: "#000"}, Err: context.Canceled},
	}

	_, _, err := collectResults(results)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "line 2")
}
