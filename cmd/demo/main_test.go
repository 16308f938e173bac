package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/coordstate"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestRunPrintsDemoLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, demoValue, demoState, demoThreshold))
	assert.Equal(t, "false 24\n", buf.String())
}

func TestRunBoundaryViolation(t *testing.T) {
	tests := []struct {
		name     string
		state    coordstate.State
		want     error
		errStart string
	}{
		{
			name:     "underflow without match",
			state:    coordstate.State{X: 0, Y: 5},
			want:     coordstate.ErrUnderflow,
			errStart: "transition (0, 5) with threshold 456",
		},
		{
			name:     "overflow on match",
			state:    coordstate.State{X: 65535, Y: 456},
			want:     coordstate.ErrOverflow,
			errStart: "transition (65535, 456) with threshold 456",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(&buf, demoValue, tt.state, demoThreshold)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, coordstate.IsBoundaryViolation(err))
			assert.True(t, strings.HasPrefix(err.Error(), tt.errStart), "got %q", err.Error())
			assert.Empty(t, buf.String(), "no output on failed transition")
		})
	}
}

func TestRunWriteError(t *testing.T) {
	err := run(failingWriter{}, demoValue, demoState, demoThreshold)
	require.Error(t, err)
	assert.False(t, coordstate.IsBoundaryViolation(err))
	assert.Contains(t, err.Error(), "write result: stdout closed")
}
