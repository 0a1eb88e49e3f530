package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	out := Report([]Step{
		{Line: 1, Command: "cards 2", Order: []string{"card0", "card1"}, Total: 2},
		{Line: 2, Command: "press 1", Order: []string{"card0", "card1"}, Total: 2, Dragging: "card1"},
		{Line: 3, Command: "expect order 1 0", Order: []string{"card0", "card1"}, Total: 2, Err: errors.New("order is [0 1]")},
	})
	assert.Contains(t, out, "cards 2")
	assert.Contains(t, out, "card0 card1")
	assert.Contains(t, out, "0/2")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "line 3: order is [0 1]")
}

func TestReportAfterRun(t *testing.T) {
	r, err := run(t, "cards 2\npress 0\nrelease")
	assert.NoError(t, err)
	out := Report(r.Steps)
	assert.Contains(t, out, "1/2")
	assert.NotContains(t, out, "FAIL")
}
