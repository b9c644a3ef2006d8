package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Sovenok-Hacker/harec/internal/diag"
	"github.com/Sovenok-Hacker/harec/internal/source"
)

func TestNewfFormatsMessage(t *testing.T) {
	pos := source.Position{Path: "demo.ha", Line: 3, Col: 7}
	err := diag.Newf(pos, "mismatched operand types %s and %s", "int", "str")
	assert.Equal(t, "Error demo.ha:3:7: mismatched operand types int and str", err.Error())
}

// Fatal terminates the process via os.Exit, which is not exercised here
// (subprocess-based os.Exit testing is out of scope, matching the rest
// of the pack's own tests around CLI exit paths).
func TestTraceIsANoOpWhenDisabled(t *testing.T) {
	sink := diag.NewSink(zap.NewNop(), false)
	assert.NotPanics(t, func() { sink.Trace("scan", zap.Int("subunits", 1)) })
}

func TestTraceOnNilSinkIsANoOp(t *testing.T) {
	var sink *diag.Sink
	assert.NotPanics(t, func() { sink.Trace("scan") })
}
