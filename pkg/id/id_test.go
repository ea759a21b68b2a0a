package id

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestGenTraceID(t *testing.T) {
	assert.NotEqual(t, GenTraceID(), GenTraceID())
}

func TestModify(t *testing.T) {
	trace := GenTraceID()

	assert.Equal(t, Modify(trace, "deposit"), Modify(trace, "deposit"))
	assert.NotEqual(t, Modify(trace, "deposit"), Modify(trace, "withdraw"))
}

func TestTraceIDFrom(t *testing.T) {
	a := TraceIDFrom("rates-snapshot-btc-1700000000")
	b := TraceIDFrom("rates-snapshot-btc-1700000000")
	assert.Equal(t, a, b)
	assert.Equal(t, 36, len(a))
}
