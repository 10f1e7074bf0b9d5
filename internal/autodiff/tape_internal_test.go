package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/rdiff/internal/autodiff/ops"
)

func TestCyclicGraphDetected(t *testing.T) {
	tape := NewFloat64(Config{Order: 1})
	x := tape.Var(2)
	y := x.Mul(x)
	z := y.Exp()

	// Point the product at the exponential recorded after it.
	tape.entries[y.idx].args[1] = z.idx

	err := z.Backward()
	var ce *CyclicGraphError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, int(y.idx), ce.Node)
	assert.Equal(t, int(z.idx), ce.Input)
	require.ErrorAs(t, tape.Err(), &ce)
}

func TestCyclicGraphDetectedInRecordedPass(t *testing.T) {
	tape := NewFloat64(Config{Order: 2})
	x := tape.Var(2)
	y := x.Sin()

	tape.entries[y.idx].args[0] = y.idx

	var ce *CyclicGraphError
	require.ErrorAs(t, y.Backward(), &ce)
	assert.Equal(t, ce.Node, ce.Input)
}

func TestEntriesReferenceEarlierEntries(t *testing.T) {
	for _, mode := range []Mode{Eager, Expression} {
		tape := NewFloat64(Config{Order: 3, Mode: mode})
		x := tape.Var(1.5)
		y := Tgamma(x.Mul(x).Add(x.Sin()))
		_, err := Derivatives(y, x, 3)
		require.NoError(t, err)

		for i, e := range tape.entries {
			for _, a := range e.args {
				assert.Less(t, a, int32(i), "%v entry %d", mode, i)
			}
			if e.kind == ops.Leaf {
				assert.Empty(t, e.args)
			}
		}
	}
}

func TestPartialsFixedAtConstruction(t *testing.T) {
	tape := NewFloat64(Config{Order: 1})
	x := tape.Var(3)
	y := Tgamma(x)
	before := append([]float64(nil), tape.entries[y.idx].partials...)

	require.NoError(t, y.Backward())
	require.NoError(t, y.Backward())
	assert.Equal(t, before, tape.entries[y.idx].partials)
	assert.Equal(t, []bool{true}, tape.entries[y.idx].diff)
	assert.Nil(t, tape.entries[y.idx].prefs)
}

func TestSecondOrderNodesRecordPartials(t *testing.T) {
	tape := NewFloat64(Config{Order: 2})
	x := tape.Var(3)
	y := Tgamma(x)

	e := tape.entries[y.idx]
	require.Len(t, e.prefs, 1)
	p := tape.entries[e.prefs[0]]
	assert.Equal(t, 1, p.order)
	assert.Equal(t, e.partials[0], p.value)
}
