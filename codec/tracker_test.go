package codec_test

import (
	"testing"

	"github.com/go-mclib/mcserver/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func explicit(v int64) *int64 { return &v }

func TestDiscriminantTrackerImplicitContinuation(t *testing.T) {
	tr := codec.NewDiscriminantTracker()

	native, wire, err := tr.Next(codec.VariantSchema{Name: "A"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, native)
	assert.EqualValues(t, 0, wire)

	native, wire, err = tr.Next(codec.VariantSchema{Name: "B"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, native)
	assert.EqualValues(t, 1, wire)
}

func TestDiscriminantTrackerExplicitNativeResetsCounter(t *testing.T) {
	tr := codec.NewDiscriminantTracker()

	_, _, err := tr.Next(codec.VariantSchema{Name: "A"})
	require.NoError(t, err)

	native, _, err := tr.Next(codec.VariantSchema{Name: "B", ExplicitNative: explicit(10)})
	require.NoError(t, err)
	assert.EqualValues(t, 10, native)

	native, _, err = tr.Next(codec.VariantSchema{Name: "C"})
	require.NoError(t, err)
	assert.EqualValues(t, 11, native, "implicit continuation resumes from the explicit reset")
}

func TestDiscriminantTrackerWireModes(t *testing.T) {
	tr := codec.NewDiscriminantTracker()

	// Default: wire mirrors native, wire counter doesn't move independently.
	_, wire, err := tr.Next(codec.VariantSchema{Name: "A"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, wire)

	// Explicit: wire jumps to an arbitrary value.
	_, wire, err = tr.Next(codec.VariantSchema{Name: "B", WireMode: codec.WireTagExplicit, ExplicitWire: 50})
	require.NoError(t, err)
	assert.EqualValues(t, 50, wire)

	// Implicit: continues the wire counter from its own last value, not native's.
	_, wire, err = tr.Next(codec.VariantSchema{Name: "C", WireMode: codec.WireTagImplicit})
	require.NoError(t, err)
	assert.EqualValues(t, 51, wire)

	// Sync: takes native's current value but still advances the wire counter.
	native, wire, err := tr.Next(codec.VariantSchema{Name: "D", WireMode: codec.WireTagSync})
	require.NoError(t, err)
	assert.EqualValues(t, native, wire)
}

func TestDiscriminantTrackerDuplicateWireTagIsRejected(t *testing.T) {
	tr := codec.NewDiscriminantTracker()

	_, _, err := tr.Next(codec.VariantSchema{Name: "A", WireMode: codec.WireTagExplicit, ExplicitWire: 5})
	require.NoError(t, err)

	_, _, err = tr.Next(codec.VariantSchema{Name: "B", WireMode: codec.WireTagExplicit, ExplicitWire: 5})
	assert.Error(t, err)
}
