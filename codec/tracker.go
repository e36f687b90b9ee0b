// Package codec implements the declarative encode/decode framework: the
// discriminant tracker for tagged unions (native vs wire discriminant
// duality) and the reflection-driven record walker behind most protocol
// packets' ToBytes/FromBytes (a few packets encode or decode by hand).
package codec

import "fmt"

// WireTagMode selects how a union variant's wire discriminant relates to
// its native one.
type WireTagMode int

const (
	// WireTagDefault: no wire_tag annotation. The wire discriminant equals
	// whatever native discriminant was just computed, and the wire counter
	// does not advance.
	WireTagDefault WireTagMode = iota
	// WireTagExplicit: wire_tag = N.
	WireTagExplicit
	// WireTagImplicit: wire_tag alone, takes the next implicit wire value.
	WireTagImplicit
	// WireTagSync: wire_tag = sync, takes the native value but still
	// advances the wire counter.
	WireTagSync
)

// VariantSchema describes one tagged-union variant's discriminant
// declaration, mirroring the native-discriminant / wire_tag duality from
// §4.1 of the protocol specification.
type VariantSchema struct {
	Name string

	// ExplicitNative, if non-nil, resets the native counter to this value
	// before emitting (C-enum-like explicit discriminant). Nil means
	// "implicit": continue from the last emitted native value + 1.
	ExplicitNative *int64

	WireMode WireTagMode
	// ExplicitWire is read only when WireMode == WireTagExplicit.
	ExplicitWire int64
}

// lastVariant is a single monotonic counter with C-enum reset semantics:
// next() continues from the previous value + 1 unless explicit() is called
// first, which resets it.
type lastVariant struct {
	index   int64
	started bool
}

func (l *lastVariant) explicit(v int64) int64 {
	l.index = v
	l.started = true
	return l.index
}

func (l *lastVariant) implicit() int64 {
	if !l.started {
		l.started = true
		return l.index
	}
	l.index++
	return l.index
}

// DiscriminantTracker assigns native and wire discriminants to a sequence
// of union variants, per §4.1's algorithm: two independent counters, the
// native one advancing on every variant and the wire one advancing only for
// variants with a wire_tag annotation (explicit, implicit or sync), with
// duplicate wire discriminants within one union rejected.
type DiscriminantTracker struct {
	native  lastVariant
	wire    lastVariant
	emitted map[int64]string
}

// NewDiscriminantTracker returns a tracker with both counters starting at 0.
func NewDiscriminantTracker() *DiscriminantTracker {
	return &DiscriminantTracker{emitted: make(map[int64]string)}
}

// Next computes the (native, wire) discriminant pair for the next variant
// and records the wire value as emitted. It returns an error if the
// variant's wire discriminant collides with one already emitted in this
// union.
func (t *DiscriminantTracker) Next(v VariantSchema) (native int64, wire int64, err error) {
	if v.ExplicitNative != nil {
		native = t.native.explicit(*v.ExplicitNative)
	} else {
		native = t.native.implicit()
	}

	switch v.WireMode {
	case WireTagDefault:
		wire = native
	case WireTagExplicit:
		wire = t.wire.explicit(v.ExplicitWire)
	case WireTagImplicit:
		wire = t.wire.implicit()
	case WireTagSync:
		wire = t.wire.explicit(native)
	default:
		return 0, 0, fmt.Errorf("codec: unknown wire tag mode %v for variant %q", v.WireMode, v.Name)
	}

	if prior, ok := t.emitted[wire]; ok {
		return 0, 0, fmt.Errorf("codec: duplicate wire discriminant %d for variant %q (already used by %q)", wire, v.Name, prior)
	}
	t.emitted[wire] = v.Name
	return native, wire, nil
}
