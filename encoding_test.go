package essence

import (
	"math"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestMsgpackRoundTrip(t *testing.T) {
	type payload struct {
		Position Point3d
		Velocity Vector3f
		Cell     Tuple2i
		Tint     Color4b
		Bounds   BoundingBox2d
	}

	in := payload{
		Position: P3(1.5, -2.25, 1e-300),
		Velocity: V3[float32](0.1, 0, -3),
		Cell:     T2[int32](-7, math.MaxInt32),
		Tint:     RGBA[uint8](1, 2, 3, 255),
		Bounds:   NewBox2(P2(0.0, 0.0), P2(3.0, 4.0)),
	}

	data, err := msgpack.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var out payload
	if err := msgpack.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestMsgpackCompactKinds(t *testing.T) {
	d, err := msgpack.Marshal(V4[float64](1, 2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	f, err := msgpack.Marshal(V4[float32](1, 2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if len(f) >= len(d) {
		t.Errorf("float32 encoding (%d bytes) should be smaller than float64 (%d bytes)", len(f), len(d))
	}
}

func TestMsgpackDimensionMismatch(t *testing.T) {
	data, err := msgpack.Marshal(V3(1.0, 2.0, 3.0))
	if err != nil {
		t.Fatal(err)
	}
	var v Vector2d
	if err := msgpack.Unmarshal(data, &v); err == nil {
		t.Error("decoding 3 components into Vector2d succeeded")
	}
}

func TestHash(t *testing.T) {
	a := V3(1.0, 2.0, 3.0)
	b := V3(1.0, 2.0, 3.0)
	if a.Hash() != b.Hash() {
		t.Error("equal values hash differently")
	}
	if a.Hash() == P3(1.0, 2.0, 3.0).Hash() {
		t.Error("vector and point with equal components should hash differently")
	}
	if a.Hash() == V3[float32](1, 2, 3).Hash() {
		t.Error("different kinds should hash differently")
	}
	if V2(0.0, 1.0).Hash() != V2(math.Copysign(0, -1), 1.0).Hash() {
		t.Error("-0 and +0 should hash alike")
	}
	if V2(1.0, 2.0).Hash() == V2(2.0, 1.0).Hash() {
		t.Error("component order ignored by hash")
	}

	box := NewBox2(P2(0.0, 0.0), P2(1.0, 1.0))
	if box.Hash() != NewBox2(P2(1.0, 1.0), P2(0.0, 0.0)).Hash() {
		t.Error("equal boxes hash differently")
	}
}

func TestHashUsableAsMapKey(t *testing.T) {
	seen := map[uint64]Point2i{}
	for x := int32(0); x < 16; x++ {
		for y := int32(0); y < 16; y++ {
			p := P2(x, y)
			if prev, ok := seen[p.Hash()]; ok {
				t.Fatalf("hash collision between %v and %v", prev, p)
			}
			seen[p.Hash()] = p
		}
	}
}
