package codec

import (
	"bytes"
	"strings"
	"testing"

	"google.golang.org/protobuf/types/known/wrapperspb"
)

type note struct {
	To   string `json:"to" cbor:"to" msgpack:"to"`
	Body string `json:"body" cbor:"body" msgpack:"body"`
	N    int    `json:"n" cbor:"n" msgpack:"n"`
}

func roundTrip[V comparable](t *testing.T, name string, c Codec[V], v V) {
	t.Helper()
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("%s Encode: %v", name, err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("%s Decode: %v", name, err)
	}
	if got != v {
		t.Fatalf("%s: got %+v want %+v", name, got, v)
	}
}

func TestStructCodecs(t *testing.T) {
	v := note{To: "bob", Body: "meet at 6", N: 3}
	roundTrip[note](t, "json", JSON[note]{}, v)
	roundTrip[note](t, "cbor", MustCBOR[note](false), v)
	roundTrip[note](t, "cbor-det", MustCBOR[note](true), v)
	roundTrip[note](t, "msgpack", Msgpack[note]{}, v)
}

func TestCBORDeterministicStable(t *testing.T) {
	c := MustCBOR[map[string]int](true)
	m := map[string]int{"z": 1, "a": 2, "m": 3}
	first, err := c.Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := c.Encode(m)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding changed: %x vs %x", first, again)
		}
	}
}

func TestStringAndBytes(t *testing.T) {
	roundTrip[string](t, "string", String{}, "héllo, 世界")

	b, err := Bytes{}.Encode([]byte{0, 255, 7})
	if err != nil {
		t.Fatal(err)
	}
	got, err := Bytes{}.Decode(b)
	if err != nil || !bytes.Equal(got, []byte{0, 255, 7}) {
		t.Fatalf("bytes: got %v err %v", got, err)
	}
}

func TestProtobuf(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	b, err := c.Encode(wrapperspb.String("hi"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if got.GetValue() != "hi" {
		t.Fatalf("got %q want %q", got.GetValue(), "hi")
	}
}

func TestLimit(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}

	if _, err := c.Decode([]byte("12345")); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected size error, got %v", err)
	}
	if got, err := c.Decode([]byte("1234")); err != nil || got != "1234" {
		t.Fatalf("boundary decode: got %q err %v", got, err)
	}

	off := Limit[string]{Inner: String{}}
	if _, err := off.Decode([]byte(strings.Repeat("x", 1<<12))); err != nil {
		t.Fatalf("MaxDecode=0 must disable the limit: %v", err)
	}
}
