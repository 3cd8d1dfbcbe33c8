package header

import "testing"

func TestRoundTrip(t *testing.T) {
	cases := []Header{
		{Seq: 0, Ack: 0, Flags: FlagSYN, Window: 0},
		{Seq: 1, Ack: 2, Flags: FlagSYN | FlagACK, Window: 65535},
		{Seq: 4294967295, Ack: 123456, Flags: FlagFIN, Window: 1400},
	}

	for _, want := range cases {
		wire := want.Marshal()
		if len(wire) != Size {
			t.Fatalf("marshal length = %d, want %d", len(wire), Size)
		}
		got, err := Unmarshal(wire)
		if err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got != want {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestUnmarshalTooShort(t *testing.T) {
	_, err := Unmarshal(make([]byte, Size-1))
	if err == nil {
		t.Fatalf("expected error for short datagram")
	}
}

func TestUnknownFlagsPreserved(t *testing.T) {
	h := Header{Flags: Flag(0x8000) | FlagACK}
	got, err := Unmarshal(h.Marshal())
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Flags.Has(FlagACK) {
		t.Fatalf("expected ACK flag preserved")
	}
	if got.Flags&0x8000 == 0 {
		t.Fatalf("expected unknown high bit preserved")
	}
}

func TestPayload(t *testing.T) {
	h := Header{Seq: 1}
	wire := append(h.Marshal(), []byte("hello")...)
	if got := string(Payload(wire)); got != "hello" {
		t.Fatalf("Payload = %q, want %q", got, "hello")
	}
	if Payload(h.Marshal()) != nil {
		t.Fatalf("expected nil payload for header-only datagram")
	}
}
