package queue

import (
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	msg := Message{
		UploadID:   "upload-1",
		ClinicID:   "clinic-1",
		RequestID:  "req-1",
		EnqueuedAt: "2026-08-31T12:00:00Z",
		Version:    1,
	}

	payload, err := EncodeMessage(msg)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	decoded, err := DecodeMessage(payload)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if decoded != msg {
		t.Fatalf("round trip mismatch: %+v != %+v", decoded, msg)
	}
}

func TestDecodeMessageRejectsGarbage(t *testing.T) {
	if _, err := DecodeMessage([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
