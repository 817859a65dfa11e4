package encode

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func TestWrapDataEmpty(t *testing.T) {
	if got := wrapData(nil); got != "\n" {
		t.Errorf("empty input: got %q, want just the leading newline", got)
	}
}

func TestWrapDataLineWidth(t *testing.T) {
	for _, n := range []int{1, 3, 50, 51, 52, 100, 1000} {
		d := bytes.Repeat([]byte{0xa5}, n)
		wrapped := wrapData(d)
		if wrapped[0] != '\n' {
			t.Fatalf("n=%d: missing leading newline", n)
		}
		if !strings.HasSuffix(wrapped, "\n") {
			t.Fatalf("n=%d: missing trailing newline", n)
		}
		for _, ln := range strings.Split(strings.Trim(wrapped, "\n"), "\n") {
			if len(ln) > dataLineLen {
				t.Fatalf("n=%d: line of %d columns: %q", n, len(ln), ln)
			}
		}
	}
}

func TestWrapDataRoundTrip(t *testing.T) {
	for _, d := range [][]byte{
		nil,
		{0},
		[]byte("hello"),
		bytes.Repeat([]byte("0123456789"), 100),
	} {
		wrapped := wrapData(d)
		joined := strings.ReplaceAll(wrapped, "\n", "")
		back, err := base64.StdEncoding.DecodeString(joined)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !bytes.Equal(back, d) {
			t.Fatalf("round trip: got %d bytes, want %d", len(back), len(d))
		}
	}
}
