package encode

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// requireText fails the test with a readable character diff when the
// encoded output does not match.
func requireText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("output mismatch (want vs got):\n%s", dmp.DiffPrettyText(diffs))
}
