package encode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plistkit/go-plist/ir"
)

func TestSave(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("alice")},
	})
	path := filepath.Join(t.TempDir(), "out.plist")
	if err := Save(node, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Dump(node, true)
	if err != nil {
		t.Fatal(err)
	}
	requireText(t, want, string(d))
}

func TestSaveTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.plist")
	if err := os.WriteFile(path, make([]byte, 1<<16), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Save(ir.FromBool(true), path); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Dump(ir.FromBool(true), true)
	requireText(t, want, string(d))
}

func TestSaveBadPath(t *testing.T) {
	err := Save(ir.FromBool(true), filepath.Join(t.TempDir(), "no", "such", "dir", "out.plist"))
	if err == nil {
		t.Fatal("expected filesystem error")
	}
}
