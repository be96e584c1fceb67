// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderKeepsText(t *testing.T) {
	out, err := Render("# Quarterly Report\n\nRevenue grew in the third quarter.\n", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Quarterly Report") {
		t.Errorf("rendered output lost the heading text: %q", out)
	}
	if !strings.Contains(out, "Revenue grew") {
		t.Errorf("rendered output lost the body text: %q", out)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("- first item\n- second item\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	out, err := File(path, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "first item") {
		t.Errorf("rendered output lost list content: %q", out)
	}
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.md"), 60)
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
}
