package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenDocs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	c := testCmd(t)
	c.SetOut(&strings.Builder{})

	if err := genDocs(c, dir); err != nil {
		t.Fatalf("genDocs failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "kiplot_check.md"))
	if err != nil {
		t.Fatalf("check page missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "---\ntitle: \"kiplot check\"") {
		t.Errorf("page lacks front matter:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "kiplot_outputs_show.md")); err != nil {
		t.Errorf("nested command page missing: %v", err)
	}
}

func TestLinkHandler(t *testing.T) {
	if got := linkHandler("kiplot_outputs_list.md"); got != "/docs/reference/kiplot_outputs_list/" {
		t.Errorf("linkHandler() = %q", got)
	}
}
