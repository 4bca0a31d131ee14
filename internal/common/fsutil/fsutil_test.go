package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	// raw path unaffected
	if got, err := ExpandHome("/tmp"); err != nil || got != "/tmp" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	p, err := ExpandHome("~")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p != home {
		t.Fatalf("expected %q, got %q", home, p)
	}
	exp, err := ExpandHome("~/.config/vramest.yaml")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if want := filepath.Join(home, ".config", "vramest.yaml"); exp != want {
		t.Fatalf("expected %q, got %q", want, exp)
	}
	if got, _ := ExpandHome("~other/x"); got != "~other/x" {
		t.Fatalf("~user form rewritten: %q", got)
	}
}

func TestFirstRegularFile(t *testing.T) {
	d := t.TempDir()
	sub := filepath.Join(d, "dir.yaml")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f := filepath.Join(d, "config.toml")
	if err := os.WriteFile(f, []byte("log_level=\"debug\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	missing := filepath.Join(d, "config.yaml")

	if got := FirstRegularFile("", missing, sub, f); got != f {
		t.Fatalf("got %q, want %q", got, f)
	}
	if got := FirstRegularFile(missing, sub); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
	if got := FirstRegularFile(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
