package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func listOf(content string) *List {
	return New(strings.NewReader(content))
}

func mustNext(t *testing.T, l *List) (string, bool) {
	t.Helper()
	line, ok, err := l.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	return line, ok
}

func TestNextReturnsLinesInOrder(t *testing.T) {
	l := listOf("alpha\nbeta\ngamma\n")

	for _, want := range []string{"alpha", "beta", "gamma"} {
		line, ok := mustNext(t, l)
		if !ok {
			t.Fatalf("Next() exhausted early, want %q", want)
		}
		if line != want {
			t.Errorf("Next() = %q, want %q", line, want)
		}
	}

	if _, ok := mustNext(t, l); ok {
		t.Error("Next() after last line should report exhaustion")
	}
}

func TestNextStripsCRLF(t *testing.T) {
	l := listOf("alpha\r\nbeta\r\n")

	line, _ := mustNext(t, l)
	if line != "alpha" {
		t.Errorf("Next() = %q, want %q", line, "alpha")
	}
}

func TestNextFinalLineWithoutNewline(t *testing.T) {
	l := listOf("alpha\nbeta")

	mustNext(t, l)
	line, ok := mustNext(t, l)
	if !ok || line != "beta" {
		t.Errorf("Next() = %q, %v; want %q, true", line, ok, "beta")
	}
	if _, ok := mustNext(t, l); ok {
		t.Error("Next() should be exhausted after unterminated final line")
	}
}

func TestSkipThenNext(t *testing.T) {
	tests := []struct {
		skip      uint64
		wantFirst string
		wantRest  int
	}{
		{0, "one", 4},
		{2, "three", 2},
		{4, "", 0},
		{99, "", 0}, // skipping past the end is not an error
	}

	for _, tt := range tests {
		l := listOf("one\ntwo\nthree\nfour\n")
		if err := l.Skip(tt.skip); err != nil {
			t.Fatalf("Skip(%d): %v", tt.skip, err)
		}

		line, ok := mustNext(t, l)
		if tt.wantFirst == "" {
			if ok {
				t.Errorf("Skip(%d): Next() = %q, want exhaustion", tt.skip, line)
			}
			continue
		}
		if !ok || line != tt.wantFirst {
			t.Errorf("Skip(%d): Next() = %q, %v; want %q", tt.skip, line, ok, tt.wantFirst)
		}

		rest := 0
		for {
			_, ok := mustNext(t, l)
			if !ok {
				break
			}
			rest++
		}
		if rest != tt.wantRest {
			t.Errorf("Skip(%d): %d lines after first, want %d", tt.skip, rest, tt.wantRest)
		}
	}
}

func TestRewindRestartsFromLineOne(t *testing.T) {
	l := listOf("alpha\nbeta\n")

	for {
		if _, ok := mustNext(t, l); !ok {
			break
		}
	}

	if err := l.Rewind(); err != nil {
		t.Fatalf("Rewind: %v", err)
	}

	line, ok := mustNext(t, l)
	if !ok || line != "alpha" {
		t.Errorf("Next() after Rewind = %q, %v; want %q, true", line, ok, "alpha")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	l, f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	line, ok := mustNext(t, l)
	if !ok || line != "hello" {
		t.Errorf("Next() = %q, %v; want %q, true", line, ok, "hello")
	}
}

func TestOpenMissingFileFails(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("Open on a missing file should fail")
	}
}
