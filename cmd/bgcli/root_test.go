package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"crosswarped.com/boggle"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	// Keep a config in the real user config dir from leaking in.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeDict(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(words), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRoot_SolveArgs(t *testing.T) {
	dict := writeDict(t, "take,teak,kate,tate,teal,quiz")

	out, err := execute(t, "", "--dict", dict, "--no-board", "ta", "ek")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "3 word(s) found in ") {
		t.Errorf("first line = %q, want the word count", lines[0])
	}
	if got, want := strings.Join(lines[1:], ","), "kate,take,teak"; got != want {
		t.Errorf("words = %s, want %s", got, want)
	}
}

func TestRoot_SolvePrompt(t *testing.T) {
	dict := writeDict(t, "quiz\nquit\n")

	if _, err := execute(t, "q i\nzx\n", "--dict", dict, "--sep", "\n"); err == nil {
		t.Fatal("a row with a space in it should be rejected")
	}

	out, err := execute(t, "qi\nzx\n", "--dict", dict, "--sep", "\n")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "R2: ") {
		t.Errorf("output %q should prompt for the second row", out)
	}
	if !strings.Contains(out, "Qu I") {
		t.Errorf("output %q should echo the board", out)
	}
	if !strings.Contains(out, "1 word(s) found") || !strings.HasSuffix(out, "\nquiz\n") {
		t.Errorf("output %q should list quiz", out)
	}
}

func TestRoot_InvalidBoard(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr error
	}{
		{"mismatch", []string{"ab", "c"}, boggle.ErrRowSizeMismatch},
		{"too small", []string{"a"}, boggle.ErrTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.rows...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if strings.Contains(out, "found") {
				t.Errorf("no result should be printed, got %q", out)
			}
		})
	}
}

func TestRoot_FileCache(t *testing.T) {
	dict := writeDict(t, "take,teak,kate")
	cacheDir := t.TempDir()

	first, err := execute(t, "", "--dict", dict, "--cache-dir", cacheDir, "--no-board", "ta", "ek")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(first, "(cached)") {
		t.Errorf("first run should not be cached: %q", first)
	}

	second, err := execute(t, "", "--dict", dict, "--cache-dir", cacheDir, "--no-board", "ta", "ek")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(second, "(cached)") {
		t.Errorf("second run should be cached: %q", second)
	}
	if !strings.HasSuffix(second, "kate\ntake\nteak\n") {
		t.Errorf("cached output %q lost the words", second)
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	dict := writeDict(t, "tea|eat|take")
	cfg := writeConfig(t, "dictionary = \""+dict+"\"\nseparator = \"|\"\nmin_word_length = 3\n")

	out, err := execute(t, "", "--config", cfg, "--no-board", "ta", "ek")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out, "take\neat\ntea\n") {
		t.Errorf("output %q should use the configured dictionary and minimum", out)
	}
}

func TestWordsCmd(t *testing.T) {
	dict := writeDict(t, "take,teak,tate,teal,tea")

	out, err := execute(t, "", "words", "--dict", dict, "--list", "ta", "ek")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"alphabet: 4 a e k t", "dictionary: 5", "candidates: 3", "take\ntate\nteak\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestStartProfile(t *testing.T) {
	dir := t.TempDir()
	opts := &options{
		profileFile:       filepath.Join(dir, "cpu.pprof"),
		memoryProfileFile: filepath.Join(dir, "mem.pprof"),
	}
	var logs bytes.Buffer
	stop, err := startProfile(opts, newLogger(&logs, log.DebugLevel))
	if err != nil {
		t.Fatal(err)
	}
	stop()

	for _, path := range []string{opts.profileFile, opts.memoryProfileFile} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("profile %s was not written: %v", path, err)
		}
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output %q", logs.String())
	}
}

func TestStartProfile_MemoryProfileWriteError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full is not available")
	}
	opts := &options{
		profileFile:       filepath.Join(t.TempDir(), "cpu.pprof"),
		memoryProfileFile: "/dev/full",
	}
	var logs bytes.Buffer
	stop, err := startProfile(opts, newLogger(&logs, log.DebugLevel))
	if err != nil {
		t.Fatal(err)
	}
	stop()

	if !strings.Contains(logs.String(), "Writing memory profile") {
		t.Errorf("log output %q should report the failed write", logs.String())
	}
}
