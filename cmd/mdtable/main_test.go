package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdtable/internal/document"
)

type commandResult struct {
	stdout string
	stderr string
	err    error
}

func runCommand(t *testing.T, env *environment, args ...string) commandResult {
	t.Helper()
	cmd := newRootCommand(env)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return commandResult{
		stdout: env.stdout.(*bytes.Buffer).String(),
		stderr: env.stderr.(*bytes.Buffer).String(),
		err:    err,
	}
}

func newTestEnvironment(t *testing.T, stdin string) *environment {
	t.Helper()
	env := newEnvironment(strings.NewReader(stdin), &bytes.Buffer{}, &bytes.Buffer{})
	env.getenv = func(string) string { return "" }
	return env
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.toml")
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestFormatStdin(t *testing.T) {
	env := newTestEnvironment(t, "|a|bb|\n|-|-|\n|1|22|\n")
	res := runCommand(t, env, "format", "--config", missingConfig(t))
	if res.err != nil {
		t.Fatalf("format: %v", res.err)
	}
	want := "| a   | bb  |\n|-----|-----|\n| 1   | 22  |\n"
	if res.stdout != want {
		t.Fatalf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
}

func TestFormatKeepsWidthsUnlessTrimmed(t *testing.T) {
	input := "|  a       |b|\n"

	env := newTestEnvironment(t, input)
	res := runCommand(t, env, "format", "--config", missingConfig(t))
	if res.err != nil || res.stdout != "| a        | b   |\n" {
		t.Fatalf("format = %q, %v", res.stdout, res.err)
	}

	env = newTestEnvironment(t, input)
	res = runCommand(t, env, "format", "--trim", "--config", missingConfig(t))
	if res.err != nil || res.stdout != "| a   | b   |\n" {
		t.Fatalf("format --trim = %q, %v", res.stdout, res.err)
	}
}

func TestFormatTrimFromConfig(t *testing.T) {
	configPath := writeTempFile(t, "config.toml", "trim = true\n")
	env := newTestEnvironment(t, "|  a       |b|\n")
	res := runCommand(t, env, "format", "--config", configPath)
	if res.err != nil || res.stdout != "| a   | b   |\n" {
		t.Fatalf("format = %q, %v", res.stdout, res.err)
	}
}

func TestReformatWritesTableUnderLine(t *testing.T) {
	path := writeTempFile(t, "doc.md", "# T\n\n|  a      |b|\n|---|---|\n\ntext |x|\n")
	env := newTestEnvironment(t, "")
	res := runCommand(t, env, "reformat", path, "--line", "4", "--write", "--config", missingConfig(t))
	if res.err != nil {
		t.Fatalf("reformat: %v", res.err)
	}
	if res.stdout != "" {
		t.Fatalf("expected no stdout with --write, got %q", res.stdout)
	}
	want := "# T\n\n| a   | b   |\n|-----|-----|\n\ntext |x|\n"
	if got := readFile(t, path); got != want {
		t.Fatalf("file =\n%s\nwant\n%s", got, want)
	}
	if !strings.Contains(res.stderr, "table updated") {
		t.Fatalf("expected an info log line, got %q", res.stderr)
	}
}

func TestConvertStdin(t *testing.T) {
	env := newTestEnvironment(t, "|H1|H2|\n|-|-:|\n|x|y|")
	res := runCommand(t, env, "convert", "--config", missingConfig(t))
	if res.err != nil {
		t.Fatalf("convert: %v", res.err)
	}
	want := "<table>\n<tr><th>H1</th><th align=\"right\">H2</th></tr>\n<tr><td>x</td><td align=\"right\">y</td></tr>\n</table>"
	if res.stdout != want {
		t.Fatalf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
}

func TestFormatDiff(t *testing.T) {
	env := newTestEnvironment(t, "|a|\n")
	res := runCommand(t, env, "format", "--diff", "--config", missingConfig(t))
	if res.err != nil {
		t.Fatalf("format --diff: %v", res.err)
	}
	if want := "-|a|\n+| a   |\n"; res.stdout != want {
		t.Fatalf("diff = %q, want %q", res.stdout, want)
	}

	env = newTestEnvironment(t, "| a   |\n")
	res = runCommand(t, env, "format", "--diff", "--config", missingConfig(t))
	if res.err != nil || res.stdout != "" {
		t.Fatalf("expected an empty diff for a formatted table, got %q, %v", res.stdout, res.err)
	}
}

func TestVerboseLogsPlannedAction(t *testing.T) {
	env := newTestEnvironment(t, "|a|\n")
	res := runCommand(t, env, "format", "-v", "--config", missingConfig(t))
	if res.err != nil {
		t.Fatalf("format -v: %v", res.err)
	}
	if !strings.Contains(res.stderr, "table action planned") {
		t.Fatalf("expected a debug line on stderr, got %q", res.stderr)
	}
}

func TestDebugFromEnvironment(t *testing.T) {
	env := newTestEnvironment(t, "|a|\n")
	env.getenv = func(key string) string {
		if key == "MDTABLE_DEBUG" {
			return "1"
		}
		return ""
	}
	res := runCommand(t, env, "format", "--config", missingConfig(t))
	if res.err != nil || !strings.Contains(res.stderr, "table action planned") {
		t.Fatalf("expected MDTABLE_DEBUG=1 to enable debug logs, got %q, %v", res.stderr, res.err)
	}
}

func TestTableCommandErrors(t *testing.T) {
	path := writeTempFile(t, "doc.md", "|a|\n\ntext\n")
	tests := []struct {
		name   string
		stdin  string
		args   []string
		target error
	}{
		{"write needs a file", "|a|", []string{"format", "--write"}, nil},
		{"write and diff", "|a|", []string{"format", path, "--write", "--diff"}, nil},
		{"line out of range", "", []string{"format", path, "--line", "9"}, document.ErrRange},
		{"negative line", "", []string{"format", path, "--line", "-1"}, nil},
		{"blank line", "", []string{"format", path, "--line", "2"}, document.ErrNoTable},
		{"blank stdin", "\n\n", []string{"convert"}, document.ErrNoTable},
		{"binary stdin", "\x00\x01\x02", []string{"format"}, document.ErrBinary},
		{"missing file", "", []string{"format", filepath.Join(t.TempDir(), "absent.md")}, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnvironment(t, tt.stdin)
			args := append(tt.args, "--config", missingConfig(t))
			res := runCommand(t, env, args...)
			if res.err == nil {
				t.Fatalf("expected an error")
			}
			if tt.target != nil && !errors.Is(res.err, tt.target) {
				t.Fatalf("error = %v, want %v", res.err, tt.target)
			}
		})
	}
	if got := readFile(t, path); got != "|a|\n\ntext\n" {
		t.Fatalf("failed commands modified the file: %q", got)
	}
}

// scriptedScreen is a simulation screen that queues keys once initialized.
type scriptedScreen struct {
	tcell.SimulationScreen
	keys []*tcell.EventKey
}

func (s *scriptedScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SetSize(60, 20)
	for _, k := range s.keys {
		s.InjectKey(k.Key(), k.Rune(), k.Modifiers())
	}
	return nil
}

func screenWithKeys(keys ...*tcell.EventKey) func() (tcell.Screen, error) {
	return func() (tcell.Screen, error) {
		return &scriptedScreen{SimulationScreen: tcell.NewSimulationScreen(""), keys: keys}, nil
	}
}

func TestPreviewAcceptWritesFile(t *testing.T) {
	path := writeTempFile(t, "doc.md", "intro\n\n|a|b|\n|---|--:|\n")
	env := newTestEnvironment(t, "")
	env.newScreen = screenWithKeys(tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone))

	res := runCommand(t, env, "preview", path, "--line", "3", "--config", missingConfig(t))
	if res.err != nil {
		t.Fatalf("preview: %v", res.err)
	}
	want := "intro\n\n| a   | b   |\n|-----|----:|\n"
	if got := readFile(t, path); got != want {
		t.Fatalf("file =\n%s\nwant\n%s", got, want)
	}
}

func TestPreviewCancelLeavesFile(t *testing.T) {
	original := "|a|b|\n"
	path := writeTempFile(t, "doc.md", original)
	env := newTestEnvironment(t, "")
	env.newScreen = screenWithKeys(
		tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	)

	res := runCommand(t, env, "preview", path, "--action", "convert", "--config", missingConfig(t))
	if res.err != nil {
		t.Fatalf("preview: %v", res.err)
	}
	if got := readFile(t, path); got != original {
		t.Fatalf("cancelled preview modified the file: %q", got)
	}
}

func TestPreviewRejectsUnknownAction(t *testing.T) {
	path := writeTempFile(t, "doc.md", "|a|\n")
	env := newTestEnvironment(t, "")
	env.newScreen = func() (tcell.Screen, error) {
		t.Fatalf("screen must not open for an invalid action")
		return nil, nil
	}
	res := runCommand(t, env, "preview", path, "--action", "sort", "--config", missingConfig(t))
	if res.err == nil {
		t.Fatalf("expected an error for an unknown action")
	}
}
