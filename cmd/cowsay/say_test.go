package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/cowsay/internal/output"
)

const defaultMoo = " _____\n" +
	"< Moo >\n" +
	" -----\n" +
	"        \\   ^__^\n" +
	"         \\  (oo)\\_______\n" +
	"            (__)\\       )\\/\\\n" +
	"               ||----w |\n" +
	"                ||     ||"

// isolate points the config dir and COWPATH at empty temp directories and
// returns the config dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("COWSAY_CONFIG_HOME", dir)
	t.Setenv("COWPATH", "")
	return dir
}

// execute runs the command named name with stdin and args.
func execute(t *testing.T, name, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newCommand(name)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(messageArgs(cmd, args))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestSay_Default(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "cowsay", "", "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "default\n" + defaultMoo + "\n"
	if stdout != want {
		t.Errorf("output =\n%s\nwant\n%s", stdout, want)
	}
}

func TestSay_Message(t *testing.T) {
	tests := []struct {
		name    string
		program string
		stdin   string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "arguments joined",
			program: "cowsay",
			args:    []string{"hello", "there"},
			want:    []string{"< hello there >"},
		},
		{
			name:    "piped stdin",
			program: "cowsay",
			stdin:   "piped text\n\n",
			want:    []string{"< piped text >"},
		},
		{
			name:    "empty stdin uses greeting",
			program: "cowsay",
			want:    []string{"< Hello, world! >"},
		},
		{
			name:    "think flag",
			program: "cowsay",
			args:    []string{"-t", "Moo"},
			want:    []string{"( Moo )", "        o   ^__^"},
		},
		{
			name:    "cowthink",
			program: "cowthink",
			args:    []string{"Moo"},
			want:    []string{"( Moo )"},
		},
		{
			name:    "cowthink with think disabled",
			program: "cowthink",
			args:    []string{"--think=false", "Moo"},
			want:    []string{"< Moo >"},
		},
		{
			name:    "eyes style and tongue",
			program: "cowsay",
			args:    []string{"-e", "dead", "-l", "U", "Moo"},
			want:    []string{"(xx)", "U ||----w |"},
		},
		{
			name:    "literal eyes",
			program: "cowsay",
			args:    []string{"--eyes", "^^", "Moo"},
			want:    []string{"(^^)"},
		},
		{
			name:    "narrow width wraps",
			program: "cowsay",
			args:    []string{"-w", "5", "aaaa bbbb cccc"},
			want:    []string{"/ aaaa  \\", "| bbbb  |", "\\ cccc  /"},
		},
		{
			name:    "nowrap keeps one line",
			program: "cowsay",
			args:    []string{"-k", "-w", "5", "aaaa bbbb cccc"},
			want:    []string{"< aaaa bbbb cccc >"},
			notWant: []string{"/ aaaa"},
		},
		{
			name:    "message starting with help",
			program: "cowsay",
			args:    []string{"help", "me"},
			want:    []string{"< help me >"},
			notWant: []string{"Usage:"},
		},
		{
			name:    "message starting with serve",
			program: "cowsay",
			args:    []string{"-e", "dead", "serve", "now"},
			want:    []string{"< serve now >", "(xx)"},
		},
		{
			name:    "named cow",
			program: "cowsay",
			args:    []string{"-c", "tux", "Moo"},
			want:    []string{"tux\n"},
			notWant: []string{"^__^"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			stdout, _, err := execute(t, tt.program, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(stdout, want) {
					t.Errorf("output should contain %q:\n%s", want, stdout)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(stdout, notWant) {
					t.Errorf("output should not contain %q:\n%s", notWant, stdout)
				}
			}
		})
	}
}

func TestSay_JSON(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "cowsay", "", "--json", "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Cow    string `json:"cow"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}
	if result.Cow != "default" {
		t.Errorf("cow = %q, want %q", result.Cow, "default")
	}
	if result.Output != defaultMoo {
		t.Errorf("output =\n%s\nwant\n%s", result.Output, defaultMoo)
	}
}

func TestSay_CowfilePath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.cow")
	writeFile(t, path, "## Custom\n  $thoughts [$eyes]\n")

	stdout, _, err := execute(t, "cowsay", "", "-c", path, "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "custom\n _____\n< Moo >\n -----\n  \\ [oo]\n"
	if stdout != want {
		t.Errorf("output = %q, want %q", stdout, want)
	}
}

func TestSay_Cowpath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "mine.cow"), "## Mine\n $thoughts mine\n")
	t.Setenv("COWPATH", dir)

	stdout, _, err := execute(t, "cowsay", "", "-c", "mine", "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasSuffix(stdout, " \\ mine\n") {
		t.Errorf("output should end with the custom figure: %q", stdout)
	}
}

func TestSay_Settings(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		args     []string
		wantCow  string
		contains string
	}{
		{
			name:     "yaml defaults",
			file:     "config.yaml",
			content:  "cow: small\neyes: dead\n",
			args:     []string{"Moo"},
			wantCow:  "small",
			contains: "xx",
		},
		{
			name:     "toml defaults",
			file:     "config.toml",
			content:  "cow = \"tux\"\nthink = true\n",
			args:     []string{"Moo"},
			wantCow:  "tux",
			contains: "( Moo )",
		},
		{
			name:     "flags win",
			file:     "config.yaml",
			content:  "cow: tux\nthink: true\n",
			args:     []string{"-c", "default", "--think=false", "Moo"},
			wantCow:  "default",
			contains: "< Moo >",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, filepath.Join(dir, tt.file), tt.content)

			stdout, _, err := execute(t, "cowsay", "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if first, _, _ := strings.Cut(stdout, "\n"); first != tt.wantCow {
				t.Errorf("cow = %q, want %q", first, tt.wantCow)
			}
			if !strings.Contains(stdout, tt.contains) {
				t.Errorf("output should contain %q:\n%s", tt.contains, stdout)
			}
		})
	}
}

func TestSay_SettingsCowpath(t *testing.T) {
	dir := isolate(t)
	cows := t.TempDir()
	writeFile(t, filepath.Join(cows, "default.cow"), "## Mine\n $thoughts mine\n")
	writeFile(t, filepath.Join(dir, "config.yaml"), "cowpath:\n  - "+cows+"\n")

	stdout, _, err := execute(t, "cowsay", "", "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasSuffix(stdout, " \\ mine\n") {
		t.Errorf("settings cowpath should shadow the built-in cow: %q", stdout)
	}
}

func TestSay_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown cow",
			args:     []string{"-c", "nope", "Moo"},
			wantCode: output.ExitUserError,
			wantErr:  "cow not found",
		},
		{
			name:     "missing cowfile path",
			args:     []string{"-c", "/nonexistent/dir/x.cow", "Moo"},
			wantCode: output.ExitUserError,
			wantErr:  "/nonexistent/dir/x.cow",
		},
		{
			name:     "negative width",
			args:     []string{"-w", "-3", "Moo"},
			wantCode: output.ExitUserError,
			wantErr:  "--width",
		},
		{
			name:     "invalid color",
			args:     []string{"--color", "sometimes", "Moo"},
			wantCode: output.ExitUserError,
			wantErr:  "--color",
		},
		{
			name:     "invalid settings",
			settings: "width: -3\n",
			args:     []string{"Moo"},
			wantCode: output.ExitUserError,
			wantErr:  "config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.settings != "" {
				writeFile(t, filepath.Join(dir, "config.yaml"), tt.settings)
			}

			stdout, stderr, err := execute(t, "cowsay", "", tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if code := output.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if stdout != "" {
				t.Errorf("nothing should be rendered on failure, got %q", stdout)
			}
			if !strings.Contains(stderr, "Error") || !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr should report %q: %q", tt.wantErr, stderr)
			}
		})
	}
}

func TestSay_InvalidUTF8IsSystemError(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.cow")
	writeFile(t, path, "\xff\xfe")

	_, _, err := execute(t, "cowsay", "", "-c", path, "Moo")
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d (err = %v)", code, output.ExitSystemError, err)
	}
}

func TestSay_JSONError(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "cowsay", "", "--json", "-c", "nope", "Moo")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", stdout)
	}
	if code, _ := result["code"].(float64); int(code) != output.ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], output.ExitUserError)
	}
}

func TestSay_ExclusiveModes(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{
		{"--all", "--random"},
		{"--list", "--all"},
		{"--random", "-c", "tux"},
	} {
		if _, _, err := execute(t, "cowsay", "", args...); err == nil {
			t.Errorf("%v: expected error, got nil", args)
		}
	}
}

func TestSay_Random(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "cowsay", "", "--random", "--json", "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Cow    string `json:"cow"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}
	if result.Cow == "" || !strings.HasPrefix(result.Output, " _____\n< Moo >\n") {
		t.Errorf("unexpected random result: %+v", result)
	}
}

func TestSay_All(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "cowsay", "", "--all", "--json", "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Cows []struct {
			Cow    string `json:"cow"`
			Output string `json:"output"`
		} `json:"cows"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}
	if len(result.Cows) < 2 {
		t.Fatalf("expected every built-in cow, got %d", len(result.Cows))
	}
	for i, c := range result.Cows {
		if i > 0 && result.Cows[i-1].Cow >= c.Cow {
			t.Errorf("cows out of order: %q before %q", result.Cows[i-1].Cow, c.Cow)
		}
		if !strings.Contains(c.Output, "< Moo >") {
			t.Errorf("%s: output missing balloon: %q", c.Cow, c.Output)
		}
	}
}

func TestSay_AllHuman(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "cowsay", "", "-a", "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, name := range []string{"default\n", "tux\n", "moose\n"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("output should contain the %q heading", name)
		}
	}
}

func TestSay_RandomWarnsOnUnreadableDirectory(t *testing.T) {
	isolate(t)
	notDir := filepath.Join(t.TempDir(), "file")
	writeFile(t, notDir, "")
	t.Setenv("COWPATH", notDir)

	stdout, stderr, err := execute(t, "cowsay", "", "--random", "Moo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "< Moo >") {
		t.Errorf("a built-in cow should still be drawn:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Warning") || !strings.Contains(stderr, notDir) {
		t.Errorf("stderr should warn about %s: %q", notDir, stderr)
	}
}

func TestList(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tux.cow"), "## My penguin\n $thoughts\n")
	t.Setenv("COWPATH", dir)

	stdout, _, err := execute(t, "cowsay", "", "--list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"NAME", "SOURCE", "DESCRIPTION", "The classic cow", "My penguin", "(overrides built-in)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("list output should contain %q:\n%s", want, stdout)
		}
	}
}

func TestList_JSON(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "cowsay", "", "-L", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Cows []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Source      string `json:"source"`
		} `json:"cows"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}

	found := false
	for _, c := range result.Cows {
		if c.Source != "built-in" {
			t.Errorf("%s: source = %q, want built-in", c.Name, c.Source)
		}
		if c.Name == "default" {
			found = true
		}
	}
	if !found {
		t.Error("list should include the default cow")
	}
}

func TestList_WarnsOnUnreadableDirectory(t *testing.T) {
	isolate(t)
	notDir := filepath.Join(t.TempDir(), "file")
	writeFile(t, notDir, "")
	t.Setenv("COWPATH", notDir)

	stdout, stderr, err := execute(t, "cowsay", "", "--list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "default") {
		t.Errorf("built-in cows should still be listed:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Warning") {
		t.Errorf("stderr should carry a warning: %q", stderr)
	}
}

func TestCowName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "tux", want: "tux"},
		{in: "cows/custom.cow", want: "custom"},
		{in: "/abs/path/x.cow", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cowName(tt.in); got != tt.want {
				t.Errorf("cowName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
