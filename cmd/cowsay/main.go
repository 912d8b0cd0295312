// Package main provides the entry point for the cowsay CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/cowsay/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// thinkName is the program name that draws thought balloons by default.
const thinkName = "cowthink"

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag from the command hierarchy.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return output.ColorAuto
	}
	return flag.Value.String()
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

// programName returns the name the binary was invoked as, without extension.
func programName(arg0 string) string {
	base := filepath.Base(arg0)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	cmd.SetArgs(messageArgs(cmd, os.Args[1:]))
	err := fang.Execute(context.Background(), cmd, fangOptions()...)
	return output.GetExitCode(err)
}

// fangOptions configures fang for the root command. Man pages and
// completions are left out so their command names stay usable as messages.
func fangOptions() []fang.Option {
	return []fang.Option{
		fang.WithVersion(buildVersion()),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithErrorHandler(reportUnprinted),
	}
}

// reportUnprinted prints errors that never reached a command's printer, such
// as flag parsing failures. Exit errors have already been printed.
func reportUnprinted(w io.Writer, _ fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	output.NewPrinter(w, false, output.IsTTY(w)).Error(err)
}

// messageArgs keeps a message that starts with a subcommand name from being
// dispatched: when more than one positional word is given, the words are
// moved behind "--" so the root command renders them. "help <command>" is
// left alone.
func messageArgs(cmd *cobra.Command, args []string) []string {
	var flags, words []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			words = append(words, args[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
			continue
		}
		words = append(words, arg)
	}

	if len(words) < 2 || !isSubcommand(cmd, words[0]) {
		return args
	}
	if words[0] == "help" && len(words) == 2 && isSubcommand(cmd, words[1]) {
		return args
	}
	routed := append(flags, "--")
	return append(routed, words...)
}

// isSubcommand reports whether name dispatches to a subcommand of cmd.
func isSubcommand(cmd *cobra.Command, name string) bool {
	if name == "help" {
		return true
	}
	for _, sub := range cmd.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return true
		}
	}
	return false
}

// takesValue reports whether the flag in arg consumes the next argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}
		return flag != nil && flag.NoOptDefVal == ""
	}
	if len(arg) != 2 {
		return false
	}
	flag := cmd.Flags().ShorthandLookup(arg[1:])
	return flag != nil && flag.NoOptDefVal == ""
}

// newRootCmd creates the root command, named after the running binary.
func newRootCmd() *cobra.Command {
	return newCommand(programName(os.Args[0]))
}

// newCommand creates the root command for the given program name. Invoked
// as cowthink, the command draws thought balloons unless --think=false.
func newCommand(name string) *cobra.Command {
	if name != thinkName {
		name = "cowsay"
	}

	flags := &sayFlags{}
	cmd := &cobra.Command{
		Use:   name + " [flags] [message...]",
		Short: "Draw a cow saying something",
		Long: `Draw an ASCII cow (or any other cowfile figure) under a balloon holding
your message.

The message comes from the arguments, or from standard input when it is
piped. Cows are looked up by name in, in order:
  1. directories listed in the settings file (cowpath)
  2. directories listed in $COWPATH
  3. the cows directory of the config dir (~/.config/cowsay/cows)
  4. the built-in cows
A name containing .cow is read as a file path instead.

Examples:
  cowsay Moo
  fortune | cowsay -c tux
  cowsay -e dead -l U "I'm fine"
  cowthink -r "What am I?"
  cowsay --list`,
		Version:       buildVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSay(cmd, args, flags)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")

	addSayFlags(cmd, flags, name == thinkName)

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd())

	return cmd
}
