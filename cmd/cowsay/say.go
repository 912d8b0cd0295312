package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/gorewood/cowsay/internal/config"
	"github.com/gorewood/cowsay/internal/cow"
	"github.com/gorewood/cowsay/internal/cowfile"
	"github.com/gorewood/cowsay/internal/output"
)

// sayFlags holds the rendering flags of the root command.
type sayFlags struct {
	cow    string
	think  bool
	width  int
	nowrap bool
	eyes   string
	tongue string
	random bool
	all    bool
	list   bool
}

func addSayFlags(cmd *cobra.Command, flags *sayFlags, think bool) {
	cmd.Flags().StringVarP(&flags.cow, "cow", "c", cow.DefaultCow, "Cow name or path to a .cow file")
	cmd.Flags().BoolVarP(&flags.think, "think", "t", think, "Draw a thought balloon")
	cmd.Flags().IntVarP(&flags.width, "width", "w", cow.DefaultWidth, "Balloon width before wrapping (0 disables wrapping)")
	cmd.Flags().BoolVarP(&flags.nowrap, "nowrap", "k", false, "Keep the message on one line")
	cmd.Flags().StringVarP(&flags.eyes, "eyes", "e", cow.DefaultEyes,
		"Eye style ("+strings.Join(cow.EyeStyles(), ", ")+") or literal eyes")
	cmd.Flags().StringVarP(&flags.tongue, "tongue", "l", cow.DefaultTongue, "Tongue characters")
	cmd.Flags().BoolVarP(&flags.random, "random", "r", false, "Pick a random cow")
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Draw every cow")
	cmd.Flags().BoolVarP(&flags.list, "list", "L", false, "List available cows")

	cmd.MarkFlagsMutuallyExclusive("random", "all", "list")
	cmd.MarkFlagsMutuallyExclusive("cow", "random")
	cmd.MarkFlagsMutuallyExclusive("cow", "all")
}

// runSay executes the root command.
func runSay(cmd *cobra.Command, args []string, flags *sayFlags) error {
	mode := colorMode(cmd)
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd),
		output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))).WithStderr(cmd.ErrOrStderr())

	if !output.ValidColorMode(mode) {
		return fail(printer, output.NewUserError(fmt.Sprintf("invalid --color %q: want auto, always, or never", mode)))
	}

	settings, _, err := config.Load(config.Dir())
	if err != nil {
		return fail(printer, toExitError(err))
	}
	renderer := newRenderer(settings)

	if flags.list {
		return runList(printer, renderer)
	}

	message, err := readMessage(cmd, args)
	if err != nil {
		return fail(printer, err)
	}
	req, err := buildRequest(cmd, flags, settings, message)
	if err != nil {
		return fail(printer, err)
	}

	switch {
	case flags.all:
		return runAll(cmd, printer, renderer, req)
	case flags.random:
		name, err := renderer.Random(cow.RandomPicker)
		if name == "" {
			return fail(printer, toExitError(err))
		}
		if err != nil {
			printer.Warn("%v", err)
		}
		req.Cow = name
	}

	rendered, err := renderer.Format(req)
	if err != nil {
		return fail(printer, toExitError(err))
	}
	return printer.Figure(cowName(req.Cow), rendered)
}

// newRenderer builds a renderer searching the settings cowpath, then
// $COWPATH, then the user's cows directory.
func newRenderer(settings config.Settings) *cow.Renderer {
	dirs := cowfile.SearchPath(os.Getenv("COWPATH"), config.CowsDir())
	dirs = append(cowfile.SearchPath("", settings.CowPath...), dirs...)
	return cow.NewRenderer(cowfile.NewCatalog(dirs...))
}

// baseRequest returns the request defaults from the settings file.
func baseRequest(settings config.Settings) cow.Request {
	req := cow.NewRequest("")
	req.Cow = settings.Cow
	req.Width = settings.Width
	req.Eyes = settings.Eyes
	req.Tongue = settings.Tongue
	req.Think = settings.Think
	req.Wrap = !settings.NoWrap
	return req
}

// buildRequest layers explicitly set flags over the settings file.
func buildRequest(cmd *cobra.Command, flags *sayFlags, settings config.Settings, message string) (cow.Request, error) {
	changed := cmd.Flags().Changed

	req := baseRequest(settings)
	req.Message = message
	req.Think = req.Think || flags.think // flags.think holds the cowthink default

	if changed("cow") {
		req.Cow = flags.cow
	}
	if changed("think") {
		req.Think = flags.think
	}
	if changed("width") {
		if flags.width < 0 {
			return cow.Request{}, output.NewUserError(fmt.Sprintf("--width must not be negative, got %d", flags.width))
		}
		req.Width = flags.width
	}
	if changed("nowrap") {
		req.Wrap = !flags.nowrap
	}
	if changed("eyes") {
		req.Eyes = flags.eyes
	}
	if changed("tongue") {
		req.Tongue = flags.tongue
	}
	return req, nil
}

// readMessage joins the arguments, or reads piped stdin when there are none.
// An empty message becomes the default greeting.
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	stdin := cmd.InOrStdin()
	if output.IsTTY(stdin) {
		return cow.DefaultMessage, nil
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to read stdin", err)
	}

	message := strings.TrimRightFunc(string(content), unicode.IsSpace)
	if message == "" {
		return cow.DefaultMessage, nil
	}
	return message, nil
}

// runAll renders req with every cow in the catalog.
func runAll(cmd *cobra.Command, printer *output.Printer, renderer *cow.Renderer, req cow.Request) error {
	names, err := renderer.Catalog().Names()
	if err != nil {
		if len(names) == 0 {
			return fail(printer, toExitError(err))
		}
		printer.Warn("%v", err)
	}

	results, err := renderer.FormatAll(cmd.Context(), req, names)
	if err != nil {
		return fail(printer, toExitError(err))
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"cows": results})
	}
	for i, result := range results {
		if i > 0 {
			printer.Println()
		}
		if err := printer.Figure(result.Cow, result.Output); err != nil {
			return err
		}
	}
	return nil
}

// runList prints the cows in the catalog.
func runList(printer *output.Printer, renderer *cow.Renderer) error {
	infos, err := renderer.List()
	if err != nil {
		if len(infos) == 0 {
			return fail(printer, toExitError(err))
		}
		printer.Warn("%v", err)
	}

	if printer.IsJSON() {
		if infos == nil {
			infos = []cowfile.Info{}
		}
		return printer.WriteJSON(map[string]any{"cows": infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := info.Source
		if info.Overrides != "" {
			source += " (overrides " + info.Overrides + ")"
		}
		rows = append(rows, []string{info.Name, source, info.Description})
	}
	printer.Table([]string{"NAME", "SOURCE", "DESCRIPTION"}, rows)
	return nil
}

// cowName returns the display name of a cow given by name or path.
func cowName(name string) string {
	if !cowfile.IsPath(name) {
		return name
	}
	return strings.TrimSuffix(filepath.Base(name), cowfile.Extension)
}

// toExitError maps a rendering error to an exit code.
func toExitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, cowfile.ErrNotFound) || errors.Is(err, config.ErrInvalidSettings) {
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}

// fail prints err once and returns it for the exit code.
func fail(printer *output.Printer, err error) error {
	printer.Error(err)
	return err
}
