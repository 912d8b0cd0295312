// Package cow renders complete cowsay output: a balloon holding the message
// above a figure loaded from a cowfile catalog.
package cow

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gorewood/cowsay/internal/bubble"
	"github.com/gorewood/cowsay/internal/cowfile"
)

// Defaults for a Request.
const (
	DefaultMessage = "Hello, world!"
	DefaultCow     = "default"
	DefaultWidth   = 40
	DefaultEyes    = "default"
	DefaultTongue  = " "
)

// Request holds the inputs of a single rendering.
type Request struct {
	Message string
	Cow     string // cow name or path to a .cow file
	Width   int
	Think   bool
	Wrap    bool
	Eyes    string // eye style name or literal glyphs
	Tongue  string
}

// NewRequest returns a request for message with every other field at its default.
func NewRequest(message string) Request {
	return Request{
		Message: message,
		Cow:     DefaultCow,
		Width:   DefaultWidth,
		Wrap:    true,
		Eyes:    DefaultEyes,
		Tongue:  DefaultTongue,
	}
}

// Result is one rendered figure.
type Result struct {
	Cow    string `json:"cow"`
	Output string `json:"output"`
}

// Picker returns an index in [0, n).
type Picker func(n int) int

// RandomPicker picks an index uniformly at random.
func RandomPicker(n int) int {
	return rand.IntN(n) //nolint:gosec // cow selection is not security sensitive
}

// Thoughts returns the glyph linking the figure to its balloon.
func Thoughts(think bool) string {
	if think {
		return "o"
	}
	return `\`
}

// Renderer renders requests against a cowfile catalog.
type Renderer struct {
	catalog *cowfile.Catalog
}

// NewRenderer creates a Renderer backed by catalog.
func NewRenderer(catalog *cowfile.Catalog) *Renderer {
	return &Renderer{catalog: catalog}
}

// Catalog returns the catalog the renderer loads cows from.
func (r *Renderer) Catalog() *cowfile.Catalog {
	return r.catalog
}

// List describes every cow the renderer can draw.
func (r *Renderer) List() ([]cowfile.Info, error) {
	return r.catalog.List()
}

// Format renders req as the balloon, a newline, and the figure.
func (r *Renderer) Format(req Request) (string, error) {
	eyes := Eyes(req.Eyes)

	cow, err := r.catalog.Load(req.Cow)
	if err != nil {
		return "", fmt.Errorf("loading cow: %w", err)
	}

	balloon := bubble.Build(req.Message, req.Width, req.Think, req.Wrap)
	figure := cow.Render(Thoughts(req.Think), eyes, req.Tongue)
	return balloon + "\n" + figure, nil
}

// FormatAll renders req once for each cow in names, in parallel. Results keep
// the order of names. The first failure cancels the remaining work and is
// returned without partial results.
func (r *Renderer) FormatAll(ctx context.Context, req Request, names []string) ([]Result, error) {
	results := make([]Result, len(names))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for i, name := range names {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			one := req
			one.Cow = name
			out, err := r.Format(one)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", name, err)
			}
			results[i] = Result{Cow: name, Output: out}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Random picks a cow name from the catalog using pick. Like List, it returns
// the picked name together with the error for any directory that could not
// be read; the name is empty only when no cow is available.
func (r *Renderer) Random(pick Picker) (string, error) {
	names, err := r.catalog.Names()
	if len(names) == 0 {
		return "", errors.Join(fmt.Errorf("%w: the catalog is empty", cowfile.ErrNotFound), err)
	}
	return names[pick(len(names))], err
}
