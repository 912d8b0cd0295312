package cowfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// Extension is the file extension of cowfiles.
const Extension = ".cow"

// Sources reported for cows that do not come from a catalog directory.
const (
	SourceBuiltin = "built-in"
	SourceFile    = "file"
)

var (
	// ErrNotFound is returned when a cow exists in none of the sources.
	ErrNotFound = errors.New("cow not found")
	// ErrInvalidUTF8 is returned when a cowfile is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("cowfile is not valid UTF-8")
)

// Cowfile is a loaded cow template.
type Cowfile struct {
	Name        string
	Description string
	Source      string // "built-in", "file", or the directory it was found in
	Raw         string
}

// Render renders the cowfile with the given glyphs.
func (c *Cowfile) Render(thoughts, eyes, tongue string) string {
	return Render(c.Raw, thoughts, eyes, tongue)
}

// Info describes a cow for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
	Overrides   string `json:"overrides,omitempty"` // source of the cow this one shadows
}

// Catalog resolves cow names against a list of directories and the built-in set.
type Catalog struct {
	dirs    []string
	builtin fs.FS
}

// NewCatalog returns a catalog searching dirs, in order, before the built-in cows.
func NewCatalog(dirs ...string) *Catalog {
	return NewCatalogFS(builtinFS(), dirs...)
}

// NewCatalogFS is like NewCatalog but takes the built-in cows from builtin.
func NewCatalogFS(builtin fs.FS, dirs ...string) *Catalog {
	return &Catalog{dirs: dirs, builtin: builtin}
}

// Dirs returns the directories searched before the built-in cows.
func (c *Catalog) Dirs() []string {
	return slices.Clone(c.dirs)
}

// SearchPath builds a catalog search path from a COWPATH-style list followed
// by extra directories. Empty entries are dropped.
func SearchPath(cowpath string, extra ...string) []string {
	var dirs []string
	for _, dir := range append(filepath.SplitList(cowpath), extra...) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// IsPath reports whether name refers to a cowfile on disk rather than a catalog entry.
func IsPath(name string) bool {
	return strings.Contains(name, Extension)
}

// Load finds and loads a cow by name or path.
func (c *Catalog) Load(name string) (*Cowfile, error) {
	if IsPath(name) {
		return loadFile(name)
	}

	for _, dir := range c.dirs {
		cow, err := loadFromDir(dir, name)
		if err == nil {
			return cow, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if cow, err := c.loadBuiltin(name); err == nil || !errors.Is(err, fs.ErrNotExist) {
		return cow, err
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// List returns every cow in the catalog. Cows in earlier directories shadow
// later ones and the built-ins. Directories that cannot be read are skipped
// and reported in the returned error alongside the cows that were found.
func (c *Catalog) List() ([]Info, error) {
	seen := make(map[string]int) // name -> index in cows
	var cows []Info
	var errs []error

	add := func(infos []Info) {
		for _, info := range infos {
			if idx, exists := seen[info.Name]; exists {
				if cows[idx].Overrides == "" {
					cows[idx].Overrides = info.Source
				}
				continue
			}
			seen[info.Name] = len(cows)
			cows = append(cows, info)
		}
	}

	for _, dir := range c.dirs {
		infos, err := listFS(os.DirFS(dir), dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("listing cows in %s: %w", dir, err))
			}
			continue
		}
		add(infos)
	}

	builtins, err := listFS(c.builtin, SourceBuiltin)
	if err != nil {
		errs = append(errs, fmt.Errorf("listing built-in cows: %w", err))
	}
	add(builtins)

	return cows, errors.Join(errs...)
}

// Names returns the sorted names of every cow in the catalog.
func (c *Catalog) Names() ([]string, error) {
	cows, err := c.List()
	names := make([]string, 0, len(cows))
	for _, cow := range cows {
		names = append(names, cow.Name)
	}
	slices.Sort(names)
	return names, err
}

// loadFile reads a cowfile from an explicit path.
func loadFile(path string) (*Cowfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading cowfile %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), Extension)
	return parse(name, SourceFile, path, data)
}

// loadFromDir reads <dir>/<name>.cow. A missing file yields an error
// matching fs.ErrNotExist.
func loadFromDir(dir, name string) (*Cowfile, error) {
	path := filepath.Join(dir, name+Extension)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cowfile %s: %w", path, err)
	}
	return parse(name, dir, path, data)
}

// loadBuiltin loads a built-in cow by name.
func (c *Catalog) loadBuiltin(name string) (*Cowfile, error) {
	path := name + Extension
	if !fs.ValidPath(path) {
		return nil, fs.ErrNotExist
	}
	data, err := fs.ReadFile(c.builtin, path)
	if err != nil {
		return nil, fmt.Errorf("reading built-in cow %s: %w", path, err)
	}
	return parse(name, SourceBuiltin, path, data)
}

// parse validates raw cowfile bytes.
func parse(name, source, path string, data []byte) (*Cowfile, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	raw := string(data)
	return &Cowfile{
		Name:        name,
		Description: describe(raw),
		Source:      source,
		Raw:         raw,
	}, nil
}

// listFS lists the cows at the root of fsys.
func listFS(fsys fs.FS, source string) ([]Info, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil || !utf8.Valid(data) {
			continue
		}

		infos = append(infos, Info{
			Name:        strings.TrimSuffix(entry.Name(), Extension),
			Description: describe(string(data)),
			Source:      source,
		})
	}
	return infos, nil
}
