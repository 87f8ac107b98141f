package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels/formats"
	"github.com/vovakirdan/tilefit/internal/registry"
)

//go:embed packs/*.yaml
var builtinFS embed.FS

// BuiltinID is the ID of the embedded pack.
const BuiltinID = "classic"

// Pack is an ordered list of named level templates.
// It implements registry.Pack.
type Pack struct {
	id       string
	title    string
	levels   []formats.Level
	FilePath string // empty for embedded packs
}

// NewPack creates a pack from grid templates. Levels are named by position.
func NewPack(id, title string, grids ...string) *Pack {
	p := &Pack{id: id, title: title}
	for i, g := range grids {
		p.levels = append(p.levels, formats.Level{Name: fmt.Sprintf("Level %d", i+1), Grid: g})
	}
	return p
}

func packFromFormat(fp formats.Pack, path string) *Pack {
	return &Pack{id: fp.ID, title: fp.Name, levels: fp.Levels, FilePath: path}
}

// ID returns the pack identifier.
func (p *Pack) ID() string { return p.id }

// Title returns the pack display name.
func (p *Pack) Title() string { return p.title }

// Len returns the number of levels.
func (p *Pack) Len() int { return len(p.levels) }

// Level returns the name and grid of level i.
func (p *Pack) Level(i int) (name, grid string) {
	l := p.levels[i]
	return l.Name, l.Grid
}

// Validate checks every level of the pack.
func (p *Pack) Validate() error {
	return ValidatePack(p)
}

// ValidatePack checks every level of any registry pack.
func ValidatePack(p registry.Pack) error {
	if p.Len() == 0 {
		return ValidationError{Code: CodeEmptyPack, Message: fmt.Sprintf("pack %q has no levels", p.ID())}
	}
	for i := 0; i < p.Len(); i++ {
		name, grid := p.Level(i)
		if err := ValidateString(grid); err != nil {
			return fmt.Errorf("level %d (%s): %w", i+1, name, err)
		}
	}
	return nil
}

var (
	builtinOnce sync.Once
	builtin     *Pack
)

// Builtin returns the embedded classic pack.
func Builtin() *Pack {
	builtinOnce.Do(func() {
		data, err := builtinFS.ReadFile("packs/classic.yaml")
		if err != nil {
			panic(fmt.Sprintf("levels: embedded pack missing: %v", err))
		}
		fp, err := formats.ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("levels: embedded pack invalid: %v", err))
		}
		builtin = packFromFormat(fp, "")
	})
	return builtin
}

// LoadPackFile loads a single pack file.
func LoadPackFile(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return packFromFormat(parsed, path), nil
}

// LoadPackDir recursively scans root and loads all pack files.
// Unparseable files are skipped. Returns packs sorted by ID.
// A missing root yields no packs and no error.
func LoadPackDir(root string) ([]*Pack, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var packs []*Pack

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		p, err := LoadPackFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		packs = append(packs, p)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID() < packs[j].ID()
	})

	return packs, nil
}

// RegisterDir loads every pack under root into the registry.
// Packs whose ID is already registered are skipped and reported in the
// returned slice.
func RegisterDir(root string) (skipped []string, err error) {
	packs, err := LoadPackDir(root)
	if err != nil {
		return nil, err
	}

	for _, p := range packs {
		if err := registry.Add(p.ID(), func() registry.Pack { return p }); err != nil {
			skipped = append(skipped, p.FilePath)
		}
	}
	return skipped, nil
}

// Resolve returns a pack by registry ID or, when ref names an existing
// pack file, loads that file.
func Resolve(ref string) (registry.Pack, error) {
	if isSupportedExtension(strings.ToLower(filepath.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			return LoadPackFile(ref)
		}
	}
	return registry.Create(ref)
}

func init() {
	registry.Register(BuiltinID, func() registry.Pack {
		return Builtin()
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Pack, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
