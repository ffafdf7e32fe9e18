package strokes

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
)

const packSchemaURL = "pack.schema.json"

//go:embed pack.schema.json
var packSchemaJSON []byte

var packSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(packSchemaURL, bytes.NewReader(packSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add pack schema: %w", err)
	}
	return compiler.Compile(packSchemaURL)
})

// Pack is a file of extra letter geometry.
type Pack struct {
	Source  string             `json:"-" yaml:"-"`
	Letters []LetterStrokeData `json:"letters" yaml:"letters"`
}

// Validate checks the semantic rules the schema cannot express.
func (p Pack) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Letters, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (l LetterStrokeData) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.ID, validation.Required, validation.By(knownLetter)),
		validation.Field(&l.Strokes, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (s Stroke) Validate() error {
	return validation.Validate([]Checkpoint(s))
}

// Validate implements validation.Validatable.
func (c Checkpoint) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.X, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.Y, validation.Min(0.0), validation.Max(1.0)),
	)
}

func knownLetter(value interface{}) error {
	id, _ := value.(string)
	if alphabet.LangOf(id) == "" {
		return errors.New("must belong to a supported alphabet")
	}
	return nil
}

// LoadPack reads a YAML or JSON stroke pack, validates it against the pack
// schema and the semantic rules, and normalizes its letter ids.
func LoadPack(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("failed to read pack %s: %w", path, err)
	}

	var doc any
	var pack Pack
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Pack{}, fmt.Errorf("failed to parse pack %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &pack); err != nil {
			return Pack{}, fmt.Errorf("failed to decode pack %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Pack{}, fmt.Errorf("failed to parse pack %s: %w", path, err)
		}
		if doc, err = jsonValue(doc); err != nil {
			return Pack{}, fmt.Errorf("failed to convert pack %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &pack); err != nil {
			return Pack{}, fmt.Errorf("failed to decode pack %s: %w", path, err)
		}
	default:
		return Pack{}, fmt.Errorf("unsupported pack format %q", filepath.Ext(path))
	}

	schema, err := packSchema()
	if err != nil {
		return Pack{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return Pack{}, fmt.Errorf("pack %s does not match schema: %w", path, err)
	}
	if err := pack.Validate(); err != nil {
		return Pack{}, fmt.Errorf("invalid pack %s: %w", path, err)
	}

	pack.Source = path
	for i := range pack.Letters {
		pack.Letters[i].ID = alphabet.Normalize(pack.Letters[i].ID)
	}
	return pack, nil
}

// LoadPacks loads every pack file in dir. A missing directory yields no
// packs. Files that fail to load are reported in the joined error while the
// remaining packs are still returned, ordered by file name.
func LoadPacks(ctx context.Context, dir string) ([]Pack, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read pack directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	packs := make([]Pack, len(paths))
	errs := make([]error, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			packs[i], errs[i] = LoadPack(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	loaded := make([]Pack, 0, len(packs))
	for i, p := range packs {
		if errs[i] == nil {
			loaded = append(loaded, p)
		}
	}
	return loaded, errors.Join(errs...)
}

// Letters flattens packs into a letter set for NewRegistry.
func Letters(packs []Pack) []LetterStrokeData {
	var out []LetterStrokeData
	for _, p := range packs {
		out = append(out, p.Letters...)
	}
	return out
}

func jsonValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
