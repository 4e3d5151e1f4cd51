package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/feature"
	"github.com/wdm0006/featureforge/pkg/transform"
)

// Definition is the on-disk declaration of a feature set. The format (JSON,
// YAML or TOML) is picked by file extension.
type Definition struct {
	Set      string              `json:"set" yaml:"set" toml:"set"`
	Features []FeatureDefinition `json:"features" yaml:"features" toml:"features"`
}

type FeatureDefinition struct {
	Name        string         `json:"name" yaml:"name" toml:"name"`
	Description string         `json:"description" yaml:"description" toml:"description"`
	Type        string         `json:"type" yaml:"type" toml:"type"`
	Transformer string         `json:"transformer" yaml:"transformer" toml:"transformer"`
	Strict      bool           `json:"strict" yaml:"strict" toml:"strict"`
	Args        map[string]any `json:"args" yaml:"args" toml:"args"`
}

// LoadDefinition reads and decodes a definition file.
func LoadDefinition(path string) (*Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def Definition
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &def)
	case ".toml":
		err = toml.Unmarshal(b, &def)
	default:
		err = json.Unmarshal(b, &def)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &def, nil
}

// Build resolves every declared transformer against the registry and
// assembles the runnable feature set.
func (d *Definition) Build() (*feature.Set, error) {
	features := make([]*feature.Feature, 0, len(d.Features))
	for _, fd := range d.Features {
		fn, ok := transform.Lookup(fd.Transformer)
		if !ok {
			return nil, fmt.Errorf("feature %s: unknown transformer %q (registered: %s)",
				fd.Name, fd.Transformer, strings.Join(transform.Registered(), ", "))
		}
		kind := dataset.KindFloat
		if fd.Type != "" {
			var err error
			if kind, err = dataset.ParseKind(fd.Type); err != nil {
				return nil, fmt.Errorf("feature %s: %w", fd.Name, err)
			}
		}
		args, err := buildArgs(fd.Args)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", fd.Name, err)
		}
		comp, err := transform.NewCustom(fn, args...)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", fd.Name, err)
		}
		if fd.Strict {
			comp.RequireOutput()
		}
		f, err := feature.New(fd.Name, fd.Description, kind, comp)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return feature.NewSet(d.Set, features...)
}

// buildArgs converts the decoded argument map into typed transform args.
// A string value starting with "$" references an input column by name; map
// order is not defined by the decoders, so arguments are sorted by name.
func buildArgs(raw map[string]any) (transform.Args, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make(transform.Args, 0, len(raw))
	for _, name := range names {
		v, err := buildValue(raw[name])
		if err != nil {
			return nil, fmt.Errorf("arg %s: %w", name, err)
		}
		args = append(args, transform.Arg{Name: name, Value: v})
	}
	return args, nil
}

func buildValue(v any) (transform.Value, error) {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, "$") {
			return transform.Column(strings.TrimPrefix(t, "$")), nil
		}
		return transform.String(t), nil
	case bool:
		return transform.Bool(t), nil
	case int:
		return transform.Int(int64(t)), nil
	case int64:
		return transform.Int(t), nil
	case uint64:
		return transform.Int(int64(t)), nil
	case float64:
		return transform.Float(t), nil
	}
	return transform.Value{}, fmt.Errorf("unsupported value %v (%T)", v, v)
}
