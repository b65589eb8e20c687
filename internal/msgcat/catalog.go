package msgcat

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const (
	KeyWelcome      = "game.welcome"
	KeyFarewell     = "game.farewell"
	KeyRematch      = "game.rematch"
	KeyTurn         = "turn.announce"
	KeyPrompt       = "turn.prompt"
	KeyInvalidInput = "turn.invalid_input"
	KeyInvalidMove  = "turn.invalid_move"
	KeyWin          = "result.win"
	KeyDraw         = "result.draw"
)

var requiredKeys = []string{
	KeyWelcome,
	KeyFarewell,
	KeyRematch,
	KeyTurn,
	KeyPrompt,
	KeyInvalidInput,
	KeyInvalidMove,
	KeyWin,
	KeyDraw,
}

var ErrTemplateNotFound = errors.New("template not found")

//go:embed messages.en.yaml
var defaultFiles embed.FS

// Catalog holds the parsed message templates keyed by their flattened dot path.
type Catalog struct {
	templates map[string]*template.Template
}

// New - loads the embedded messages and checks that every message the game prints is present.
func New() (*Catalog, error) {
	raw, err := fs.ReadFile(defaultFiles, "messages.en.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded messages: %w", err)
	}

	return Parse(raw)
}

// Parse - builds a catalog from a YAML document of nested string values.
func Parse(raw []byte) (*Catalog, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	flat := make(map[string]string)
	if err := flatten(doc, "", flat); err != nil {
		return nil, err
	}

	catalog := &Catalog{templates: make(map[string]*template.Template, len(flat))}
	for key, text := range flat {
		tpl, err := template.New(key).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", key, err)
		}
		catalog.templates[key] = tpl
	}

	for _, key := range requiredKeys {
		if _, ok := catalog.templates[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
		}
	}

	return catalog, nil
}

// Render - executes the template stored under key with data.
func (that *Catalog) Render(key string, data any) (string, error) {
	tpl, ok := that.templates[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}

	var b strings.Builder
	if err := tpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", key, err)
	}

	return b.String(), nil
}

func flatten(src any, prefix string, out map[string]string) error {
	switch v := src.(type) {
	case map[string]any:
		for k, vv := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flatten(vv, key, out); err != nil {
				return err
			}
		}
		return nil
	case string:
		if prefix == "" {
			return errors.New("string value without key")
		}
		out[prefix] = v
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported value at %s: %T", prefix, v)
	}
}
