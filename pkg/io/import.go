package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/treemark/pkg/errors"
	"github.com/matzehuels/treemark/pkg/tree"
)

// Document is a decoded tree definition.
type Document struct {
	Title       string    // Page title, empty if unset
	Heading     string    // Page heading, empty if unset
	Description string    // Page description, empty if unset
	Root        tree.Node // Root of the tree, never nil
}

type definition struct {
	Title       string   `toml:"title" json:"title"`
	Heading     string   `toml:"heading" json:"heading"`
	Description string   `toml:"description" json:"description"`
	Root        *nodeDef `toml:"root" json:"root"`
}

type nodeDef struct {
	Name     string    `toml:"name" json:"name"`
	Type     string    `toml:"type" json:"type"`
	Label    *string   `toml:"label" json:"label"`
	Action   string    `toml:"action" json:"action"`
	Children []nodeDef `toml:"children" json:"children"`
}

// ReadTOML decodes a TOML definition from r. Keys not described in the
// package documentation are rejected. ReadTOML does not close r.
func ReadTOML(r io.Reader) (*Document, error) {
	var def definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return def.build()
}

// ReadJSON decodes a JSON definition from r. Unknown fields are rejected.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var def definition
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return def.build()
}

// ImportFile reads the definition at path, choosing the decoder from the
// file extension (.toml or .json, case-insensitive).
func ImportFile(path string) (*Document, error) {
	if err := errors.ValidateTreeFile(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	var doc *Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		doc, err = ReadJSON(f)
	} else {
		doc, err = ReadTOML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func (d definition) build() (*Document, error) {
	if d.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing root node")
	}
	root, err := d.Root.build("root")
	if err != nil {
		return nil, err
	}
	return &Document{
		Title:       d.Title,
		Heading:     d.Heading,
		Description: d.Description,
		Root:        root,
	}, nil
}

func (n nodeDef) build(path string) (tree.Node, error) {
	if err := errors.ValidateNodeName(n.Name); err != nil {
		return nil, errors.New(errors.GetCode(err), "node %s: %s", path, errors.UserMessage(err))
	}

	variant, ok := tree.ParseVariant(n.Type)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "node %s: unknown type %q (must be 'simple' or 'button')", path, n.Type)
	}

	var node tree.Node
	switch variant {
	case tree.VariantActionable:
		opts := []tree.ActionableOption{tree.WithAction(n.Action)}
		if n.Label != nil {
			opts = append(opts, tree.WithLabel(*n.Label))
		}
		node = tree.NewActionable(n.Name, opts...)
	default:
		if n.Label != nil || n.Action != "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %s: label and action require type 'button'", path)
		}
		node = tree.NewPlain(n.Name)
	}

	for i, c := range n.Children {
		child, err := c.build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}
