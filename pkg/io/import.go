package io

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/matzehuels/fixturegen/pkg/errors"
	"github.com/matzehuels/fixturegen/pkg/graph"
	"github.com/matzehuels/fixturegen/pkg/palette"
)

// Kind identifies the fixture type stored in a file.
type Kind string

// Fixture kinds.
const (
	KindPalette Kind = "palette"
	KindGraph   Kind = "graph"
)

// Fixture is a decoded fixture file. Exactly one of Palette and Graph is set,
// matching Kind.
type Fixture struct {
	Path    string
	Kind    Kind
	Palette *palette.Palette
	Graph   *graph.Document
}

// Import reads the fixture at path and decodes it according to its kind.
func Import(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "read %s", path)
	}
	kind, err := sniff(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "%s", path)
	}

	fx := &Fixture{Path: path, Kind: kind}
	switch kind {
	case KindPalette:
		fx.Palette, err = palette.Read(bytes.NewReader(data))
	case KindGraph:
		fx.Graph, err = graph.Read(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	return fx, nil
}

// ImportPalette reads a palette fixture.
func ImportPalette(path string) (*palette.Palette, error) {
	fx, err := Import(path)
	if err != nil {
		return nil, err
	}
	if fx.Kind != KindPalette {
		return nil, errors.New(errors.ErrCodeInvalidFixture, "%s is a %s fixture, not a palette", path, fx.Kind)
	}
	return fx.Palette, nil
}

// ImportGraph reads a graph fixture.
func ImportGraph(path string) (*graph.Document, error) {
	fx, err := Import(path)
	if err != nil {
		return nil, err
	}
	if fx.Kind != KindGraph {
		return nil, errors.New(errors.ErrCodeInvalidFixture, "%s is a %s fixture, not a graph", path, fx.Kind)
	}
	return fx.Graph, nil
}

func sniff(data []byte) (Kind, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return "", err
	}
	_, hasColors := keys["colors"]
	_, hasNodes := keys["nodes"]
	switch {
	case hasColors && !hasNodes:
		return KindPalette, nil
	case hasNodes && !hasColors:
		return KindGraph, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFixture, "expected a \"colors\" or \"nodes\" key")
}
