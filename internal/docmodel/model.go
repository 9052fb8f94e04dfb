// Package docmodel loads a Go package tree once at process start and
// exposes it as an immutable documentation model. There is no invalidation:
// the model is built before the server accepts traffic and never changes.
package docmodel

import (
	"sort"

	"github.com/agentflare-ai/go-docsite/internal/render"
)

// Module describes one package of the loaded tree.
type Module struct {
	Name    string   // import path relative to the tree root, slash-separated
	Doc     string   // package doc comment, may be empty
	Classes []Symbol // exported types
	Funcs   []Func   // exported package-level functions
	Symbols []string // all exported top-level names, sorted
}

// Symbol is an exported name with its doc comment.
type Symbol struct {
	Name string
	Doc  string
}

// Func is an exported function with its ordered parameter list.
type Func struct {
	Name   string
	Doc    string
	Params []render.Param
}

// Model is the read-only module mapping served by the reference browser.
type Model struct {
	modules map[string]*Module
	names   []string
}

// NewModel builds a Model from module descriptors. Module names are unique
// keys; on duplicates the first descriptor wins.
func NewModel(modules []*Module) *Model {
	m := &Model{modules: make(map[string]*Module, len(modules))}
	for _, mod := range modules {
		if _, dup := m.modules[mod.Name]; dup {
			continue
		}
		m.modules[mod.Name] = mod
		m.names = append(m.names, mod.Name)
	}
	sort.Strings(m.names)
	return m
}

// Names returns all module names sorted lexicographically. The returned
// slice is shared; callers must not modify it.
func (m *Model) Names() []string {
	return m.names
}

// Module looks up a module descriptor by name.
func (m *Model) Module(name string) (*Module, bool) {
	mod, ok := m.modules[name]
	return mod, ok
}

// Len reports the number of modules in the model.
func (m *Model) Len() int {
	return len(m.names)
}
