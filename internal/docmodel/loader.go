package docmodel

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/doc"
	"go/format"
	"go/token"
	"log"
	"path"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/agentflare-ai/go-docsite/internal/render"
)

// Load builds the documentation model for every package matched by pattern.
// The load happens once, at startup: an error here is fatal for the service.
// Individual packages that fail analysis are skipped with a log line; if
// nothing survives, the load as a whole fails.
func Load(ctx context.Context, pattern string) (*Model, error) {
	pkgs, err := loadPackageTree(ctx, pattern)
	if err != nil {
		return nil, err
	}
	prefix := commonPrefix(pkgs)
	modules := make([]*Module, 0, len(pkgs))
	for _, pkg := range pkgs {
		mod, err := buildModule(pkg, prefix)
		if err != nil {
			log.Printf("[docmodel] skipping %s: %v", pkg.PkgPath, err)
			continue
		}
		modules = append(modules, mod)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("no documentable packages matched %q", pattern)
	}
	return NewModel(modules), nil
}

func loadPackageTree(ctx context.Context, pattern string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedModule | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, buildPatterns(pattern)...)
	if err != nil {
		return nil, err
	}
	unique := make(map[string]*packages.Package)
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			// Best-effort enumeration: a broken package drops out of the
			// model rather than taking the whole service down.
			log.Printf("[docmodel] skipping %s: %s", pkg.PkgPath, pkg.Errors[0])
			continue
		}
		unique[pkg.PkgPath] = pkg
	}
	result := make([]*packages.Package, 0, len(unique))
	for _, pkg := range unique {
		result = append(result, pkg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PkgPath < result[j].PkgPath
	})
	return result, nil
}

// buildPatterns widens a bare directory pattern so the whole tree below it
// is loaded, mirroring how "pkg" and "pkg/..." behave for go doc.
func buildPatterns(root string) []string {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	patterns := []string{root}
	if !strings.Contains(root, "...") {
		recursive := root
		if recursive == "." {
			recursive = "./..."
		} else if strings.HasSuffix(recursive, "/") {
			recursive = recursive + "..."
		} else {
			recursive = recursive + "/..."
		}
		patterns = append(patterns, recursive)
	}
	return patterns
}

func buildModule(pkg *packages.Package, prefix string) (*Module, error) {
	docPkg, err := doc.NewFromFiles(pkg.Fset, pkg.Syntax, pkg.PkgPath, doc.Mode(0))
	if err != nil {
		return nil, err
	}
	mod := &Module{
		Name: moduleName(pkg, prefix),
		Doc:  strings.TrimSpace(docPkg.Doc),
	}
	for _, t := range docPkg.Types {
		mod.Classes = append(mod.Classes, Symbol{Name: t.Name, Doc: strings.TrimSpace(t.Doc)})
	}
	for _, f := range docPkg.Funcs {
		mod.Funcs = append(mod.Funcs, Func{
			Name:   f.Name,
			Doc:    strings.TrimSpace(f.Doc),
			Params: paramList(pkg.Fset, f.Decl),
		})
	}
	mod.Symbols = exportedNames(docPkg)
	return mod, nil
}

// moduleName derives the module key from the package path. Packages are
// keyed relative to the loaded tree root; the root package itself goes by
// its last path element.
func moduleName(pkg *packages.Package, prefix string) string {
	name := strings.TrimPrefix(pkg.PkgPath, prefix)
	name = strings.Trim(name, "/")
	if name == "" {
		return path.Base(pkg.PkgPath)
	}
	return name
}

func commonPrefix(pkgs []*packages.Package) string {
	if len(pkgs) == 0 {
		return ""
	}
	prefix := strings.Split(pkgs[0].PkgPath, "/")
	for _, pkg := range pkgs[1:] {
		parts := strings.Split(pkg.PkgPath, "/")
		if len(parts) < len(prefix) {
			prefix = prefix[:len(parts)]
		}
		for i := range prefix {
			if prefix[i] != parts[i] {
				prefix = prefix[:i]
				break
			}
		}
	}
	return strings.Join(prefix, "/")
}

// paramList flattens a function declaration's parameter fields into the
// renderer's ordered parameter list. Grouped parameters (a, b int) expand
// to one entry each; unnamed and blank parameters carry no name a doc
// comment could describe and are dropped.
func paramList(fset *token.FileSet, decl *ast.FuncDecl) []render.Param {
	if decl == nil || decl.Type == nil || decl.Type.Params == nil {
		return nil
	}
	var params []render.Param
	for _, field := range decl.Type.Params.List {
		typ := formatNode(fset, field.Type)
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			params = append(params, render.Param{Name: name.Name, Type: typ})
		}
	}
	return params
}

// exportedNames builds the module's exported top-level symbol table,
// sorted, computed once at load.
func exportedNames(docPkg *doc.Package) []string {
	var names []string
	for _, v := range docPkg.Consts {
		names = append(names, v.Names...)
	}
	for _, v := range docPkg.Vars {
		names = append(names, v.Names...)
	}
	for _, f := range docPkg.Funcs {
		names = append(names, f.Name)
	}
	for _, t := range docPkg.Types {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

func formatNode(fset *token.FileSet, node ast.Node) string {
	if node == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}
