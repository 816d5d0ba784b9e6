// Package check scans Go packages for calls to panicking unwrap accessors,
// the call sites that the unwraplog methods are meant to replace.
package check

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"maps"
	"runtime"
	"slices"
	"strings"

	"github.com/WinPooh32/unwraplog"
	"github.com/WinPooh32/unwraplog/internal/xslices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"
)

const pkgLoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

type pkgID string

// DefaultNames are accessor names that conventionally abort the process on
// the empty or error variant of a container.
var DefaultNames = []string{"Unwrap", "Expect", "Must", "MustGet", "MustValue"}

// Finding is a single call site of a panicking unwrap accessor.
type Finding struct {
	// Pos locates the call in the scanned package sources.
	Pos token.Position
	// Name is the matched accessor name.
	Name string
	// Call is the rendered callee expression, e.g. "cfg.Unwrap".
	Call string
}

// Checker loads go files and reports panicking unwrap call sites found in
// them.
type Checker struct {
	pkgs  map[pkgID]*packages.Package
	names map[string]struct{}
}

// New returns a new initialized [Checker] instance that looks for calls to
// the given accessor names. When no names are given, [DefaultNames] is used.
func New(names ...string) *Checker {
	if len(names) == 0 {
		names = DefaultNames
	}

	set := make(map[string]struct{}, len(names))

	for _, name := range names {
		set[name] = struct{}{}
	}

	return &Checker{
		pkgs:  make(map[pkgID]*packages.Package),
		names: set,
	}
}

// Load loads Go packages by the given patterns to the [Checker] instance.
//
// Dir parameter is the directory in which to run the build system's query
// tool that provides information about the packages.
// If Dir is empty, the tool is run in the current directory.
func (c *Checker) Load(ctx context.Context, dir string, patterns ...string) (*Checker, error) {
	cfg := &packages.Config{
		Mode:    pkgLoadMode,
		Context: ctx,
		Dir:     dir,
		Tests:   true,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var errs pkgerrs

	for _, pkg := range pkgs {
		if pkg.Errors != nil {
			errs = append(errs, pkg)
			continue
		}

		c.pkgs[pkgID(pkg.ID)] = pkg
	}

	if errs != nil {
		return c, &errs
	}

	return c, nil
}

// Check scans the loaded packages and returns the stream of found call sites.
// The jobs parameter specifies number of used goroutines for processing, if
// set as 0 number of cpu cores will be used.
func (c *Checker) Check(ctx context.Context, jobs int) <-chan unwraplog.Result[Finding] {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	resC := make(chan unwraplog.Result[Finding], jobs)

	go func() {
		defer close(resC)

		eg, ctx := errgroup.WithContext(ctx)
		pkgs := slices.Collect(maps.Keys(c.pkgs))

		for part := range xslices.Split(pkgs, jobs) {
			eg.Go(func() error {
				wrkr := checkWorker{
					pkgs:   c.pkgs,
					names:  c.names,
					pkgIDs: part,
					resC:   resC,
				}

				return wrkr.run(ctx)
			})
		}

		if err := eg.Wait(); err != nil {
			resC <- unwraplog.Err[Finding](err)
			return
		}
	}()

	return resC
}

type checkWorker struct {
	pkgs   map[pkgID]*packages.Package
	names  map[string]struct{}
	pkgIDs []pkgID
	resC   chan<- unwraplog.Result[Finding]
}

func (cw *checkWorker) run(ctx context.Context) error {
	for _, id := range cw.pkgIDs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context is done: %w", err)
		}

		pkg, ok := cw.pkgs[id]
		if !ok {
			return fmt.Errorf("the package is not found by ID %s", id)
		}

		for fnd := range cw.scan(pkg) {
			if err := cw.send(ctx, fnd); err != nil {
				return err
			}
		}
	}

	return nil
}

var callExprFilter = []ast.Node{
	new(ast.CallExpr),
}

func (cw *checkWorker) scan(pkg *packages.Package) iter.Seq[Finding] {
	var syntax []*ast.File

	if isTestPackage(pkg) {
		syntax = selectTestfiles(pkg, pkg.Syntax)
	} else {
		syntax = pkg.Syntax
	}

	in := inspector.New(syntax)

	return func(yield func(Finding) bool) {
		// The stop flag keeps yield from being called again after the
		// consumer breaks; returning false also cuts off the remaining
		// subtree walk.
		var stop bool

		in.WithStack(callExprFilter, func(n ast.Node, push bool, _ []ast.Node) (proceed bool) {
			if !push || stop {
				return false
			}

			call, ok := n.(*ast.CallExpr)
			if !ok {
				return false
			}

			name, ok := cw.calleeName(call)
			if !ok {
				// Nested calls may still match, keep descending.
				return true
			}

			fnd := Finding{
				Pos:  pkg.Fset.Position(call.Pos()),
				Name: name,
				Call: types.ExprString(call.Fun),
			}

			if !yield(fnd) {
				stop = true
				return false
			}

			return true
		})
	}
}

// calleeName extracts the called accessor name when it belongs to the target
// set. Both method calls and package-level calls are matched.
func (cw *checkWorker) calleeName(call *ast.CallExpr) (string, bool) {
	var name string

	switch fun := call.Fun.(type) {
	case *ast.SelectorExpr:
		name = fun.Sel.Name
	case *ast.Ident:
		name = fun.Name
	default:
		return "", false
	}

	if _, ok := cw.names[name]; !ok {
		return "", false
	}

	return name, true
}

func (cw *checkWorker) send(ctx context.Context, fnd Finding) error {
	select {
	case cw.resC <- unwraplog.Ok(fnd):
	case <-ctx.Done():
		return fmt.Errorf("context is done: %w", ctx.Err())
	}

	return nil
}

func selectTestfiles(pkg *packages.Package, syntax []*ast.File) []*ast.File {
	var testfiles []*ast.File

	for _, file := range syntax {
		f := pkg.Fset.File(file.Pos())
		if f == nil {
			continue
		}

		name := f.Name()
		if !strings.HasSuffix(strings.ToLower(name), "_test.go") {
			continue
		}

		testfiles = append(testfiles, file)
	}

	return testfiles
}

func isTestPackage(pkg *packages.Package) bool {
	for _, f := range pkg.GoFiles {
		if strings.HasSuffix(f, "_test.go") {
			return true
		}
	}

	return false
}
