package internalcheck

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// cgoAllowed lists the packages permitted to import "C". Everything else in
// the module must stay cgo-free so the public API compiles and tests run
// without the native toolchain.
var cgoAllowed = map[string]bool{
	"github.com/lokit-go/lokit/internal/bindings": true,
}

func TestCGOConfinedToBindings(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/lokit-go/lokit/...")
	require.NoError(t, err, "load module packages")
	require.NotEmpty(t, pkgs)

	var findings []string
	for _, pkg := range pkgs {
		if cgoAllowed[pkg.PkgPath] {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "C" {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, pkg.PkgPath+" imports \"C\" at "+pos.String())
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo outside internal/bindings:\n%s", strings.Join(findings, "\n"))
	}
}
