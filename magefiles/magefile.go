//go:build mage

// Package main contains Mage build targets for lokit developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "lokit"
	cmdPkg  = "./cmd/lokit"
)

// Build compiles the CLI binary into bin/. Requires cgo and a C toolchain;
// the binary still runs on hosts without LibreOffice (native calls report
// the missing installation at runtime).
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	return sh.RunV("go", "build", "-o", out, cmdPkg)
}

// Test runs the full test suite. Integration tests that need a LibreOffice
// installation skip themselves unless LOK_INSTALL_PATH is set.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestNative runs the test suite against a LibreOffice installation,
// defaulting to the distro path when LOK_INSTALL_PATH is unset.
func TestNative() error {
	env := map[string]string{}
	if os.Getenv("LOK_INSTALL_PATH") == "" {
		env["LOK_INSTALL_PATH"] = "/usr/lib/libreoffice/program"
	}
	return sh.RunWithV(env, "go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the cgo-free build before the tests.
func Check() error {
	mg.Deps(Vet, BuildNoCGO)
	return Test()
}

// BuildNoCGO verifies the module compiles with cgo disabled; every package
// outside internal/bindings must stay buildable without a C toolchain.
func BuildNoCGO() error {
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "0"}, "go", "build", "./...")
}

// Install installs the CLI into GOBIN.
func Install() error {
	return sh.RunV("go", "install", cmdPkg)
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binDir)
}
