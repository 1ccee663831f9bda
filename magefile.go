//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

// Build compiles the uccharana binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "uccharana", "./cmd/uccharana")
}

// Install installs the binary.
func Install() error {
	return sh.RunV("go", "install", "./cmd/uccharana")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// CI runs vet and the tests.
func CI() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("uccharana")
}
