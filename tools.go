//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (go.mod tool directive, migrations/)
// - github.com/matryer/moq (installed binary, go:generate in *_test.go)
