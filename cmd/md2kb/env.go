package main

import (
	"io"
	"os"

	md2kb "github.com/alnah/go-md2kb"
)

// PoolFactory creates a converter pool of the given size.
type PoolFactory func(size int, opts ...md2kb.Option) Pool

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	NewPool PoolFactory
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		NewPool: newConverterPool,
	}
}

// newConverterPool wraps md2kb.ConverterPool for the CLI.
func newConverterPool(size int, opts ...md2kb.Option) Pool {
	return &poolAdapter{pool: md2kb.NewConverterPool(size, opts...)}
}
