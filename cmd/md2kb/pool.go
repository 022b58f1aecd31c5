package main

import (
	"context"
	"fmt"

	md2kb "github.com/alnah/go-md2kb"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2kb.Input) (*md2kb.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2kb.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes *md2kb.ConverterPool through the Pool interface.
type poolAdapter struct {
	pool *md2kb.ConverterPool
}

var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics when c did not come from this pool: only *md2kb.Converter
// values are ever handed out.
func (a *poolAdapter) Release(c CLIConverter) {
	if c == nil {
		return
	}
	conv, ok := c.(*md2kb.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
