package main

import (
	"context"
	"io"
	"os"
	"time"

	printbook "github.com/alnah/go-printbook"
)

// Assembler is the part of printbook.Assembler the CLI uses.
type Assembler interface {
	Assemble(ctx context.Context, input printbook.Input) (*printbook.Result, error)
	Close() error
}

var _ Assembler = (*printbook.Assembler)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	NewAssembler func(opts ...printbook.Option) (Assembler, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		NewAssembler: func(opts ...printbook.Option) (Assembler, error) {
			return printbook.NewAssembler(opts...)
		},
	}
}
