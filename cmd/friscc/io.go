package main

import (
	"bytes"
	"io"
	"os"

	"github.com/friscc/friscc/internal/diagnostics"
	"github.com/friscc/friscc/internal/lextable"
)

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func writeTable(path string, table *lextable.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return diagnostics.NewInternalError("lextable", err)
	}
	defer f.Close()
	if err := lextable.WriteText(f, table); err != nil {
		return diagnostics.NewInternalError("lextable", err)
	}
	return nil
}

func readTable(path string) (*lextable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diagnostics.NewInternalError("lextable", err)
	}
	defer f.Close()
	table, err := lextable.ReadText(f)
	if err != nil {
		return nil, diagnostics.NewInternalError("lextable", err)
	}
	return table, nil
}

