package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/crtavatar/effects"
)

func runSchema(_ context.Context, e *env, args []string) error {
	fs, verbose := newFlagSet(e, "schema")
	outPath := fs.String("o", "", "output file (default stdout)")
	defaults := fs.Bool("defaults", false, "write the default parameter document instead")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(e, *verbose)

	var data []byte
	var err error
	if *defaults {
		data, err = json.MarshalIndent(effects.DefaultParams(), "", "  ")
	} else {
		data, err = json.MarshalIndent(effects.Schema(), "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if *outPath == "" {
		_, err := e.stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := *outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, *outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
