package generate

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/cmmoran/javagen/internal/manifest"
)

// Options control a generation run.
//
// Manifest – path to the YAML manifest describing the types to generate.
// OutDir   – root directory; package segments become subdirectories.
// DryRun   – render to stdout instead of writing files.
type Options struct {
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty" mapstructure:"manifest,omitempty"`
	OutDir   string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	DryRun   bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty" mapstructure:"dry_run,omitempty"`
}

// Run loads the manifest and writes every generated file beneath OutDir on
// the host filesystem.
func Run(opts *Options) error {
	return RunFs(afero.NewOsFs(), os.Stdout, opts)
}

// RunFs is Run against an explicit filesystem and dry-run sink.
func RunFs(fsys afero.Fs, dryRunOut io.Writer, opts *Options) error {
	m, err := manifest.Load(opts.Manifest)
	if err != nil {
		return err
	}

	files, err := m.Files()
	if err != nil {
		return fmt.Errorf("build manifest types: %w", err)
	}

	for _, file := range files {
		if opts.DryRun {
			if err := file.WriteTo(dryRunOut); err != nil {
				return fmt.Errorf("render %s: %w", file.Type().Name(), err)
			}
			continue
		}
		if err := file.WriteToFs(fsys, opts.OutDir); err != nil {
			return err
		}
		slog.With("package", file.PackageName(), "type", file.Type().Name()).
			Info("generated source file")
	}
	return nil
}
