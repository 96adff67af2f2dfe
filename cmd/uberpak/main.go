// uberpak aggregates and compresses a set of shader packages into a single
// ubershader archive.
//
// For each name given on the command line, uberpak reads "name.wgsl" (the
// shader package) and "name.spec" (the variant's spec-language description)
// from the current working directory and adds one variant to the archive.
// Names are added in argument order, which is the order loaders consult
// variants in: put specialized variants before permissive fallbacks.
//
// By default packages are stored as WGSL source and compiled by the loader's
// engine; with --spirv they are precompiled to SPIR-V so loaders skip
// compilation. The archive is zstd-compressed unless --raw is given.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/naga"
	"github.com/spf13/pflag"

	"github.com/gogpu/ubershader"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "uberpak: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		outputFile string
		quiet      bool
		precompile bool
		raw        bool
		verbose    bool
	)

	flagSet := pflag.NewFlagSet("uberpak", pflag.ContinueOnError)
	flagSet.StringVarP(&outputFile, "output", "o", "materials.ubar", "output archive filename")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "suppress console output")
	flagSet.BoolVarP(&precompile, "spirv", "s", false, "precompile WGSL packages to SPIR-V")
	flagSet.BoolVar(&raw, "raw", false, "write the archive without zstd compression")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log library diagnostics to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	names := flagSet.Args()
	if len(names) == 0 {
		printHelp(flagSet)
		return fmt.Errorf("no input names given")
	}

	if verbose {
		ubershader.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	archive := ubershader.NewWritableArchive()

	for _, name := range names {
		pkg, err := os.ReadFile(name + ".wgsl")
		if err != nil {
			return fmt.Errorf("reading shader package: %w", err)
		}
		if precompile {
			compiled, err := naga.Compile(string(pkg))
			if err != nil {
				return fmt.Errorf("%s.wgsl: %w", name, err)
			}
			pkg = compiled
		}
		archive.AddVariant(name, pkg)

		specFile, err := os.Open(name + ".spec")
		if err != nil {
			return fmt.Errorf("reading spec: %w", err)
		}
		err = archive.ReadSpec(specFile)
		specFile.Close()
		if err != nil {
			return err
		}

		if !quiet {
			fmt.Printf("added %s (%d package bytes)\n", name, len(pkg))
		}
	}

	data := archive.Serialize()
	if !raw {
		data = ubershader.Compress(data)
	}

	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return err
	}
	if !quiet {
		fmt.Printf("wrote %s (%d variants, %d bytes)\n", outputFile, archive.VariantCount(), len(data))
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `uberpak aggregates and compresses a set of shader packages into a single
archive file. The archive records the feature set each variant supports so
that loaders can pick the right variant at runtime. By default it generates
a file called "materials.ubar"; customize this with -o.

Usage:
  uberpak [options] <name_0> <name_1> ...

For each name, uberpak looks for "name.wgsl" and "name.spec" in the current
working directory. If either file does not exist, an error is reported.
Each wgsl/spec pair becomes one variant in the generated archive.

Flags:
%s`, flagSet.FlagUsages())
}
