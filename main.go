// Package main implements a CLI tool to bump the version declared in a
// project manifest (pyproject.toml by default).
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	pybump "github.com/bcomnes/pybump/pkg"
	"github.com/spf13/cobra"
)

const long = `Bumps the first version declaration (version = "X.Y.Z") found in a project
manifest (default: ./pyproject.toml) and writes the file back.

Versions with fewer than three components are padded with zeros before
bumping; components past the patch position are kept as they are.

Examples:
  pybump
  pybump minor
  pybump -m packages/core/pyproject.toml major
  pybump --dry patch

Settings may also come from an optional .pybump.yml:
  manifest: pyproject.toml
  bump: patch`

func newRootCmd() *cobra.Command {
	var (
		manifest   string
		configFile string
		dryRun     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "pybump [flags] [patch|minor|major]",
		Short:         "Bump the version in a project manifest",
		Long:          long,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(io.Discard, "pybump: ", 0)
			if verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}

			// An explicit --config must exist; the default one is optional.
			if cmd.Flags().Changed("config") {
				if _, err := os.Stat(configFile); err != nil {
					return err
				}
			}
			cfg, err := pybump.LoadConfig(configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("manifest") {
				manifest = cfg.Manifest
			}
			bump := string(cfg.Bump)
			if len(args) == 1 {
				bump = args[0]
			}
			logger.Printf("manifest %s, bump %s", manifest, bump)

			var meta pybump.VersionMeta
			if dryRun {
				meta, err = pybump.DryRun(manifest, bump)
			} else {
				meta, err = pybump.Run(manifest, bump)
			}
			if err != nil {
				return err
			}

			logger.Printf("rewrote declaration on line %d of %s", meta.Line, meta.ManifestPath)
			if meta.Declarations > 1 {
				logger.Printf("%d version declarations found; only the first was bumped", meta.Declarations)
			}
			if !meta.Canonical {
				logger.Printf("declared version %s is not a canonical MAJOR.MINOR.PATCH version", meta.OldVersion)
			}
			if dryRun {
				fmt.Fprintf(cmd.ErrOrStderr(), "Dry run: %s was not modified.\n", meta.ManifestPath)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", meta.OldVersion, meta.NewVersion)
			return nil
		},
	}

	cmd.SetVersionTemplate("pybump CLI version {{.Version}}\n")
	cmd.Flags().StringVarP(&manifest, "manifest", "m", pybump.DefaultManifest, "path to the manifest containing the version declaration")
	cmd.Flags().StringVarP(&configFile, "config", "c", pybump.DefaultConfigFile, "optional YAML config file")
	cmd.Flags().BoolVar(&dryRun, "dry", false, "compute the new version without modifying the manifest")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log details to stderr")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
