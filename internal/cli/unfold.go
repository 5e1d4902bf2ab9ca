package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foldline/foldline/pkg/pipeline"
)

// unfoldCommand creates the unfold command, the main entry point for
// turning a building definition into printable output files.
func (c *CLI) unfoldCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "unfold [building.toml]",
		Short: "Unfold a building into a flat cut-and-fold pattern",
		Long: `Unfold a building into a flat cut-and-fold pattern.

The unfold command reads a parametric building description (TOML),
computes the flat panel layout with cut lines, fold lines, and glue
tabs, and writes the result in one or more formats.

When the building file is omitted, an interactive picker lists the
TOML files in the current directory and in examples/.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			if input == "" {
				return nil // picker dismissed
			}
			opts.BuildingFile = input
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runUnfold(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dxf, json, pdf, png, dot (comma-separated)")
	cmd.Flags().Float64Var(&opts.DPI, "dpi", 0, "raster resolution for SVG sizing (default 96)")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", false, "omit panel name labels")
	cmd.Flags().Float64Var(&opts.TabWidth, "tab-width", 0, "glue tab width in model inches (default derived from material)")
	cmd.Flags().Float64Var(&opts.PNGScale, "png-scale", 0, "raster upscale factor for PNG output (default 2)")

	return cmd
}

// resolveInput returns the building file to use: the positional arg
// when given, otherwise the interactive picker's choice.
func resolveInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return pickBuilding(".", "examples")
}

// runUnfold executes the pipeline and writes the requested artifacts.
func (c *CLI) runUnfold(ctx context.Context, opts pipeline.Options, output string) error {
	opts.Logger = c.Logger
	runner := c.newRunner()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Unfolding %s...", opts.BuildingFile))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Unfold failed")
		return err
	}
	spinner.Stop()

	pat := result.Pattern
	printSuccess("Unfolded %s", StyleHighlight.Render(pat.BuildingName))
	printDetail("%d panels · %d glue tabs · %.1f x %.1f in sheet · %s",
		result.Stats.PanelCount, result.Stats.TabCount,
		result.Stats.SheetWidth, result.Stats.SheetHeight, pat.ScaleLabel)

	if err := writeArtifacts(result.Artifacts, opts.Formats, opts.BuildingFile, output); err != nil {
		return err
	}

	printNewline()
	printNextStep("Inspect the panel inventory", fmt.Sprintf("%s inspect %s", appName, opts.BuildingFile))
	printNextStep("Preview in a browser", fmt.Sprintf("%s serve %s", appName, opts.BuildingFile))
	return nil
}

// basePath derives the base output path from the output and input file
// paths. If output is empty, it strips the extension from input. If
// output has a format extension (.svg, .dxf, etc.), it strips that
// extension. This is used when generating multiple files.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each rendered artifact to disk. With a single
// format and an explicit output path the artifact goes exactly there;
// otherwise file names are derived from the base path plus the format
// extension.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	if len(formats) == 1 && output != "" {
		return writeArtifact(output, artifacts[formats[0]])
	}

	base := basePath(output, input)
	sorted := make([]string, len(formats))
	copy(sorted, formats)
	sort.Strings(sorted)

	for _, format := range sorted {
		path := base + "." + format
		if err := writeArtifact(path, artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		printFile(path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
