package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/trieviz/pkg/pipeline"
)

// generateOpts holds the flags shared by the file-writing commands.
type generateOpts struct {
	output string  // output directory, overrides the series configuration
	scale  float64 // PNG scale for cards
}

func (c *CLI) heroesCommand() *cobra.Command {
	return c.generateCommand("heroes", "Write one hero SVG per post and theme",
		pipeline.TargetHeroes)
}

func (c *CLI) backgroundCommand() *cobra.Command {
	return c.generateCommand("background", "Write the composite background tile per theme",
		pipeline.TargetBackground)
}

func (c *CLI) allCommand() *cobra.Command {
	return c.generateCommand("all", "Write hero images and background tiles",
		pipeline.TargetHeroes, pipeline.TargetBackground)
}

// generateCommand creates a command that writes the given targets.
func (c *CLI) generateCommand(use, short string, targets ...string) *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), targets, opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from series config)")

	return cmd
}

func (c *CLI) cardsCommand() *cobra.Command {
	opts := generateOpts{scale: pipeline.DefaultCardScale}

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Write PNG social cards of the hero images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.scale <= 0 {
				return fmt.Errorf("--scale must be positive, got %v", opts.scale)
			}
			s := newSpinner(cmd.Context(), os.Stderr, "Rendering social cards...")
			s.Start()
			defer s.Stop()
			return c.runGenerate(cmd.Context(), []string{pipeline.TargetCards}, opts, s)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from series config)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

// runGenerate executes targets and prints a summary. When s is non-nil it
// is stopped before anything is printed and carries the success line.
func (c *CLI) runGenerate(ctx context.Context, targets []string, opts generateOpts, s *spinner) error {
	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		OutputDir: opts.output,
		Targets:   targets,
		CardScale: opts.scale,
	})
	if err != nil {
		if s != nil {
			s.Stop()
			if s.Cancelled() {
				printInfo("Cancelled")
			}
		}
		return err
	}
	prog.done(fmt.Sprintf("Generated %d files", result.Stats.Files))

	summary := fmt.Sprintf("Generated %s files", StyleNumber.Render(fmt.Sprint(result.Stats.Files)))
	if s != nil {
		s.StopWithSuccess(summary)
	} else {
		printNewline()
		printSuccess("%s", summary)
	}
	printKeyValue("output", result.Dir)
	for _, a := range result.Artifacts {
		printFile(a.Path, a.Unchanged)
	}
	printStats(result.Stats.Files, result.Stats.Unchanged, result.Stats.Bytes)
	printNewline()
	printNextStep("Preview in a browser", appName+" serve")
	return nil
}
