package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/trieviz/pkg/pipeline"
)

func (c *CLI) dotCommand() *cobra.Command {
	var opts pipeline.DOTOptions

	cmd := &cobra.Command{
		Use:   "dot <slug>",
		Short: "Print a post's trie as Graphviz DOT",
		Long: `Print the trie built from a post's word list as a Graphviz digraph.

Node ids are the prefixes the nodes spell; word-ending nodes are drawn as
double circles. --paths labels each node with the whole prefix it spells.
With --svg the graph is laid out by Graphviz and the SVG is
printed instead. Nothing is written to the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			data, err := runner.DOT(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
		ValidArgsFunction: c.completeSlugs,
	}

	cmd.Flags().BoolVar(&opts.SVG, "svg", false, "render the graph to SVG with Graphviz")
	cmd.Flags().BoolVar(&opts.Paths, "paths", false, "label nodes with their full prefix instead of one character")

	return cmd
}

// completeSlugs offers the post slugs of the embedded series.
func (c *CLI) completeSlugs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	runner, err := c.newRunner()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	slugs := make([]string, len(runner.Config.Posts))
	for i, p := range runner.Config.Posts {
		slugs[i] = p.Slug
	}
	return slugs, cobra.ShellCompDirectiveNoFileComp
}
