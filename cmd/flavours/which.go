package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/flavours/internal/model"
)

var whichCmd = &cobra.Command{
	Use:   "which <family> [subtemplate]",
	Short: "Print the template file that would be used",
	Long: `Print the single template file used for a family and subtemplate.

The config root copy wins over the data root copy. The subtemplate can be
given as a second argument or as family/subtemplate; it defaults to
"default". Names are literal, not globs.

Examples:
  flavours which vim
  flavours which alacritty/default-256
  flavours which i3 colors`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWhich,
}

func init() {
	rootCmd.AddCommand(whichCmd)
}

func runWhich(cmd *cobra.Command, args []string) error {
	ref := model.TemplateRef{}
	if len(args) == 2 {
		ref = model.TemplateRef{Family: args[0], Subtemplate: args[1]}
	} else {
		var err error
		if ref, err = model.ParseTemplateRef(args[0]); err != nil {
			return err
		}
	}

	path, err := resolver.Template(ref.Family, ref.Subtemplate)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
