package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/flavours/internal/adapter/output"
	"github.com/jmylchreest/flavours/internal/resolve"
)

var pathsOpts struct {
	json bool
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the directories searched for schemes and templates",
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)

	pathsCmd.Flags().BoolVar(&pathsOpts.json, "json", false, "Output as JSON")
}

type searchPaths struct {
	Config    string              `json:"config"`
	Data      string              `json:"data"`
	Schemes   []resolve.SearchDir `json:"schemes"`
	Templates []resolve.SearchDir `json:"templates"`
}

func runPaths(cmd *cobra.Command, args []string) error {
	roots := resolver.Roots()
	sp := searchPaths{
		Config:    roots.Config,
		Data:      roots.Data,
		Schemes:   roots.SearchDirs(resolve.KindScheme),
		Templates: roots.SearchDirs(resolve.KindTemplate),
	}

	w := cmd.OutOrStdout()
	if pathsOpts.json {
		return output.FormatValue(w, sp)
	}

	styles := output.NewStyles(w, useColor(cmd))
	fmt.Fprintf(w, "%s %s\n", styles.Name.Render("config:"), sp.Config)
	fmt.Fprintf(w, "%s   %s\n", styles.Name.Render("data:"), sp.Data)
	for _, dir := range sp.Schemes {
		fmt.Fprintf(w, "schemes   %s %s\n", styles.Dim.Render(string(dir.Origin)), dir.Path)
	}
	for _, dir := range sp.Templates {
		fmt.Fprintf(w, "templates %s %s\n", styles.Dim.Render(string(dir.Origin)), dir.Path)
	}
	return nil
}
