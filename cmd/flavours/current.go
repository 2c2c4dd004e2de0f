package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/flavours/internal/store"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the last applied scheme name",
	Args:  cobra.NoArgs,
	RunE:  runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	name, err := store.LoadLastScheme(resolver.Roots().Data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
	return err
}
