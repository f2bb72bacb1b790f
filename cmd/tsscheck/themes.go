package main

import (
	"fmt"

	"github.com/npillmayer/tss/basetheme"
	"github.com/npillmayer/tss/style"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes [name]",
	Short: "List base themes, or show the highlight groups of one theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, name := range basetheme.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		}
		theme, err := basetheme.Get(args[0])
		if err != nil {
			return err
		}
		for _, h := range style.Highlights() {
			if s, ok := theme.Lookup(h); ok {
				fmt.Fprintf(out, "%-16s %s\n", h, s)
			}
		}
		return nil
	},
}
