package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/tss/style/tss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	lintCmd.Flags().BoolP("builtin", "b", false, "Check the built-in stylesheets")
	lintCmd.Flags().BoolP("print", "p", false, "Print the normalized stylesheet")
}

// errLint signals that at least one stylesheet did not compile.
var errLint = errors.New("stylesheets contain errors")

var lintCmd = &cobra.Command{
	Use:   "lint [file.tss ...]",
	Short: "Report syntax errors in stylesheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		builtin := lo.Must(cmd.Flags().GetBool("builtin"))
		print := lo.Must(cmd.Flags().GetBool("print"))
		if !builtin && len(args) == 0 {
			return errors.New("no stylesheets to check")
		}
		out := cmd.OutOrStdout()
		failed := 0
		check := func(name string, sheet *tss.Stylesheet, err error) {
			if err != nil {
				failed++
				fmt.Fprintf(out, "%s: %v\n", name, err)
				return
			}
			fmt.Fprintf(out, "%s: ok, %d rules\n", name, sheet.Len())
			if print {
				fmt.Fprint(out, sheet.String())
			}
		}
		if builtin {
			for _, name := range tss.BuiltinNames() {
				sheet, err := tss.Builtin(name)
				check("builtin:"+name, sheet, err)
			}
		}
		for _, path := range args {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			sheet, err := tss.ParseBytes(src)
			check(path, sheet, err)
		}
		if failed > 0 {
			return errLint
		}
		return nil
	},
}
