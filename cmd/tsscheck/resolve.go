package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/tss/basetheme"
	"github.com/npillmayer/tss/style/cascade"
	"github.com/npillmayer/tss/style/tss"
	"github.com/npillmayer/tss/styledtree"
	"github.com/npillmayer/tss/syntax"
	"github.com/npillmayer/tss/syntax/syntree"
	"github.com/npillmayer/tss/syntax/tsadapter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const builtinPrefix = "builtin:"

func init() {
	resolveCmd.Flags().StringP("sheet", "s", "", "Stylesheet file, or builtin:<name>")
	resolveCmd.Flags().Bool("sexpr", false, "Input is a syntax tree in S-expression notation")
	resolveCmd.Flags().Bool("lenient", false, "Continue with an empty stylesheet if the stylesheet has errors")
	resolveCmd.Flags().BoolP("explain", "x", false, "List the rules matching each node")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] <file>",
	Short: "Print the styled syntax tree of a Go or TOML file, or of an S-expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, err := loadSheet(lo.Must(cmd.Flags().GetString("sheet")),
			lo.Must(cmd.Flags().GetBool("lenient")), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		theme, err := basetheme.Get(viper.GetString(keyTheme))
		if err != nil {
			return err
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		var root syntax.Node
		if lo.Must(cmd.Flags().GetBool("sexpr")) {
			t, err := syntree.Parse(string(src))
			if err != nil {
				return err
			}
			root = t
		} else {
			parse := tsadapter.ParseGo
			if strings.EqualFold(filepath.Ext(args[0]), ".toml") {
				parse = tsadapter.ParseTOML
			}
			tree, err := parse(ctx, src)
			if err != nil {
				return err
			}
			defer tree.Close()
			root = tsadapter.WrapNamed(tree.RootNode())
		}
		styler := styledtree.NewStyler(sheet, theme)
		styled, err := styler.Build(ctx, root)
		if err != nil {
			return err
		}
		tracer().P("nodes", styler.CacheSize()).Infof("resolved styles")
		out := cmd.OutOrStdout()
		fmt.Fprint(out, styledtree.Dump(styled))
		if lo.Must(cmd.Flags().GetBool("explain")) {
			explain(out, sheet, styled)
		}
		return nil
	},
}

// loadSheet compiles the stylesheet named by ref. In lenient mode a broken
// stylesheet is reported and replaced by the empty stylesheet.
func loadSheet(ref string, lenient bool, errw io.Writer) (*tss.Stylesheet, error) {
	var sheet *tss.Stylesheet
	var err error
	switch {
	case ref == "":
		return tss.Empty(), nil
	case strings.HasPrefix(ref, builtinPrefix):
		sheet, err = tss.Builtin(strings.TrimPrefix(ref, builtinPrefix))
	default:
		var src []byte
		if src, err = os.ReadFile(ref); err != nil {
			return nil, err
		}
		sheet, err = tss.ParseBytes(src)
	}
	if err != nil && lenient {
		fmt.Fprintf(errw, "%s: %v\ncontinuing with empty stylesheet\n", ref, err)
		return tss.Empty(), nil
	}
	return sheet, err
}

func explain(out io.Writer, sheet *tss.Stylesheet, styled *styledtree.StyNode) {
	styled.Walk(func(sn *styledtree.StyNode) {
		rules := cascade.MatchingRules(sheet, sn.SyntaxNode())
		if len(rules) == 0 {
			return
		}
		fmt.Fprintf(out, "%s\n", sn.Key())
		for _, inx := range rules {
			fmt.Fprintf(out, "    %3d  %s\n", inx, sheet.Rule(inx))
		}
	})
}
