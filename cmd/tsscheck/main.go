/*
Command tsscheck checks tss stylesheets and shows how they style syntax trees.

	tsscheck lint my.tss                         # report syntax errors
	tsscheck lint --builtin                      # check the built-in sheets
	tsscheck resolve --sheet my.tss main.go      # styled tree for a Go file
	tsscheck resolve --sexpr --explain tree.sexpr
	tsscheck themes                              # list base themes

Configuration is read from tsscheck.yaml (or .toml, .json) in the current
directory, $HOME/.tsscheck or $HOME/.config/tsscheck, or from the file given
with --config. Recognized keys are

	theme:             name of the base theme (see `tsscheck themes`)
	tracing.adapter:   "logrus" (default) or "go"
	tracelevel.root:   trace level of the root tracer
	tracelevel.<key>:  trace level for key, e.g. tracelevel.tss.cascade

Flags take precedence over configuration values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

func main() {
	Execute()
}
