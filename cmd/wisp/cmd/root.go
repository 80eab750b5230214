// Package cmd implements the wisp CLI: lex, run, classes, and version
// subcommands built on spf13/cobra, mirroring the teacher's
// cmd/dwscript/cmd structure (root.go owning shared flags and Execute,
// one file per subcommand registering itself from init).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, overridable by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wisp",
	Short: "wisp interpreter",
	Long: `wisp is a tree-walking interpreter for a small, indentation-sensitive,
dynamically-typed scripting language with single-inheritance classes.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
