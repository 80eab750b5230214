package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/parser"
	"github.com/wisplang/wisp/pkg/wisp"
)

var (
	runEvalExpr string
	dumpAST     bool
	runTrace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a wisp file or expression",
	Long: `Parse and execute a wisp program, printing its output to stdout.

Examples:
  wisp run script.wisp
  wisp run -e "print 1 + 2"
  wisp run --trace script.wisp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "print a JSON execution trace to stderr")
}

func runRun(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(runEvalExpr, args)
	if err != nil {
		return err
	}

	if dumpAST {
		l, err := lexer.New(input)
		if err != nil {
			return err
		}
		prog, err := parser.New(l).ParseProgram()
		if err != nil {
			return err
		}
		fmt.Printf("%#v\n\n", prog)
	}

	cfg, err := config.LoadDefaultFile(".")
	if err != nil {
		return fmt.Errorf("loading .wisp.yaml: %w", err)
	}

	engine := wisp.New(wisp.WithTrace(runTrace), wisp.WithConfig(cfg))
	engine.SetOutput(os.Stdout)

	result, err := engine.Eval(input)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	if runTrace && result.Trace != nil {
		traceOut := os.Stderr
		if !cfg.TraceToStderr {
			traceOut = os.Stdout
		}
		for _, line := range result.Trace.Lines() {
			fmt.Fprintln(traceOut, line)
		}
	}
	return nil
}
