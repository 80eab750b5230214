package cmd

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/internal/ast"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/parser"
)

var classesEvalExpr string

var classesCmd = &cobra.Command{
	Use:   "classes [file]",
	Short: "List classes and methods declared at the top level of a wisp program",
	Long: `Parse a wisp program and print each top-level class with its own
methods, natural-sorted so method2 sorts before method10.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClasses,
}

func init() {
	rootCmd.AddCommand(classesCmd)
	classesCmd.Flags().StringVarP(&classesEvalExpr, "eval", "e", "", "inspect inline code instead of reading from file")
}

func runClasses(_ *cobra.Command, args []string) error {
	input, _, err := readSource(classesEvalExpr, args)
	if err != nil {
		return err
	}

	l, err := lexer.New(input)
	if err != nil {
		return err
	}
	prog, err := parser.New(l).ParseProgram()
	if err != nil {
		return err
	}

	var names []string
	byName := map[string][]string{}
	for _, stmt := range prog.Stmts {
		def, ok := stmt.(*ast.ClassDefinition)
		if !ok {
			continue
		}
		names = append(names, def.Class.Name)
		methods := make([]string, len(def.Class.Methods))
		for i, m := range def.Class.Methods {
			methods[i] = m.Name
		}
		sort.Slice(methods, func(i, j int) bool { return natural.Less(methods[i], methods[j]) })
		byName[def.Class.Name] = methods
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })

	for _, name := range names {
		fmt.Println(name)
		for _, m := range byName[name] {
			fmt.Printf("  %s\n", m)
		}
	}
	return nil
}
