package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cwbudde/sox/internal/config"
	"github.com/cwbudde/sox/internal/lexer"
	"github.com/cwbudde/sox/internal/parser"
	"github.com/cwbudde/sox/internal/resolver"
)

var resolveOpts config.ResolveOptions

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Run the static resolver pass and print resolved coordinates",
	Long: `Resolve sox source and print the (depth, index) coordinate recorded for
every local variable reference. References absent from the table are
globals, resolved by name at runtime instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveOpts.Eval, "eval", "e", "", "resolve inline code instead of reading from file")
}

func runResolve(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		resolveOpts.FilePath = args[0]
	}
	input, err := resolveOpts.Read(os.Stdin)
	if err != nil {
		return err
	}

	toks := lexer.New(input).Tokens()
	program, perrs := parser.New(toks).Parse()
	if len(perrs) > 0 {
		for _, e := range perrs {
			fmt.Fprintln(os.Stderr, e.Format(input, true))
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(perrs))
	}

	table, rerrs := resolver.Resolve(program.Statements)
	if len(rerrs) > 0 {
		for _, e := range rerrs {
			fmt.Fprintln(os.Stderr, e.Format(input, true))
		}
		return fmt.Errorf("resolving failed with %d error(s)", len(rerrs))
	}

	ids := make([]uint64, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		coord := table[id]
		fmt.Printf("token #%d -> depth=%d index=%d\n", id, coord.Depth, coord.Index)
	}
	fmt.Printf("%d local reference(s) resolved\n", len(table))
	return nil
}
