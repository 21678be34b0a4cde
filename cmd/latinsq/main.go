// Command latinsq is the command-line front end: generate, solve and
// grade puzzles without running the web server.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/latinsq/internal/codec"
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/generator"
	"svw.info/latinsq/internal/solver"
)

func main() {
	root := &cobra.Command{
		Use:           "latinsq",
		Short:         "Latin-square puzzle generator and solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(generateCmd(), solveCmd(), gradeCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var params string
	var seed int64
	var timeout time.Duration
	var showSolution bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle at the requested difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			p, st, err := generator.New().Generate(ctx, params, seed)
			if err != nil {
				return err
			}
			fmt.Printf("%s:%s\n", p.Params, p.Desc)
			if showSolution {
				fmt.Println(p.Solution)
			}
			fmt.Fprintf(os.Stderr, "seed %d, %d nodes, %s\n", seed, st.Nodes, st.Duration.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&params, "params", "p", "3x3", "puzzle parameters, e.g. 3x3, 9j, 3x3xkdi")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")
	cmd.Flags().BoolVar(&showSolution, "solution", false, "also print the solution move string")
	return cmd
}

// splitID accepts either "params desc" as two args or the combined
// "params:desc" form the generator prints.
func splitID(args []string) (string, string, error) {
	switch len(args) {
	case 1:
		parts := strings.SplitN(args[0], ":", 2)
		if len(parts) != 2 {
			return "", "", fmt.Errorf("expected params:desc, got %q", args[0])
		}
		return parts[0], parts[1], nil
	case 2:
		return args[0], args[1], nil
	}
	return "", "", fmt.Errorf("expected 1 or 2 arguments, got %d", len(args))
}

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <params:desc>",
		Short: "Solve a puzzle and print the filled grid",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, desc, err := splitID(args)
			if err != nil {
				return err
			}
			res, _, st, err := solver.NewEngine().Solve(cmd.Context(), params, desc)
			if err != nil {
				return err
			}
			if res.Outcome != domain.Solved {
				return fmt.Errorf("%s", res.Outcome)
			}
			p, err := codec.DecodeParams(params)
			if err != nil {
				return err
			}
			printGrid(res.Grid, p.Order())
			fmt.Fprintf(os.Stderr, "difficulty %s, %d nodes, %s\n", res.Diff, st.Nodes, st.Duration.Round(time.Millisecond))
			return nil
		},
	}
	return cmd
}

func gradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade <params:desc>",
		Short: "Report the difficulty of a puzzle without printing its solution",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, desc, err := splitID(args)
			if err != nil {
				return err
			}
			res, _, _, err := solver.NewEngine().Solve(cmd.Context(), params, desc)
			if err != nil {
				return err
			}
			switch res.Outcome {
			case domain.Solved:
				fmt.Println(res.Diff)
				if res.KDiff > domain.CageSingles {
					fmt.Println(res.KDiff)
				}
			default:
				fmt.Println(res.Outcome)
			}
			return nil
		},
	}
	return cmd
}

func printGrid(g domain.Grid, cr int) {
	var sb strings.Builder
	for y := 0; y < cr; y++ {
		for x := 0; x < cr; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", g[y*cr+x])
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
