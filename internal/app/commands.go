package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fpe/lists"
	"fpe/pipeline"
)

func newRunCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "run <pipeline>",
		Short: "Run a pipeline from the config file or a YAML definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := e.resolve(args[0])
			if err != nil {
				return err
			}
			input, err := e.input()
			if err != nil {
				return err
			}

			res, err := e.runner().Run(cmd.Context(), def, input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Render(e.style))
			return nil
		},
	}
}

func newDemoCommand(e *env) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Zip the input with itself, square, keep evens and sum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := e.input()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if verbose {
				add := func(a, b int) int { return a + b }
				zipped := input.ZipWith(input, add)
				squared := zipped.Map(func(x int) int { return x * x })
				evens := squared.Filter(func(x int) bool { return x%2 == 0 })
				for _, stage := range []struct {
					name string
					l    lists.List[int]
				}{
					{"input", input},
					{"zipWith(add, self)", zipped},
					{"map(square)", squared},
					{"filter(even)", evens},
				} {
					fmt.Fprintf(out, "%-20s %s\n", stage.name, stage.l.Render(e.style))
				}
			}

			res, err := e.runner().Run(cmd.Context(), pipeline.Scenario(), input)
			if err != nil {
				return err
			}
			e.logger.Info("demo finished", zap.String("result", res.Render(e.style)))
			if verbose {
				fmt.Fprintf(out, "%-20s %s\n", "reduce(add)", res.Render(e.style))
				return nil
			}
			fmt.Fprintln(out, res.Render(e.style))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every intermediate list")
	return cmd
}

func newOpsCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the supported ops and the functions each accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := e.runner().Registry()
			out := cmd.OutOrStdout()
			for _, op := range pipeline.Ops() {
				kind, _ := pipeline.OpKind(op)
				names := reg.Names(kind)
				if len(names) == 0 {
					fmt.Fprintln(out, op)
					continue
				}
				fmt.Fprintf(out, "%s\t%s: %s\n", op, kind, strings.Join(names, ", "))
			}
			return nil
		},
	}
}
