package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/generator"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/engine/selector"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/pkg/logger"
)

const solveExample = `  mentalcalc solve 47 53
  mentalcalc solve 24 35 --allow factorization --allow distributive`

// options — общие флаги всех команд.
type options struct {
	logLevel string
	seed     uint64
	allow    []string
	steps    bool
}

func (o *options) engine() *selector.Selector {
	return selector.New(logger.NewWriter(os.Stderr, o.logLevel), selector.DefaultThresholds(), nil)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "mentalcalc",
		Short:        "Pick the best mental multiplication method for two numbers",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level: debug, info, warn, error")

	root.AddCommand(
		newSolveCmd(opts),
		newStudyCmd(opts),
		newProblemCmd(opts),
		newMethodsCmd(opts),
	)
	return root
}

func newSolveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "solve NUM1 NUM2",
		Short:   "Rank the methods for NUM1 × NUM2 and show the step-by-step solutions",
		Example: solveExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num1, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[0])
			}
			num2, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[1])
			}
			allowed := make([]domain.MethodName, 0, len(opts.allow))
			for _, s := range opts.allow {
				m, err := domain.ParseMethodName(s)
				if err != nil {
					return err
				}
				allowed = append(allowed, m)
			}

			ranking, err := opts.engine().SelectOptimalMethod(num1, num2, allowed...)
			if err != nil {
				return err
			}
			renderRanking(cmd.OutOrStdout(), int64(num1), int64(num2), ranking, opts.steps)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&opts.allow, "allow", nil, "restrict the choice to these methods (repeatable)")
	cmd.Flags().BoolVar(&opts.steps, "alternatives-steps", false, "also print the steps of the alternatives")
	return cmd
}

func newStudyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "study METHOD",
		Short:   "Show the study material for a method",
		Example: "  mentalcalc study near_100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParseMethodName(args[0])
			if err != nil {
				return err
			}
			content, err := opts.engine().StudyContent(m)
			if err != nil {
				return err
			}
			renderStudy(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

func newProblemCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problem [METHOD]",
		Short: "Generate a practice problem suited to a method (any method if omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name domain.MethodName
			if len(args) == 1 {
				m, err := domain.ParseMethodName(args[0])
				if err != nil {
					return err
				}
				name = m
			}
			sel := opts.engine()
			gen := generator.NewRandom(sel.Methods())
			if cmd.Flags().Changed("seed") {
				gen = generator.New(opts.seed, sel.Methods())
			}
			p, err := gen.Generate(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", titleStyle.Render(fmt.Sprintf("%d × %d", p.Num1, p.Num2)),
				dimStyle.Render("("+p.Method.DisplayName()+")"))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible problem")
	return cmd
}

func newMethodsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the methods in registry order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderMethods(cmd.OutOrStdout(), opts.engine().Catalog())
			return nil
		},
	}
}
