// Command presburger-demo exercises pkg/presburger end to end: it builds a
// handful of linear propositions, asserts them incrementally, hands any
// deferred shadow disjunctions to examplebranch's DPLL-style driver, and
// prints the resulting model. It exists to show the library's external
// interface in use, as a single root command with one flag set.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-presburger/presburger/examplebranch"
	"github.com/go-presburger/presburger/pkg/presburger"
)

var rootCmd = &cobra.Command{
	Use:   "presburger-demo",
	Short: "Run a handful of worked Presburger-arithmetic scenarios.",
	Long: `presburger-demo asserts a small set of hard-coded linear integer
propositions against pkg/presburger, resolving any deferred shadow
disjunctions with examplebranch, and prints the resulting state and model.`,
	Run: runDemo,
}

func init() {
	rootCmd.Flags().Bool("verbose", false, "enable debug logging")
	rootCmd.Flags().String("scenario", "range", "which scenario to run: range, omega, gray, unsat")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, _ []string) {
	logger := log.New()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}
	scenario, _ := cmd.Flags().GetString("scenario")

	s := presburger.EmptyPropSet().WithLogger(logger)

	var ds []presburger.ShadowDisjunction
	var err error
	switch scenario {
	case "range":
		ds, err = runRangeScenario(s)
	case "omega":
		ds, err = runOmegaScenario(s)
	case "gray":
		ds, err = runGrayScenario(s)
	case "unsat":
		ds, err = runUnsatScenario(s)
	default:
		fmt.Fprintf(os.Stderr, "unknown scenario %q (want range, omega, gray, unsat)\n", scenario)
		os.Exit(1)
	}

	if err != nil {
		prov, _ := presburger.AsContradiction(err)
		fmt.Printf("contradiction, blaming literals %s\n", prov)
		os.Exit(1)
	}

	if len(ds) > 0 {
		driver := examplebranch.NewDriver(logger)
		s, err = driver.Discharge(s, ds)
		if err != nil {
			fmt.Printf("no branch discharged every deferred disjunction: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("final state:")
	fmt.Print(s.String())

	model, err := presburger.GetModel(s)
	if err != nil {
		fmt.Printf("could not extract a model: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("model: %s\n", model)
}

// runRangeScenario asserts x + y = 10, x - y = 0.
func runRangeScenario(s presburger.State) ([]presburger.ShadowDisjunction, error) {
	x, y := presburger.UserName(1), presburger.UserName(2)
	if _, err := s.AssertProp(presburger.SingletonProvenance(1),
		presburger.EqualProp(presburger.VarTerm(x).Add(presburger.VarTerm(y)), presburger.ConstTerm(10))); err != nil {
		return nil, err
	}
	return s.AssertProp(presburger.SingletonProvenance(2),
		presburger.EqualProp(presburger.VarTerm(x).Sub(presburger.VarTerm(y)), presburger.ConstTerm(0)))
}

// runOmegaScenario asserts 3x + 5y = 1, forcing the Omega modulus trick.
func runOmegaScenario(s presburger.State) ([]presburger.ShadowDisjunction, error) {
	x, y := presburger.UserName(1), presburger.UserName(2)
	lhs := presburger.VarTerm(x).ScalarMul(3).Add(presburger.VarTerm(y).ScalarMul(5))
	return s.AssertProp(presburger.SingletonProvenance(1), presburger.EqualProp(lhs, presburger.ConstTerm(1)))
}

// runGrayScenario asserts 1 < x, x < 4, producing a deferred disjunction.
func runGrayScenario(s presburger.State) ([]presburger.ShadowDisjunction, error) {
	x := presburger.UserName(1)
	if _, err := s.AssertProp(presburger.SingletonProvenance(1),
		presburger.LessProp(presburger.ConstTerm(1), presburger.VarTerm(x))); err != nil {
		return nil, err
	}
	return s.AssertProp(presburger.SingletonProvenance(2),
		presburger.LessProp(presburger.VarTerm(x), presburger.ConstTerm(4)))
}

// runUnsatScenario asserts x < y, y < z, z < x, an unsatisfiable cycle.
func runUnsatScenario(s presburger.State) ([]presburger.ShadowDisjunction, error) {
	x, y, z := presburger.UserName(1), presburger.UserName(2), presburger.UserName(3)
	if _, err := s.AssertProp(presburger.SingletonProvenance(1), presburger.LessProp(presburger.VarTerm(x), presburger.VarTerm(y))); err != nil {
		return nil, err
	}
	if _, err := s.AssertProp(presburger.SingletonProvenance(2), presburger.LessProp(presburger.VarTerm(y), presburger.VarTerm(z))); err != nil {
		return nil, err
	}
	return s.AssertProp(presburger.SingletonProvenance(3), presburger.LessProp(presburger.VarTerm(z), presburger.VarTerm(x)))
}
