package presburger_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/go-presburger/presburger/pkg/presburger"
)

// TestDataDriven runs the scripted scenarios under testdata/ through the
// solver. Each script maintains its own State and variable namespace;
// "assert" lines take the form "<term> = <term>" or "<term> < <term>",
// tagged with the literal named by the command's "lit=" argument.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		s := presburger.EmptyPropSet()
		vars := make(map[string]presburger.Name)
		nextLit := int64(1)

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "assert":
				lit := nextLit
				if d.HasArg("lit") {
					var n int64
					d.ScanArgs(t, "lit", &n)
					lit = n
				}
				if lit >= nextLit {
					nextLit = lit + 1
				}

				var out strings.Builder
				for _, line := range strings.Split(strings.TrimSpace(d.Input), "\n") {
					line = strings.TrimSpace(line)
					if line == "" {
						continue
					}
					prop := mustParseProp(t, vars, line)
					ds, err := s.AssertProp(presburger.SingletonProvenance(presburger.Literal(lit)), prop)
					if err != nil {
						prov, _ := presburger.AsContradiction(err)
						fmt.Fprintf(&out, "contradiction %s\n", prov)
						continue
					}
					if len(ds) == 0 {
						out.WriteString("ok\n")
						continue
					}
					fmt.Fprintf(&out, "deferred %d disjunction(s)\n", len(ds))
				}
				return strings.TrimSuffix(out.String(), "\n")

			case "model":
				model, err := presburger.GetModel(s)
				if err != nil {
					return err.Error()
				}
				if len(model) == 0 {
					return "<empty model>"
				}
				return model.String()

			case "state":
				return strings.TrimSuffix(s.String(), "\n")

			default:
				t.Fatalf("unknown command %q", d.Cmd)
				return ""
			}
		})
	})
}

// mustParseProp parses "<term> (= | <) <term>" into a presburger.Prop,
// allocating a fresh user Name for every variable seen for the first time.
func mustParseProp(t *testing.T, vars map[string]presburger.Name, line string) presburger.Prop {
	var op string
	var left, right string
	switch {
	case strings.Contains(line, "="):
		op = "="
		parts := strings.SplitN(line, "=", 2)
		left, right = parts[0], parts[1]
	case strings.Contains(line, "<"):
		op = "<"
		parts := strings.SplitN(line, "<", 2)
		left, right = parts[0], parts[1]
	default:
		t.Fatalf("line %q has no recognized operator", line)
	}

	lt := mustParseTerm(t, vars, left)
	rt := mustParseTerm(t, vars, right)
	if op == "=" {
		return presburger.EqualProp(lt, rt)
	}
	return presburger.LessProp(lt, rt)
}

// mustParseTerm parses a sum of signed monomials like "3*x - y + 2" into a
// presburger.Term, using (and extending) vars to map variable names to
// Names.
func mustParseTerm(t *testing.T, vars map[string]presburger.Name, expr string) presburger.Term {
	expr = strings.ReplaceAll(expr, " ", "")
	if expr == "" {
		t.Fatalf("empty term expression")
	}
	// Normalize leading sign and split into signed monomials.
	if expr[0] != '+' && expr[0] != '-' {
		expr = "+" + expr
	}
	var monomials []string
	start := 0
	for i := 1; i < len(expr); i++ {
		if expr[i] == '+' || expr[i] == '-' {
			monomials = append(monomials, expr[start:i])
			start = i
		}
	}
	monomials = append(monomials, expr[start:])

	term := presburger.ConstTerm(0)
	for _, m := range monomials {
		sign := int64(1)
		if m[0] == '-' {
			sign = -1
		}
		m = m[1:]

		if idx := strings.Index(m, "*"); idx >= 0 {
			coeffStr, name := m[:idx], m[idx+1:]
			coeff, err := strconv.ParseInt(coeffStr, 10, 64)
			if err != nil {
				t.Fatalf("bad coefficient in %q: %v", m, err)
			}
			term = term.Add(presburger.VarTerm(nameFor(vars, name)).ScalarMul(sign * coeff))
			continue
		}

		if n, err := strconv.ParseInt(m, 10, 64); err == nil {
			term = term.Add(presburger.ConstTerm(sign * n))
			continue
		}

		term = term.Add(presburger.VarTerm(nameFor(vars, m)).ScalarMul(sign))
	}
	return term
}

func nameFor(vars map[string]presburger.Name, varName string) presburger.Name {
	if n, ok := vars[varName]; ok {
		return n
	}
	n := presburger.UserName(int64(len(vars) + 1))
	vars[varName] = n
	return n
}
