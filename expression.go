/*
Copyright © 2019 the echem authors.
This file is part of echem.

echem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

echem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with echem.  If not, see <http://www.gnu.org/licenses/>.
*/

package echem

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/floats"
)

// IndependentVariables are the names of the time and space coordinates
// that expressions may reference without any submodel defining them.
var IndependentVariables = []string{"t", "x_n", "x_s", "x_p", "r_n", "r_p", "y", "z"}

func isIndependent(name string) bool {
	for _, v := range IndependentVariables {
		if v == name {
			return true
		}
	}
	return false
}

// Expression is a symbolic expression. Names of variables and parameters
// are written in brackets, e.g. "[Separator porosity] ** 1.5".
//
// In addition to the usual arithmetic, expressions may use the spatial
// operators grad, div, laplacian, surf, x_average, r_average, yz_average,
// boundary_left, boundary_right, negative_tab and positive_tab, the
// elementwise functions exp, log, sqrt, sinh, cosh, tanh and arcsinh,
// and functional parameters through fn('Parameter name', args...).
type Expression struct {
	text  string
	expr  *govaluate.EvaluableExpression
	state bool
}

// NewExpression parses text into an Expression. A reference may follow an
// operator directly, as in "-[a]" or "2*[a]".
func NewExpression(text string) (Expression, error) {
	if strings.TrimSpace(text) == "" {
		return Expression{}, fmt.Errorf("echem: empty expression")
	}
	text = spaceRefs(text)
	e, err := govaluate.NewEvaluableExpressionWithFunctions(text, operators)
	if err != nil {
		return Expression{}, fmt.Errorf("echem: parsing expression %q: %v", text, err)
	}
	return Expression{text: text, expr: e}, nil
}

// MustExpression is like NewExpression but panics if text cannot be parsed.
func MustExpression(text string) Expression {
	e, err := NewExpression(text)
	if err != nil {
		panic(err)
	}
	return e
}

// spaceRefs separates each bracketed reference from an operator symbol
// written right before it. The expression lexer otherwise reads the
// symbol and the bracket as a single operator, e.g. "-[".
func spaceRefs(text string) string {
	var b strings.Builder
	var prev rune
	var quote rune
	inRef := false
	for _, c := range text {
		switch {
		case inRef:
			inRef = c != ']'
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '[':
			if prev != 0 && !unicode.IsSpace(prev) && prev != '(' && prev != ',' {
				b.WriteRune(' ')
			}
			inRef = true
		}
		b.WriteRune(c)
		prev = c
	}
	return b.String()
}

// ParseExprf formats an expression, writing each of names as a reference.
func ParseExprf(format string, names ...string) (Expression, error) {
	args := make([]interface{}, len(names))
	for i, n := range names {
		if strings.ContainsAny(n, "[]") {
			return Expression{}, fmt.Errorf("echem: name %q may not contain brackets", n)
		}
		args[i] = Ref(n)
	}
	return NewExpression(fmt.Sprintf(format, args...))
}

// Exprf is like ParseExprf but panics if the result cannot be parsed, so
// it is meant for fixed templates over fixed names.
func Exprf(format string, names ...string) Expression {
	e, err := ParseExprf(format, names...)
	if err != nil {
		panic(err)
	}
	return e
}

// StateVariable returns the expression for a state variable called name.
// State variables are the unknowns a solver integrates or solves for; each
// one needs exactly one governing equation.
func StateVariable(name string) Expression {
	e := MustExpression(Ref(name))
	e.state = true
	return e
}

// Constant returns an expression holding the value v.
func Constant(v float64) Expression {
	return MustExpression(strconv.FormatFloat(v, 'f', -1, 64))
}

// Ref returns the text referencing the variable or parameter name.
func Ref(name string) string { return "[" + name + "]" }

// Call returns the text calling the functional parameter name with the
// given argument expressions.
func Call(name string, args ...string) string {
	return fmt.Sprintf("fn('%s', %s)", name, strings.Join(args, ", "))
}

// IsState reports whether e is a state variable.
func (e Expression) IsState() bool { return e.state }

// IsZero reports whether e is the zero Expression.
func (e Expression) IsZero() bool { return e.expr == nil }

func (e Expression) String() string { return e.text }

// Vars returns the names referenced by e, in order of first appearance.
func (e Expression) Vars() []string {
	if e.expr == nil {
		return nil
	}
	return unique(e.expr.Vars())
}

// Functions returns the names of the functional parameters e calls: the
// first argument of each fn call.
func (e Expression) Functions() []string {
	if e.expr == nil {
		return nil
	}
	fn := reflect.ValueOf(noParameters).Pointer()
	var names []string
	toks := e.expr.Tokens()
	for i := 0; i+2 < len(toks); i++ {
		if toks[i].Kind != govaluate.FUNCTION || toks[i+1].Kind != govaluate.CLAUSE || toks[i+2].Kind != govaluate.STRING {
			continue
		}
		if f := reflect.ValueOf(toks[i].Value); f.Kind() != reflect.Func || f.Pointer() != fn {
			continue
		}
		if s, ok := toks[i+2].Value.(string); ok {
			names = append(names, s)
		}
	}
	return unique(names)
}

// Evaluate evaluates e with the given values for the names it references.
// Functional parameters are looked up in param, which may be nil if e
// calls none. Results are float64, or []float64 for distributed values.
func (e Expression) Evaluate(values map[string]interface{}, param *ParameterSet) (interface{}, error) {
	if e.expr == nil {
		return nil, fmt.Errorf("echem: evaluating empty expression")
	}
	funcs := make(map[string]govaluate.ExpressionFunction, len(operators))
	for k, f := range operators {
		funcs[k] = f
	}
	if param != nil {
		funcs["fn"] = param.call
	}
	ee, err := govaluate.NewEvaluableExpressionWithFunctions(e.text, funcs)
	if err != nil {
		return nil, fmt.Errorf("echem: parsing expression %q: %v", e.text, err)
	}
	v, err := ee.Evaluate(values)
	if err != nil {
		return nil, fmt.Errorf("echem: evaluating %q: %v", e.text, err)
	}
	return v, nil
}

func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// operators are the functions available in every expression.
var operators = map[string]govaluate.ExpressionFunction{
	"grad":      discretised("grad"),
	"div":       discretised("div"),
	"laplacian": discretised("laplacian"),

	"x_average":  average("x_average"),
	"r_average":  average("r_average"),
	"yz_average": average("yz_average"),

	"surf":           edge("surf", false),
	"boundary_left":  edge("boundary_left", true),
	"boundary_right": edge("boundary_right", false),
	"negative_tab":   edge("negative_tab", true),
	"positive_tab":   edge("positive_tab", false),

	"exp":     elementwise("exp", math.Exp),
	"log":     elementwise("log", math.Log),
	"sqrt":    elementwise("sqrt", math.Sqrt),
	"sinh":    elementwise("sinh", math.Sinh),
	"cosh":    elementwise("cosh", math.Cosh),
	"tanh":    elementwise("tanh", math.Tanh),
	"arcsinh": elementwise("arcsinh", math.Asinh),

	"fn": noParameters,
}

// noParameters stands in for fn when no parameter set is given.
func noParameters(args ...interface{}) (interface{}, error) {
	return nil, fmt.Errorf("echem: functional parameters need a parameter set to be evaluated")
}

// discretised returns an operator that can only be applied after
// discretisation.
func discretised(name string) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		return nil, fmt.Errorf("echem: operator '%s' needs a discretised domain", name)
	}
}

func oneArg(name string, args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("echem: got %d arguments for function '%s', but needs 1", len(args), name)
	}
	return args[0], nil
}

func average(name string) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		a, err := oneArg(name, args)
		if err != nil {
			return nil, err
		}
		switch v := a.(type) {
		case float64:
			return v, nil
		case []float64:
			if len(v) == 0 {
				return nil, fmt.Errorf("echem: '%s' of an empty array", name)
			}
			return floats.Sum(v) / float64(len(v)), nil
		}
		return nil, fmt.Errorf("echem: invalid argument type %T for function '%s'", a, name)
	}
}

// edge returns an operator taking the first (left) or last value of a
// distributed variable. Scalars are returned as they are.
func edge(name string, left bool) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		a, err := oneArg(name, args)
		if err != nil {
			return nil, err
		}
		switch v := a.(type) {
		case float64:
			return v, nil
		case []float64:
			if len(v) == 0 {
				return nil, fmt.Errorf("echem: '%s' of an empty array", name)
			}
			if left {
				return v[0], nil
			}
			return v[len(v)-1], nil
		}
		return nil, fmt.Errorf("echem: invalid argument type %T for function '%s'", a, name)
	}
}

func elementwise(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		a, err := oneArg(name, args)
		if err != nil {
			return nil, err
		}
		switch v := a.(type) {
		case float64:
			return f(v), nil
		case []float64:
			o := make([]float64, len(v))
			for i, x := range v {
				o[i] = f(x)
			}
			return o, nil
		}
		return nil, fmt.Errorf("echem: invalid argument type %T for function '%s'", a, name)
	}
}
