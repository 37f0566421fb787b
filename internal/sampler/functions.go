package sampler

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownFunction is returned when a function spec cannot be resolved.
var ErrUnknownFunction = errors.New("sampler: unknown function")

// polyPrefix introduces a polynomial spec, e.g. "poly:1,0,-1" for z^2-1.
const polyPrefix = "poly:"

// Builtin describes a named function.
type Builtin struct {
	Name string
	Expr string
	Func Func
}

var builtins = map[string]Builtin{
	"z":         {Name: "z", Expr: "z", Func: func(z complex128) complex128 { return z }},
	"z^2":       {Name: "z^2", Expr: "z^2", Func: func(z complex128) complex128 { return z * z }},
	"z^3":       {Name: "z^3", Expr: "z^3", Func: func(z complex128) complex128 { return z * z * z }},
	"1/z":       {Name: "1/z", Expr: "1/z", Func: func(z complex128) complex128 { return 1 / z }},
	"exp":       {Name: "exp", Expr: "e^z", Func: cmplx.Exp},
	"log":       {Name: "log", Expr: "log z (principal branch)", Func: cmplx.Log},
	"sqrt":      {Name: "sqrt", Expr: "sqrt z (principal branch)", Func: cmplx.Sqrt},
	"sin":       {Name: "sin", Expr: "sin z", Func: cmplx.Sin},
	"cos":       {Name: "cos", Expr: "cos z", Func: cmplx.Cos},
	"tan":       {Name: "tan", Expr: "tan z", Func: cmplx.Tan},
	"mobius":    {Name: "mobius", Expr: "(z-1)/(z+1)", Func: func(z complex128) complex128 { return (z - 1) / (z + 1) }},
	"rational":  {Name: "rational", Expr: "(z^2-1)(z-2-i)^2/(z^2+2+2i)", Func: rational},
	"const1000": {Name: "const1000", Expr: "1000", Func: func(complex128) complex128 { return 1000 }},
}

func rational(z complex128) complex128 {
	w := z - 2 - 1i
	return (z*z - 1) * w * w / (z*z + 2 + 2i)
}

// Builtins returns all built-in functions sorted by name.
func Builtins() []Builtin {
	names := Names()
	out := make([]Builtin, len(names))
	for i, name := range names {
		out[i] = builtins[name]
	}
	return out
}

// Names returns the names of all built-in functions in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a function spec: either a built-in name or a polynomial
// "poly:c_n,...,c_1,c_0" with real or complex coefficients, highest degree
// first.
func Lookup(spec string) (Func, error) {
	spec = strings.TrimSpace(spec)
	if rest, ok := strings.CutPrefix(spec, polyPrefix); ok {
		coeffs, err := ParseCoefficients(rest)
		if err != nil {
			return nil, err
		}
		return Polynomial(coeffs), nil
	}

	b, ok := builtins[spec]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s, or %s<coefficients>)",
			ErrUnknownFunction, spec, strings.Join(Names(), ", "), polyPrefix)
	}
	return b.Func, nil
}

// ParseCoefficients parses a comma-separated list of complex coefficients
// such as "1, 0, -2+1i".
func ParseCoefficients(s string) ([]complex128, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]complex128, 0, len(parts))
	for _, p := range parts {
		p = strings.ReplaceAll(strings.TrimSpace(p), " ", "")
		if p == "" {
			return nil, fmt.Errorf("%w: empty polynomial coefficient in %q", ErrUnknownFunction, s)
		}
		c, err := strconv.ParseComplex(p, 128)
		if err != nil {
			return nil, fmt.Errorf("%w: bad polynomial coefficient %q: %w", ErrUnknownFunction, p, err)
		}
		coeffs = append(coeffs, c)
	}
	return coeffs, nil
}

// Polynomial returns the polynomial with the given coefficients, highest
// degree first, evaluated by Horner's rule.
func Polynomial(coeffs []complex128) Func {
	cs := make([]complex128, len(coeffs))
	copy(cs, coeffs)
	return func(z complex128) complex128 {
		var acc complex128
		for _, c := range cs {
			acc = acc*z + c
		}
		return acc
	}
}
