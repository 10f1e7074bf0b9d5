package ops

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/born-ml/rdiff/internal/specfn"
)

// Registry errors.
var (
	// ErrUnknownKind is returned for a Kind outside the registry.
	ErrUnknownKind = errors.New("unknown operation")

	// ErrArity is returned when an operation gets the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)

// Eval computes k(args...) with lib.
//
// Every failure is reported as an error: domain violations from lib,
// division by zero, a NaN result and the big.ErrNaN panics of math/big all
// come back as *specfn.DomainError.
func Eval[T any](lib specfn.Library[T], k Kind, args []T) (v T, err error) {
	r := Lookup(k)
	if r == nil {
		return v, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	if len(args) != r.Arity {
		return v, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, r.Name, r.Arity, len(args))
	}

	defer func() {
		if p := recover(); p != nil {
			nan, ok := p.(big.ErrNaN)
			if !ok {
				panic(p)
			}
			var zero T
			v, err = zero, domainError(lib, r.Name, nan.Error(), args)
		}
	}()

	v, err = dispatch(lib, k, args)
	if err != nil {
		return v, err
	}
	if lib.IsNaN(v) {
		var zero T
		return zero, domainError(lib, r.Name, "result is not a number", args)
	}
	return v, nil
}

func dispatch[T any](lib specfn.Library[T], k Kind, a []T) (T, error) {
	switch k {
	case Add:
		return lib.Add(a[0], a[1]), nil
	case Sub:
		return lib.Sub(a[0], a[1]), nil
	case Mul:
		return lib.Mul(a[0], a[1]), nil
	case Div:
		if lib.IsZero(a[1]) {
			var zero T
			return zero, domainError(lib, "div", "division by zero", a)
		}
		return lib.Div(a[0], a[1]), nil
	case Neg:
		return lib.Neg(a[0]), nil
	case Pow:
		return lib.Pow(a[0], a[1])

	case Exp:
		return lib.Exp(a[0])
	case Log:
		return lib.Log(a[0])
	case Sqrt:
		return lib.Sqrt(a[0])
	case Sin:
		return lib.Sin(a[0])
	case Cos:
		return lib.Cos(a[0])
	case Tanh:
		return lib.Tanh(a[0])
	case Expm1:
		return lib.Expm1(a[0])
	case Log1p:
		return lib.Log1p(a[0])
	case Erf:
		return lib.Erf(a[0])
	case Erfc:
		return lib.Erfc(a[0])

	case Tgamma:
		return lib.Tgamma(a[0])
	case Lgamma:
		return lib.Lgamma(a[0])
	case Polygamma:
		n, err := intOrder(lib, "polygamma", a)
		if err != nil {
			var zero T
			return zero, err
		}
		return lib.Polygamma(n, a[1])
	case Beta:
		return lib.Beta(a[0], a[1])

	case Ibeta:
		return lib.Ibeta(a[0], a[1], a[2])
	case IbetaDerivA:
		return lib.IbetaDerivA(a[0], a[1], a[2])
	case IbetaDerivB:
		return lib.IbetaDerivB(a[0], a[1], a[2])

	case CylBesselJ:
		n, err := intOrder(lib, "cyl_bessel_j", a)
		if err != nil {
			var zero T
			return zero, err
		}
		return lib.CylBesselJ(n, a[1])
	case CylBesselK:
		return lib.CylBesselK(a[0], a[1])
	case CylBesselKDerivNu:
		return lib.CylBesselKDerivNu(a[0], a[1])

	case Hypergeometric1F0:
		return lib.Hypergeometric1F0(a[0], a[1])

	case LambertW0:
		return lib.LambertW0(a[0])
	case LambertWm1:
		return lib.LambertWm1(a[0])

	case Powm1:
		return lib.Powm1(a[0], a[1])
	}

	var zero T
	return zero, fmt.Errorf("%w: %v", ErrUnknownKind, k)
}

// intOrder reads the integer order carried as the first argument.
func intOrder[T any](lib specfn.Library[T], fn string, a []T) (int, error) {
	if !lib.IsInt(a[0]) {
		return 0, domainError(lib, fn, "order must be an integer", a)
	}
	return int(lib.Float64(a[0])), nil
}

func domainError[T any](lib specfn.Library[T], fn, reason string, args []T) error {
	fs := make([]float64, len(args))
	for i, a := range args {
		fs[i] = lib.Float64(a)
	}
	return &specfn.DomainError{Func: fn, Args: fs, Reason: reason}
}
