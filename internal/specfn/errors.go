package specfn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDomain is matched by every *DomainError through errors.Is.
var ErrDomain = errors.New("argument outside function domain")

// DomainError reports an argument outside the domain of a function: a pole,
// a branch cut or a parameter range the function is not defined on.
type DomainError struct {
	Func   string    // Function name (e.g. "tgamma")
	Args   []float64 // Arguments, rounded to float64 for reporting
	Reason string    // What is wrong with them
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	return fmt.Sprintf("%s(%s): %s", e.Func, strings.Join(args, ", "), e.Reason)
}

// Is makes errors.Is(err, ErrDomain) hold for domain errors.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainErr(fn, reason string, args ...float64) error {
	return &DomainError{Func: fn, Args: args, Reason: reason}
}
