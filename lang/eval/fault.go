package eval

import (
	"log/slog"

	"github.com/ardnew/curry/lang/debruijn"
	"github.com/ardnew/curry/pkg"
)

// ErrFault is matched by every [Fault].
var ErrFault = pkg.NewError("evaluation fault")

// Fault is the panic value raised when evaluation meets an expression that
// was not well scoped or applies a value that is not a closure. Faults are
// never returned; a host that accepts untrusted trees recovers them.
type Fault struct {
	Reason string
	Expr   debruijn.Expression
}

func fault(reason string, expr debruijn.Expression) *Fault {
	return &Fault{Reason: reason, Expr: expr}
}

func (f *Fault) Error() string { return f.Reason }

func (f *Fault) Unwrap() error { return ErrFault }

func (f *Fault) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("error", f.Reason)}
	if f.Expr != nil {
		attrs = append(attrs, slog.String("expr", f.Expr.String()))
	}

	return slog.GroupValue(attrs...)
}

// Recover converts a recovered [Fault] into an error. It must be called
// directly by a deferred function. Panics that are not faults propagate.
//
//	defer eval.Recover(&err)
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	if f, ok := r.(*Fault); ok {
		*err = f

		return
	}

	panic(r)
}
