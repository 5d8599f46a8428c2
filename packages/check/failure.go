package check

import "fmt"

// Failure is raised (via panic) by a check or navigation method that did not
// hold. Only the soft assertion engine and Capture recover it; any other
// panic value passes through untouched.
type Failure struct {
	Message string
	Cause   error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Raise panics with a Failure carrying the formatted message.
func Raise(format string, args ...any) {
	panic(&Failure{Message: fmt.Sprintf(format, args...)})
}

// RaiseCause is Raise with an underlying cause attached.
func RaiseCause(cause error, format string, args ...any) {
	panic(&Failure{Message: fmt.Sprintf(format, args...), Cause: cause})
}

// Capture runs fn and converts a raised Failure into an error. Other panics
// propagate. It is the hard-assertion entry point for callers not using a
// soft session.
func Capture(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()
	fn()
	return nil
}
