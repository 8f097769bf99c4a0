// Package hamlet is a tiny specification helper for tests: "to be or not
// to be". The first value returned by Specifications asserts that things
// hold, the second that they do not.
package hamlet

import (
	"reflect"
	"strings"
	"testing"
)

type Hamlet struct {
	t     testing.TB
	truth bool
}

func Specifications(t testing.TB) (*Hamlet, *Hamlet) {
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) verb() string {
	if it.truth {
		return "must"
	}
	return "must not"
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if reflect.DeepEqual(expected, actual) != it.truth {
		it.t.Fatalf("%#v %s be equal to %#v", actual, it.verb(), expected)
	}
}

func (it *Hamlet) Nil(value interface{}) {
	it.t.Helper()
	if isNil(value) != it.truth {
		it.t.Fatalf("%#v %s be nil", value, it.verb())
	}
}

func (it *Hamlet) True(value bool) {
	it.t.Helper()
	if value != it.truth {
		it.t.Fatalf("condition %s be true", it.verb())
	}
}

func (it *Hamlet) Length(value interface{}, size int) {
	it.t.Helper()
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		if (reflected.Len() == size) != it.truth {
			it.t.Fatalf("length of %#v is %d, and it %s be %d", value, reflected.Len(), it.verb(), size)
		}
	default:
		it.t.Fatalf("%#v has no length", value)
	}
}

func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	if text, ok := actual.(string); ok {
		if strings.Contains(text, expected) != it.truth {
			it.t.Fatalf("%q %s contain %q", text, it.verb(), expected)
		}
		return
	}
	it.t.Fatalf("%#v is not text", actual)
}

func (it *Hamlet) Panic(todo func()) {
	it.t.Helper()
	panicked := func() (result bool) {
		defer func() {
			result = recover() != nil
		}()
		todo()
		return false
	}()
	if panicked != it.truth {
		it.t.Fatalf("function %s panic", it.verb())
	}
}
