package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestWrapKeepsChain(t *testing.T) {
	base := &codeError{code: "NOT_FOUND"}
	err := Wrapf(Wrap(base, "load service"), "page %s", "home")

	assert.Equal(t, "page home: load service: NOT_FOUND", err.Error())
	assert.True(t, Is(err, base))

	got, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codeError](New("other"))
	assert.False(t, ok)
}

func TestStackTraces(t *testing.T) {
	assert.Nil(t, Wrap(nil, "noop"))
	assert.Nil(t, WithStack(nil))
	assert.Contains(t, fmt.Sprintf("%+v", Errorf("status %d", 503)), "TestStackTraces")
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(New("x"))), "errors_test.go")
}
