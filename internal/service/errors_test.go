package service

import (
    "errors"
    "fmt"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestKindOfForeignError(t *testing.T) {
    assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
    assert.Equal(t, "", ReasonOf(errors.New("boom")))
}

func TestKindOfWrapped(t *testing.T) {
    err := fmt.Errorf("handler saw: %w", forbidden(ReasonRoomFull))
    assert.Equal(t, KindForbidden, KindOf(err))
    assert.Equal(t, ReasonRoomFull, ReasonOf(err))
}

func TestInternalUnwraps(t *testing.T) {
    cause := errors.New("connection reset")
    err := internal("booking lookup", cause)
    assert.Equal(t, KindInternal, KindOf(err))
    assert.ErrorIs(t, err, cause)
}
