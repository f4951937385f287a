package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped, %w", &Error{Kind: KindOutOfRange, Msg: "out"})
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.NotErrorIs(t, err, ErrMissingField)
	assert.NotErrorIs(t, err, ErrInternalFault)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &Error{Kind: KindInternalFault, Msg: "parse", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "parse: cause", err.Error())
}

func TestKindOf(t *testing.T) {
	testData := map[string]struct {
		err      error
		expected Kind
		client   bool
	}{
		"missing field":  {ErrMissingField, KindMissingField, true},
		"invalid type":   {ErrInvalidType, KindInvalidType, true},
		"out of range":   {fmt.Errorf("x, %w", ErrOutOfRange), KindOutOfRange, true},
		"internal fault": {ErrInternalFault, KindInternalFault, false},
		"foreign error":  {errors.New("boom"), KindInternalFault, false},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, KindOf(td.err))
			assert.Equal(t, td.client, IsClientError(td.err))
		})
	}
	assert.False(t, IsClientError(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "MissingField", KindMissingField.String())
	assert.Equal(t, "InvalidType", KindInvalidType.String())
	assert.Equal(t, "OutOfRange", KindOutOfRange.String())
	assert.Equal(t, "InternalFault", KindInternalFault.String())
}
