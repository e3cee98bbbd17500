package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})
}

func TestIs(t *testing.T) {
	assert.True(t, Is(ErrNotFound, ErrNotFound))
	assert.True(t, Is(Wrap(ErrNotFound, "context"), ErrNotFound))
	assert.False(t, Is(ErrNotFound, ErrConflict))
}

func TestAs(t *testing.T) {
	var fieldErr *FieldError
	err := Wrap(&FieldError{Field: "url", Message: "is required", Err: ErrInvalidInput}, "context")

	require.True(t, As(err, &fieldErr))
	assert.Equal(t, "url", fieldErr.Field)
}

func TestFieldErrors(t *testing.T) {
	errKindA := Wrap(ErrInvalidInput, "kind a")
	errKindB := Wrap(ErrConflict, "kind b")

	fe := FieldErrors{
		{Field: "url", Message: "must be a valid URL", Err: errKindA},
		{Field: "certificate", Message: "already exists", Err: errKindB},
	}

	t.Run("Error is sorted and joined", func(t *testing.T) {
		assert.Equal(t, "certificate: already exists; url: must be a valid URL", fe.Error())
	})

	t.Run("Is sees every collected kind", func(t *testing.T) {
		var err error = fe
		assert.ErrorIs(t, err, errKindA)
		assert.ErrorIs(t, err, errKindB)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, ErrConflict)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("As finds the collection through a wrap", func(t *testing.T) {
		var target FieldErrors
		require.True(t, errors.As(Wrap(fe, "save"), &target))
		assert.Len(t, target, 2)
	})

	t.Run("Details joins messages for the same field", func(t *testing.T) {
		details := FieldErrors{
			{Field: "url", Message: "is required"},
			{Field: "url", Message: "too long"},
		}.Details()
		assert.Equal(t, map[string]string{"url": "is required; too long"}, details)
	})

	t.Run("ErrOrNil", func(t *testing.T) {
		assert.NoError(t, FieldErrors{}.ErrOrNil())
		assert.Error(t, fe.ErrOrNil())
	})
}
