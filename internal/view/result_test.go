package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultTransitions(t *testing.T) {
	r := Pending[int]()
	assert.Equal(t, Loading, r.Status())
	_, ok := r.Value()
	assert.False(t, ok)
	assert.NoError(t, r.Err())

	t.Run("loading to success", func(t *testing.T) {
		s, err := r.Succeed(7)
		require.NoError(t, err)
		assert.Equal(t, Success, s.Status())
		v, ok := s.Value()
		assert.True(t, ok)
		assert.Equal(t, 7, v)

		again, err := s.Fail(errors.New("late"))
		assert.ErrorIs(t, err, ErrSettled)
		assert.Equal(t, s, again)

		_, err = s.Succeed(8)
		assert.ErrorIs(t, err, ErrSettled)
	})

	t.Run("loading to failure", func(t *testing.T) {
		reason := errors.New("boom")
		f, err := r.Fail(reason)
		require.NoError(t, err)
		assert.Equal(t, Failure, f.Status())
		assert.ErrorIs(t, f.Err(), reason)
		_, ok := f.Value()
		assert.False(t, ok)

		_, err = f.Succeed(1)
		assert.ErrorIs(t, err, ErrSettled)
	})

	t.Run("failure without a reason still carries one", func(t *testing.T) {
		f, err := r.Fail(nil)
		require.NoError(t, err)
		assert.Error(t, f.Err())
	})

	// Settling returns a new value; the original stays Loading.
	assert.Equal(t, Loading, r.Status())
}

func TestStatusText(t *testing.T) {
	text, err := Failure.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "failure", string(text))
	assert.Equal(t, "Status(9)", Status(9).String())
}
