package yatzy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	h, err := NewHand(1, 1, 2, 4, 6)
	require.NoError(t, err)
	assert.Equal(t, Hand{1, 1, 2, 4, 6}, h)

	tests := []struct {
		name   string
		values []int
	}{
		{"empty", nil},
		{"too few", []int{1, 2, 3, 4}},
		{"too many", []int{1, 2, 3, 4, 5, 6}},
		{"zero", []int{0, 2, 3, 4, 5}},
		{"seven", []int{1, 2, 3, 4, 7}},
		{"negative", []int{1, -2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHand(tt.values...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHand)

			var handErr *InvalidHandError
			require.True(t, errors.As(err, &handErr))
			assert.Equal(t, len(tt.values), len(handErr.Values))
		})
	}
}

func TestMustHandPanics(t *testing.T) {
	assert.Panics(t, func() { MustHand(1, 2, 3) })
	assert.NotPanics(t, func() { MustHand(6, 6, 6, 6, 6) })
}

func TestParseHand(t *testing.T) {
	tests := []struct {
		input   string
		want    Hand
		wantErr bool
	}{
		{input: "1,1,2,4,6", want: Hand{1, 1, 2, 4, 6}},
		{input: "1 1 2 4 6", want: Hand{1, 1, 2, 4, 6}},
		{input: " 2, 3, 4, 5, 6 ", want: Hand{2, 3, 4, 5, 6}},
		{input: "66666", want: Hand{6, 6, 6, 6, 6}},
		{input: "[1 2 3 4 5]", wantErr: true},
		{input: "1,2,3", wantErr: true},
		{input: "123456", wantErr: true},
		{input: "1,2,3,4,x", wantErr: true},
		{input: "0,2,3,4,5", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHand(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandString(t *testing.T) {
	h := Hand{3, 1, 4, 1, 5}
	assert.Equal(t, "[3 1 4 1 5]", h.String())
	assert.Equal(t, []int{3, 1, 4, 1, 5}, h.Values())

	parsed, err := ParseHand("31415")
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestHandValid(t *testing.T) {
	assert.True(t, Hand{1, 2, 3, 4, 5}.Valid())
	assert.False(t, Hand{}.Valid())
	assert.False(t, Hand{1, 2, 3, 4, 7}.Valid())
}

func TestScoringUnvalidatedHand(t *testing.T) {
	h := Hand{7, 1, 1, 1, 1}
	assert.False(t, h.Valid())
	assert.NotPanics(t, func() { h.Scores() })
	assert.Equal(t, 4, h.Ones())
	assert.Equal(t, 4, h.FourAlike())
	assert.Zero(t, h.Yatzy())

	assert.Zero(t, Hand{}.Yatzy())
	assert.Zero(t, Hand{}.OnePair())
	assert.Zero(t, Hand{0, 0, 0, 2, 2}.FullHouse())
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory("full-house")
	require.NoError(t, err)
	assert.Equal(t, FullHouse, got)

	got, err = ParseCategory("three_alike")
	require.NoError(t, err)
	assert.Equal(t, ThreeAlike, got)

	_, err = ParseCategory("straight")
	assert.Error(t, err)

	assert.Equal(t, "Category(42)", Category(42).String())
	assert.Len(t, Categories(), 15)
}
