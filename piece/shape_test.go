package piece

import (
	"slices"
	"testing"
)

func mask(bits ...int) []bool {
	m := make([]bool, len(bits))
	for i, b := range bits {
		m[i] = b != 0
	}
	return m
}

func TestShape_TrimSpace(t *testing.T) {
	tests := []struct {
		input  Shape
		expect Shape
	}{
		{
			input: Shape{Width: 3, Height: 3, Mask: mask(
				0, 1, 0,
				1, 1, 1,
				0, 0, 0,
			)},
			expect: Shape{Width: 3, Height: 2, Mask: mask(
				0, 1, 0,
				1, 1, 1,
			)},
		},
		{
			input: Shape{Width: 3, Height: 3, Mask: mask(
				0, 0, 0,
				0, 1, 0,
				0, 0, 0,
			)},
			expect: Shape{Width: 1, Height: 1, Mask: mask(
				1,
			)},
		},
		{
			input: Shape{Width: 4, Height: 4, Mask: mask(
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
				1, 1, 1, 1,
			)},
			expect: Shape{Width: 4, Height: 1, Mask: mask(
				1, 1, 1, 1,
			)},
		},
		{
			input:  Shape{Width: 2, Height: 2, Mask: mask(0, 0, 0, 0)},
			expect: Shape{},
		},
	}
	for _, test := range tests {
		got := test.input.TrimSpace()
		if !slices.Equal(got.Mask, test.expect.Mask) || got.Width != test.expect.Width || got.Height != test.expect.Height {
			t.Errorf("TrimSpace(%v): got: %v, want: %v", test.input, got, test.expect)
		}
	}
}
