package scim

import (
	"testing"
)

func TestPageOffset(t *testing.T) {
	testCases := []struct {
		startIndex int
		expected   int
	}{
		{1, 0},
		{2, 1},
		{51, 50},
		{0, 0},
		{-5, 0},
	}

	for _, tc := range testCases {
		p := Page{StartIndex: tc.startIndex, Count: DefaultCount}
		if actual := p.Offset(); actual != tc.expected {
			t.Errorf("Page{StartIndex: %d}.Offset() = %d; want %d", tc.startIndex, actual, tc.expected)
		}
	}
}

func TestPageLimit(t *testing.T) {
	testCases := []struct {
		count    int
		expected int
	}{
		{50, 50},
		{1, 1},
		{200, 200},
		{201, 200},
		{1000, 200},
		{0, 0},
		{-1, 0},
	}

	for _, tc := range testCases {
		p := Page{StartIndex: 1, Count: tc.count}
		if actual := p.Limit(); actual != tc.expected {
			t.Errorf("Page{Count: %d}.Limit() = %d; want %d", tc.count, actual, tc.expected)
		}
	}
}
