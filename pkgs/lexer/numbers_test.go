package lexer

import "testing"

func TestNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "single_digit",
			input: "7\n",
			expected: []tokenExpectation{
				{NUMBER, "7", 1, 1},
				{EOF, "", 2, 1},
			},
		},
		{
			name:  "multi_digit",
			input: "503\n",
			expected: []tokenExpectation{
				{NUMBER, "503", 1, 1},
				{EOF, "", 2, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestDiceRolls(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "simple_roll",
			input: "2d6\n",
			expected: []tokenExpectation{
				{RANDOM, "2d6", 1, 1},
				{EOF, "", 2, 1},
			},
		},
		{
			name:  "big_roll",
			input: "10d20\n",
			expected: []tokenExpectation{
				{RANDOM, "10d20", 1, 1},
				{EOF, "", 2, 1},
			},
		},
		{
			// d with no trailing digit falls back to the plain number.
			name:  "dangling_d",
			input: "2d\n",
			expected: []tokenExpectation{
				{NUMBER, "2", 1, 1},
				{EOF, "", 2, 1},
			},
		},
		{
			// Rolls win over numbers as the longer match at the shared prefix.
			name:  "roll_in_expression",
			input: "let Damage = 2d6 + 3\n",
			expected: []tokenExpectation{
				{KEYWORD_COMMAND, "let", 1, 1},
				{VARIABLE, "Damage", 1, 5},
				{EQUALS, "=", 1, 12},
				{RANDOM, "2d6", 1, 14},
				{ARITHMETIC, "+", 1, 18},
				{NUMBER, "3", 1, 20},
				{EOF, "", 2, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestArithmeticOperators(t *testing.T) {
	assertTokens(t, "A * 2 + B - 1\n", []tokenExpectation{
		{VARIABLE, "A", 1, 1},
		{ARITHMETIC, "*", 1, 3},
		{NUMBER, "2", 1, 5},
		{ARITHMETIC, "+", 1, 7},
		{VARIABLE, "B", 1, 9},
		{ARITHMETIC, "-", 1, 11},
		{NUMBER, "1", 1, 13},
		{EOF, "", 2, 1},
	})
}
