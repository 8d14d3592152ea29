package lexer

import "testing"

func TestDivertTargets(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "plain_target",
			input: "-> start\n",
			expected: []tokenExpectation{
				{DIVERT, "->", 1, 1},
				{SCENE_NAME, "start", 1, 4},
				{EOF, "", 2, 1},
			},
		},
		{
			name:  "adjacent_target",
			input: "->start\n",
			expected: []tokenExpectation{
				{DIVERT, "->", 1, 1},
				{SCENE_NAME, "start", 1, 3},
				{EOF, "", 2, 1},
			},
		},
		{
			name:  "module_qualified_target",
			input: "-> tavern:brawl\n",
			expected: []tokenExpectation{
				{DIVERT, "->", 1, 1},
				{MOD_NAME, "tavern", 1, 4},
				{MOD_SEP, ":", 1, 10},
				{SCENE_NAME, "brawl", 1, 11},
				{EOF, "", 2, 1},
			},
		},
		{
			// The target expectation stops at the line break.
			name:  "target_on_next_line",
			input: "->\nstart\n",
			expected: []tokenExpectation{
				{DIVERT, "->", 1, 1},
				{EOF, "", 3, 1},
			},
		},
		{
			// A keyword-shaped word still satisfies the target expectation.
			name:  "keyword_shaped_target",
			input: "-> listen\n",
			expected: []tokenExpectation{
				{DIVERT, "->", 1, 1},
				{SCENE_NAME, "listen", 1, 4},
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

func TestModuleQualifierOutsideDivert(t *testing.T) {
	// The qualifier rule is general: word, colon, word with no gaps.
	assertTokens(t, "spawn node:worker\n", []tokenExpectation{
		{KEYWORD_COMMAND, "spawn", 1, 1},
		{MOD_NAME, "node", 1, 7},
		{MOD_SEP, ":", 1, 11},
		{SCENE_NAME, "worker", 1, 12},
		{EOF, "", 2, 1},
	})
}

func TestColonWithoutFollowingWord(t *testing.T) {
	// A trailing colon does not make the word a module qualifier.
	assertTokens(t, "-> place: \n", []tokenExpectation{
		{DIVERT, "->", 1, 1},
		{SCENE_NAME, "place", 1, 4},
		{EOF, "", 2, 1},
	})
}

func TestArrowAdjacency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			// "- >" is arithmetic then an unrecognized bracket.
			name:  "split_arrow",
			input: "X - >2\n",
			expected: []tokenExpectation{
				{VARIABLE, "X", 1, 1},
				{ARITHMETIC, "-", 1, 3},
				{NUMBER, "2", 1, 6},
				{EOF, "", 2, 1},
			},
		},
		{
			name:  "send_not_less_than",
			input: "Next <- 1\n",
			expected: []tokenExpectation{
				{VARIABLE, "Next", 1, 1},
				{SEND, "<-", 1, 6},
				{NUMBER, "1", 1, 9},
				{EOF, "", 2, 1},
			},
		},
		{
			name:  "less_or_equal_longest_match",
			input: "if X <= 3 then\n",
			expected: []tokenExpectation{
				{KEYWORD_MATCH, "if", 1, 1},
				{VARIABLE, "X", 1, 4},
				{ARITHMETIC, "<=", 1, 6},
				{NUMBER, "3", 1, 9},
				{KEYWORD_MATCH, "then", 1, 11},
				{EOF, "", 2, 1},
			},
		},
		{
			name:  "bare_less_than",
			input: "X < 3\n",
			expected: []tokenExpectation{
				{VARIABLE, "X", 1, 1},
				{ARITHMETIC, "<", 1, 3},
				{NUMBER, "3", 1, 5},
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

func TestBlockMarkers(t *testing.T) {
	assertTokens(t, "weave\n| one\n| two\n;;\n", []tokenExpectation{
		{KEYWORD_MATCH, "weave", 1, 1},
		{CHOICE, "|", 2, 1},
		{CHOICE, "|", 3, 1},
		{END, ";;", 4, 1},
		{EOF, "", 5, 1},
	})
}
