package lexer

import "fmt"

// Kind identifies the lexical class of a token.
type Kind int

const (
	// Special tokens
	EOF Kind = iota

	// Structure
	EQUALS     // = standalone
	SCENE_DEF  // == at the start of a line
	SCENE_NAME // scene name after == or a divert target
	SCENE_ARGS // ( and ) delimiting a scene argument list
	MOD_NAME   // module qualifier before :
	MOD_SEP    // : between module and scene name
	DIVERT     // ->
	CHOICE     // | branch arm marker
	SEND       // <- message send
	END        // ;; block terminator

	// Names and literals
	LABEL    // 'label
	MACRO    // ?MACRO
	ATOM     // #atom
	VARIABLE // CamelCase name, letters only
	RANDOM   // dice literal, 2d6
	NUMBER   // 503

	// Operators
	ARITHMETIC // - + * < <=

	// Regions
	COMMENT  // -- to end of line
	STRING   // narrative text segment inside a > string line
	TEMPLATE // {{ and }} interpolation delimiters

	// Keywords
	KEYWORD_MATCH   // trap given listen weave branch when if then
	KEYWORD_COMMAND // let trace wait disarm spawn
	KEYWORD         // from, Self, _
)

// Pre-computed kind name lookup for fast debugging
var kindNames = [...]string{
	EOF:             "EOF",
	EQUALS:          "EQUALS",
	SCENE_DEF:       "SCENE_DEF",
	SCENE_NAME:      "SCENE_NAME",
	SCENE_ARGS:      "SCENE_ARGS",
	MOD_NAME:        "MOD_NAME",
	MOD_SEP:         "MOD_SEP",
	DIVERT:          "DIVERT",
	CHOICE:          "CHOICE",
	SEND:            "SEND",
	END:             "END",
	LABEL:           "LABEL",
	MACRO:           "MACRO",
	ATOM:            "ATOM",
	VARIABLE:        "VARIABLE",
	RANDOM:          "RANDOM",
	NUMBER:          "NUMBER",
	ARITHMETIC:      "ARITHMETIC",
	COMMENT:         "COMMENT",
	STRING:          "STRING",
	TEMPLATE:        "TEMPLATE",
	KEYWORD_MATCH:   "KEYWORD_MATCH",
	KEYWORD_COMMAND: "KEYWORD_COMMAND",
	KEYWORD:         "KEYWORD",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// matchKeywords introduce pattern-matching and event-listening blocks.
var matchKeywords = map[string]bool{
	"trap":   true,
	"given":  true,
	"listen": true,
	"weave":  true,
	"branch": true,
	"when":   true,
	"if":     true,
	"then":   true,
}

// commandKeywords are imperative statement heads.
var commandKeywords = map[string]bool{
	"let":    true,
	"trace":  true,
	"wait":   true,
	"disarm": true,
	"spawn":  true,
}

// Position represents a position in the source text.
type Position struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number
	Offset int `json:"offset"` // 0-based byte offset
}

// Span covers the half-open byte range [Start.Offset, End.Offset) of the input.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Token is a classified piece of source text. Tokens never overlap and are
// produced in strictly increasing span order; text between spans is
// insignificant (whitespace, separators, unmatched input).
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	Span Span   `json:"span"`
}

// Position returns a formatted position string for error reporting.
func (t Token) Position() string {
	if t.Span.Start.Line == t.Span.End.Line {
		return fmt.Sprintf("%d:%d-%d", t.Span.Start.Line, t.Span.Start.Column, t.Span.End.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", t.Span.Start.Line, t.Span.Start.Column, t.Span.End.Line, t.Span.End.Column)
}

// IsKeyword reports whether the token is a reserved word of any vocabulary.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KEYWORD_MATCH, KEYWORD_COMMAND, KEYWORD:
		return true
	default:
		return false
	}
}

// IsRegion reports whether the token belongs to a delimited region.
func (t Token) IsRegion() bool {
	switch t.Kind {
	case COMMENT, STRING, TEMPLATE, SCENE_ARGS:
		return true
	default:
		return false
	}
}
