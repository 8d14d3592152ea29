package lexer

import "fmt"

// HighlightClass is the stable display category a token kind maps to.
// Hosts render these however they like; the contract is only that every
// Kind maps to exactly one class.
type HighlightClass int

const (
	ClassString HighlightClass = iota
	ClassNumber
	ClassKeyword
	ClassIdentifier
	ClassStatement
	ClassTag
	ClassConstant
	ClassDelimiter
	ClassSpecial
	ClassMacro
	ClassFunction
	ClassPreProc
	ClassLabel
	ClassConditional
	ClassComment
	ClassOperator
)

var classNames = [...]string{
	ClassString:      "String",
	ClassNumber:      "Number",
	ClassKeyword:     "Keyword",
	ClassIdentifier:  "Identifier",
	ClassStatement:   "Statement",
	ClassTag:         "Tag",
	ClassConstant:    "Constant",
	ClassDelimiter:   "Delimiter",
	ClassSpecial:     "Special",
	ClassMacro:       "Macro",
	ClassFunction:    "Function",
	ClassPreProc:     "PreProc",
	ClassLabel:       "Label",
	ClassConditional: "Conditional",
	ClassComment:     "Comment",
	ClassOperator:    "Operator",
}

func (c HighlightClass) String() string {
	if int(c) >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("HighlightClass(%d)", int(c))
}

var kindClasses = map[Kind]HighlightClass{
	EOF:             ClassDelimiter,
	EQUALS:          ClassOperator,
	SCENE_DEF:       ClassPreProc,
	SCENE_NAME:      ClassFunction,
	SCENE_ARGS:      ClassDelimiter,
	MOD_NAME:        ClassIdentifier,
	MOD_SEP:         ClassDelimiter,
	DIVERT:          ClassStatement,
	CHOICE:          ClassTag,
	SEND:            ClassOperator,
	END:             ClassDelimiter,
	LABEL:           ClassLabel,
	MACRO:           ClassMacro,
	ATOM:            ClassConstant,
	VARIABLE:        ClassIdentifier,
	RANDOM:          ClassNumber,
	NUMBER:          ClassNumber,
	ARITHMETIC:      ClassOperator,
	COMMENT:         ClassComment,
	STRING:          ClassString,
	TEMPLATE:        ClassSpecial,
	KEYWORD_MATCH:   ClassConditional,
	KEYWORD_COMMAND: ClassStatement,
	KEYWORD:         ClassKeyword,
}

// ClassOf returns the display category for a token kind.
func ClassOf(kind Kind) HighlightClass {
	if class, ok := kindClasses[kind]; ok {
		return class
	}
	return ClassIdentifier
}

// ScopeOf returns the editor scope name for a token kind.
func ScopeOf(kind Kind) string {
	switch kind {
	case SCENE_DEF:
		return "punctuation.definition.scene.souvenir"
	case SCENE_NAME:
		return "entity.name.function.scene.souvenir"
	case SCENE_ARGS, MOD_SEP, END:
		return "punctuation.delimiter.souvenir"
	case MOD_NAME, VARIABLE:
		return "variable.other.souvenir"
	case DIVERT:
		return "keyword.control.divert.souvenir"
	case CHOICE:
		return "keyword.control.choice.souvenir"
	case SEND, EQUALS, ARITHMETIC:
		return "keyword.operator.souvenir"
	case LABEL:
		return "entity.name.label.souvenir"
	case MACRO:
		return "entity.name.macro.souvenir"
	case ATOM:
		return "constant.other.atom.souvenir"
	case RANDOM, NUMBER:
		return "constant.numeric.souvenir"
	case COMMENT:
		return "comment.line.double-dash.souvenir"
	case STRING:
		return "string.unquoted.narrative.souvenir"
	case TEMPLATE:
		return "punctuation.section.interpolation.souvenir"
	case KEYWORD_MATCH:
		return "keyword.control.conditional.souvenir"
	case KEYWORD_COMMAND:
		return "keyword.other.command.souvenir"
	case KEYWORD:
		return "keyword.other.souvenir"
	default:
		return "source.souvenir"
	}
}

// LSPSemanticToken represents a token in Language Server Protocol format.
type LSPSemanticToken struct {
	Line      uint32
	Character uint32
	Length    uint32
	TokenType uint32
}

// ToLSPSemanticToken converts to Language Server Protocol format.
func (t Token) ToLSPSemanticToken() LSPSemanticToken {
	return LSPSemanticToken{
		Line:      uint32(t.Span.Start.Line - 1),
		Character: uint32(t.Span.Start.Column - 1),
		Length:    uint32(len(t.Text)),
		TokenType: uint32(ClassOf(t.Kind)),
	}
}

// ToLSPSemanticTokensArray converts tokens to the LSP delta-encoded
// semantic tokens array. The trailing EOF token, if present, is skipped.
func ToLSPSemanticTokensArray(tokens []Token) []uint32 {
	result := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevChar uint32

	for _, token := range tokens {
		if token.Kind == EOF {
			continue
		}
		line := uint32(token.Span.Start.Line - 1)
		char := uint32(token.Span.Start.Column - 1)
		length := uint32(len(token.Text))
		deltaLine := line - prevLine
		deltaChar := char
		if deltaLine == 0 {
			deltaChar = char - prevChar
		}
		result = append(result, deltaLine, deltaChar, length, uint32(ClassOf(token.Kind)), 0)
		prevLine = line
		prevChar = char
	}

	return result
}
