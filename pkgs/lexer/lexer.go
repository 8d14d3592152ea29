package lexer

import "unicode/utf8"

// expectation narrows the candidate rule set for the token following the one
// just emitted. It is consumed after one token and cleared by a newline.
type expectation int

const (
	expectNone        expectation = iota
	expectSceneName               // after == or after a module separator
	expectDivertTarget            // after ->: scene name or module-qualified name
	expectModSep                  // after a module qualifier: the : itself
	expectSceneArgs               // after a scene name: ( opens the argument list
)

// regionMode is the innermost open region; it selects the eligible rule
// subset for the next scan step.
type regionMode int

const (
	modeDefault  regionMode = iota
	modeArgs                // inside ( ): atoms, dice rolls, numbers, variables
	modeString              // inside a > narrative line: text and {{ }} templates
	modeTemplate            // inside {{ }}: variables only
)

// LexerConfig holds lexer configuration.
type LexerConfig struct {
	legacy bool
}

// Option configures a Lexer.
type Option func(*LexerConfig)

// WithLegacyIdentifiers relaxes identifier casing to the older grammar
// revision: scene names, labels and atoms may mix case, macros accept any
// word characters, and variable names may contain digits and underscores.
func WithLegacyIdentifiers() Option {
	return func(c *LexerConfig) { c.legacy = true }
}

// Lexer scans a complete source buffer left to right, emitting classified
// tokens in strictly increasing span order. Each instance owns its cursor,
// expectation and region stack exclusively; independent instances never
// coordinate and may run in parallel.
type Lexer struct {
	input  []byte
	pos    int
	line   int
	column int

	legacy bool

	expect expectation
	modes  []regionMode // open regions, innermost last (depth <= 2)
	opened []Position   // start of each open region, parallel to modes

	diags []Diagnostic
}

// New creates a lexer over a complete source text.
func New(input string, opts ...Option) *Lexer {
	config := &LexerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	l := &Lexer{legacy: config.legacy}
	l.Init([]byte(input))
	return l
}

// Init resets the lexer over new input (following Go scanner pattern).
func (l *Lexer) Init(input []byte) {
	l.input = input
	l.pos = 0
	l.line = 1
	l.column = 1
	l.expect = expectNone
	l.modes = l.modes[:0]
	l.opened = l.opened[:0]
	l.diags = nil
}

// NextToken returns the next classified token. After the input is exhausted
// it returns EOF on every call.
func (l *Lexer) NextToken() Token {
	for {
		var tok Token
		var ok bool
		switch l.currentMode() {
		case modeArgs:
			tok, ok = l.scanArgs()
		case modeString:
			tok, ok = l.scanString()
		case modeTemplate:
			tok, ok = l.scanTemplate()
		default:
			tok, ok = l.scanDefault()
		}
		if ok {
			return tok
		}
	}
}

// Tokenize consumes the remaining input and returns all tokens, ending with
// EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

// Diagnostics returns the conditions recovered so far, in source order.
func (l *Lexer) Diagnostics() []Diagnostic {
	result := make([]Diagnostic, len(l.diags))
	copy(result, l.diags)
	return result
}

// scanDefault is the top-level rule cascade. The cases follow the grammar's
// priority order; within a position the longest adjacent match wins
// (-- before ->, <- before <=, dice rolls before plain numbers).
func (l *Lexer) scanDefault() (Token, bool) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return l.emitEOF(), true
	}

	ch := l.input[l.pos]

	// Expectation-narrowed candidates are tried before the general rules.
	switch l.expect {
	case expectSceneArgs:
		l.expect = expectNone
		if ch == '(' {
			start := l.position()
			l.advance()
			l.pushMode(modeArgs, start)
			return l.token(SCENE_ARGS, start), true
		}

	case expectModSep:
		l.expect = expectNone
		if ch == ':' {
			start := l.position()
			l.advance()
			l.expect = expectSceneName
			return l.token(MOD_SEP, start), true
		}

	case expectSceneName, expectDivertTarget:
		withModule := l.expect == expectDivertTarget
		l.expect = expectNone
		if ch < 128 && l.isWordStart(ch) {
			start := l.position()
			l.scanWord()
			if withModule && l.pos < len(l.input) && l.input[l.pos] == ':' && l.wordStartAt(l.pos+1) {
				l.expect = expectModSep
				return l.token(MOD_NAME, start), true
			}
			l.expect = expectSceneArgs
			return l.token(SCENE_NAME, start), true
		}
	}

	start := l.position()

	switch {
	case ch == '=':
		atLineStart := start.Offset == 0 || l.input[start.Offset-1] == '\n'
		if atLineStart && l.peekIs(1, '=') && !l.peekIs(2, '=') {
			l.advance()
			l.advance()
			l.expect = expectSceneName
			return l.token(SCENE_DEF, start), true
		}
		l.advance()
		return l.token(EQUALS, start), true

	case ch == '-':
		if l.peekIs(1, '-') {
			// Comment region runs to end of line; the newline stays outside.
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
			return l.token(COMMENT, start), true
		}
		if l.peekIs(1, '>') {
			l.advance()
			l.advance()
			l.expect = expectDivertTarget
			return l.token(DIVERT, start), true
		}
		l.advance()
		return l.token(ARITHMETIC, start), true

	case ch == '<':
		if l.peekIs(1, '-') {
			l.advance()
			l.advance()
			return l.token(SEND, start), true
		}
		if l.peekIs(1, '=') {
			l.advance()
			l.advance()
			return l.token(ARITHMETIC, start), true
		}
		l.advance()
		return l.token(ARITHMETIC, start), true

	case ch == '+' || ch == '*':
		l.advance()
		return l.token(ARITHMETIC, start), true

	case ch == '>':
		// A narrative line starts with > followed by exactly one space.
		if l.peekIs(1, ' ') {
			l.pushMode(modeString, start)
			return Token{}, false
		}
		l.skipUnrecognized(start)
		return Token{}, false

	case ch == '\'':
		if l.wordStartAt(l.pos + 1) {
			l.advance()
			l.scanWord()
			return l.token(LABEL, start), true
		}
		l.skipUnrecognized(start)
		return Token{}, false

	case ch == '?':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] < 128 && isUpper[l.input[l.pos+1]] {
			l.advance()
			l.scanLoudWord()
			return l.token(MACRO, start), true
		}
		l.skipUnrecognized(start)
		return Token{}, false

	case ch == '#':
		if l.wordStartAt(l.pos + 1) {
			l.advance()
			l.scanWord()
			return l.token(ATOM, start), true
		}
		l.skipUnrecognized(start)
		return Token{}, false

	case ch == '|':
		l.advance()
		return l.token(CHOICE, start), true

	case ch == ';':
		if l.peekIs(1, ';') {
			l.advance()
			l.advance()
			return l.token(END, start), true
		}
		l.skipUnrecognized(start)
		return Token{}, false

	case ch < 128 && isDigit[ch]:
		return l.scanNumeric(start), true

	case ch < 128 && isLower[ch]:
		l.scanWord()
		word := string(l.input[start.Offset:l.pos])
		// A module qualifier binds tighter than the keyword vocabularies.
		if l.pos < len(l.input) && l.input[l.pos] == ':' && l.wordStartAt(l.pos+1) {
			l.expect = expectModSep
			return l.token(MOD_NAME, start), true
		}
		switch {
		case matchKeywords[word]:
			return l.token(KEYWORD_MATCH, start), true
		case commandKeywords[word]:
			return l.token(KEYWORD_COMMAND, start), true
		case word == "from":
			return l.token(KEYWORD, start), true
		}
		l.unrecognized(start)
		return Token{}, false

	case ch < 128 && isUpper[ch]:
		l.scanVariable()
		if string(l.input[start.Offset:l.pos]) == "Self" {
			return l.token(KEYWORD, start), true
		}
		return l.token(VARIABLE, start), true

	case ch == '_':
		l.advance()
		if l.pos < len(l.input) && l.input[l.pos] < 128 && isAnyPart[l.input[l.pos]] {
			// _name is neither the hole nor a variable.
			for l.pos < len(l.input) && l.input[l.pos] < 128 && isAnyPart[l.input[l.pos]] {
				l.advance()
			}
			l.unrecognized(start)
			return Token{}, false
		}
		return l.token(KEYWORD, start), true

	default:
		l.skipUnrecognized(start)
		return Token{}, false
	}
}

// scanArgs recognizes the restricted sub-grammar of a scene argument list.
// Commas and line breaks are insignificant separators; the region closes at
// the first unmatched-depth ).
func (l *Lexer) scanArgs() (Token, bool) {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == ',' || ch == '\n' || (ch < 128 && isHSpace[ch]) {
			l.advance()
			continue
		}
		break
	}

	if l.pos >= len(l.input) {
		openedAt := l.popMode()
		l.report(UnterminatedRegion, Span{Start: openedAt, End: l.position()}, "unterminated scene argument list")
		return Token{}, false
	}

	start := l.position()
	ch := l.input[l.pos]

	if ch == ')' {
		l.advance()
		l.popMode()
		return l.token(SCENE_ARGS, start), true
	}
	if ch == '#' && l.wordStartAt(l.pos+1) {
		l.advance()
		l.scanWord()
		return l.token(ATOM, start), true
	}
	if ch < 128 && isDigit[ch] {
		return l.scanNumeric(start), true
	}
	if ch < 128 && isUpper[ch] {
		l.scanVariable()
		if string(l.input[start.Offset:l.pos]) == "Self" {
			l.unrecognized(start)
			return Token{}, false
		}
		return l.token(VARIABLE, start), true
	}

	l.skipUnrecognized(start)
	return Token{}, false
}

// scanString emits narrative text segments. The > marker is part of the
// first segment; {{ hands over to template mode; the region closes at end
// of line without consuming the newline.
func (l *Lexer) scanString() (Token, bool) {
	start := l.position()

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '\n' {
			break
		}
		if ch == '{' && l.peekIs(1, '{') {
			if l.pos > start.Offset {
				return l.token(STRING, start), true
			}
			l.advance()
			l.advance()
			l.pushMode(modeTemplate, start)
			return l.token(TEMPLATE, start), true
		}
		l.advance()
	}

	l.popMode()
	if l.pos > start.Offset {
		return l.token(STRING, start), true
	}
	return Token{}, false
}

// scanTemplate recognizes the interpolation sub-grammar: variable names and
// the closing }}. A line or input boundary closes the template early.
func (l *Lexer) scanTemplate() (Token, bool) {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch < 128 && isHSpace[ch] {
			l.advance()
			continue
		}
		break
	}

	if l.pos >= len(l.input) || l.input[l.pos] == '\n' {
		openedAt := l.popMode()
		l.report(UnterminatedRegion, Span{Start: openedAt, End: l.position()}, "unterminated template")
		return Token{}, false
	}

	start := l.position()
	ch := l.input[l.pos]

	if ch == '}' && l.peekIs(1, '}') {
		l.advance()
		l.advance()
		l.popMode()
		return l.token(TEMPLATE, start), true
	}
	if ch < 128 && isUpper[ch] {
		l.scanVariable()
		if string(l.input[start.Offset:l.pos]) == "Self" {
			l.unrecognized(start)
			return Token{}, false
		}
		return l.token(VARIABLE, start), true
	}

	l.skipUnrecognized(start)
	return Token{}, false
}

// scanNumeric recognizes dice rolls (digits d digits) ahead of plain
// numbers, the longer match winning at the shared prefix.
func (l *Lexer) scanNumeric(start Position) Token {
	for l.pos < len(l.input) && l.input[l.pos] < 128 && isDigit[l.input[l.pos]] {
		l.advance()
	}

	if l.peekIs(0, 'd') && l.pos+1 < len(l.input) && l.input[l.pos+1] < 128 && isDigit[l.input[l.pos+1]] {
		l.advance()
		for l.pos < len(l.input) && l.input[l.pos] < 128 && isDigit[l.input[l.pos]] {
			l.advance()
		}
		return l.token(RANDOM, start)
	}

	return l.token(NUMBER, start)
}

// skipSpace skips horizontal whitespace and newlines. Crossing a newline
// clears any pending expectation: expectations never survive a line break.
func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch < 128 && isHSpace[ch] {
			l.advance()
			continue
		}
		if ch == '\n' {
			l.advance()
			l.expect = expectNone
			continue
		}
		break
	}
}

// Word scanning. The strict revision keys each identifier class on its
// leading case; the legacy revision accepts mixed case everywhere.

func (l *Lexer) isWordStart(ch byte) bool {
	if l.legacy {
		return isLetter[ch]
	}
	return isLower[ch]
}

func (l *Lexer) wordStartAt(i int) bool {
	return i < len(l.input) && l.input[i] < 128 && l.isWordStart(l.input[i])
}

func (l *Lexer) scanWord() {
	tail := &isWordPart
	if l.legacy {
		tail = &isAnyPart
	}
	for l.pos < len(l.input) && l.input[l.pos] < 128 && tail[l.input[l.pos]] {
		l.advance()
	}
}

func (l *Lexer) scanLoudWord() {
	tail := &isLoudPart
	if l.legacy {
		tail = &isAnyPart
	}
	for l.pos < len(l.input) && l.input[l.pos] < 128 && tail[l.input[l.pos]] {
		l.advance()
	}
}

// scanVariable consumes an uppercase-leading name. In the strict revision
// the tail is letters only: a digit or underscore terminates the token.
func (l *Lexer) scanVariable() {
	tail := &isLetter
	if l.legacy {
		tail = &isAnyPart
	}
	l.advance()
	for l.pos < len(l.input) && l.input[l.pos] < 128 && tail[l.input[l.pos]] {
		l.advance()
	}
}

// Region stack

func (l *Lexer) currentMode() regionMode {
	if len(l.modes) == 0 {
		return modeDefault
	}
	return l.modes[len(l.modes)-1]
}

func (l *Lexer) pushMode(m regionMode, openedAt Position) {
	l.modes = append(l.modes, m)
	l.opened = append(l.opened, openedAt)
}

func (l *Lexer) popMode() Position {
	openedAt := l.opened[len(l.opened)-1]
	l.modes = l.modes[:len(l.modes)-1]
	l.opened = l.opened[:len(l.opened)-1]
	return openedAt
}

// Diagnostics

func (l *Lexer) report(code DiagnosticCode, span Span, message string) {
	l.diags = append(l.diags, Diagnostic{Code: code, Span: span, Message: message})
}

// unrecognized records the span from start to the cursor as insignificant.
// Adjacent unrecognized spans coalesce into one diagnostic.
func (l *Lexer) unrecognized(start Position) {
	end := l.position()
	if n := len(l.diags); n > 0 {
		last := &l.diags[n-1]
		if last.Code == UnrecognizedSpan && last.Span.End.Offset == start.Offset {
			last.Span.End = end
			return
		}
	}
	l.report(UnrecognizedSpan, Span{Start: start, End: end}, "input matched no rule")
}

func (l *Lexer) skipUnrecognized(start Position) {
	l.advance()
	l.unrecognized(start)
}

// Cursor primitives

func (l *Lexer) position() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.pos}
}

func (l *Lexer) peekIs(k int, b byte) bool {
	return l.pos+k < len(l.input) && l.input[l.pos+k] == b
}

func (l *Lexer) token(kind Kind, start Position) Token {
	return Token{
		Kind: kind,
		Text: string(l.input[start.Offset:l.pos]),
		Span: Span{Start: start, End: l.position()},
	}
}

func (l *Lexer) emitEOF() Token {
	at := l.position()
	return Token{Kind: EOF, Span: Span{Start: at, End: at}}
}

// advance moves to the next character, decoding UTF-8 for position tracking
// only; token content is carried as raw bytes.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}

	ch := l.input[l.pos]
	if ch < 128 {
		if ch == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
		return
	}

	_, size := utf8.DecodeRune(l.input[l.pos:])
	if size <= 0 {
		size = 1
	}
	l.pos += size
	l.column++
}
