package lexer

// ASCII character lookup tables for fast classification (zero-allocation)
//
// Use inline bounds-checked lookups:
//
//	if ch < 128 && isLower[ch] { ... }
//
// Souvenir source is ASCII-keyed: every token class is introduced by an
// ASCII character. Bytes >= 128 never start a token; they are skipped as
// insignificant text (or carried verbatim inside string regions).
var (
	isHSpace   [128]bool // Space, tab, carriage return (newline is a boundary)
	isLower    [128]bool // a-z
	isUpper    [128]bool // A-Z
	isLetter   [128]bool // a-z, A-Z
	isDigit    [128]bool // 0-9
	isWordPart [128]bool // a-z, 0-9, _ (snake-case tail)
	isLoudPart [128]bool // A-Z, 0-9, _ (screaming-case tail)
	isAnyPart  [128]bool // letters, digits, _ (legacy word tail)
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isHSpace[i] = ch == ' ' || ch == '\t' || ch == '\r'
		isLower[i] = 'a' <= ch && ch <= 'z'
		isUpper[i] = 'A' <= ch && ch <= 'Z'
		isLetter[i] = isLower[i] || isUpper[i]
		isDigit[i] = '0' <= ch && ch <= '9'
		isWordPart[i] = isLower[i] || isDigit[i] || ch == '_'
		isLoudPart[i] = isUpper[i] || isDigit[i] || ch == '_'
		isAnyPart[i] = isLetter[i] || isDigit[i] || ch == '_'
	}
}
