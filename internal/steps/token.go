// Package steps implements the lexer for the Steps programming language.
package steps

import "strings"

// StyleTag classifies a span of Steps source text. It is a classification
// label, not a color; color mapping happens in styles.go.
type StyleTag int

const (
	StyleDefault StyleTag = iota
	StyleStructureKeyword
	StyleControlKeyword
	StyleActionKeyword
	StyleOperatorKeyword
	StyleTypeKeyword
	StyleString
	StyleNumber
	StyleComment
	StyleIdentifier
	StyleLiteral
	StylePunctuation
	StyleMathOperator
)

// String returns the string representation of the style tag.
func (t StyleTag) String() string {
	switch t {
	case StyleDefault:
		return "Default"
	case StyleStructureKeyword:
		return "StructureKeyword"
	case StyleControlKeyword:
		return "ControlKeyword"
	case StyleActionKeyword:
		return "ActionKeyword"
	case StyleOperatorKeyword:
		return "OperatorKeyword"
	case StyleTypeKeyword:
		return "TypeKeyword"
	case StyleString:
		return "String"
	case StyleNumber:
		return "Number"
	case StyleComment:
		return "Comment"
	case StyleIdentifier:
		return "Identifier"
	case StyleLiteral:
		return "Literal"
	case StylePunctuation:
		return "Punctuation"
	case StyleMathOperator:
		return "MathOperator"
	default:
		return "Unknown"
	}
}

// phrase is a multi-word keyword entry.
type phrase struct {
	Text  string
	Style StyleTag
}

// multiWordKeywords lists multi-word phrases in matching order. Longer
// phrases come before shorter phrases that are prefixes of them, so
// "is greater than or equal to" is tried before "is greater than".
// The relative order is load-bearing; do not sort or reorder.
var multiWordKeywords = []phrase{
	{"is greater than or equal to", StyleOperatorKeyword},
	{"is less than or equal to", StyleOperatorKeyword},
	{"storing result in", StyleActionKeyword},
	{"if unsuccessful:", StyleControlKeyword},
	{"is not equal to", StyleOperatorKeyword},
	{"then continue:", StyleControlKeyword},
	{"is greater than", StyleOperatorKeyword},
	{"is less than", StyleOperatorKeyword},
	{"is equal to", StyleOperatorKeyword},
	{"character at", StyleOperatorKeyword},
	{"otherwise if", StyleControlKeyword},
	{"note block:", StyleComment},
	{"belongs to:", StyleStructureKeyword},
	{"starts with", StyleOperatorKeyword},
	{"ends with", StyleOperatorKeyword},
	{"length of", StyleOperatorKeyword},
	{"for each", StyleControlKeyword},
	{"added to", StyleOperatorKeyword},
	{"split by", StyleOperatorKeyword},
	{"end note", StyleComment},
	{"is in", StyleOperatorKeyword},
}

// keywords maps lowercase single words to their style.
var keywords = map[string]StyleTag{
	// Structure keywords
	"building": StyleStructureKeyword,
	"floor":    StyleStructureKeyword,
	"step":     StyleStructureKeyword,
	"riser":    StyleStructureKeyword,
	"expects":  StyleStructureKeyword,
	"returns":  StyleStructureKeyword,
	"declare":  StyleStructureKeyword,
	"do":       StyleStructureKeyword,
	"attempt":  StyleStructureKeyword,
	"exit":     StyleStructureKeyword,

	// Control flow
	"if":        StyleControlKeyword,
	"otherwise": StyleControlKeyword,
	"repeat":    StyleControlKeyword,
	"times":     StyleControlKeyword,
	"in":        StyleControlKeyword,
	"while":     StyleControlKeyword,

	// Action keywords
	"as":      StyleActionKeyword,
	"fixed":   StyleActionKeyword,
	"set":     StyleActionKeyword,
	"to":      StyleActionKeyword,
	"call":    StyleActionKeyword,
	"with":    StyleActionKeyword,
	"return":  StyleActionKeyword,
	"display": StyleActionKeyword,
	"input":   StyleActionKeyword,
	"add":     StyleActionKeyword,
	"remove":  StyleActionKeyword,
	"from":    StyleActionKeyword,

	// Boolean operators
	"and":      StyleOperatorKeyword,
	"or":       StyleOperatorKeyword,
	"not":      StyleOperatorKeyword,
	"contains": StyleOperatorKeyword,
	"of":       StyleOperatorKeyword,
	"equals":   StyleOperatorKeyword,

	// Literals
	"true":    StyleLiteral,
	"false":   StyleLiteral,
	"nothing": StyleLiteral,

	// Types
	"number":  StyleTypeKeyword,
	"text":    StyleTypeKeyword,
	"boolean": StyleTypeKeyword,
	"list":    StyleTypeKeyword,
	"table":   StyleTypeKeyword,

	// Bare "note" (note block:/note: are matched as multi-char patterns first)
	"note": StyleComment,
}

// LookupKeyword returns the style for a single word, or StyleIdentifier if
// the word is not a keyword. Matching is case-insensitive.
func LookupKeyword(word string) StyleTag {
	if style, ok := keywords[strings.ToLower(word)]; ok {
		return style
	}
	return StyleIdentifier
}
