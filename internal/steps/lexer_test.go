package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// tagged pairs a span's text with its style for readable assertions.
type tagged struct {
	Text  string
	Style StyleTag
}

func scanTagged(t *testing.T, input string) []tagged {
	t.Helper()
	spans, _ := ScanAll(input)

	total := 0
	result := make([]tagged, 0, len(spans))
	for _, span := range spans {
		require.Positive(t, span.Length, "zero-length span")
		result = append(result, tagged{input[total : total+span.Length], span.Style})
		total += span.Length
	}
	require.Equal(t, len(input), total, "spans must cover the input exactly")
	return result
}

func TestScan_BasicStatement(t *testing.T) {
	got := scanTagged(t, "if x is equal to 5:")

	expected := []tagged{
		{"if", StyleControlKeyword},
		{" ", StyleDefault},
		{"x", StyleIdentifier},
		{" ", StyleDefault},
		{"is equal to", StyleOperatorKeyword},
		{" ", StyleDefault},
		{"5", StyleNumber},
		{":", StylePunctuation},
	}
	assert.Equal(t, expected, got)
}

func TestScan_Keywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tagged
	}{
		{
			name:  "structure keywords",
			input: "building floor step",
			expected: []tagged{
				{"building", StyleStructureKeyword},
				{" ", StyleDefault},
				{"floor", StyleStructureKeyword},
				{" ", StyleDefault},
				{"step", StyleStructureKeyword},
			},
		},
		{
			name:  "declaration with type",
			input: "declare count as number",
			expected: []tagged{
				{"declare", StyleStructureKeyword},
				{" ", StyleDefault},
				{"count", StyleIdentifier},
				{" ", StyleDefault},
				{"as", StyleActionKeyword},
				{" ", StyleDefault},
				{"number", StyleTypeKeyword},
			},
		},
		{
			name:  "literals",
			input: "true false nothing",
			expected: []tagged{
				{"true", StyleLiteral},
				{" ", StyleDefault},
				{"false", StyleLiteral},
				{" ", StyleDefault},
				{"nothing", StyleLiteral},
			},
		},
		{
			name:  "case insensitive",
			input: "IF Declare TRUE",
			expected: []tagged{
				{"IF", StyleControlKeyword},
				{" ", StyleDefault},
				{"Declare", StyleStructureKeyword},
				{" ", StyleDefault},
				{"TRUE", StyleLiteral},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanTagged(t, tt.input))
		})
	}
}

func TestScan_MultiWordPhrases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		// phrase expected as the first span
		phrase string
		style  StyleTag
	}{
		{"longest comparison wins", "is greater than or equal to 5", "is greater than or equal to", StyleOperatorKeyword},
		{"shorter comparison", "is greater than 5", "is greater than", StyleOperatorKeyword},
		{"storing result in", "storing result in total", "storing result in", StyleActionKeyword},
		{"for each", "for each item", "for each", StyleControlKeyword},
		{"phrase with trailing colon", "if unsuccessful:", "if unsuccessful:", StyleControlKeyword},
		{"mixed case phrase", "Is Equal To 5", "Is Equal To", StyleOperatorKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanTagged(t, tt.input)
			require.NotEmpty(t, got)
			assert.Equal(t, tagged{tt.phrase, tt.style}, got[0])
		})
	}
}

func TestScan_WordBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tagged
	}{
		{
			name:     "keyword prefix of identifier stays identifier",
			input:    "notebook",
			expected: []tagged{{"notebook", StyleIdentifier}},
		},
		{
			name:  "bare note keyword",
			input: "note x",
			expected: []tagged{
				{"note", StyleComment},
				{" ", StyleDefault},
				{"x", StyleIdentifier},
			},
		},
		{
			name:  "phrase not matched inside longer word",
			input: "is inside",
			expected: []tagged{
				// "is in" must not match because "inside" continues the word
				{"is", StyleIdentifier},
				{" ", StyleDefault},
				{"inside", StyleIdentifier},
			},
		},
		{
			name:  "underscore keeps word together",
			input: "if_x",
			expected: []tagged{
				{"if_x", StyleIdentifier},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanTagged(t, tt.input))
		})
	}
}

func TestScan_Strings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tagged
	}{
		{
			name:     "simple string",
			input:    `"hello"`,
			expected: []tagged{{`"hello"`, StyleString}},
		},
		{
			name:     "escaped quote stays inside",
			input:    `"a\"b"`,
			expected: []tagged{{`"a\"b"`, StyleString}},
		},
		{
			name:     "unterminated string runs to end",
			input:    `"abc`,
			expected: []tagged{{`"abc`, StyleString}},
		},
		{
			name:  "unterminated string stops at newline",
			input: "\"abc\nx",
			expected: []tagged{
				{`"abc`, StyleString},
				{"\n", StyleDefault},
				{"x", StyleIdentifier},
			},
		},
		{
			name:  "keywords inside string are not keywords",
			input: `"if true"`,
			expected: []tagged{
				{`"if true"`, StyleString},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanTagged(t, tt.input))
		})
	}
}

func TestScan_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tagged
	}{
		{
			name:     "integer",
			input:    "42",
			expected: []tagged{{"42", StyleNumber}},
		},
		{
			name:     "decimal",
			input:    "3.14",
			expected: []tagged{{"3.14", StyleNumber}},
		},
		{
			name:     "negative decimal",
			input:    "-12.5",
			expected: []tagged{{"-12.5", StyleNumber}},
		},
		{
			name:  "trailing dot is not part of the number",
			input: "12.",
			expected: []tagged{
				{"12", StyleNumber},
				{".", StyleDefault},
			},
		},
		{
			name:  "minus without digit is math operator",
			input: "- x",
			expected: []tagged{
				{"-", StyleMathOperator},
				{" ", StyleDefault},
				{"x", StyleIdentifier},
			},
		},
		{
			name:  "minus glued to digit is a negative number",
			input: "x-1",
			expected: []tagged{
				{"x", StyleIdentifier},
				{"-1", StyleNumber},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanTagged(t, tt.input))
		})
	}
}

func TestScan_OperatorsAndPunctuation(t *testing.T) {
	got := scanTagged(t, "a + b * [1, 2]")

	expected := []tagged{
		{"a", StyleIdentifier},
		{" ", StyleDefault},
		{"+", StyleMathOperator},
		{" ", StyleDefault},
		{"b", StyleIdentifier},
		{" ", StyleDefault},
		{"*", StyleMathOperator},
		{" ", StyleDefault},
		{"[", StylePunctuation},
		{"1", StyleNumber},
		{",", StylePunctuation},
		{" ", StyleDefault},
		{"2", StyleNumber},
		{"]", StylePunctuation},
	}
	assert.Equal(t, expected, got)
}

func TestScan_LineComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tagged
	}{
		{
			name:     "comment runs to end of input",
			input:    "note: anything if true 42",
			expected: []tagged{{"note: anything if true 42", StyleComment}},
		},
		{
			name:  "comment stops at newline",
			input: "note: hi\nx",
			expected: []tagged{
				{"note: hi", StyleComment},
				{"\n", StyleDefault},
				{"x", StyleIdentifier},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanTagged(t, tt.input))
		})
	}
}

func TestScan_NoteBlocks(t *testing.T) {
	t.Run("body is comment character by character", func(t *testing.T) {
		input := "note block:\nab\nend note"
		spans, inBlock := ScanAll(input)

		assert.False(t, inBlock)

		expected := []Span{
			{11, StyleComment}, // note block:
			{1, StyleComment},  // \n
			{1, StyleComment},  // a
			{1, StyleComment},  // b
			{1, StyleComment},  // \n
			{8, StyleComment},  // end note
		}
		assert.Equal(t, expected, spans)
	})

	t.Run("unterminated block runs to end", func(t *testing.T) {
		input := "note block: x"
		spans, inBlock := ScanAll(input)

		assert.True(t, inBlock)
		for _, span := range spans {
			assert.Equal(t, StyleComment, span.Style)
		}
	})

	t.Run("keywords inside block stay comments", func(t *testing.T) {
		got := scanTagged(t, "note block: if true end note")
		for _, span := range got {
			assert.Equal(t, StyleComment, span.Style, "span %q", span.Text)
		}
	})

	t.Run("end note outside a block is still a comment phrase", func(t *testing.T) {
		got := scanTagged(t, "end note")
		assert.Equal(t, []tagged{{"end note", StyleComment}}, got)
	})

	t.Run("code resumes after the block", func(t *testing.T) {
		got := scanTagged(t, "note block: x end note if")
		last := got[len(got)-1]
		assert.Equal(t, tagged{"if", StyleControlKeyword}, last)
	})

	t.Run("carried state styles a later range", func(t *testing.T) {
		text := "note block: hi\nif true\nend note"
		first := len("note block: hi\n")

		_, inBlock := Scan(text, 0, first, false)
		require.True(t, inBlock)

		spans, inBlock := Scan(text, first, len(text), inBlock)
		assert.False(t, inBlock)
		for _, span := range spans {
			assert.Equal(t, StyleComment, span.Style)
		}
	})
}

func TestScan_EmptyAndDegenerateRanges(t *testing.T) {
	spans, inBlock := ScanAll("")
	assert.Empty(t, spans)
	assert.False(t, inBlock)

	spans, inBlock = Scan("hello", 3, 3, true)
	assert.Empty(t, spans)
	assert.True(t, inBlock)

	spans, _ = Scan("hello", -5, 99, false)
	total := 0
	for _, span := range spans {
		total += span.Length
	}
	assert.Equal(t, 5, total)
}

func TestScan_FullProgram(t *testing.T) {
	source := `building Calculator

step add expects a as number, b as number returns number:
    note: simple addition
    return a added to b

step main:
    declare total as number
    set total to call add with 2, 3
    display total
`
	spans, inBlock := ScanAll(source)

	assert.False(t, inBlock)
	total := 0
	for _, span := range spans {
		require.Positive(t, span.Length)
		total += span.Length
	}
	assert.Equal(t, len(source), total)
}

func TestLookupKeyword(t *testing.T) {
	assert.Equal(t, StyleControlKeyword, LookupKeyword("if"))
	assert.Equal(t, StyleControlKeyword, LookupKeyword("IF"))
	assert.Equal(t, StyleTypeKeyword, LookupKeyword("boolean"))
	assert.Equal(t, StyleIdentifier, LookupKeyword("widget"))
	assert.Equal(t, StyleIdentifier, LookupKeyword(""))
}

// TestScan_Properties checks the structural guarantees on arbitrary input:
// exact coverage, positive lengths, and determinism.
func TestScan_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")

		spans, _ := ScanAll(input)
		total := 0
		for _, span := range spans {
			if span.Length <= 0 {
				t.Fatalf("non-positive span length %d", span.Length)
			}
			total += span.Length
		}
		if total != len(input) {
			t.Fatalf("spans cover %d bytes, input has %d", total, len(input))
		}

		again, _ := ScanAll(input)
		if len(again) != len(spans) {
			t.Fatalf("scan is not deterministic")
		}
	})
}

// TestScan_SplitEqualsWhole verifies that scanning a document in two ranges
// with carried note-block state matches a single whole-document scan.
func TestScan_SplitEqualsWhole(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.StringOfN(rapid.RuneFrom([]rune("ab \"n:\nnote block end-5.")), 0, 64, -1).Draw(t, "input")
		cut := rapid.IntRange(0, len(input)).Draw(t, "cut")

		// Cut only at span boundaries so both scans see whole tokens.
		whole, _ := ScanAll(input)
		boundary := 0
		valid := boundary == cut
		for _, span := range whole {
			boundary += span.Length
			if boundary == cut {
				valid = true
			}
		}
		if !valid {
			t.Skip("cut not on a span boundary")
		}

		first, state := Scan(input, 0, cut, false)
		second, _ := Scan(input, cut, len(input), state)

		combined := append(append([]Span{}, first...), second...)
		if len(combined) != len(whole) {
			t.Fatalf("split scan produced %d spans, whole scan %d", len(combined), len(whole))
		}
		for i := range whole {
			if combined[i] != whole[i] {
				t.Fatalf("span %d differs: %+v vs %+v", i, combined[i], whole[i])
			}
		}
	})
}
