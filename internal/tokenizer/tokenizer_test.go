package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func positions(markers []Marker) []int {
	out := make([]int, len(markers))
	for i, m := range markers {
		out[i] = m.Pos
	}
	return out
}

func TestFindNumberBeginning(t *testing.T) {
	m := Tokenize("123   ", nil)
	require.Equal(t, []int{0, 3}, positions(m))
}

func TestFindNumberMiddle(t *testing.T) {
	m := Tokenize("  123   ", nil)
	require.Equal(t, []int{2, 5}, positions(m))
}

func TestFindNumberEnd(t *testing.T) {
	m := Tokenize("   123", nil)
	require.Equal(t, []int{3, 6}, positions(m))
}

func TestSingleDigitNumber(t *testing.T) {
	require.Equal(t, []int{0, 1}, positions(Tokenize("1   ", nil)))
	require.Equal(t, []int{2, 3}, positions(Tokenize("  1   ", nil)))
	require.Equal(t, []int{3, 4}, positions(Tokenize("   1", nil)))
}

func TestFindString(t *testing.T) {
	require.Equal(t, []int{0, 5}, positions(Tokenize(`"abc"`, nil)))
}

func TestFindStringMiddle(t *testing.T) {
	require.Equal(t, []int{1, 6}, positions(Tokenize(` "abc" `, nil)))
}

func TestFindSingleQuotedString(t *testing.T) {
	require.Equal(t, []int{2, 5}, positions(Tokenize("--'a'--", nil)))
}

func TestFindWord(t *testing.T) {
	kw := map[string]struct{}{"for": {}}
	require.Equal(t, []int{0, 3}, positions(Tokenize("for", kw)))
}

func TestDoesNotFindUnknownWord(t *testing.T) {
	kw := map[string]struct{}{"for": {}}
	require.Equal(t, []int{6, 9}, positions(Tokenize("hello for ever", kw)))
}

func TestFindComplexExample(t *testing.T) {
	kw := map[string]struct{}{"for": {}}
	m := Tokenize(`for 123for x3 "12'ab"`, kw)
	require.Equal(t, []int{0, 3, 4, 7, 7, 10, 14, 21}, positions(m))
}

func TestParens(t *testing.T) {
	require.Equal(t, []int{3, 4}, positions(Tokenize("abc(", nil)))
}

func TestCategoriesAlternateWithDefault(t *testing.T) {
	kw := map[string]struct{}{"for": {}}
	m := Tokenize(`for 123for x3 "12'ab"`, kw)
	require.Equal(t, Keyword, m[0].Category)
	require.Equal(t, Default, m[1].Category)
	require.Equal(t, Number, m[2].Category)
	require.Equal(t, Default, m[3].Category)
	require.Equal(t, Keyword, m[4].Category)
	require.Equal(t, Default, m[5].Category)
	require.Equal(t, String, m[6].Category)
	require.Equal(t, Default, m[7].Category)
}

func TestEmptyLineHasNoMarkers(t *testing.T) {
	require.Empty(t, Tokenize("", nil))
}

func TestUnterminatedStringRunsToEndOfLine(t *testing.T) {
	m := Tokenize(`"abc`, nil)
	require.Equal(t, []int{0, 4}, positions(m))
}
