package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcerpt_StripsMarkupAndCollapsesWhitespace(t *testing.T) {
	got := excerpt("<p>Hello   <b>world</b></p>\n<p>again</p>", 280)
	assert.Equal(t, "Hello world again", got)
}

func TestExcerpt_ShortTextUntouched(t *testing.T) {
	got := excerpt("<p>short</p>", 280)
	assert.Equal(t, "short", got)
}

func TestExcerpt_TruncatesOnWordBoundary(t *testing.T) {
	got := excerpt("<p>"+strings.Repeat("word ", 100)+"</p>", 48)

	assert.True(t, strings.HasSuffix(got, continuationMarker))
	trimmed := strings.TrimSuffix(got, continuationMarker)
	assert.LessOrEqual(t, len([]rune(trimmed)), 48)
	assert.True(t, strings.HasSuffix(trimmed, "word"))
}

func TestExcerpt_MultibyteSafe(t *testing.T) {
	got := excerpt("<p>"+strings.Repeat("日本語テキスト ", 40)+"</p>", 20)

	assert.True(t, strings.HasSuffix(got, continuationMarker))
	for _, r := range got {
		assert.NotEqual(t, '�', r)
	}
}

func TestExcerpt_MultibyteWordBoundaryMeasuredInRunes(t *testing.T) {
	// One space at rune 10 of a 20-rune cut: exactly the halfway point,
	// so the boundary must not be taken. A byte-offset comparison would
	// see the space at byte 30 and cut the excerpt in half.
	text := strings.Repeat("語", 10) + " " + strings.Repeat("語", 15)
	got := excerpt("<p>"+text+"</p>", 20)

	trimmed := strings.TrimSuffix(got, continuationMarker)
	assert.Len(t, []rune(trimmed), 20)
}

func TestExcerpt_EmptyInput(t *testing.T) {
	assert.Equal(t, "", excerpt("", 280))
}
