package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCandidate(t *testing.T) {
	valid := []string{
		"px-4", "hover:bg-blue-500/50", "w-[37px]", "py-0.5",
		"grid-cols-[200px,1fr]", "left-[10%]", "bg-[#336699]", "2xl:flex",
	}
	for _, token := range valid {
		assert.True(t, IsCandidate(token), "expected %q to be a candidate", token)
	}

	invalid := []string{"", "a b", "quote\"inside", "curly{", "semi;colon", "über"}
	for _, token := range invalid {
		assert.False(t, IsCandidate(token), "expected %q to be rejected", token)
	}
}

func TestExtractFromMarkup(t *testing.T) {
	src := []byte(`<!doctype html>
<div class="flex items-center px-4">
  <span class="text-xl   font-bold">hi</span>
  <a class="hover:underline" href="#">link</a>
</div>`)

	tokens := ExtractFromMarkup(src)
	assert.Equal(t, []string{
		"flex", "items-center", "px-4",
		"text-xl", "font-bold",
		"hover:underline",
	}, tokens)
}

func TestExtractFromMarkupIgnoresInvalidTokens(t *testing.T) {
	src := []byte(`<div class="px-4 {{dynamic}} bg-white"></div>`)
	tokens := ExtractFromMarkup(src)
	assert.Equal(t, []string{"px-4", "bg-white"}, tokens)
}

func TestExtractFromMarkupNoAttributes(t *testing.T) {
	assert.Empty(t, ExtractFromMarkup([]byte("<p>plain</p>")))
}
