package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"Simple", "Hello World", "hello-world"},
		{"Punctuation", "Hello, World!", "hello-world"},
		{"MixedScripts", "Hello, World! 안녕", "hello-world-안녕"},
		{"WhitespaceRuns", "too   many    spaces", "too-many-spaces"},
		{"LeadingTrailing", "  -- trimmed --  ", "trimmed"},
		{"HyphensCollapsed", "a --- b", "a-b"},
		{"Digits", "Top 10 Tips", "top-10-tips"},
		{"Uppercase", "UPPER Case", "upper-case"},
		{"OnlyPunctuation", "!!!", ""},
		{"Empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Hello, World! 안녕",
		"Top 10 Tips",
		"a --- b",
		"already-a-slug",
	}

	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "slugify must be idempotent for %q", title)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("word ", 50)

	slug := Slugify(long)
	assert.LessOrEqual(t, len([]rune(slug)), 100)
	assert.False(t, strings.HasSuffix(slug, "-"), "truncated slug must not end with a hyphen")
}

func TestUniqueSlug(t *testing.T) {
	t.Run("BaseUnused", func(t *testing.T) {
		assert.Equal(t, "my-post", UniqueSlug("my-post", nil))
		assert.Equal(t, "my-post", UniqueSlug("my-post", []string{"other"}))
	})

	t.Run("BaseTaken", func(t *testing.T) {
		assert.Equal(t, "my-post-1", UniqueSlug("my-post", []string{"my-post"}))
	})

	t.Run("CountsUp", func(t *testing.T) {
		used := []string{"my-post", "my-post-1", "my-post-2"}
		assert.Equal(t, "my-post-3", UniqueSlug("my-post", used))
	})

	t.Run("NeverInUsedSet", func(t *testing.T) {
		used := []string{"p", "p-1", "p-2", "p-3", "p-4"}
		got := UniqueSlug("p", used)
		for _, s := range used {
			assert.NotEqual(t, s, got)
		}
	})
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("hello-world"))
	assert.True(t, IsValidSlug("hello-world-안녕"))
	assert.True(t, IsValidSlug("top-10"))

	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Hello-World"))
	assert.False(t, IsValidSlug("with space"))
	assert.False(t, IsValidSlug("semi;colon"))
	assert.False(t, IsValidSlug(strings.Repeat("a", 101)))
}
