package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAIResponseText(t *testing.T) {
	plain := `{"items":[]}`
	cases := map[string]string{
		"plain":          plain,
		"padded":         "\n  " + plain + "  \n",
		"json fence":     "```json\n" + plain + "\n```",
		"bare fence":     "```\n" + plain + "\n```",
		"fence no nl":    "```json" + plain + "```",
		"fence trailing": "  ```json\n" + plain + "\n```\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, plain, CleanAIResponseText(in))
		})
	}
}

func TestCleanAIResponseTextLeavesInnerBackticks(t *testing.T) {
	in := "{\"notes\":\"has ``` inside\"}"
	assert.Equal(t, in, CleanAIResponseText(in))
}

func TestDataURLRoundTrip(t *testing.T) {
	encoded := EncodeDataURL("image/png", []byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, "data:image/png;base64,iVBORw==", encoded)

	mimeType, data, err := ParseDataURL(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}

func TestParseDataURLRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"https://example.com/a.png",
		"data:image/png,raw",
		"data:;base64,AAAA",
		"data:image/png;base64",
		"data:image/png;base64,@@@",
	} {
		_, _, err := ParseDataURL(in)
		assert.ErrorIs(t, err, ErrInvalidDataURL, in)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("WARDROBE_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("WARDROBE_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("WARDROBE_TEST_MISSING", "fallback"))
}
