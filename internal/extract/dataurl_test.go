package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURL_JPEG(t *testing.T) {
	att := ParseDataURL("data:image/jpeg;base64,/9j/4AAQSkZJRg==")

	require.NotNil(t, att)
	assert.Equal(t, "image/jpeg", att.MediaType)
	assert.Equal(t, "/9j/4AAQSkZJRg==", att.Data)
}

func TestParseDataURL_JPGAlias(t *testing.T) {
	att := ParseDataURL("data:image/jpg;base64,AAAA")

	require.NotNil(t, att)
	assert.Equal(t, "image/jpeg", att.MediaType)
	assert.Equal(t, "AAAA", att.Data)
}

func TestParseDataURL_PDF(t *testing.T) {
	att := ParseDataURL("data:application/pdf;base64,JVBERi0xLjQ=")

	require.NotNil(t, att)
	assert.Equal(t, "application/pdf", att.MediaType)
	assert.Equal(t, "JVBERi0xLjQ=", att.Data)
}

func TestParseDataURL_UnrecognizedTypePassesThrough(t *testing.T) {
	att := ParseDataURL("data:image/heic;base64,AAAA")

	require.NotNil(t, att)
	assert.Equal(t, "image/heic", att.MediaType)
}

func TestParseDataURL_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no comma", "data:image/jpeg;base64"},
		{"no semicolon", "data:image/jpeg,AAAA"},
		{"comma before semicolon", "data:image/jpeg,AAAA;base64"},
		{"plain text", "not a data url"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, ParseDataURL(tc.input))
		})
	}
}
