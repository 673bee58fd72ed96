package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURLs(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantURLs    []string
		wantSkipped []string
	}{
		{
			name:     "newline separated",
			input:    "https://a.example/g1\nhttps://b.example/g2\n",
			wantURLs: []string{"https://a.example/g1", "https://b.example/g2"},
		},
		{
			name:     "space separated",
			input:    "https://a.example/g1 http://b.example/g2",
			wantURLs: []string{"https://a.example/g1", "http://b.example/g2"},
		},
		{
			name:        "invalid tokens skipped",
			input:       "https://a.example/g1 ftp://b.example notaurl",
			wantURLs:    []string{"https://a.example/g1"},
			wantSkipped: []string{"ftp://b.example", "notaurl"},
		},
		{
			name:  "empty input",
			input: "  \n\t ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			urls, skipped := ParseURLs(test.input)
			assert.Equal(t, test.wantURLs, urls)
			assert.Equal(t, test.wantSkipped, skipped)
		})
	}
}
