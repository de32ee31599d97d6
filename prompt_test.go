// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWantsToContinuePolicies(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfig(WithPromptStreams(strings.NewReader(""), &out))

	ok, err := userWantsToContinue(cfg, "a.zip.gz", PolicyAlwaysYes, ActionDecompression)
	require.Nil(t, err)
	assert.True(t, ok)

	ok, err = userWantsToContinue(cfg, "a.zip.gz", PolicyAlwaysNo, ActionDecompression)
	require.Nil(t, err)
	assert.False(t, ok)

	assert.Zero(t, out.Len(), "fixed policies never print a prompt")
}

func TestUserWantsToContinueAsk(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "yes", answer: "y\n", want: true},
		{name: "yes word", answer: "yes\n", want: true},
		{name: "yes shouted", answer: "YES\n", want: true},
		{name: "default is yes", answer: "\n", want: true},
		{name: "padded yes", answer: "  y  \n", want: true},
		{name: "no", answer: "n\n", want: false},
		{name: "no word", answer: "no\n", want: false},
		{name: "anything else is no", answer: "maybe\n", want: false},
		{name: "closed input is no", answer: "", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := NewConfig(WithPromptStreams(strings.NewReader(test.answer), &out))

			got, err := userWantsToContinue(cfg, "a.zip.gz", PolicyAsk, ActionDecompression)
			require.Nil(t, err)
			assert.Equal(t, test.want, got)
			assert.Contains(t, out.String(), `Do you want to continue decompressing "a.zip.gz"? [Y/n]`)
		})
	}
}

func TestPromptAccessibleRendering(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfig(
		WithAccessible(true),
		WithPromptStreams(strings.NewReader("no\n"), &out),
	)

	warnAboutMaterialization(cfg, "a.zip.gz")
	_, err := userWantsToContinue(cfg, "a.zip.gz", PolicyAsk, ActionDecompression)
	require.Nil(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "WARNING:")
	assert.Contains(t, rendered, "yes or no:")
	assert.NotContains(t, rendered, "[", "accessible output carries no decorative brackets")
}

func TestWarnAboutMaterialization(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfig(WithPromptStreams(strings.NewReader(""), &out))

	warnAboutMaterialization(cfg, "big.7z.zst")

	assert.Contains(t, out.String(), "[WARNING]")
	assert.Contains(t, out.String(), `"big.7z.zst"`)
	assert.Contains(t, out.String(), "memory")
}
