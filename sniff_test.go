// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func TestSniffChain(t *testing.T) {
	tarball := makeTarball(t, map[string][]byte{"a.txt": []byte("hello")})

	tests := []struct {
		name string
		data []byte
		want CompressionFormat
	}{
		{name: "tar", data: tarball, want: Tar},
		{name: "zip", data: makeZip(t, []zipEntry{{name: "a.txt", body: []byte("hi")}}), want: Zip},
		{name: "gzip", data: gzipBytes(t, []byte("payload")), want: Gzip},
		{
			name: "zstd",
			data: compressWith(t, []byte("payload"), func(w io.Writer) (io.WriteCloser, error) {
				return zstd.NewWriter(w)
			}),
			want: Zstd,
		},
		{
			name: "xz",
			data: compressWith(t, []byte("payload"), func(w io.Writer) (io.WriteCloser, error) {
				return xz.NewWriter(w)
			}),
			want: Xz,
		},
		{name: "bzip3", data: append([]byte("BZ3v1"), 0, 0, 0, 16), want: Bzip3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			chain, _, ok := SniffChain(bytes.NewReader(test.data))
			require.True(t, ok)
			require.Len(t, chain, 1, "sniffing sees the outermost layer only")
			assert.Equal(t, test.want, chain[0])
		})
	}
}

func TestSniffChainUnknownContent(t *testing.T) {
	data := []byte("# just a readme, nothing to decode here\n")

	chain, r, ok := SniffChain(bytes.NewReader(data))
	assert.False(t, ok)
	assert.Nil(t, chain)

	// the peeked bytes are not lost
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSniffChainEmptyInput(t *testing.T) {
	_, _, ok := SniffChain(bytes.NewReader(nil))
	assert.False(t, ok)
}

func TestSniffChainPreservesStream(t *testing.T) {
	data := gzipBytes(t, []byte("payload survives the peek"))

	chain, r, ok := SniffChain(bytes.NewReader(data))
	require.True(t, ok)
	require.Equal(t, FormatChain{Gzip}, chain)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got, "the replacement reader starts at the original position")
}

func TestMatchesMagicBytes(t *testing.T) {
	magic := [][]byte{{0x1f, 0x8b}}

	assert.True(t, matchesMagicBytes([]byte{0x1f, 0x8b, 0x08}, 0, magic))
	assert.False(t, matchesMagicBytes([]byte{0x00, 0x1f, 0x8b}, 0, magic))
	assert.True(t, matchesMagicBytes([]byte{0x00, 0x1f, 0x8b}, 1, magic))
	assert.False(t, matchesMagicBytes([]byte{0x1f}, 0, magic), "short data never matches")
}

func TestMaxHeaderLengthCoversTar(t *testing.T) {
	// tar's magic sits deepest into the file, the peek window must reach it
	assert.GreaterOrEqual(t, maxHeaderLength, offsetTar+len(magicBytesTar[0]))
}
