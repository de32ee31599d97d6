// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	arclist "github.com/arclist/go-arclist"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveChainExplicitOverrideWins(t *testing.T) {
	chain, err := resolveChain(&CLI{Archive: "misleading.zip", Format: "tar.gz"})
	require.NoError(t, err)
	assert.Equal(t, arclist.FormatChain{arclist.Tar, arclist.Gzip}, chain)
}

func TestResolveChainFromFilename(t *testing.T) {
	tests := []struct {
		name    string
		archive string
		want    arclist.FormatChain
	}{
		{name: "tar gz", archive: "/backups/b.tar.gz", want: arclist.FormatChain{arclist.Tar, arclist.Gzip}},
		{name: "tgz shorthand", archive: "b.tgz", want: arclist.FormatChain{arclist.Tar, arclist.Gzip}},
		{name: "bare zip", archive: "album.zip", want: arclist.FormatChain{arclist.Zip}},
		{name: "plain stream", archive: "notes.txt.zst", want: arclist.FormatChain{arclist.Zstd}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			chain, err := resolveChain(&CLI{Archive: test.archive})
			require.NoError(t, err)
			assert.Equal(t, test.want, chain)
		})
	}
}

func TestResolveChainRejectsInvalidFilenameChain(t *testing.T) {
	// gz.tar puts the container in a non-zero position
	_, err := resolveChain(&CLI{Archive: "broken.gz.tar"})
	require.Error(t, err)

	var e *arclist.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, arclist.KindInvalidFormat, e.Kind())
}

func TestResolveChainSniffsExtensionlessContent(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("compressed but anonymously named"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "mystery")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	chain, err := resolveChain(&CLI{Archive: path})
	require.NoError(t, err)
	assert.Equal(t, arclist.FormatChain{arclist.Gzip}, chain)
}

func TestResolveChainFailsOnUnknownContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mystery")
	require.NoError(t, os.WriteFile(path, []byte("plain prose, no signature"), 0o644))

	_, err := resolveChain(&CLI{Archive: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot determine the format")
}

func TestRunRefusesPlainCompressedFile(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("not an archive"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "single.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	runErr := run(&CLI{Archive: path}, arclist.NewConfig())
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "not an archive")
}

func TestRunMapsAnswerFlagsToPolicy(t *testing.T) {
	// a zip under gzip forces the materialization question; --no must turn
	// it into an empty, successful listing
	zipGz := buildZipGz(t)

	cfg := arclist.NewConfig(arclist.WithPromptStreams(bytes.NewReader(nil), &bytes.Buffer{}))
	runErr := run(&CLI{Archive: zipGz, No: true}, cfg)
	assert.NoError(t, runErr, "a declined listing is a clean exit")
}

// buildZipGz writes a gzip-wrapped zip fixture named fixture.zip.gz.
func buildZipGz(t *testing.T) string {
	t.Helper()

	var zipBuf bytes.Buffer
	zw := zip.NewWriter(&zipBuf)
	w, err := zw.Create("a.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write(zipBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "fixture.zip.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}
