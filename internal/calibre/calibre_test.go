// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calibre

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv2calibre/pkg/types"
)

// mockExecutor records commands and returns configured responses.
type mockExecutor struct {
	calls     [][]string
	output    []byte
	outputErr error
	runErr    error
}

func (m *mockExecutor) Output(name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, append([]string{name}, args...))
	return m.output, m.outputErr
}

func (m *mockExecutor) Run(name string, args ...string) error {
	m.calls = append(m.calls, append([]string{name}, args...))
	return m.runErr
}

func sampleMeta() types.PaperMetadata {
	return types.PaperMetadata{
		ID:      "http://arxiv.org/abs/2101.00001v1",
		Title:   "Dark Matter Candidates at ~100 GeV",
		Author:  "Alice Smith, Bob Jones",
		Pubdate: "2021-01-01T18:58:28Z",
		Summary: "An abstract.",
	}
}

func TestAddParsesBookID(t *testing.T) {
	mock := &mockExecutor{output: []byte("Added book ids: 4821\n")}
	im := &Importer{exec: mock}

	id, err := im.Add("/tmp/paper.pdf", sampleMeta())
	require.NoError(t, err)
	assert.Equal(t, "4821", id)

	require.Len(t, mock.calls, 1)
	assert.Equal(t, []string{
		"calibredb", "add",
		"-a", "Alice Smith, Bob Jones",
		"-t", "Dark Matter Candidates at ~100 GeV",
		"-T", "arXiv",
		"/tmp/paper.pdf",
	}, mock.calls[0])
}

func TestAddSkipsNonMatchingLines(t *testing.T) {
	mock := &mockExecutor{output: []byte("Backing up metadata\nAdded book ids: 17\n")}
	im := &Importer{exec: mock}

	id, err := im.Add("/tmp/paper.pdf", sampleMeta())
	require.NoError(t, err)
	assert.Equal(t, "17", id)
}

func TestAddNoIDLine(t *testing.T) {
	mock := &mockExecutor{output: []byte("Backing up metadata\n")}
	im := &Importer{exec: mock}

	_, err := im.Add("/tmp/paper.pdf", sampleMeta())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dark Matter Candidates at ~100 GeV")
}

func TestAddCommandFailure(t *testing.T) {
	mock := &mockExecutor{outputErr: errors.New("exit status 1")}
	im := &Importer{exec: mock}

	_, err := im.Add("/tmp/paper.pdf", sampleMeta())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calibredb add")
}

func TestSetMetadataArgs(t *testing.T) {
	mock := &mockExecutor{}
	im := &Importer{exec: mock}

	err := im.SetMetadata("4821", sampleMeta())
	require.NoError(t, err)

	require.Len(t, mock.calls, 1)
	assert.Equal(t, []string{
		"calibredb", "set_metadata",
		"-f", "tags:science.arXiv",
		"-f", "publisher:arXiv",
		"-f", "pubdate:2021-01-01T18:58:28Z",
		"4821",
	}, mock.calls[0])
}

func TestSetMetadataFailure(t *testing.T) {
	mock := &mockExecutor{runErr: errors.New("exit status 2")}
	im := &Importer{exec: mock}

	err := im.SetMetadata("4821", sampleMeta())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set_metadata for book 4821")
}

func TestLibraryPathPropagation(t *testing.T) {
	mock := &mockExecutor{output: []byte("Added book ids: 9\n")}
	im := &Importer{cfg: types.ImportConfig{Library: "/books/research"}, exec: mock}

	_, err := im.Import("/tmp/paper.pdf", sampleMeta())
	require.NoError(t, err)

	require.Len(t, mock.calls, 2)
	for _, call := range mock.calls {
		found := false
		for i, arg := range call {
			if arg == "--with-library" {
				require.Greater(t, len(call), i+1)
				assert.Equal(t, "/books/research", call[i+1])
				found = true
			}
		}
		assert.True(t, found, "call %v lacks --with-library", call)
	}
}

func TestNoLibraryFlagWhenUnset(t *testing.T) {
	mock := &mockExecutor{output: []byte("Added book ids: 9\n")}
	im := &Importer{exec: mock}

	_, err := im.Import("/tmp/paper.pdf", sampleMeta())
	require.NoError(t, err)

	require.Len(t, mock.calls, 2)
	for _, call := range mock.calls {
		assert.NotContains(t, call, "--with-library")
	}
}

func TestImportChainsAddAndSetMetadata(t *testing.T) {
	mock := &mockExecutor{output: []byte("Added book ids: 4821\n")}
	im := &Importer{exec: mock}

	id, err := im.Import("/tmp/paper.pdf", sampleMeta())
	require.NoError(t, err)
	assert.Equal(t, "4821", id)

	require.Len(t, mock.calls, 2)
	assert.Equal(t, "add", mock.calls[0][1])
	assert.Equal(t, "set_metadata", mock.calls[1][1])
	// set_metadata targets the id parsed from the add output.
	assert.Equal(t, "4821", mock.calls[1][len(mock.calls[1])-1])
}

func TestImportStopsWhenAddFails(t *testing.T) {
	mock := &mockExecutor{output: []byte("no id here\n")}
	im := &Importer{exec: mock}

	_, err := im.Import("/tmp/paper.pdf", sampleMeta())
	require.Error(t, err)
	assert.Len(t, mock.calls, 1, "set_metadata must not run after a failed add")
}
