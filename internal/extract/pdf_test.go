package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashu-94/bank-ai-analyzer/internal/common"
)

func TestExtractRejectsNonPDFBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o600))

	e := NewPDFExtractor(nil)
	_, err := e.Extract(context.Background(), path)

	require.Error(t, err)
	// a library fault, not a "no text" condition
	assert.ErrorIs(t, err, common.ErrExtraction)
	assert.NotErrorIs(t, err, common.ErrNoText)
}

func TestExtractMissingFile(t *testing.T) {
	e := NewPDFExtractor(nil)
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
}

func TestJoinPageTexts(t *testing.T) {
	assert.Equal(t, "", JoinPageTexts(nil))
	assert.Equal(t, "page one", JoinPageTexts([]string{"page one"}))
	assert.Equal(t, "page one\npage three", JoinPageTexts([]string{"page one", "page three"}))
}
