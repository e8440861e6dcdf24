package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

func resetWordsFlags() {
	wordsLimit = 20
	wordsCSV = false
}

func TestWordsCmd_RequiresThreeArgs(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "words", "id", "a.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 3 arg(s)")
}

func TestWordsCmd_LimitFlag(t *testing.T) {
	flag := wordsCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestWordsCmd_ListsCommonWords(t *testing.T) {
	setupTestServices(t)
	id := compareTestFiles(t)
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", id, "a.txt", "b.txt")

	require.NoError(t, err)
	assert.Contains(t, out, "Words in common: a.txt and b.txt")
	// "the" occurs twice in each document and sorts first.
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3)
	assert.Contains(t, lines[3], "the")
	assert.Contains(t, out, "sat")
	assert.NotContains(t, out, "cat")
}

func TestWordsCmd_Limit(t *testing.T) {
	setupTestServices(t)
	id := compareTestFiles(t)
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--limit", "1", id, "a.txt", "b.txt")

	require.NoError(t, err)
	assert.Contains(t, out, "... and 2 more")
}

func TestWordsCmd_NoCommonWords(t *testing.T) {
	setupTestServices(t)
	id := compareTestFiles(t)
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", id, "a.txt", "c.txt")

	require.NoError(t, err)
	assert.Contains(t, out, "a.txt and c.txt have no words in common.")
}

func TestWordsCmd_CSV(t *testing.T) {
	setupTestServices(t)
	id := compareTestFiles(t)
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--csv", id, "a.txt", "b.txt")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "term,doc1,doc2,total,avg\nthe,2,2,4,2.0000\n"))
}

func TestWordsCmd_UnknownName(t *testing.T) {
	setupTestServices(t)
	id := compareTestFiles(t)
	defer resetWordsFlags()

	_, err := executeCommand(t, "words", id, "a.txt", "z.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownFilename)
}
