package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

func TestSamplesCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range samplesCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["list"])
	assert.True(t, names["compare"])
}

func TestSamplesListCmd_ListsCatalog(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "samples", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "harbour-morning")
	assert.Contains(t, out, "Quarterly Market Report")
	assert.NotContains(t, out, "word-list")
}

func TestSamplesListCmd_NoService(t *testing.T) {
	SetServices(Services{})

	_, err := executeCommand(t, "samples", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample service not configured")
}

func TestSamplesCompareCmd_ComparesSamples(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "samples", "compare", "harbour-morning", "harbour-evening", "market-report")

	require.NoError(t, err)
	assert.Contains(t, out, "(samples, complete)")
	assert.Contains(t, out, "3 documents compared")
	assert.Contains(t, out, "Harbour Morning")
}

func TestSamplesCompareCmd_UnknownSample(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "samples", "compare", "no-such-sample")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSamplesCompareCmd_RequiresArgs(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "samples", "compare")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}
