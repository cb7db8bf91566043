package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Yes(t *testing.T) {
	env := setupTestServices(t, sampleListings()...)

	out, err := execute(t, "", "delete", "--yes", "https://hh.ru/vacancy/2")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted https://hh.ru/vacancy/2.")
	assert.Equal(t, 2, env.store.Len())
}

func TestDeleteCmd_ConfirmPrompt(t *testing.T) {
	env := setupTestServices(t, sampleListings()...)

	out, err := execute(t, "yes\n", "rm", "https://hh.ru/vacancy/1")

	require.NoError(t, err)
	assert.Contains(t, out, "Delete saved vacancies with URL https://hh.ru/vacancy/1? (y/n): ")
	assert.Contains(t, out, "Deleted https://hh.ru/vacancy/1.")
	assert.Equal(t, 2, env.store.Len())
}

func TestDeleteCmd_Cancelled(t *testing.T) {
	env := setupTestServices(t, sampleListings()...)

	out, err := execute(t, "n\n", "delete", "https://hh.ru/vacancy/1")

	require.NoError(t, err)
	assert.Contains(t, out, "Deletion cancelled.")
	assert.Equal(t, 3, env.store.Len())
}

func TestDeleteCmd_EOFCancels(t *testing.T) {
	env := setupTestServices(t, sampleListings()...)

	out, err := execute(t, "", "delete", "https://hh.ru/vacancy/1")

	require.NoError(t, err)
	assert.Contains(t, out, "Deletion cancelled.")
	assert.Equal(t, 3, env.store.Len())
}

func TestDeleteCmd_Missing(t *testing.T) {
	setupTestServices(t, sampleListings()...)

	out, err := execute(t, "", "delete", "-y", "https://hh.ru/vacancy/404")

	require.NoError(t, err)
	assert.Contains(t, out, "No saved vacancy with URL https://hh.ru/vacancy/404.")
}

func TestIsYes(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", " YES \n"} {
		assert.True(t, isYes(answer), answer)
	}
	for _, answer := range []string{"", "n", "no", "yep", "1"} {
		assert.False(t, isYes(answer), answer)
	}
}
