package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

func shellInput(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestShell_FullSession(t *testing.T) {
	env := setupTestServices(t)
	env.source.items = []string{
		hhItem(1, "Python Developer", "PyCorp", 100000, 200000),
		hhItem(2, "Django Developer", "Webco", nil, 180000),
	}

	out, err := execute(t, shellInput("1", "python", "2", "3", "1", "y", "4"), "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to Tavern, the vacancy tavern.")
	assert.Contains(t, out, "1 - Search vacancies")
	assert.Contains(t, out, "Enter search keywords: ")
	assert.Contains(t, out, "Added 2 new, 0 already saved.")
	assert.Contains(t, out, "Loading saved vacancies...")
	assert.Contains(t, out, "2. Name: Django Developer")
	assert.Contains(t, out, "1. Python Developer (PyCorp) - https://hh.ru/vacancy/1")
	assert.Contains(t, out, `Deleted "Python Developer".`)
	assert.Contains(t, out, "Thanks for visiting. Goodbye!")
	assert.Equal(t, 1, env.store.Len())
}

func TestShell_UnknownCommand(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, shellInput("9", "4"), "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "No such command.")
}

func TestShell_EOFEndsSession(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "Enter a command number: ")
	assert.NotContains(t, out, "Goodbye")
}

func TestShell_ShowEmpty(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, shellInput("2", "4"), "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "No saved vacancies yet.")
}

func TestShell_SearchFailureContinues(t *testing.T) {
	env := setupTestServices(t)
	env.source.err = domain.ErrTransport

	out, err := execute(t, shellInput("1", "go", "4"), "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "Search failed:")
	assert.Contains(t, out, "Goodbye")
}

func TestShell_DeleteInvalidChoices(t *testing.T) {
	env := setupTestServices(t, sampleListings()...)

	out, err := execute(t, shellInput("3", "abc", "3", "9", "3", "0", "3", "2", "n", "4"), "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid input. Please enter a number.")
	assert.Contains(t, out, "No vacancy with that number. Please try again.")
	assert.Contains(t, out, `Delete "Python Developer"? (y/n): `)
	assert.Equal(t, 2, strings.Count(out, "Deletion cancelled."))
	assert.Equal(t, 3, env.store.Len())
}

func TestShell_DeleteNothing(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, shellInput("3", "4"), "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to delete.")
}
