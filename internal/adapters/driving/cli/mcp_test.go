package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tavern/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_RequiresListingService(t *testing.T) {
	t.Cleanup(resetFlags)

	_, err := execute(t, "", "mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingListingService)
}
