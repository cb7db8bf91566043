package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (*Ports)(nil).Validate(), ErrMissingListingService)
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingListingService)
	assert.NoError(t, (&Ports{Listings: &MockListingService{}}).Validate())
}
