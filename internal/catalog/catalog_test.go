package catalog

import (
	"testing"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryOption(t *testing.T) {
	opt, err := DeliveryOption(entities.DeliverySameDay)
	require.NoError(t, err)
	assert.Equal(t, 25, opt.Price)

	_, err = DeliveryOption("teleport")
	assert.ErrorIs(t, err, entities.ErrDeliveryOptionNotFound)
}

func TestSeedAddresses_ExactlyOneDefault(t *testing.T) {
	addrs := SeedAddresses()
	require.Len(t, addrs, 2)

	defaults := 0
	for _, a := range addrs {
		if a.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.Equal(t, "addr_001", addrs[0].ID)
}

func TestSeedAddresses_ReturnsCopies(t *testing.T) {
	first := SeedAddresses()
	first[0].Coordinates.Lat = 0
	first[0].IsDefault = false

	second := SeedAddresses()
	assert.True(t, second[0].IsDefault)
	assert.NotZero(t, second[0].Coordinates.Lat)
}
