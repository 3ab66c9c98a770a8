package service_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/catalog"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestAddressService_SingleDefaultAfterAnySequence(t *testing.T) {
	ops := []string{"add", "update", "delete", "set_default"}

	for seed := uint64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rnd := rand.New(rand.NewPCG(seed, seed*31))
			ctx := context.Background()
			svc := service.NewAddressService(discardLogger(), repo.NewMemoryAddressRepo(catalog.SeedAddresses()), false)

			pick := func(list []entities.Address) string {
				// unknown ids are part of the sequence too
				if len(list) == 0 || rnd.IntN(8) == 0 {
					return "addr_missing"
				}
				return list[rnd.IntN(len(list))].ID
			}

			for step := range 200 {
				list, err := svc.ListAddresses(ctx)
				require.NoError(t, err)

				op := ops[rnd.IntN(len(ops))]
				switch op {
				case "add":
					_, err = svc.AddAddress(ctx, fieldsFor(fmt.Sprintf("a%d", step), rnd.IntN(2) == 0))
				case "update":
					err = svc.UpdateAddress(ctx, pick(list), fieldsFor(fmt.Sprintf("u%d", step), rnd.IntN(2) == 0))
				case "delete":
					err = svc.DeleteAddress(ctx, pick(list))
				case "set_default":
					err = svc.SetDefaultAddress(ctx, pick(list))
				}
				require.NoError(t, err, "step %d: %s", step, op)

				list, err = svc.ListAddresses(ctx)
				require.NoError(t, err)
				if len(list) == 0 {
					continue
				}
				require.Len(t, defaults(t, list), 1, "step %d: %s left %d addresses", step, op, len(list))
			}
		})
	}
}
