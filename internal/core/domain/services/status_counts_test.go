package services_test

import (
	"math/rand/v2"
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestCountByStatus(t *testing.T) {
	seller := newUser(t, user.Seller, true)
	driver := newUser(t, user.Driver, true)

	t.Run("empty collection reports every status as zero", func(t *testing.T) {
		counts := services.CountByStatus(nil)

		assert.Len(t, counts, len(order.All()))
		for _, s := range order.All() {
			assert.Equal(t, 0, counts[s], s.String())
		}
		assert.Equal(t, 0, counts.Total())
	})

	t.Run("counts each status", func(t *testing.T) {
		orders := []*order.Order{
			orderIn(t, order.Pending, seller, driver),
			orderIn(t, order.Pending, seller, driver),
			orderIn(t, order.InTransit, seller, driver),
			orderIn(t, order.Delivered, seller, driver),
		}

		counts := services.CountByStatus(orders)

		assert.Equal(t, 2, counts[order.Pending])
		assert.Equal(t, 1, counts[order.InTransit])
		assert.Equal(t, 1, counts[order.Delivered])
		assert.Equal(t, 0, counts[order.Postponed])
		assert.Equal(t, 4, counts.Total())
	})

	t.Run("sums to the collection length and uses only enum keys", func(t *testing.T) {
		all := order.All()
		rnd := rand.New(rand.NewPCG(1, 2))

		for round := range 20 {
			orders := make([]*order.Order, rnd.IntN(30))
			for i := range orders {
				orders[i] = orderIn(t, all[rnd.IntN(len(all))], seller, driver)
			}

			counts := services.CountByStatus(orders)

			assert.Equal(t, len(orders), counts.Total(), "round %d", round)
			assert.Len(t, counts, len(all))
			for s := range counts {
				assert.NoError(t, s.Validate())
			}
		}
	})

	t.Run("skips values that bypassed the constructor", func(t *testing.T) {
		counts := services.CountByStatus([]*order.Order{{}, nil})

		assert.Equal(t, 0, counts.Total())
		assert.NotContains(t, counts, order.Unknown)
	})

	t.Run("by name", func(t *testing.T) {
		counts := services.CountByStatus([]*order.Order{orderIn(t, order.NoAnswer, seller, driver)})

		byName := counts.ByName()

		assert.Equal(t, 1, byName["no_answer"])
		assert.Equal(t, 0, byName["pending"])
		assert.Len(t, byName, 7)
	})
}
