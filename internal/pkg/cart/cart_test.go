package cart

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func dwelling(price float64) CoverageSelection {
	return CoverageSelection{
		ID:          "dwelling",
		Type:        "property",
		Name:        "Dwelling Coverage",
		Description: "Covers damage to your home's structure.",
		Amount:      250000,
		Deductible:  1000,
		Price:       price,
	}
}

func TestEmptyCartTotalsZero(t *testing.T) {
	c := New()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Subtotal())
	assert.Zero(t, c.Tax())
	assert.Zero(t, c.Total())

	var zero Cart
	assert.Zero(t, zero.Total())
}

func TestSingleSelectionTotals(t *testing.T) {
	c := New()
	c.AddOrReplace(dwelling(780))

	assert.InDelta(t, 780, c.Subtotal(), delta)
	assert.InDelta(t, 54.6, c.Tax(), delta)
	assert.InDelta(t, 834.6, c.Total(), delta)
}

func TestAddOrReplaceSameIDReplaces(t *testing.T) {
	c := New()
	c.AddOrReplace(dwelling(780))
	c.AddOrReplace(dwelling(980))

	require.Equal(t, 1, c.Len())
	got, ok := c.Get("dwelling")
	require.True(t, ok)
	assert.Equal(t, 980.0, got.Price)
}

func TestAddOrReplaceKeepsPosition(t *testing.T) {
	c := New(
		CoverageSelection{ID: "a", Price: 1},
		CoverageSelection{ID: "b", Price: 2},
		CoverageSelection{ID: "c", Price: 3},
	)
	c.AddOrReplace(CoverageSelection{ID: "b", Price: 20})

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, 20.0, items[1].Price)
	assert.InDelta(t, 24, c.Subtotal(), delta)
}

func TestRemoveAndClear(t *testing.T) {
	c := New(CoverageSelection{ID: "a", Price: 1}, CoverageSelection{ID: "b", Price: 2})

	c.Remove("missing")
	assert.Equal(t, 2, c.Len())

	c.Remove("a")
	assert.False(t, c.Contains("a"))
	assert.True(t, c.Contains("b"))
	assert.InDelta(t, 2, c.Subtotal(), delta)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New(CoverageSelection{ID: "a", Price: 1})
	items := c.Items()
	items[0].Price = 100

	assert.InDelta(t, 1, c.Subtotal(), delta)
}

func TestRandomOperationsKeepCartConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"dwelling", "personal-property", "loss-of-use", "umbrella", "medical-payments"}
	c := New()

	for step := 0; step < 2000; step++ {
		id := ids[rng.Intn(len(ids))]
		switch op := rng.Intn(10); {
		case op < 6:
			c.AddOrReplace(CoverageSelection{ID: id, Price: float64(rng.Intn(1500))})
		case op < 9:
			c.Remove(id)
		default:
			c.Clear()
		}

		seen := map[string]bool{}
		for _, item := range c.Items() {
			require.False(t, seen[item.ID], "duplicate id %s at step %d", item.ID, step)
			seen[item.ID] = true
		}
		require.GreaterOrEqual(t, c.Subtotal(), 0.0)
		require.InDelta(t, c.Subtotal()+c.Subtotal()*TaxRate, c.Total(), delta)
	}
}

func TestJSONRoundTripCollapsesDuplicates(t *testing.T) {
	raw := []byte(`[{"id":"dwelling","price":780},{"id":"umbrella","price":180},{"id":"dwelling","price":980}]`)

	var c Cart
	require.NoError(t, json.Unmarshal(raw, &c))
	require.Equal(t, 2, c.Len())
	got, _ := c.Get("dwelling")
	assert.Equal(t, 980.0, got.Price)

	out, err := json.Marshal(&c)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":"dwelling","type":"","name":"","description":"","amount":0,"deductible":0,"price":980},
		{"id":"umbrella","type":"","name":"","description":"","amount":0,"deductible":0,"price":180}
	]`, string(out))
}

func TestIndependentInstances(t *testing.T) {
	a := New()
	b := New()
	a.AddOrReplace(dwelling(780))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len(), fmt.Sprintf("carts share state: %v", b.Items()))
}
