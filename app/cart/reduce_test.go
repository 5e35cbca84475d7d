package cart

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/utils/calc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rate = calc.DefaultTaxRate()

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(id, price string) *models.LineItem {
	return &models.LineItem{ID: id, Name: id, Price: dec(price)}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func assertSameCart(t *testing.T, want, got models.Cart) {
	t.Helper()
	require.Len(t, got.Items, len(want.Items))
	for i := range want.Items {
		assert.Equal(t, want.Items[i].ID, got.Items[i].ID)
		assert.Equal(t, want.Items[i].Quantity, got.Items[i].Quantity)
		assert.True(t, want.Items[i].Price.Equal(got.Items[i].Price))
	}
	assert.True(t, want.Subtotal.Equal(got.Subtotal), "subtotal %s != %s", want.Subtotal, got.Subtotal)
	assert.True(t, want.Tax.Equal(got.Tax), "tax %s != %s", want.Tax, got.Tax)
	assert.True(t, want.Total.Equal(got.Total), "total %s != %s", want.Total, got.Total)
	assert.Equal(t, want.IsOpen, got.IsOpen)
}

func TestAddRemoveScenario(t *testing.T) {
	state := models.EmptyCart()
	salmon := item("m1", "28.99")

	state, changed := Reduce(state, AddItem{Item: salmon}, rate)
	require.True(t, changed)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assertMoney(t, "28.99", state.Subtotal, "subtotal")
	assertMoney(t, "2.391675", state.Tax, "tax")
	assertMoney(t, "31.381675", state.Total, "total")

	state, _ = Reduce(state, AddItem{Item: salmon}, rate)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assertMoney(t, "57.98", state.Subtotal, "subtotal")

	state, _ = Reduce(state, RemoveItem{Item: &models.LineItem{ID: "m1"}}, rate)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assertMoney(t, "28.99", state.Subtotal, "subtotal")

	state, _ = Reduce(state, RemoveItem{Item: &models.LineItem{ID: "m1"}}, rate)
	assert.Empty(t, state.Items)
	assertMoney(t, "0", state.Subtotal, "subtotal")
	assertMoney(t, "0", state.Total, "total")
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	state := models.EmptyCart()
	for _, it := range []*models.LineItem{item("m1", "28.99"), item("s2", "8.99"), item("m1", "28.99"), item("d2", "8.99")} {
		state, _ = Reduce(state, AddItem{Item: it}, rate)
	}
	ids := make([]string, 0, len(state.Items))
	for _, it := range state.Items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"m1", "s2", "d2"}, ids)
	assert.Equal(t, 4, state.ItemCount())
}

func TestNilAndUnknownAreNoOps(t *testing.T) {
	state, _ := Reduce(models.EmptyCart(), AddItem{Item: item("m1", "28.99")}, rate)

	next, changed := Reduce(state, AddItem{}, rate)
	assert.False(t, changed)
	assertSameCart(t, state, next)

	next, changed = Reduce(state, RemoveItem{}, rate)
	assert.False(t, changed)
	assertSameCart(t, state, next)

	next, changed = Reduce(state, RemoveItem{Item: item("nope", "1")}, rate)
	assert.False(t, changed)
	assertSameCart(t, state, next)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state, _ := Reduce(models.EmptyCart(), AddItem{Item: item("m1", "28.99")}, rate)
	state, _ = Reduce(state, AddItem{Item: item("m1", "28.99")}, rate)

	_, _ = Reduce(state, RemoveItem{Item: item("m1", "28.99")}, rate)
	_, _ = Reduce(state, AddItem{Item: item("m1", "28.99")}, rate)

	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestClearPreservesOpenFlag(t *testing.T) {
	for _, open := range []bool{true, false} {
		state := models.EmptyCart()
		state, _ = Reduce(state, Toggle{Open: Open(open)}, rate)
		state, _ = Reduce(state, AddItem{Item: item("m1", "28.99")}, rate)
		state, _ = Reduce(state, ApplyDiscount{Code: "SAVE10", Percent: dec("10")}, rate)

		state, changed := Reduce(state, Clear{}, rate)
		assert.True(t, changed)
		assert.Empty(t, state.Items)
		assert.NotNil(t, state.Items)
		assert.Nil(t, state.Discount)
		assertMoney(t, "0", state.Subtotal, "subtotal")
		assertMoney(t, "0", state.Tax, "tax")
		assertMoney(t, "0", state.Total, "total")
		assert.Equal(t, open, state.IsOpen)
	}
}

func TestToggle(t *testing.T) {
	state, _ := Reduce(models.EmptyCart(), AddItem{Item: item("m1", "28.99")}, rate)
	before := state.Total

	state, _ = Reduce(state, Toggle{}, rate)
	assert.True(t, state.IsOpen)
	state, _ = Reduce(state, Toggle{}, rate)
	assert.False(t, state.IsOpen)
	state, _ = Reduce(state, Toggle{Open: Open(true)}, rate)
	state, _ = Reduce(state, Toggle{Open: Open(true)}, rate)
	assert.True(t, state.IsOpen)
	assert.True(t, before.Equal(state.Total))
}

func TestApplyDiscount(t *testing.T) {
	state := models.EmptyCart()
	for i := 0; i < 4; i++ {
		state, _ = Reduce(state, AddItem{Item: item("w1", "25")}, rate)
	}
	assertMoney(t, "100", state.Subtotal, "subtotal")

	state, changed := Reduce(state, ApplyDiscount{Code: "SAVE10", Percent: dec("10")}, rate)
	require.True(t, changed)
	assertMoney(t, "90", state.Subtotal, "subtotal")
	assertMoney(t, "7.425", state.Tax, "tax")
	assertMoney(t, "97.425", state.Total, "total")
	require.NotNil(t, state.Discount)
	assert.Equal(t, "SAVE10", state.Discount.Code)

	state, _ = Reduce(state, ApplyDiscount{Code: "SAVE20", Percent: dec("20")}, rate)
	assertMoney(t, "80", state.Subtotal, "replaced, not compounded")
	assert.Equal(t, "SAVE20", state.Discount.Code)

	state, _ = Reduce(state, ApplyDiscount{Code: "SAVE20", Percent: dec("20")}, rate)
	assertMoney(t, "80", state.Subtotal, "idempotent")
}

func TestDiscountSurvivesItemChanges(t *testing.T) {
	state, _ := Reduce(models.EmptyCart(), AddItem{Item: item("w1", "50")}, rate)
	state, _ = Reduce(state, ApplyDiscount{Code: "HALF", Percent: dec("50")}, rate)
	assertMoney(t, "25", state.Subtotal, "subtotal")

	state, _ = Reduce(state, AddItem{Item: item("w1", "50")}, rate)
	assertMoney(t, "50", state.Subtotal, "subtotal")
	assertMoney(t, "54.125", state.Total, "total")
}

func TestReplace(t *testing.T) {
	snapshot, _ := Reduce(models.EmptyCart(), AddItem{Item: item("m1", "28.99")}, rate)
	snapshot.IsOpen = true

	state, changed := Reduce(models.EmptyCart(), Replace{Snapshot: snapshot}, rate)
	assert.True(t, changed)
	assertSameCart(t, snapshot, state)

	state.Items[0].Quantity = 9
	assert.Equal(t, 1, snapshot.Items[0].Quantity)

	_, changed = Reduce(models.EmptyCart(), Replace{Snapshot: models.Cart{}}, rate)
	assert.False(t, changed)
}

func TestSnapshotRoundTrip(t *testing.T) {
	state := models.EmptyCart()
	state, _ = Reduce(state, AddItem{Item: item("m1", "28.99")}, rate)
	state, _ = Reduce(state, AddItem{Item: item("s2", "8.99")}, rate)
	state, _ = Reduce(state, AddItem{Item: item("m1", "28.99")}, rate)
	state, _ = Reduce(state, ApplyDiscount{Code: "SAVE10", Percent: dec("10")}, rate)

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded models.Cart
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored, changed := Reduce(models.EmptyCart(), Replace{Snapshot: decoded}, rate)
	require.True(t, changed)
	assertSameCart(t, state, restored)
	require.NotNil(t, restored.Discount)
	assert.Equal(t, "SAVE10", restored.Discount.Code)
}

func TestDecodesNumericSnapshot(t *testing.T) {
	raw := `{"items":[{"id":"m1","name":"Grilled Salmon","price":28.99,"quantity":2}],"subtotal":57.98,"tax":4.78335,"total":62.76335,"isOpen":false}`

	var decoded models.Cart
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assertMoney(t, "57.98", decoded.Subtotal, "subtotal")
	assert.Equal(t, 2, decoded.Items[0].Quantity)
}

func TestInvariantsHoldForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	menu := []*models.LineItem{
		item("m1", "28.99"), item("m2", "34.99"), item("s2", "8.99"), item("d2", "8.99"), item("b1", "0.01"),
	}

	state := models.EmptyCart()
	for step := 0; step < 2000; step++ {
		pick := menu[rng.Intn(len(menu))]
		var cmd Command = AddItem{Item: pick}
		if rng.Intn(2) == 0 {
			cmd = RemoveItem{Item: pick}
		}
		state, _ = Reduce(state, cmd, rate)

		seen := map[string]bool{}
		want := decimal.Zero
		for _, it := range state.Items {
			require.False(t, seen[it.ID], "duplicate id %s", it.ID)
			seen[it.ID] = true
			require.Greater(t, it.Quantity, 0)
			want = want.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		require.True(t, want.Equal(state.Subtotal), "step %d: %s != %s", step, want, state.Subtotal)
		require.True(t, state.Total.Equal(state.Subtotal.Add(state.Tax)))
	}
}

func TestAddThenRemoveRestoresState(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	menu := []*models.LineItem{item("m1", "28.99"), item("s2", "8.99"), item("d2", "8.99")}

	state := models.EmptyCart()
	for step := 0; step < 300; step++ {
		pick := menu[rng.Intn(len(menu))]
		added, _ := Reduce(state, AddItem{Item: pick}, rate)
		restored, _ := Reduce(added, RemoveItem{Item: pick}, rate)
		assertSameCart(t, state, restored)

		state, _ = Reduce(state, AddItem{Item: menu[rng.Intn(len(menu))]}, rate)
	}
}
