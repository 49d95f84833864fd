package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseProps() Props {
	return Props{
		ID:       "order-001",
		ClientID: "client-123",
		Products: []ProductSnapshot{
			{ID: "prod-1", Name: "Pizza", Description: "Delicious", Price: 10, Category: "PIZZA"},
			{ID: "prod-2", Name: "Soda", Description: "Cold drink", Price: 5, Category: "DRINK"},
		},
	}
}

func TestNewOrder_Defaults(t *testing.T) {
	before := time.Now().UTC()
	order := NewOrder(baseProps())

	require.Equal(t, "order-001", order.ID)
	require.Equal(t, "client-123", order.ClientID)
	assert.Equal(t, StatusReceived, order.Status)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
	assert.Equal(t, 15.0, order.Total)
	assert.False(t, order.CreatedAt.Before(before))
	assert.Nil(t, order.Client)
}

func TestNewOrder_KeepsSuppliedValues(t *testing.T) {
	props := baseProps()
	props.Status = StatusReady
	props.PaymentStatus = PaymentApproved
	props.Total = 100
	props.Client = &ClientSnapshot{ID: "client-123", Name: "John", CPF: "52998224725"}

	order := NewOrder(props)

	assert.Equal(t, StatusReady, order.Status)
	assert.Equal(t, PaymentApproved, order.PaymentStatus)
	assert.Equal(t, 100.0, order.Total)
	require.NotNil(t, order.Client)
	assert.Equal(t, "John", order.Client.Name)

	props.Client.Name = "changed"
	assert.Equal(t, "John", order.Client.Name, "client snapshot must be a copy")
}

func TestNewOrder_IgnoresSuppliedCreatedAt(t *testing.T) {
	props := baseProps()
	props.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	order := NewOrder(props)

	assert.True(t, order.CreatedAt.After(props.CreatedAt))
}

func TestRehydrateOrder_KeepsCreatedAt(t *testing.T) {
	props := baseProps()
	props.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	order := RehydrateOrder(props)

	assert.Equal(t, props.CreatedAt, order.CreatedAt)
	assert.Equal(t, 15.0, order.Total)
}

func TestNewOrder_EmptyProductsAndZeroTotal(t *testing.T) {
	order := NewOrder(Props{ID: "o", ClientID: "c", Total: 0})

	assert.Empty(t, order.Products)
	assert.Zero(t, order.Total)
}

func TestNewOrder_TotalNotRecomputedAfterProductsChange(t *testing.T) {
	order := NewOrder(baseProps())
	order.Products = append(order.Products, ProductSnapshot{ID: "prod-3", Price: 7})

	assert.Equal(t, 15.0, order.Total)
}

func ptr[T any](v T) *T { return &v }

func TestUpdate_EmptyPatchChangesNothing(t *testing.T) {
	order := NewOrder(baseProps())
	before := *order

	order.Update(Patch{})

	assert.Equal(t, before.PaymentStatus, order.PaymentStatus)
	assert.Equal(t, before.Status, order.Status)
	assert.Equal(t, before.Total, order.Total)
	assert.Equal(t, before.ClientID, order.ClientID)
}

func TestUpdate_OnlyStatus(t *testing.T) {
	order := NewOrder(baseProps())

	order.Update(Patch{Status: ptr(StatusInPreparation)})

	assert.Equal(t, StatusInPreparation, order.Status)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
	assert.Equal(t, 15.0, order.Total)
	assert.Equal(t, "client-123", order.ClientID)
}

func TestUpdate_AllFields(t *testing.T) {
	order := NewOrder(baseProps())

	order.Update(Patch{
		PaymentStatus: ptr(PaymentApproved),
		Status:        ptr(StatusReady),
		Total:         ptr(42.5),
		ClientID:      ptr("client-999"),
	})

	assert.Equal(t, PaymentApproved, order.PaymentStatus)
	assert.Equal(t, StatusReady, order.Status)
	assert.Equal(t, 42.5, order.Total)
	assert.Equal(t, "client-999", order.ClientID)
}

func TestUpdate_ZeroValuesAreIgnored(t *testing.T) {
	order := NewOrder(baseProps())
	order.Update(Patch{Status: ptr(StatusReady), PaymentStatus: ptr(PaymentApproved)})

	order.Update(Patch{
		PaymentStatus: ptr(PaymentStatus("")),
		Status:        ptr(Status("")),
		Total:         ptr(0.0),
		ClientID:      ptr(""),
	})

	assert.Equal(t, PaymentApproved, order.PaymentStatus)
	assert.Equal(t, StatusReady, order.Status)
	assert.Equal(t, 15.0, order.Total)
	assert.Equal(t, "client-123", order.ClientID)
}

func TestSortForKitchen(t *testing.T) {
	at := func(hour int) time.Time { return time.Date(2025, 1, 1, hour, 0, 0, 0, time.UTC) }
	orders := []*Order{
		RehydrateOrder(Props{ID: "1", Status: StatusReceived, CreatedAt: at(10)}),
		RehydrateOrder(Props{ID: "2", Status: StatusReady, CreatedAt: at(9)}),
		RehydrateOrder(Props{ID: "3", Status: StatusInPreparation, CreatedAt: at(11)}),
		RehydrateOrder(Props{ID: "4", Status: StatusReady, CreatedAt: at(8)}),
	}

	SortForKitchen(orders)

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"4", "2", "3", "1"}, ids)
}

func TestSortForKitchen_StableOnFullTie(t *testing.T) {
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	orders := []*Order{
		RehydrateOrder(Props{ID: "a", Status: StatusReady, CreatedAt: at}),
		RehydrateOrder(Props{ID: "b", Status: StatusReady, CreatedAt: at}),
		RehydrateOrder(Props{ID: "c", Status: StatusReady, CreatedAt: at}),
	}

	SortForKitchen(orders)

	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "b", orders[1].ID)
	assert.Equal(t, "c", orders[2].ID)
}

func TestStatusValid(t *testing.T) {
	for _, s := range KitchenStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("DONE").Valid())
	assert.False(t, Status("").Valid())
	assert.True(t, PaymentPending.Valid())
	assert.True(t, PaymentApproved.Valid())
	assert.False(t, PaymentStatus("PAID").Valid())
}

func TestOnKitchenBoard(t *testing.T) {
	cases := []struct {
		name    string
		status  Status
		payment PaymentStatus
		want    bool
	}{
		{name: "approved and received", status: StatusReceived, payment: PaymentApproved, want: true},
		{name: "approved and ready", status: StatusReady, payment: PaymentApproved, want: true},
		{name: "pending payment", status: StatusReceived, payment: PaymentPending, want: false},
		{name: "unknown status", status: Status("DONE"), payment: PaymentApproved, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := RehydrateOrder(Props{ID: "o", Status: tc.status, PaymentStatus: tc.payment})
			assert.Equal(t, tc.want, order.OnKitchenBoard())
		})
	}
}
