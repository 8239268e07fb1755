package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"barflow-api/dtos"
	"barflow-api/models"
)

func placeInput(table string, lines ...dtos.CartLine) dtos.PlaceOrderInput {
	return dtos.PlaceOrderInput{Items: lines, TableName: table}
}

func TestPlaceOrderPersistsCartAndOccupiesTable(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	mojito := createProduct(t, db, "Mojito", 10, 3, 50, 10)
	createProduct(t, db, "Nachos", 12, 4, 30, 5)
	createTable(t, db, "S1")

	order, warnings, err := svc.Place(placeInput("S1",
		dtos.CartLine{Name: "Mojito", Quantity: 2},
		dtos.CartLine{Name: "Nachos", Quantity: 1},
	), nil)
	require.NoError(t, err)
	require.Empty(t, warnings)

	require.Equal(t, models.OrderPending, order.Status)
	require.Equal(t, 32.0, order.Total)
	require.Len(t, order.Items, 2)
	// Cost captured at sale time for later margin reports.
	require.Equal(t, 3.0, order.Items[0].CostPrice)

	orders, err := svc.List()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
	require.Len(t, orders[0].Items, 2)

	require.Equal(t, models.TableOccupied, tableStatus(t, db, "S1"))
	require.Equal(t, 48, reloadProduct(t, db, mojito.ID).Stock)
}

func TestPlaceOrderEmptyCartRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createTable(t, db, "S1")

	_, _, err := svc.Place(placeInput("S1"), nil)
	require.ErrorIs(t, err, ErrEmptyCart)

	orders, err := svc.List()
	require.NoError(t, err)
	require.Empty(t, orders)
	require.Equal(t, models.TableFree, tableStatus(t, db, "S1"))
}

func TestPlaceOrderToleratesUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createTable(t, db, "Bar 1")

	// A line the catalog no longer carries still sells at its cart price.
	order, _, err := svc.Place(placeInput("Bar 1",
		dtos.CartLine{Name: "Cuvée Disparue", Price: 15, Quantity: 2},
	), nil)
	require.NoError(t, err)
	require.Equal(t, 30.0, order.Total)
	require.Equal(t, 0.0, order.Items[0].CostPrice)
}

func TestPlaceOrderOversaleWarnsAndDebitsAnyway(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	product := createProduct(t, db, "Planche Mixte", 18, 8, 2, 5)
	createTable(t, db, "S2")

	_, warnings, err := svc.Place(placeInput("S2",
		dtos.CartLine{Name: "Planche Mixte", Quantity: 3},
	), nil)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, -1, reloadProduct(t, db, product.ID).Stock)
}

func TestPlaceOrderOnReservedTableSeatsIt(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "Coca Cola", 4, 1, 120, 10)
	table := createTable(t, db, "VIP A")

	_, err := NewTableService(db).SetStatus(table.ID, models.TableReserved, "anniversaire")
	require.NoError(t, err)

	_, _, err = svc.Place(placeInput("VIP A", dtos.CartLine{Name: "Coca Cola", Quantity: 1}), nil)
	require.NoError(t, err)
	require.Equal(t, models.TableOccupied, tableStatus(t, db, "VIP A"))
}

func TestPlaceOrderUnknownClientRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "Coca Cola", 4, 1, 120, 10)
	createTable(t, db, "S1")

	missing := uint(424242)
	_, _, err := svc.Place(placeInput("S1", dtos.CartLine{Name: "Coca Cola", Quantity: 1}), &missing)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdvanceStatusForwardOnly(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "Mojito", 10, 3, 50, 10)
	createTable(t, db, "S1")

	order, _, err := svc.Place(placeInput("S1", dtos.CartLine{Name: "Mojito", Quantity: 1}), nil)
	require.NoError(t, err)

	updated, err := svc.Advance(order.ID, models.OrderReady)
	require.NoError(t, err)
	require.Equal(t, models.OrderReady, updated.Status)

	_, err = svc.Advance(order.ID, models.OrderPending)
	require.ErrorIs(t, err, ErrStatusRegression)

	_, err = svc.Advance(order.ID, models.OrderPaid)
	require.ErrorIs(t, err, ErrPaymentRequired)

	_, err = svc.Advance(order.ID, "FLAMBÉ")
	require.ErrorIs(t, err, ErrUnknownStatus)

	// Skipping READY→SERVED directly from a kitchen screen is fine.
	updated, err = svc.Advance(order.ID, models.OrderServed)
	require.NoError(t, err)
	require.Equal(t, models.OrderServed, updated.Status)
}

func TestSettleCashLeavesClientBalanceAlone(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "Old Fashioned", 12, 4, 40, 10)
	createTable(t, db, "S1")
	client := createClient(t, db, "Alice")

	order, _, err := svc.Place(placeInput("S1", dtos.CartLine{Name: "Old Fashioned", Quantity: 2}), &client.ID)
	require.NoError(t, err)

	settled, err := svc.Settle(order.ID, models.PaymentCash, nil)
	require.NoError(t, err)
	require.Equal(t, models.OrderPaid, settled.Status)
	require.Equal(t, models.PaymentCash, *settled.PaymentMethod)
	require.Equal(t, models.TableFree, tableStatus(t, db, "S1"))

	after := reloadClient(t, db, client.ID)
	require.Equal(t, 0.0, after.Balance)
	require.Equal(t, 24.0, after.TotalSpent)
	require.Equal(t, 2, after.LoyaltyPoints) // floor(24 / 10)
	require.False(t, after.LastVisit.IsZero())
}

func TestSettleTabDebitsBalanceWhateverItsSign(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "Chardonnay", 8, 3, 60, 10)
	createTable(t, db, "S2")

	client := createClient(t, db, "Bruno")
	require.NoError(t, db.Model(client).Update("balance", 10.0).Error)

	order, _, err := svc.Place(placeInput("S2", dtos.CartLine{Name: "Chardonnay", Quantity: 3}), &client.ID)
	require.NoError(t, err)

	_, err = svc.Settle(order.ID, models.PaymentTab, nil)
	require.NoError(t, err)

	after := reloadClient(t, db, client.ID)
	require.Equal(t, 10.0-24.0, after.Balance)
	require.Equal(t, 24.0, after.TotalSpent)
	require.Equal(t, 2, after.LoyaltyPoints)
}

func TestSettleWithoutClientStillFreesTable(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "Coca Cola", 4, 1, 120, 10)
	createTable(t, db, "T1")

	order, _, err := svc.Place(placeInput("T1", dtos.CartLine{Name: "Coca Cola", Quantity: 1}), nil)
	require.NoError(t, err)

	settled, err := svc.Settle(order.ID, models.PaymentCard, nil)
	require.NoError(t, err)
	require.Equal(t, models.OrderPaid, settled.Status)
	require.Equal(t, models.TableFree, tableStatus(t, db, "T1"))
}

func TestSettleTwiceRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "Mojito", 10, 3, 50, 10)
	createTable(t, db, "S1")
	client := createClient(t, db, "Chloé")

	order, _, err := svc.Place(placeInput("S1", dtos.CartLine{Name: "Mojito", Quantity: 1}), &client.ID)
	require.NoError(t, err)

	_, err = svc.Settle(order.ID, models.PaymentCash, nil)
	require.NoError(t, err)

	_, err = svc.Settle(order.ID, models.PaymentCash, nil)
	require.ErrorIs(t, err, ErrAlreadyPaid)

	// Client effects applied exactly once.
	require.Equal(t, 10.0, reloadClient(t, db, client.ID).TotalSpent)
}

func TestSettleUnknownMethodRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "Mojito", 10, 3, 50, 10)
	createTable(t, db, "S1")

	order, _, err := svc.Place(placeInput("S1", dtos.CartLine{Name: "Mojito", Quantity: 1}), nil)
	require.NoError(t, err)

	_, err = svc.Settle(order.ID, "IOU", nil)
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestTabThenRepaymentScenario(t *testing.T) {
	db := openTestDB(t)
	orders := NewOrderService(db)
	clients := NewClientService(db)
	createTable(t, db, "Bar 1")
	client := createClient(t, db, "Diane")
	require.Equal(t, 0.0, client.Balance)

	order, _, err := orders.Place(placeInput("Bar 1",
		dtos.CartLine{Name: "Vieille Réserve", Price: 25, Quantity: 1},
	), &client.ID)
	require.NoError(t, err)
	require.Equal(t, 25.0, order.Total)

	_, err = orders.Settle(order.ID, models.PaymentTab, nil)
	require.NoError(t, err)

	after := reloadClient(t, db, client.ID)
	require.Equal(t, -25.0, after.Balance)
	require.Equal(t, 2, after.LoyaltyPoints)

	repaid, err := clients.AdjustBalance(client.ID, 25.0)
	require.NoError(t, err)
	require.Equal(t, 0.0, repaid.Balance)
}

func TestMojitoStockScenario(t *testing.T) {
	db := openTestDB(t)
	orders := NewOrderService(db)
	stock := NewStockService(db)
	product := createProduct(t, db, "Mojito", 10, 3, 50, 10)
	createTable(t, db, "S1")

	_, warnings, err := orders.Place(placeInput("S1", dtos.CartLine{Name: "Mojito", Quantity: 45}), nil)
	require.NoError(t, err)
	require.Empty(t, warnings)

	after := reloadProduct(t, db, product.ID)
	require.Equal(t, 5, after.Stock)
	require.LessOrEqual(t, after.Stock, after.AlertThreshold) // alert condition

	replenished, err := stock.Replenish(product.ID, 20, "delivery")
	require.NoError(t, err)
	require.Equal(t, 25, replenished.Stock)

	movements, err := stock.History(product.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	require.Equal(t, "delivery", movements[0].Note)
	require.Equal(t, 20, movements[0].Quantity)
}

func TestTableLifecycleScenario(t *testing.T) {
	db := openTestDB(t)
	svc := NewOrderService(db)
	createProduct(t, db, "IPA Artisanale", 9, 3, 80, 10)
	createTable(t, db, "S1")

	require.Equal(t, models.TableFree, tableStatus(t, db, "S1"))

	order, _, err := svc.Place(placeInput("S1", dtos.CartLine{Name: "IPA Artisanale", Quantity: 2}), nil)
	require.NoError(t, err)
	require.Equal(t, models.TableOccupied, tableStatus(t, db, "S1"))

	_, err = svc.Settle(order.ID, models.PaymentCard, nil)
	require.NoError(t, err)
	require.Equal(t, models.TableFree, tableStatus(t, db, "S1"))
}
