package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func receiptOrderFixture() *OrderResponse {
	return &OrderResponse{
		OrderID:        "order_ab12cd34",
		SequenceNumber: "HD20250831-007",
		TableNumber:    "Bàn 03",
		Status:         "pending",
		Total:          95000,
		Items: []OrderItemResponse{
			{ItemID: "i1", DishID: "coffee_001", DishName: "Cà phê sữa đá", Price: 25000, Quantity: 3, Status: "prepared"},
			{ItemID: "i2", DishID: "tea_002", DishName: "Trà đào cam sả", Price: 20000, Quantity: 1, Note: "ít đá", Status: "pending"},
		},
		CreatedAt:  time.Now(),
		ModifiedAt: time.Now(),
	}
}

func TestRenderReceipt_LineShowsAmountTimesQuantity(t *testing.T) {
	html, err := RenderReceipt(receiptOrderFixture(), "Cafe Nhà Mình", "12 Lý Thường Kiệt")
	assert.NoError(t, err)

	// Dòng 3x cà phê 25.000đ phải ra thành tiền 75.000đ, kèm đơn giá
	assert.Contains(t, html, "75.000đ")
	assert.Contains(t, html, "@25.000đ")
	// Dòng số lượng 1 chỉ in thành tiền, không lặp lại đơn giá
	assert.Contains(t, html, "20.000đ")
	assert.NotContains(t, html, "@20.000đ")
	assert.Contains(t, html, "95.000đ")
	assert.Contains(t, html, "(ít đá)")
}

func TestRenderReceipt_TitleFollowsPaymentState(t *testing.T) {
	o := receiptOrderFixture()

	html, err := RenderReceipt(o, "Cafe Nhà Mình", "")
	assert.NoError(t, err)
	assert.Contains(t, html, receiptTitleProvisional)

	paidAt := time.Now()
	o.PaidAt = &paidAt
	html, err = RenderReceipt(o, "Cafe Nhà Mình", "")
	assert.NoError(t, err)
	assert.Contains(t, html, receiptTitlePaid)
}
