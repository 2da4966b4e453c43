package order

import (
	"bytes"
	"html/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	receiptTitleProvisional = "HÓA ĐƠN TẠM"
	receiptTitlePaid        = "HÓA ĐƠN THANH TOÁN"
)

// Khổ giấy in nhiệt 80mm, in qua trang HTML tự gọi window.print.
var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"vnd":       formatVND,
	"lineTotal": lineTotal,
}).Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.Order.SequenceNumber}}</title>
<style>
  @page { size: 80mm auto; margin: 0; }
  body { width: 72mm; margin: 0 auto; font-family: "Courier New", monospace; font-size: 12px; color: #000; }
  .center { text-align: center; }
  .shop { font-size: 14px; font-weight: bold; }
  .title { font-size: 13px; font-weight: bold; margin: 6px 0; }
  .line { border-top: 1px dashed #000; margin: 4px 0; }
  table { width: 100%; border-collapse: collapse; }
  td { vertical-align: top; padding: 1px 0; }
  .qty { width: 12%; }
  .amount { width: 28%; text-align: right; }
  .total { font-size: 13px; font-weight: bold; }
  .note { font-style: italic; }
  .unit { font-size: 10px; }
</style>
</head>
<body onload="window.print()">
  <div class="center shop">{{.ShopName}}</div>
  <div class="center">{{.ShopAddress}}</div>
  <div class="center title">{{.Title}}</div>
  <table>
    <tr><td>Số HĐ:</td><td class="amount">{{.Order.SequenceNumber}}</td></tr>
    <tr><td>Bàn:</td><td class="amount">{{.Order.TableNumber}}</td></tr>
    <tr><td>Giờ in:</td><td class="amount">{{.PrintedAt}}</td></tr>
  </table>
  <div class="line"></div>
  <table>
    {{range .Order.Items}}
    <tr>
      <td class="qty">{{.Quantity}}x</td>
      <td>{{.DishName}}{{if gt .Quantity 1}} <span class="unit">@{{vnd .Price}}</span>{{end}}</td>
      <td class="amount">{{vnd (lineTotal .Price .Quantity)}}</td>
    </tr>
    {{if .Note}}<tr><td></td><td class="note" colspan="2">({{.Note}})</td></tr>{{end}}
    {{end}}
  </table>
  <div class="line"></div>
  <table>
    <tr class="total"><td>TỔNG CỘNG</td><td class="amount total">{{vnd .Order.Total}}</td></tr>
  </table>
  <div class="line"></div>
  <div class="center">Cảm ơn quý khách, hẹn gặp lại!</div>
</body>
</html>
`))

type receiptData struct {
	Title       string
	ShopName    string
	ShopAddress string
	PrintedAt   string
	Order       *OrderResponse
}

// RenderReceipt dựng trang in cho order. Order chưa thanh toán in
// "HÓA ĐƠN TẠM", đã thanh toán in "HÓA ĐƠN THANH TOÁN".
func RenderReceipt(o *OrderResponse, shopName, shopAddress string) (string, error) {
	title := receiptTitleProvisional
	if o.PaidAt != nil {
		title = receiptTitlePaid
	}

	var buf bytes.Buffer
	err := receiptTmpl.Execute(&buf, receiptData{
		Title:       title,
		ShopName:    shopName,
		ShopAddress: shopAddress,
		PrintedAt:   time.Now().Format("02/01/2006 15:04"),
		Order:       o,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

var vndPrinter = message.NewPrinter(language.Vietnamese)

// formatVND: 25000 -> "25.000đ"
func formatVND(amount int64) string {
	return vndPrinter.Sprintf("%dđ", amount)
}

// lineTotal là thành tiền một dòng, giá trên response là đơn giá.
func lineTotal(price int64, quantity int) int64 {
	return price * int64(quantity)
}
