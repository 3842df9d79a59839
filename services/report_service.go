package services

import (
	"github.com/tealeg/xlsx"
	"github.com/yeremiapane/pidey-coffee/models"
)

const reportTimeLayout = "2006-01-02 15:04:05"

// BuildOrdersWorkbook writes one row per order on "Orders" and one row per line on "Items".
func BuildOrdersWorkbook(orders []models.Order) (*xlsx.File, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}
	addHeader(sheet, "SN", "Tanggal", "Status", "Jumlah Item", "Jumlah Cup", "Total")

	items, err := file.AddSheet("Items")
	if err != nil {
		return nil, err
	}
	addHeader(items, "SN", "Menu ID", "Nama", "Harga", "Qty", "Subtotal")

	for _, order := range orders {
		cups := 0
		for _, item := range order.Items {
			cups += item.Quantity

			row := items.AddRow()
			row.AddCell().SetString(order.SN)
			row.AddCell().SetString(item.MenuID)
			row.AddCell().SetString(item.Name)
			row.AddCell().SetInt64(item.Price)
			row.AddCell().SetInt(item.Quantity)
			row.AddCell().SetInt64(item.Subtotal())
		}

		row := sheet.AddRow()
		row.AddCell().SetString(order.SN)
		row.AddCell().SetString(order.CreatedAt.Format(reportTimeLayout))
		row.AddCell().SetString(string(order.Status))
		row.AddCell().SetInt(order.ItemCount())
		row.AddCell().SetInt(cups)
		row.AddCell().SetInt64(order.Total)
	}

	return file, nil
}

func addHeader(sheet *xlsx.Sheet, titles ...string) {
	row := sheet.AddRow()
	for _, title := range titles {
		row.AddCell().SetString(title)
	}
}
