package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/danielterto2000/broadcastmotion-api/app"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		orders := a.Checkout.Orders()
		a.Mu.Unlock()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "UserID", "BuyerName", "BuyerEmail", "BuyerCPF",
			"Items", "Subtotal", "Discount", "Coupon", "Total",
			"PaymentMethod", "Status", "OrderDate",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.BuyerDetails.Name)
			row.AddCell().SetValue(o.BuyerDetails.Email)
			row.AddCell().SetValue(o.BuyerDetails.CPF)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.DiscountApplied)
			row.AddCell().SetValue(o.CouponCode)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.OrderDate.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
