package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"Petrel/Analysis"
	"Petrel/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportController renders the reports as downloadable files.
type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// AccountingPDF renders the accounting report as a landscape PDF table.
func (c *ExportController) AccountingPDF(ctx *fiber.Ctx) error {
	startDate := ctx.Query("start_date")
	endDate := ctx.Query("end_date")

	report, err := Analysis.Accounting(
		c.DB,
		startDate,
		endDate,
		ctx.Query("plate"),
		ctx.QueryBool("include_subcontractors"),
	)
	if err != nil {
		return reportError(ctx, err)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Accounting Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Accounting Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	period := "all records"
	if startDate != "" && endDate != "" {
		period = startDate + " to " + endDate
	}
	pdf.Cell(0, 8, "Period: "+period)
	pdf.Ln(10)

	headers := []string{"Plate", "Material", "Revenue", "Cost", "Net Profit", "Margin %"}
	widths := []float64{45, 55, 40, 40, 40, 30}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range report.PerPlate {
		pdf.CellFormat(widths[0], 7, row.Plate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.MainMaterial, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.2f", row.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.2f", row.Cost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", row.NetProfit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.1f", row.ProfitMargin), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0]+widths[1], 8, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[2], 8, fmt.Sprintf("%.2f", report.TotalRevenue), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[3], 8, fmt.Sprintf("%.2f", report.TotalCost), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[4], 8, fmt.Sprintf("%.2f", report.NetProfit), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[5], 8, fmt.Sprintf("%.1f", report.ProfitMargin), "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return reportError(ctx, err)
	}

	filename := fmt.Sprintf("accounting_report_%s.pdf", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	return ctx.Send(buf.Bytes())
}

// AnalysisExcel renders the fleet prediction table as an Excel workbook.
func (c *ExportController) AnalysisExcel(ctx *fiber.Ctx) error {
	entries, err := Analysis.FleetPrediction(
		c.DB,
		ctx.Query("vehicle_type", Models.VehicleTypeCargo),
		ctx.Query("start_date"),
		ctx.Query("end_date"),
		ctx.QueryBool("include_subcontractors"),
	)
	if err != nil {
		return reportError(ctx, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Fleet Analysis"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return reportError(ctx, err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Plate", "Total Fuel (L)", "True Distance (km)", "Avg Consumption (L/100km)", "Predicted Consumption", "Active"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	for rowIndex, entry := range entries {
		row := rowIndex + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), entry.Plate)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.TotalFuel)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), entry.TrueDistance)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), entry.ActualAvgConsumption)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), entry.PredictedAvgConsumption)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), entry.IsActive)
	}
	for i := range headers {
		column := string('A' + rune(i))
		f.SetColWidth(sheetName, column, column, 22)
	}
	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return reportError(ctx, err)
	}

	filename := fmt.Sprintf("fleet_analysis_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	return ctx.Send(buf.Bytes())
}
