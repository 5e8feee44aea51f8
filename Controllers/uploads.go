package Controllers

import (
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"Petrel/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// UploadController ingests spreadsheet exports into the record tables.
type UploadController struct {
	DB *gorm.DB
}

func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{DB: db}
}

const uploadBatchSize = 100

// normalizeHeader maps a spreadsheet column title onto a record field key:
// lower-cased, surrounding space stripped, inner spaces to underscores.
func normalizeHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
}

// parseNumber coerces a cell to a float. Spreadsheets arrive with thousands
// separators, blanks and stray text in numeric columns; all of that reads
// as 0 rather than failing the import.
func parseNumber(cell string) float64 {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if cell == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0
	}
	return value
}

// Upload ingests one Excel file into the table named by the "target" form
// field (fuel, weight or tracking). The first sheet's first row is the
// header; every following row becomes one record.
func (c *UploadController) Upload(ctx *fiber.Ctx) error {
	target := strings.ToLower(ctx.FormValue("target"))
	if target != "fuel" && target != "weight" && target != "tracking" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "target must be one of: fuel, weight, tracking",
		})
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "No file provided. Please upload an Excel file.",
		})
	}
	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".xlsx" && ext != ".xlsm" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid file type. Please upload an .xlsx file.",
		})
	}

	src, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to open uploaded file.",
		})
	}
	defer src.Close()

	workbook, err := excelize.OpenReader(src)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Could not read the workbook.",
		})
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Workbook has no sheets.",
		})
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Could not read the first sheet.",
		})
	}
	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Sheet has no data rows.",
		})
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[normalizeHeader(header)] = i
	}
	cell := func(row []string, keys ...string) string {
		for _, key := range keys {
			if i, ok := columns[key]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	var inserted int
	switch target {
	case "fuel":
		var records []Models.FuelRecord
		for _, row := range rows[1:] {
			plate := cell(row, "plate", "license_plate")
			if plate == "" {
				continue
			}
			records = append(records, Models.FuelRecord{
				Plate:           plate,
				TransactionDate: cell(row, "transaction_date", "date"),
				FuelAmount:      parseNumber(cell(row, "fuel_amount", "amount")),
				UnitPrice:       parseNumber(cell(row, "unit_price")),
				LineTotal:       parseNumber(cell(row, "line_total", "total")),
				OdometerReading: parseNumber(cell(row, "odometer_reading", "odometer")),
			})
		}
		if len(records) > 0 {
			if err := c.DB.CreateInBatches(records, uploadBatchSize).Error; err != nil {
				return reportError(ctx, err)
			}
		}
		inserted = len(records)
	case "weight":
		var records []Models.WeightRecord
		for _, row := range rows[1:] {
			plate := cell(row, "plate", "license_plate")
			if plate == "" {
				continue
			}
			records = append(records, Models.WeightRecord{
				Plate:        plate,
				Date:         cell(row, "date"),
				NetWeight:    parseNumber(cell(row, "net_weight", "weight")),
				Unit:         cell(row, "unit"),
				MainMaterial: cell(row, "main_material", "material"),
			})
		}
		if len(records) > 0 {
			if err := c.DB.CreateInBatches(records, uploadBatchSize).Error; err != nil {
				return reportError(ctx, err)
			}
		}
		inserted = len(records)
	case "tracking":
		var records []Models.TrackingRecord
		for _, row := range rows[1:] {
			plate := cell(row, "plate", "license_plate")
			if plate == "" {
				continue
			}
			records = append(records, Models.TrackingRecord{
				Plate:                plate,
				Driver:               cell(row, "driver"),
				VehicleGroup:         cell(row, "vehicle_group", "group"),
				MovementStart:        cell(row, "movement_start"),
				MovementEnd:          cell(row, "movement_end"),
				StartAddress:         cell(row, "start_address"),
				EndAddress:           cell(row, "end_address"),
				TotalDistance:        parseNumber(cell(row, "total_distance", "distance")),
				IdleTime:             cell(row, "idle_time"),
				ParkTime:             cell(row, "park_time"),
				DailyFuelConsumption: parseNumber(cell(row, "daily_fuel_consumption")),
			})
		}
		if len(records) > 0 {
			if err := c.DB.CreateInBatches(records, uploadBatchSize).Error; err != nil {
				return reportError(ctx, err)
			}
		}
		inserted = len(records)
	}

	processed := Models.ProcessedFile{
		Filename:    file.Filename,
		TargetTable: target,
		RowCount:    inserted,
	}
	if err := c.DB.Create(&processed).Error; err != nil {
		log.Println("could not record processed file:", err)
	}

	return ctx.JSON(fiber.Map{
		"status":   "success",
		"filename": file.Filename,
		"target":   target,
		"inserted": inserted,
	})
}

// ProcessedFiles lists past uploads, newest first.
func (c *UploadController) ProcessedFiles(ctx *fiber.Ctx) error {
	var files []Models.ProcessedFile
	if err := c.DB.Order("id DESC").Find(&files).Error; err != nil {
		return reportError(ctx, err)
	}
	return ctx.JSON(files)
}
