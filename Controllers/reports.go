package Controllers

import (
	"Petrel/Analysis"
	"Petrel/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportController serves the aggregate reports. Query errors from the
// backing store come back as a single {status, message} envelope and never a
// partial aggregate.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func reportError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": err.Error(),
	})
}

// FleetAnalysis returns the per-plate consumption prediction table. The
// vehicle_type parameter switches the active set between the cargo,
// passenger and heavy-equipment fleets; cargo is the default.
func (c *ReportController) FleetAnalysis(ctx *fiber.Ctx) error {
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
	return ctx.JSON(fiber.Map{
		"status":  "success",
		"entries": entries,
	})
}

// AccountingReport returns revenue, cost and profit per plate.
func (c *ReportController) AccountingReport(ctx *fiber.Ctx) error {
	report, err := Analysis.Accounting(
		c.DB,
		ctx.Query("start_date"),
		ctx.Query("end_date"),
		ctx.Query("plate"),
		ctx.QueryBool("include_subcontractors"),
	)
	if err != nil {
		return reportError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"status": "success",
		"report": report,
	})
}

// VehiclePerformance returns the full metric set for one plate, with an
// optional month-by-month fuel breakdown.
func (c *ReportController) VehiclePerformance(ctx *fiber.Ctx) error {
	plate := ctx.Query("plate")
	if plate == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "plate is required",
		})
	}

	startDate := ctx.Query("start_date")
	endDate := ctx.Query("end_date")

	summary, err := Analysis.VehiclePerformance(c.DB, plate, startDate, endDate)
	if err != nil {
		return reportError(ctx, err)
	}

	response := fiber.Map{
		"status":  "success",
		"summary": summary,
	}
	if ctx.QueryBool("monthly") {
		months, err := Analysis.MonthlyBreakdown(c.DB, plate, startDate, endDate)
		if err != nil {
			return reportError(ctx, err)
		}
		response["monthly"] = months
	}
	return ctx.JSON(response)
}

type compareRequest struct {
	Plates    []string `json:"plates" validate:"required,min=2"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

// ComparePerformance computes the metric set for several plates side by
// side. Unknown plates come back as zero-valued rows.
func (c *ReportController) ComparePerformance(ctx *fiber.Ctx) error {
	var req compareRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "at least two plates are required",
		})
	}

	rows, err := Analysis.ComparePerformance(c.DB, req.Plates, req.StartDate, req.EndDate)
	if err != nil {
		return reportError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"status":  "success",
		"entries": rows,
	})
}

// Statistics returns the dashboard overview counters.
func (c *ReportController) Statistics(ctx *fiber.Ctx) error {
	stats, err := Analysis.GetStatistics(c.DB)
	if err != nil {
		return reportError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"status":     "success",
		"statistics": stats,
	})
}

// Plates lists the plates available to the report pickers, optionally
// narrowed to one vehicle type.
func (c *ReportController) Plates(ctx *fiber.Ctx) error {
	vehicleType := ctx.Query("vehicle_type")
	var (
		plates []string
		err    error
	)
	if vehicleType == "" {
		plates, err = Analysis.AllPlates(c.DB)
	} else {
		plates, err = Analysis.PlatesByType(c.DB, vehicleType)
	}
	if err != nil {
		return reportError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"status": "success",
		"plates": plates,
	})
}

// VehicleTypes gives the frontend its type dropdown without hardcoding.
func (c *ReportController) VehicleTypes(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status": "success",
		"types": []string{
			Models.VehicleTypeCargo,
			Models.VehicleTypePassenger,
			Models.VehicleTypeHeavyEquipment,
		},
	})
}
