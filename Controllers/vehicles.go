package Controllers

import (
	"strings"

	"Petrel/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VehicleController handles the fleet registry endpoints.
type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

type vehicleInput struct {
	Plate       string `json:"plate" validate:"required"`
	Owner       string `json:"owner" validate:"omitempty,oneof=OWN SUBCONTRACTOR"`
	VehicleType string `json:"vehicle_type" validate:"omitempty,oneof=CARGO PASSENGER HEAVY_EQUIPMENT"`
	Active      *bool  `json:"active"`
	Notes       string `json:"notes"`
}

// GetVehicles lists the registry, optionally narrowed by owner, type or
// active state via query parameters.
func (c *VehicleController) GetVehicles(ctx *fiber.Ctx) error {
	query := c.DB.Model(&Models.Vehicle{}).Order("plate ASC")
	if owner := ctx.Query("owner"); owner != "" {
		query = query.Where("owner = ?", owner)
	}
	if vehicleType := ctx.Query("vehicle_type"); vehicleType != "" {
		query = query.Where("vehicle_type = ?", vehicleType)
	}
	if active := ctx.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	var vehicles []Models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicles"})
	}
	return ctx.JSON(vehicles)
}

// GetVehicle retrieves one vehicle by plate.
func (c *VehicleController) GetVehicle(ctx *fiber.Ctx) error {
	var vehicle Models.Vehicle
	if err := c.DB.Where("plate = ?", ctx.Params("plate")).First(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return ctx.JSON(vehicle)
}

// CreateVehicle registers a new plate.
func (c *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {
	var input vehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	input.Plate = strings.TrimSpace(input.Plate)
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vehicle := Models.Vehicle{
		Plate:       input.Plate,
		Owner:       input.Owner,
		VehicleType: input.VehicleType,
		Active:      true,
		Notes:       input.Notes,
	}
	if vehicle.Owner == "" {
		vehicle.Owner = Models.OwnerOwn
	}
	if vehicle.VehicleType == "" {
		vehicle.VehicleType = Models.VehicleTypeCargo
	}
	if input.Active != nil {
		vehicle.Active = *input.Active
	}

	if err := c.DB.Create(&vehicle).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A vehicle with this plate already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vehicle"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(vehicle)
}

// UpdateVehicle updates owner, type, active flag or notes for one plate.
func (c *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	var vehicle Models.Vehicle
	if err := c.DB.Where("plate = ?", ctx.Params("plate")).First(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	var input vehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{}
	if input.Owner != "" {
		updates["owner"] = input.Owner
	}
	if input.VehicleType != "" {
		updates["vehicle_type"] = input.VehicleType
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}

	if len(updates) > 0 {
		if err := c.DB.Model(&vehicle).Updates(updates).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicle"})
		}
	}
	return ctx.JSON(vehicle)
}

// DeleteVehicle removes a plate from the registry. Its fuel and weight
// records stay; they just stop matching the active filter.
func (c *VehicleController) DeleteVehicle(ctx *fiber.Ctx) error {
	var vehicle Models.Vehicle
	if err := c.DB.Where("plate = ?", ctx.Params("plate")).First(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	if err := c.DB.Delete(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete vehicle"})
	}
	return ctx.JSON(fiber.Map{"message": "Vehicle deleted"})
}

// BulkImport seeds the registry from the plates already present in the fuel
// records. Safe to call repeatedly.
func (c *VehicleController) BulkImport(ctx *fiber.Ctx) error {
	added, total, err := Models.BulkImportVehicles(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to import vehicles"})
	}
	return ctx.JSON(fiber.Map{
		"added": added,
		"total": total,
	})
}

type bulkUpdateRequest struct {
	Plates []string `json:"plates" validate:"required,min=1"`
	Owner  string   `json:"owner" validate:"omitempty,oneof=OWN SUBCONTRACTOR"`
	Active *bool    `json:"active"`
}

// BulkUpdateOwner reassigns ownership for a batch of plates.
func (c *VehicleController) BulkUpdateOwner(ctx *fiber.Ctx) error {
	var req bulkUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(&req); err != nil || req.Owner == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "plates and owner are required"})
	}

	result := c.DB.Model(&Models.Vehicle{}).
		Where("plate IN ?", req.Plates).
		Update("owner", req.Owner)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicles"})
	}
	return ctx.JSON(fiber.Map{"updated": result.RowsAffected})
}

// BulkUpdateActive flips the active flag for a batch of plates.
func (c *VehicleController) BulkUpdateActive(ctx *fiber.Ctx) error {
	var req bulkUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(req.Plates) == 0 || req.Active == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "plates and active are required"})
	}

	result := c.DB.Model(&Models.Vehicle{}).
		Where("plate IN ?", req.Plates).
		Update("active", *req.Active)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicles"})
	}
	return ctx.JSON(fiber.Map{"updated": result.RowsAffected})
}
