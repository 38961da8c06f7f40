package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/production"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// MachineHandler maneja máquinas y su tally de producción (protegido).
type MachineHandler struct {
	machines *production.MachineUseCase
	tally    *production.TallyUseCase
}

// NewMachineHandler construye el handler.
func NewMachineHandler(machines *production.MachineUseCase, tally *production.TallyUseCase) *MachineHandler {
	return &MachineHandler{machines: machines, tally: tally}
}

func toMachineResponse(m *entity.Machine) dto.MachineResponse {
	return dto.MachineResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Cavities:           m.Cavities,
		Status:             m.Status,
		CurrentProductID:   m.CurrentProductID,
		CurrentProductName: m.CurrentProductName,
		QuantityOrdered:    m.QuantityOrdered,
		QuantityProduced:   m.QuantityProduced,
	}
}

// Create godoc
// @Summary      Crear máquina
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMachineRequest  true  "name, cavities"
// @Success      201   {object}  dto.MachineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/machines [post]
func (h *MachineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	machine, err := h.machines.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y cavities (>= 1) son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "ya existe una máquina con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toMachineResponse(machine))
}

// List godoc
// @Summary      Listar máquinas
// @Description  Orden natural de planta: prefijo alfabético y sufijo numérico
//
//	("ISBM 3" antes que "ISBM 10").
//
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MachineResponse
// @Router       /api/machines [get]
func (h *MachineHandler) List(c *fiber.Ctx) error {
	machines, err := h.machines.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MachineResponse, 0, len(machines))
	for _, m := range machines {
		out = append(out, toMachineResponse(m))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener máquina
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la máquina"
// @Success      200  {object}  dto.MachineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [get]
func (h *MachineHandler) GetByID(c *fiber.Ctx) error {
	machine, err := h.machines.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toMachineResponse(machine))
}

// SetStatus godoc
// @Summary      Cambiar estado de máquina
// @Description  Cualquier estado puede pasar a cualquier otro; cambiar a un
//
//	estado no productivo no toca el producto asignado ni los contadores.
//
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la máquina"
// @Param        body  body  dto.SetStatusRequest  true  "status: producing|mold_change|minor_stop|major_stop"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/status [put]
func (h *MachineHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.machines.SetStatus(c.Params("id"), in.Status); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}

// AssignProduct godoc
// @Summary      Asignar producto a máquina
// @Description  Asignar (o limpiar con product_id null) reinicia la cantidad
//
//	producida de la máquina a cero.
//
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la máquina"
// @Param        body  body  dto.AssignProductRequest  true  "product_id (null limpia), quantity_ordered"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/product [put]
func (h *MachineHandler) AssignProduct(c *fiber.Ctx) error {
	var in dto.AssignProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.machines.AssignProduct(c.Params("id"), in.ProductID, in.QuantityOrdered); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity_ordered no puede ser negativa"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina o producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "asignación actualizada"})
}

// Update godoc
// @Summary      Actualizar máquina (parcial)
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la máquina"
// @Param        body  body  dto.UpdateMachineRequest  true  "cavities, status, quantity_produced (opcionales)"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [put]
func (h *MachineHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.machines.Update(c.Params("id"), in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "máquina actualizada"})
}

// AddProduction godoc
// @Summary      Registrar producción horaria
// @Description  Suma count al bucket de la hora de occurred_at (o la actual).
//
//	Registros concurrentes sobre el mismo bucket se acumulan sin perderse.
//
// @Tags         machines
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la máquina"
// @Param        body  body  dto.AddProductionRequest  true  "count > 0, occurred_at opcional"
// @Success      200   {object}  dto.ProductionTotalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/production [post]
func (h *MachineHandler) AddProduction(c *fiber.Ctx) error {
	var in dto.AddProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	occurredAt := time.Now()
	if in.OccurredAt != nil {
		occurredAt = *in.OccurredAt
	}
	bucket, err := h.tally.AddProduction(c.Params("id"), in.Count, occurredAt)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "count debe ser > 0"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ProductionTotalResponse{
		MachineID:       bucket.MachineID,
		HourTimestamp:   bucket.HourTimestamp,
		ProductionCount: bucket.ProductionCount,
	})
}

// GetProduction godoc
// @Summary      Total del bucket horario de una máquina
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID de la máquina"
// @Param        hour  query  string  false  "Hora RFC3339; vacío = hora actual"
// @Success      200   {object}  dto.ProductionTotalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/production [get]
func (h *MachineHandler) GetProduction(c *fiber.Ctx) error {
	at := time.Now()
	if raw := c.Query("hour"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hour debe ser RFC3339"})
		}
		at = parsed
	}
	machineID := c.Params("id")
	total, err := h.tally.GetForMachine(machineID, at)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ProductionTotalResponse{
		MachineID:       machineID,
		HourTimestamp:   entity.FloorHour(at),
		ProductionCount: total,
	})
}

// ListProduction godoc
// @Summary      Buckets de producción desde una hora (mapa de planta)
// @Tags         machines
// @Security     Bearer
// @Produce      json
// @Param        since  query  string  false  "Hora RFC3339; vacío = hora actual"
// @Success      200  {array}   dto.ProductionTotalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production [get]
func (h *MachineHandler) ListProduction(c *fiber.Ctx) error {
	since := time.Now()
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "since debe ser RFC3339"})
		}
		since = parsed
	}
	buckets, err := h.tally.TotalsSince(since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ProductionTotalResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.ProductionTotalResponse{
			MachineID:       b.MachineID,
			HourTimestamp:   b.HourTimestamp,
			ProductionCount: b.ProductionCount,
		})
	}
	return c.JSON(out)
}
