package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/scrap"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ScrapHandler maneja el registro y resumen de scrap (protegido).
type ScrapHandler struct {
	uc *scrap.UseCase
}

// NewScrapHandler construye el handler.
func NewScrapHandler(uc *scrap.UseCase) *ScrapHandler {
	return &ScrapHandler{uc: uc}
}

func toScrapResponse(rec *entity.ScrapRecord) dto.ScrapRecordResponse {
	return dto.ScrapRecordResponse{
		ID:          rec.ID,
		MachineName: rec.MachineName,
		ProductID:   rec.ProductID,
		ProductName: rec.ProductName,
		ScrapType:   rec.ScrapType,
		QuantityKg:  rec.QuantityKg,
		RecordDate:  rec.RecordDate.Format("2006-01-02"),
		UserID:      rec.UserID,
		CreatedAt:   rec.CreatedAt,
	}
}

// parseDateQuery lee ?date=YYYY-MM-DD; vacío devuelve la fecha actual (UTC).
func parseDateQuery(c *fiber.Ctx) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Record godoc
// @Summary      Registrar scrap
// @Tags         scrap
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordScrapRequest  true  "machine_name, scrap_type, quantity_kg, record_date opcional"
// @Success      201   {object}  dto.ScrapRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scrap [post]
func (h *ScrapHandler) Record(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordScrapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.uc.Record(userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "machine_name, scrap_type válido y quantity_kg > 0 son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toScrapResponse(rec))
}

// Update godoc
// @Summary      Corregir registro de scrap
// @Description  Sobrescribe la fila en sitio; la fecha y el autor no cambian.
// @Tags         scrap
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del registro"
// @Param        body  body  dto.UpdateScrapRequest  true  "Campos corregidos"
// @Success      200   {object}  dto.ScrapRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scrap/{id} [put]
func (h *ScrapHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateScrapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toScrapResponse(rec))
}

// Delete godoc
// @Summary      Eliminar registro de scrap
// @Tags         scrap
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scrap/{id} [delete]
func (h *ScrapHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "registro eliminado"})
}

// List godoc
// @Summary      Registros de scrap de una fecha
// @Tags         scrap
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD; vacío = hoy"
// @Success      200  {array}  dto.ScrapRecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/scrap [get]
func (h *ScrapHandler) List(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	records, err := h.uc.ListForDate(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ScrapRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toScrapResponse(rec))
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen diario de scrap por máquina
// @Description  Subtotales por tipo (SCRAP, PLASTA, PURGA, PREFORMA), total por
//
//	máquina y gran total de la fecha. Agregación pura de lectura.
//
// @Tags         scrap
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD; vacío = hoy"
// @Success      200  {object}  dto.ScrapSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/scrap/summary [get]
func (h *ScrapHandler) Summary(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	summary, err := h.uc.Summarize(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
