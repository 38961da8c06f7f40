package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// ReportHandler maneja comentarios de turno y reportes de producción (protegido).
type ReportHandler struct {
	comments *usecase.ShiftCommentUseCase
	reports  *usecase.ProductionReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(comments *usecase.ShiftCommentUseCase, reports *usecase.ProductionReportUseCase) *ReportHandler {
	return &ReportHandler{comments: comments, reports: reports}
}

func toShiftCommentResponse(sc *entity.ShiftComment) dto.ShiftCommentResponse {
	return dto.ShiftCommentResponse{
		CommentDate: sc.CommentDate.Format("2006-01-02"),
		ShiftNumber: sc.ShiftNumber,
		Comments:    sc.Comments,
	}
}

func toReportResponse(rep *entity.ProductionReport) dto.ProductionReportResponse {
	return dto.ProductionReportResponse{
		ID:                 rep.ID,
		ReportDate:         rep.ReportDate.Format("2006-01-02"),
		ShiftNumber:        rep.ShiftNumber,
		MachineName:        rep.MachineName,
		ProductName:        rep.ProductName,
		CycleTime:          rep.CycleTime,
		ProductionGoal:     rep.ProductionGoal,
		ProductionAchieved: rep.ProductionAchieved,
		Notes:              rep.Notes,
	}
}

// UpsertShiftComment godoc
// @Summary      Guardar comentario de turno
// @Description  Inserta o reemplaza el comentario del (fecha, turno); el
//
//	reenvío sobreescribe, nunca duplica.
//
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertShiftCommentRequest  true  "comment_date, shift_number (1-3), comments"
// @Success      200   {object}  dto.ShiftCommentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shift-comments [put]
func (h *ReportHandler) UpsertShiftComment(c *fiber.Ctx) error {
	var in dto.UpsertShiftCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	comment, err := h.comments.Upsert(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "comment_date (YYYY-MM-DD) y shift_number 1-3 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toShiftCommentResponse(comment))
}

// GetShiftComment godoc
// @Summary      Obtener comentario de turno
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date   query  string  true  "Fecha YYYY-MM-DD"
// @Param        shift  query  int     true  "Turno 1-3"
// @Success      200  {object}  dto.ShiftCommentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shift-comments [get]
func (h *ReportHandler) GetShiftComment(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	comment, err := h.comments.Get(date, c.QueryInt("shift"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "shift debe ser 1, 2 o 3"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin comentario para esa fecha y turno"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toShiftCommentResponse(comment))
}

// CreateReport godoc
// @Summary      Crear reporte de producción de turno
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveProductionReportRequest  true  "report_date, shift_number, machine_name, goal, achieved"
// @Success      201   {object}  dto.ProductionReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production-reports [post]
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var in dto.SaveProductionReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rep, err := h.reports.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "report_date, shift_number 1-3 y machine_name son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toReportResponse(rep))
}

// UpdateReport godoc
// @Summary      Actualizar reporte de producción
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del reporte"
// @Param        body  body  dto.SaveProductionReportRequest  true  "Campos del reporte"
// @Success      200   {object}  dto.ProductionReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production-reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *fiber.Ctx) error {
	var in dto.SaveProductionReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rep, err := h.reports.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toReportResponse(rep))
}

// DeleteReport godoc
// @Summary      Eliminar reporte de producción
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del reporte"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *fiber.Ctx) error {
	if err := h.reports.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "reporte eliminado"})
}

// ListReports godoc
// @Summary      Reportes de un turno
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date   query  string  true  "Fecha YYYY-MM-DD"
// @Param        shift  query  int     true  "Turno 1-3"
// @Success      200  {array}   dto.ProductionReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production-reports [get]
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	list, err := h.reports.ListForShift(date, c.QueryInt("shift"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "shift debe ser 1, 2 o 3"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ProductionReportResponse, 0, len(list))
	for _, rep := range list {
		out = append(out, toReportResponse(rep))
	}
	return c.JSON(out)
}
