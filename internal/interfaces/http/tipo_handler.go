package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/application/usecase"
	"github.com/sanem/doacoes-api/internal/domain"
)

// TipoHandler trata as requisições HTTP para tipos de produto (protegido).
type TipoHandler struct {
	uc *usecase.TipoUseCase
}

// NewTipoHandler constrói o handler.
func NewTipoHandler(uc *usecase.TipoUseCase) *TipoHandler {
	return &TipoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar tipo de produto
// @Tags         tipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTipoRequest  true  "Descrição do tipo"
// @Success      201   {object}  dto.TipoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tipos [post]
func (h *TipoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "descricao é obrigatória", Field: "descricao"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe um tipo com essa descrição", Field: "descricao"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tipos de produto
// @Tags         tipos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TipoResponse
// @Router       /api/tipos [get]
func (h *TipoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter tipo por ID
// @Tags         tipos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do tipo"
// @Success      200  {object}  dto.TipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos/{id} [get]
func (h *TipoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo não encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar tipo
// @Tags         tipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do tipo"
// @Param        body  body  dto.UpdateTipoRequest  true  "Nova descrição"
// @Success      200   {object}  dto.TipoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tipos/{id} [put]
func (h *TipoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateTipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "descricao é obrigatória", Field: "descricao"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe um tipo com essa descrição", Field: "descricao"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir tipo
// @Tags         tipos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do tipo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tipos/{id} [delete]
func (h *TipoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo não encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "tipo referenciado por estoque ou doações"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "tipo excluído"})
}
