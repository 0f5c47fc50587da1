package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/application/usecase"
	"github.com/sanem/doacoes-api/internal/domain"
)

// EstoqueHandler trata as requisições HTTP para itens de estoque (protegido).
type EstoqueHandler struct {
	uc *usecase.EstoqueUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *usecase.EstoqueUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Create godoc
// @Summary      Criar item de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEstoqueRequest  true  "tipoId e quantidade inicial"
// @Success      201   {object}  dto.ItemEstoqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque [post]
func (h *EstoqueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipoId é obrigatório", Field: "tipoId"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo não encontrado", Field: "tipoId"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe estoque para esse tipo", Field: "tipoId"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemEstoqueResponse
// @Router       /api/estoque [get]
func (h *EstoqueHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      Listar itens com estoque baixo
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int  false  "Limite de quantidade"  default(10)
// @Success      200     {array}  dto.ItemEstoqueResponse
// @Router       /api/estoque/baixo [get]
func (h *EstoqueHandler) ListLowStock(c *fiber.Ctx) error {
	limite := c.QueryInt("limite", usecase.LimiteEstoqueBaixoPadrao)
	out, err := h.uc.ListLowStock(limite)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter item de estoque por ID
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.ItemEstoqueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/{id} [get]
func (h *EstoqueHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item de estoque não encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Correção administrativa de estoque
// @Description  Grava quantidade e tipo diretamente, sem passar pelo ledger de doações.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do item"
// @Param        body  body  dto.UpdateEstoqueRequest  true  "Dados a corrigir"
// @Success      200   {object}  dto.ItemEstoqueResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estoque/{id} [put]
func (h *EstoqueHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipoId é obrigatório", Field: "tipoId"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item de estoque não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir item de estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/{id} [delete]
func (h *EstoqueHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item de estoque não encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "item referenciado por doações"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "item excluído"})
}
