package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/application/usecase"
	"github.com/sanem/doacoes-api/internal/domain"
)

// BeneficiarioHandler trata as requisições HTTP para beneficiários (protegido).
type BeneficiarioHandler struct {
	uc *usecase.BeneficiarioUseCase
}

// NewBeneficiarioHandler constrói o handler.
func NewBeneficiarioHandler(uc *usecase.BeneficiarioUseCase) *BeneficiarioHandler {
	return &BeneficiarioHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar beneficiário
// @Tags         beneficiarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBeneficiarioRequest  true  "Dados do beneficiário"
// @Success      201   {object}  dto.BeneficiarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/beneficiarios [post]
func (h *BeneficiarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBeneficiarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório", Field: "nome"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar beneficiários
// @Tags         beneficiarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BeneficiarioResponse
// @Router       /api/beneficiarios [get]
func (h *BeneficiarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter beneficiário por ID
// @Tags         beneficiarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do beneficiário"
// @Success      200  {object}  dto.BeneficiarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/beneficiarios/{id} [get]
func (h *BeneficiarioHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "beneficiário não encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar beneficiário
// @Tags         beneficiarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do beneficiário"
// @Param        body  body  dto.UpdateBeneficiarioRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.BeneficiarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/beneficiarios/{id} [put]
func (h *BeneficiarioHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateBeneficiarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome não pode ficar vazio", Field: "nome"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "beneficiário não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir beneficiário
// @Tags         beneficiarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do beneficiário"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/beneficiarios/{id} [delete]
func (h *BeneficiarioHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "beneficiário não encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "beneficiário possui doações registradas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "beneficiário excluído"})
}
