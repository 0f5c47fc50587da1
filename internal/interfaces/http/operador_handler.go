package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/application/usecase"
	"github.com/sanem/doacoes-api/internal/domain"
)

// OperadorHandler trata as requisições HTTP para operadores. A criação,
// alteração e exclusão são restritas a administradores (ver Router).
type OperadorHandler struct {
	uc *usecase.OperadorUseCase
}

// NewOperadorHandler constrói o handler.
func NewOperadorHandler(uc *usecase.OperadorUseCase) *OperadorHandler {
	return &OperadorHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar operador
// @Tags         operadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperadorRequest  true  "Dados do operador"
// @Success      201   {object}  dto.OperadorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operadores [post]
func (h *OperadorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperadorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Senha) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "senha deve ter pelo menos 8 caracteres", Field: "senha"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome, email e senha são obrigatórios"})
		}
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email já cadastrado", Field: "email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar operadores
// @Tags         operadores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OperadorResponse
// @Router       /api/operadores [get]
func (h *OperadorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter operador por ID
// @Tags         operadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do operador"
// @Success      200  {object}  dto.OperadorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operadores/{id} [get]
func (h *OperadorHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operador não encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar operador
// @Description  Senha não é alterada aqui; use PUT /api/operadores/{id}/senha.
// @Tags         operadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do operador"
// @Param        body  body  dto.UpdateOperadorRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.OperadorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operadores/{id} [put]
func (h *OperadorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateOperadorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email já cadastrado", Field: "email"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operador não encontrado"})
	}
	return c.JSON(out)
}

// UpdateSenha godoc
// @Summary      Trocar senha do operador
// @Tags         operadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do operador"
// @Param        body  body  dto.UpdateSenhaRequest  true  "Nova senha"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operadores/{id}/senha [put]
func (h *OperadorHandler) UpdateSenha(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.NovaSenha) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "senha deve ter pelo menos 8 caracteres", Field: "novaSenha"})
	}
	if err := h.uc.UpdateSenha(id, in); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operador não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "senha atualizada"})
}

// Delete godoc
// @Summary      Excluir operador
// @Tags         operadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do operador"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operadores/{id} [delete]
func (h *OperadorHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operador não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "operador excluído"})
}
