package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sanem/doacoes-api/internal/application/doacao"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/domain"
)

// DoacaoHandler trata os ledgers de doações recebidas e enviadas e a visão
// derivada de distribuições (protegido).
type DoacaoHandler struct {
	uc *doacao.UseCase
}

// NewDoacaoHandler constrói o handler.
func NewDoacaoHandler(uc *doacao.UseCase) *DoacaoHandler {
	return &DoacaoHandler{uc: uc}
}

// RegistrarRecebida godoc
// @Summary      Registrar doação recebida
// @Description  Grava a doação e soma a quantidade ao estoque na mesma transação.
// @Tags         doacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarRecebidaRequest  true  "quantidade, tipoId, estoqueId"
// @Success      201   {object}  dto.ItemEstoqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/doacoes/recebidas [post]
func (h *DoacaoHandler) RegistrarRecebida(c *fiber.Ctx) error {
	var in dto.RegistrarRecebidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegistrarRecebida(c.UserContext(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade positiva, tipoId e estoqueId coerentes são obrigatórios"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item de estoque não encontrado", Field: "estoqueId"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarRecebidas godoc
// @Summary      Listar doações recebidas
// @Tags         doacoes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DoacaoRecebidaResponse
// @Router       /api/doacoes/recebidas [get]
func (h *DoacaoHandler) ListarRecebidas(c *fiber.Ctx) error {
	out, err := h.uc.ListarRecebidas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoverRecebida godoc
// @Summary      Remover doação recebida
// @Description  Remove apenas a linha do ledger; o estoque não é recompensado.
// @Tags         doacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da doação"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doacoes/recebidas/{id} [delete]
func (h *DoacaoHandler) RemoverRecebida(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.RemoverRecebida(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "doação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "doação removida"})
}

// RegistrarEnviada godoc
// @Summary      Registrar doação enviada
// @Description  Grava a doação e subtrai do estoque na mesma transação. O saldo pode ficar negativo.
// @Tags         doacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarEnviadaRequest  true  "quantidade, beneficiarioId, tipoId, estoqueId"
// @Success      201   {object}  dto.ItemEstoqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/doacoes/enviadas [post]
func (h *DoacaoHandler) RegistrarEnviada(c *fiber.Ctx) error {
	var in dto.RegistrarEnviadaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegistrarEnviada(c.UserContext(), in, GetOperadorID(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade positiva, beneficiarioId, tipoId e estoqueId coerentes são obrigatórios"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "beneficiário ou item de estoque não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarEnviadas godoc
// @Summary      Listar doações enviadas
// @Tags         doacoes
// @Security     Bearer
// @Produce      json
// @Param        beneficiarioId  query  string  false  "Filtrar por beneficiário"
// @Success      200  {array}  dto.DoacaoEnviadaResponse
// @Router       /api/doacoes/enviadas [get]
func (h *DoacaoHandler) ListarEnviadas(c *fiber.Ctx) error {
	beneficiarioID := c.Query("beneficiarioId")
	var (
		out []*dto.DoacaoEnviadaResponse
		err error
	)
	if beneficiarioID != "" {
		out, err = h.uc.ListarEnviadasPorBeneficiario(beneficiarioID)
	} else {
		out, err = h.uc.ListarEnviadas()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoverEnviada godoc
// @Summary      Remover doação enviada
// @Description  Remove apenas a linha do ledger; o estoque não é recompensado.
// @Tags         doacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da doação"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doacoes/enviadas/{id} [delete]
func (h *DoacaoHandler) RemoverEnviada(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.RemoverEnviada(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "doação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "doação removida"})
}

// ListarDistribuicoes godoc
// @Summary      Listar distribuições
// @Description  Agrupa as doações enviadas por beneficiário e dia de calendário.
// @Tags         doacoes
// @Security     Bearer
// @Produce      json
// @Param        beneficiarioId  query  string  false  "Filtrar por beneficiário"
// @Success      200  {array}  dto.DistribuicaoResponse
// @Router       /api/doacoes/distribuicoes [get]
func (h *DoacaoHandler) ListarDistribuicoes(c *fiber.Ctx) error {
	beneficiarioID := c.Query("beneficiarioId")
	var (
		out []*dto.DistribuicaoResponse
		err error
	)
	if beneficiarioID != "" {
		out, err = h.uc.ListarDistribuicoesPorBeneficiario(beneficiarioID)
	} else {
		out, err = h.uc.ListarDistribuicoes()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
