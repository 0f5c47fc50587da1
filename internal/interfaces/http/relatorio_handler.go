package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/application/relatorio"
	"github.com/sanem/doacoes-api/internal/domain"
)

// RelatorioHandler trata os relatórios de leitura e o comprovante em PDF.
type RelatorioHandler struct {
	uc *relatorio.UseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.UseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Totais do painel inicial
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/relatorios/dashboard [get]
func (h *RelatorioHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Periodo godoc
// @Summary      Movimentos entre duas datas
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  true  "Data inicial (AAAA-MM-DD)"
// @Param        fim     query  string  true  "Data final (AAAA-MM-DD)"
// @Success      200     {object}  dto.RelatorioPeriodoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/relatorios/periodo [get]
func (h *RelatorioHandler) Periodo(c *fiber.Ctx) error {
	inicio, err := time.Parse("2006-01-02", c.Query("inicio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inicio deve estar no formato AAAA-MM-DD", Field: "inicio"})
	}
	fim, err := time.Parse("2006-01-02", c.Query("fim"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fim deve estar no formato AAAA-MM-DD", Field: "fim"})
	}
	out, err := h.uc.Periodo(c.UserContext(), inicio, fim)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fim deve ser igual ou posterior a inicio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Mensal godoc
// @Summary      Série mensal de recebidas versus enviadas
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovimentoMensal
// @Router       /api/relatorios/mensal [get]
func (h *RelatorioHandler) Mensal(c *fiber.Ctx) error {
	out, err := h.uc.Mensal(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PorBeneficiario godoc
// @Summary      Histórico de distribuições de um beneficiário
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do beneficiário"
// @Success      200  {array}  dto.DistribuicaoResponse
// @Router       /api/relatorios/beneficiario/{id} [get]
func (h *RelatorioHandler) PorBeneficiario(c *fiber.Ctx) error {
	out, err := h.uc.PorBeneficiario(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recibo godoc
// @Summary      Comprovante de entrega em PDF
// @Description  Gera o PDF da distribuição identificada por beneficiário e dia.
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        beneficiarioId  query  string  true  "ID do beneficiário"
// @Param        dia             query  string  true  "Dia da entrega (AAAA-MM-DD)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/relatorios/recibo [get]
func (h *RelatorioHandler) Recibo(c *fiber.Ctx) error {
	beneficiarioID := c.Query("beneficiarioId")
	dia := c.Query("dia")
	if beneficiarioID == "" || dia == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "beneficiarioId e dia são obrigatórios"})
	}
	pdfBytes, err := h.uc.ReciboPDF(beneficiarioID, dia)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dia deve estar no formato AAAA-MM-DD", Field: "dia"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distribuição não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="comprovante-`+beneficiarioID+`-`+dia+`.pdf"`)
	return c.Send(pdfBytes)
}
