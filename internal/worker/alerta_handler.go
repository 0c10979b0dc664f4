package worker

import (
	"context"
	"fmt"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/infra"
)

// EmailAlertaHandler sends a low-stock notification to the configured
// back-office address.
type EmailAlertaHandler struct {
	mailer  infra.Mailer
	destino string
}

func NewEmailAlertaHandler(mailer infra.Mailer, destino string) *EmailAlertaHandler {
	return &EmailAlertaHandler{mailer: mailer, destino: destino}
}

func (h *EmailAlertaHandler) Handle(_ context.Context, p AlertaEstoquePayload) error {
	assunto := fmt.Sprintf("Estoque baixo: %s", p.Nome)
	corpo := fmt.Sprintf(
		"O produto %q (id %d) atingiu %d unidades em estoque (mínimo configurado: %d).\n\nReponha o quanto antes.",
		p.Nome, p.ProdutoID, p.EstoqueAtual, p.EstoqueMinimo,
	)
	return h.mailer.Send(h.destino, assunto, corpo)
}
