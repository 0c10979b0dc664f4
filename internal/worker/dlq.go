package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

const deadLetterQueue = "jobs:alerta_estoque:dlq"

type deadLetter struct {
	Job      Job       `json:"job"`
	Erro     string    `json:"erro"`
	FailedAt time.Time `json:"failed_at"`
}

func (p *Pool) toDeadLetter(ctx context.Context, job Job, cause error) {
	entry := deadLetter{Job: job, Erro: cause.Error(), FailedAt: time.Now().UTC()}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := p.rdb.LPush(ctx, deadLetterQueue, raw).Err(); err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("falha ao gravar no dead-letter")
		return
	}
	log.Error().Err(cause).Str("job_id", job.ID).Msg("job movido para o dead-letter após esgotar tentativas")
}
