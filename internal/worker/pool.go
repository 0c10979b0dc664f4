package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	queueAlertaEstoque = "jobs:alerta_estoque"
	maxAttempts        = 3
)

// AlertaEstoquePayload describes a product that dropped to or below its
// minimum stock level after a sale or adjustment.
type AlertaEstoquePayload struct {
	ProdutoID     uint   `json:"produto_id"`
	Nome          string `json:"nome"`
	EstoqueAtual  int    `json:"estoque_atual"`
	EstoqueMinimo int    `json:"estoque_minimo"`
}

// Job is the envelope pushed onto the Redis queue.
type Job struct {
	ID       string               `json:"id"`
	Payload  AlertaEstoquePayload `json:"payload"`
	Attempts int                  `json:"attempts"`
	Enqueued time.Time            `json:"enqueued"`
}

// AlertaHandler processes one low-stock alert (normally: sends the e-mail).
type AlertaHandler interface {
	Handle(ctx context.Context, payload AlertaEstoquePayload) error
}

// Dispatcher enqueues jobs. Producers only see this type; the pool owns
// consumption.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueAlertaEstoque pushes a low-stock alert job. Best effort: callers
// treat a failed enqueue as a logged warning, never as a request failure.
func (d *Dispatcher) EnqueueAlertaEstoque(ctx context.Context, payload AlertaEstoquePayload) error {
	job := Job{
		ID:       uuid.NewString(),
		Payload:  payload,
		Enqueued: time.Now().UTC(),
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := d.rdb.LPush(ctx, queueAlertaEstoque, raw).Err(); err != nil {
		log.Warn().Err(err).Str("job_id", job.ID).Msg("falha ao enfileirar alerta de estoque")
		return err
	}
	log.Debug().Str("job_id", job.ID).Uint("produto_id", payload.ProdutoID).Msg("alerta de estoque enfileirado")
	return nil
}

// Pool consumes the alert queue with a fixed number of goroutines, each
// blocking on BRPOP. Failed jobs are retried up to maxAttempts, then parked
// on the dead-letter list.
type Pool struct {
	rdb     *redis.Client
	handler AlertaHandler
	size    int
	done    chan struct{}
}

func NewPool(rdb *redis.Client, handler AlertaHandler, size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{rdb: rdb, handler: handler, size: size, done: make(chan struct{})}
}

func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		go p.run(ctx, i)
	}
	log.Info().Int("workers", p.size).Str("queue", queueAlertaEstoque).Msg("worker pool iniciado")
}

// Stop signals the workers to exit after their current BRPOP timeout.
func (p *Pool) Stop() {
	close(p.done)
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.done:
			return
		default:
		}

		res, err := p.rdb.BRPop(ctx, 5*time.Second, queueAlertaEstoque).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			log.Error().Err(err).Int("worker", id).Msg("erro no consumo da fila")
			time.Sleep(time.Second)
			continue
		}
		// res[0] is the queue name, res[1] the payload.
		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			log.Error().Err(err).Int("worker", id).Msg("job ilegível descartado")
			continue
		}

		if err := p.handler.Handle(ctx, job.Payload); err != nil {
			p.retry(ctx, job, err)
			continue
		}
		log.Debug().Str("job_id", job.ID).Int("worker", id).Msg("alerta processado")
	}
}

func (p *Pool) retry(ctx context.Context, job Job, cause error) {
	job.Attempts++
	if job.Attempts >= maxAttempts {
		p.toDeadLetter(ctx, job, cause)
		return
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := p.rdb.LPush(ctx, queueAlertaEstoque, raw).Err(); err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("falha ao reenfileirar job")
		return
	}
	log.Warn().Err(cause).Str("job_id", job.ID).Int("attempts", job.Attempts).Msg("job reenfileirado")
}
