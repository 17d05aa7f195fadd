package service

import (
	"context"
	"time"
)

// retryPolicy acota los reintentos de las operaciones de persistencia.
// Solo se reintenta I/O: las etapas de computo son puras y reintentar no
// puede cambiar su resultado.
type retryPolicy struct {
	attempts int
	backoff  time.Duration
}

func newRetryPolicy(attempts int, backoff time.Duration) retryPolicy {
	if attempts <= 0 {
		attempts = 1
	}
	if backoff <= 0 {
		backoff = 100 * time.Millisecond
	}
	return retryPolicy{attempts: attempts, backoff: backoff}
}

// run ejecuta op hasta attempts veces con backoff exponencial, respetando
// la cancelacion del contexto. Una submission ya cancelada no llega al
// store: ni siquiera se ejecuta el primer intento.
func (p retryPolicy) run(ctx context.Context, op func(context.Context) error) error {
	var err error
	backoff := p.backoff
	for attempt := 1; attempt <= p.attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err = op(ctx); err == nil {
			return nil
		}
		if attempt == p.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return err
}
