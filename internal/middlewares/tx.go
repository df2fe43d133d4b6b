package middlewares

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// TxMiddleware runs the handler inside a database transaction. The response is
// held back until the transaction ends: 4xx/5xx responses roll back, anything
// else commits, and a failed commit turns into a 500. Functions registered with
// AfterCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tx, err := db.BeginTxx(ctx, nil)
			if err != nil {
				logger.FromContext(ctx).Errorw("failed to begin transaction", "error", err)
				respond.Error(w, r, apperr.Internal("failed to begin transaction", err))
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			buf := newBufferedWriter()
			next.ServeHTTP(buf, r.WithContext(setHooksToContext(setTxToContext(ctx, tx), hooks)))

			if buf.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.FromContext(ctx).Errorw("failed to roll back transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.FromContext(ctx).Errorw("failed to commit transaction", "error", err)
				respond.Error(w, r, apperr.Internal("failed to commit transaction", err))
				return
			}
			hooks.run()
			buf.flush(w)
		})
	}
}

type commitHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *commitHooks) add(fn func()) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

func (h *commitHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// AfterCommit defers fn until the request transaction commits. Without a
// transaction in ctx, fn runs immediately. Rolled back requests drop fn.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, _ := ctx.Value(hooksKey).(*commitHooks)
	if hooks == nil {
		fn()
		return
	}
	hooks.add(fn)
}

// bufferedWriter collects a response so it can be discarded.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: http.Header{}, statusCode: http.StatusOK}
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) { b.statusCode = code }

func (b *bufferedWriter) Write(p []byte) (int, error) { return b.body.Write(p) }

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	w.WriteHeader(b.statusCode)
	_, _ = w.Write(b.body.Bytes())
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

type hooksContextKey struct{}

var (
	txKey    = contextKey{}
	hooksKey = hooksContextKey{}
)

func setHooksToContext(ctx context.Context, hooks *commitHooks) context.Context {
	return context.WithValue(ctx, hooksKey, hooks)
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
