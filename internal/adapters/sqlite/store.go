// Package sqlite implements the todo storage port on an embedded SQLite
// database (modernc.org/sqlite, pure Go).
//
// Every statement runs through Store.exec, which applies, in order:
//
//	Circuit Breaker → OTEL Span → SQL
//
// and records db.operation.* metrics outside the breaker so rejected calls
// are counted too.
//
// Construction:
//
//	store, err := sqlite.Open(ctx, &cfg.Database, metrics, logger)
//	defer store.Close()
//	repo := sqlite.NewTodoRepository(store)
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

// checkerName identifies the store in health reports, traces and metrics.
const checkerName = "database"

// MemoryPath selects a private in-memory database.
const MemoryPath = ":memory:"

//go:embed schema.sql
var schemaSQL string

// Store owns the database handle and the instrumentation shared by every
// repository built on it.
type Store struct {
	db      *sql.DB
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open connects to the database described by cfg and applies the schema.
// If metrics is nil, metric recording is skipped. A nil logger discards
// output.
func Open(ctx context.Context, cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", dsn(cfg.Path, cfg.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", cfg.Path, err)
	}

	// Every connection to :memory: gets its own empty database.
	maxConns := cfg.MaxOpenConns
	if cfg.Path == MemoryPath || maxConns < 1 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)

	s := &Store{
		db:      db,
		breaker: newBreaker(&cfg.CircuitBreaker, logger),
		metrics: metrics,
		logger:  logger,
	}

	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "todo store ready",
		slog.String("path", cfg.Path),
		slog.Int("max_open_conns", maxConns),
	)
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name returns the health checker identifier. Together with HealthCheck it
// lets Store satisfy ports.HealthChecker.
func (s *Store) Name() string {
	return checkerName
}

// HealthCheck reports the store as unhealthy while the circuit breaker is
// not closed, and otherwise pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", checkerName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", checkerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", checkerName, state)
	}

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", checkerName, err)
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// exec runs fn under the circuit breaker inside a client span named after
// operation. Open-breaker rejections come back wrapped in
// domain.ErrUnavailable.
func (s *Store) exec(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	start := time.Now()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := s.startSpan(ctx, operation)
		defer span.End()

		opErr := fn(spanCtx)
		finishSpan(span, opErr)
		return struct{}{}, opErr
	})

	s.recordMetrics(ctx, operation, start, err)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: todo store: %w", domain.ErrUnavailable, err)
	}
	return err
}

func (s *Store) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("sqlite")
	return tracer.Start(ctx, "todos "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "sqlite"),
			attribute.String("db.operation", operation),
			attribute.String("db.sql.table", "todos"),
		),
	)
}

// finishSpan marks the span as failed for infrastructure errors only.
// Missing rows and constraint violations are normal outcomes.
func finishSpan(span trace.Span, err error) {
	if err == nil || isExpected(err) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics records store operation duration and count metrics.
// Safe to call with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String("sqlite"),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(resultOf(err)),
	)

	s.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	default:
		return "error"
	}
}

func newBreaker(cfg *config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isExpected(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// isExpected reports whether err is a normal outcome of a healthy database:
// a client-caused domain error or a caller giving up.
func isExpected(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

// isUniqueViolation reports whether err is SQLite rejecting a write that
// would duplicate a unique index entry.
func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
		if code&0xff != sqlite3.SQLITE_CONSTRAINT {
			return false
		}
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// dsn builds a modernc.org/sqlite connection string with the pragmas every
// connection needs.
func dsn(path string, busyTimeout time.Duration) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	q.Add("_pragma", "foreign_keys(1)")

	if path == MemoryPath {
		return "file::memory:?" + q.Encode()
	}

	q.Add("_pragma", "journal_mode(WAL)")
	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + q.Encode()
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: path, RawQuery: q.Encode()}
	return u.String()
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
