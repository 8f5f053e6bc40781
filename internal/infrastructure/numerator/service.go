// Package numerator provides the PostgreSQL implementation of named counters.
// It implements core/numerator.Sequencer.
package numerator

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"storekeep/internal/core/apperror"
	corenumerator "storekeep/internal/core/numerator"
	"storekeep/internal/infrastructure/storage/postgres"
	"storekeep/pkg/logger"
	"storekeep/pkg/metrics"
)

const (
	selectForUpdateSQL = `SELECT id_value FROM id_gen WHERE id_name = $1 FOR UPDATE`
	selectSQL          = `SELECT id_value FROM id_gen WHERE id_name = $1`
	updateSQL          = `UPDATE id_gen SET id_value = $2 WHERE id_name = $1`
	seedSQL            = `INSERT INTO id_gen (id_name, id_value) VALUES ($1, $2) ON CONFLICT (id_name) DO NOTHING`
)

// TxQuerier runs work in a transaction and exposes the querier bound to it.
// *postgres.TxManager satisfies it.
type TxQuerier interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	GetQuerier(ctx context.Context) postgres.Querier
}

// Service hands out counter values from the id_gen table.
//
// Each NextValue locks the counter row for the rest of the surrounding
// transaction, so concurrent callers of the same name are serialized by the
// database, including callers in other processes. A caller that already holds
// a transaction shares it: the counter is only consumed if that transaction commits.
type Service struct {
	txm     TxQuerier
	metrics *metrics.Metrics
}

// Ensure compile-time interface compliance.
var _ corenumerator.Sequencer = (*Service)(nil)

// New creates a counter service. m may be nil.
func New(txm TxQuerier, m *metrics.Metrics) *Service {
	return &Service{txm: txm, metrics: m}
}

// NextValue returns the value currently stored for counterName and stores value+1.
//
// Errors:
//   - NOT_FOUND when no row exists for counterName (counters are never auto-created)
//   - INTEGRITY_ERROR when the update changed no row
func (s *Service) NextValue(ctx context.Context, counterName string) (int64, error) {
	var value int64

	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := s.txm.GetQuerier(ctx)

		if err := q.QueryRow(ctx, selectForUpdateSQL, counterName).Scan(&value); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperror.NewNotFound("counter", counterName)
			}
			return fmt.Errorf("read counter %s: %w", counterName, err)
		}

		tag, err := q.Exec(ctx, updateSQL, counterName, value+1)
		if err != nil {
			return fmt.Errorf("advance counter %s: %w", counterName, err)
		}
		if tag.RowsAffected() == 0 {
			logger.Error(ctx, "counter update affected no rows",
				"counter", counterName,
				"value", value,
			)
			return apperror.NewIntegrity("counter", counterName).WithDetail("value", value)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.metrics.SequenceIssued(counterName)
	logger.Debug(ctx, "counter value issued", "counter", counterName, "value", value)
	return value, nil
}

// Peek returns the value the next NextValue call would hand out, without changing it.
func (s *Service) Peek(ctx context.Context, counterName string) (int64, error) {
	var value int64
	err := s.txm.GetQuerier(ctx).QueryRow(ctx, selectSQL, counterName).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NewNotFound("counter", counterName)
		}
		return 0, fmt.Errorf("peek counter %s: %w", counterName, err)
	}
	return value, nil
}

// Seed creates the counter row with the given starting value if it is absent.
// It reports whether a row was inserted. Request paths never call it.
func (s *Service) Seed(ctx context.Context, counterName string, value int64) (bool, error) {
	if value < 0 {
		return false, apperror.NewValidation("counter start value must not be negative").
			WithDetail("counter", counterName)
	}
	tag, err := s.txm.GetQuerier(ctx).Exec(ctx, seedSQL, counterName, value)
	if err != nil {
		return false, fmt.Errorf("seed counter %s: %w", counterName, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Snapshot peeks every well-known counter. Missing counters are reported as -1.
func (s *Service) Snapshot(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(corenumerator.Counters))
	for _, name := range corenumerator.Counters {
		v, err := s.Peek(ctx, name)
		switch {
		case apperror.IsNotFound(err):
			out[name] = -1
		case err != nil:
			return nil, err
		default:
			out[name] = v
		}
	}
	return out, nil
}
