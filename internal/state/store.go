package state

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"crew/infras/otel"
	"crew/infras/sqlite"
	"crew/shared/constant"
	"crew/shared/timezone"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Version is the state blob's schema tag. A stored blob with a different tag
// is discarded and replaced by the empty default; there is no migration path.
const Version = "1.0"

const (
	queryLoad = `SELECT version, payload FROM app_state WHERE id = 1`
	querySave = `INSERT INTO app_state (id, version, payload, saved_at) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET version = excluded.version, payload = excluded.payload, saved_at = excluded.saved_at`
	queryReset = `DELETE FROM app_state WHERE id = 1`
)

// Store owns the persisted workshop state. Every mutation in the system is a
// full-state read-modify-write through Load and Save, which is safe only
// because there is exactly one writer; any multi-writer deployment would need
// per-entity versioning instead.
type Store interface {
	Load(ctx context.Context) (AppState, error)
	Save(ctx context.Context, state AppState) error
	Reset(ctx context.Context) error
}

type storeImpl struct {
	db   *sqlite.Connection
	otel otel.Otel
}

func New(db *sqlite.Connection, otel otel.Otel) Store {
	return &storeImpl{
		db:   db,
		otel: otel,
	}
}

type stateRow struct {
	Version string `db:"version"`
	Payload string `db:"payload"`
}

// Load returns the persisted state, or the empty default when nothing is
// stored, the version tag mismatches, or the payload is corrupt. Corruption is
// treated as data loss, never surfaced as an error.
func (s *storeImpl) Load(ctx context.Context) (AppState, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLoad)

	var row stateRow

	err := s.db.DB.GetContext(ctx, &row, queryLoad)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Default(), nil
		}

		scope.TraceError(err)

		return Default(), fmt.Errorf("failed to load app state: %w", err)
	}

	if row.Version != Version {
		log.Warn().
			Str("stored", row.Version).
			Str("current", Version).
			Msg("Storage version mismatch, resetting data")

		return Default(), nil
	}

	var state AppState
	if err := json.Unmarshal([]byte(row.Payload), &state); err != nil {
		log.Warn().Err(err).Msg("Corrupt app state payload, resetting data")

		return Default(), nil
	}

	state.normalize()

	return state, nil
}

// Save persists the full state with the version tag and a save timestamp.
func (s *storeImpl) Save(ctx context.Context, state AppState) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySave)

	payload, err := json.Marshal(state)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to encode app state: %w", err)
	}

	_, err = s.db.DB.ExecContext(ctx, querySave, Version, string(payload), timezone.Now().Format(constant.DateFormat))
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to save app state: %w", err)
	}

	return nil
}

// Reset wipes the persisted state entirely, used when creating a new workshop.
func (s *storeImpl) Reset(ctx context.Context) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Reset")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryReset)

	_, err := s.db.DB.ExecContext(ctx, queryReset)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to reset app state: %w", err)
	}

	return nil
}
