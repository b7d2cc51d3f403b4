package state_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crew/infras/otel/mocks"
	"crew/infras/sqlite"
	bookingModel "crew/internal/domains/booking/model"
	mechanicModel "crew/internal/domains/mechanic/model"
	workshopModel "crew/internal/domains/workshop/model"
	"crew/internal/state"
)

const createTable = `CREATE TABLE app_state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	version TEXT NOT NULL,
	payload TEXT NOT NULL,
	saved_at TEXT NOT NULL
)`

func newTestStore(t *testing.T) (state.Store, *sqlx.DB) {
	t.Helper()

	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(createTable)
	require.NoError(t, err)

	return state.New(&sqlite.Connection{DB: db}, mocks.NewOtel()), db
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	saved := state.Default()
	saved.Workshop = &workshopModel.Workshop{ID: "ws-1", Name: "Bergs Bil"}
	saved.Mechanics = append(saved.Mechanics, mechanicModel.Mechanic{
		ID:          "mech-1",
		Name:        "Lasse",
		LoginMethod: mechanicModel.LoginMethodPIN,
		Credential:  "1234",
	})
	saved.Bookings = append(saved.Bookings, bookingModel.Booking{
		ID:                 "job-1",
		Status:             bookingModel.StatusPlanned,
		ScheduledDate:      "2026-09-01",
		ScheduledStartHour: 9,
		DurationHours:      2,
	})
	saved.SelectedWorkday = "2026-09-01"

	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	require.NotNil(t, loaded.Workshop)
	assert.Equal(t, "Bergs Bil", loaded.Workshop.Name)
	assert.Equal(t, saved.Mechanics, loaded.Mechanics)
	assert.Equal(t, "2026-09-01", loaded.SelectedWorkday)
	require.Len(t, loaded.Bookings, 1)
	assert.Equal(t, 9, loaded.Bookings[0].ScheduledStartHour)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := state.Default()
	first.SelectedWorkday = "2026-09-01"
	require.NoError(t, store.Save(ctx, first))

	second := state.Default()
	second.SelectedWorkday = "2026-09-02"
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", loaded.SelectedWorkday)
}

func TestStore_LoadEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, state.Default(), loaded)
}

func TestStore_LoadVersionMismatch(t *testing.T) {
	store, db := newTestStore(t)

	_, err := db.Exec(
		`INSERT INTO app_state (id, version, payload, saved_at) VALUES (1, ?, ?, ?)`,
		"0.9", `{"selected_workday":"2026-09-01"}`, "2026-08-27T10:00:00Z",
	)
	require.NoError(t, err)

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, state.Default(), loaded)
}

func TestStore_LoadCorruptPayload(t *testing.T) {
	store, db := newTestStore(t)

	_, err := db.Exec(
		`INSERT INTO app_state (id, version, payload, saved_at) VALUES (1, ?, ?, ?)`,
		state.Version, `{not-json`, "2026-08-27T10:00:00Z",
	)
	require.NoError(t, err)

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, state.Default(), loaded)
}

func TestStore_LoadBackfillsCollections(t *testing.T) {
	store, db := newTestStore(t)

	// A payload written before some collections existed must still come back
	// with non-nil slices.
	_, err := db.Exec(
		`INSERT INTO app_state (id, version, payload, saved_at) VALUES (1, ?, ?, ?)`,
		state.Version, `{"workshop":{"id":"ws-1","name":"Bergs Bil"}}`, "2026-08-27T10:00:00Z",
	)
	require.NoError(t, err)

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, loaded.Workshop)
	assert.NotNil(t, loaded.Mechanics)
	assert.NotNil(t, loaded.Customers)
	assert.NotNil(t, loaded.Bookings)
	assert.NotNil(t, loaded.WeeklyEvents)
	assert.NotNil(t, loaded.CustomVehicleTypes)
}

func TestStore_Reset(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	st := state.Default()
	st.SelectedWorkday = "2026-09-01"
	require.NoError(t, store.Save(ctx, st))

	require.NoError(t, store.Reset(ctx))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.Default(), loaded)
}
