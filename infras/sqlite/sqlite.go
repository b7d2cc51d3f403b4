package sqlite

//nolint:revive
import (
	"crew/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	sqliteMaxIdleConnection = 1
	// A single writer owns the state blob; more connections would only
	// contend on the file lock.
	sqliteMaxOpenConnection = 1
)

type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		DB: CreateSQLiteConn(*config),
	}
}

// CreateSQLiteConn opens the embedded database file, retrying the way the
// service retries any backing store before giving up.
func CreateSQLiteConn(config config.Config) *sqlx.DB {
	path := config.DB.SQLite.Path
	maxRetry := config.DB.SQLite.MaxRetry
	waitTime := config.DB.SQLite.RetryWaitTime

	if maxRetry <= 0 {
		maxRetry = 1
	}

	descriptor := "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL"

	var (
		db  *sqlx.DB
		err error
	)

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err = sqlx.Connect("sqlite3", descriptor)
		if err == nil {
			break
		}

		log.Error().
			Err(err).
			Str("path", path).
			Int("attempt", attempt).
			Int("maxRetry", maxRetry).
			Msg("Failed to open SQLite database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to open SQLite database")
	}

	db.SetMaxIdleConns(sqliteMaxIdleConnection)
	db.SetMaxOpenConns(sqliteMaxOpenConnection)

	log.Info().Str("path", path).Msg("Connected to SQLite database")

	return db
}
