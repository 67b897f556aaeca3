package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Foreign keys drive the ON DELETE CASCADE cleanup of user-owned rows
// and the SET NULL unlinking of quest/plan/task references; the busy
// timeout keeps concurrent request handlers from failing fast with
// SQLITE_BUSY on a shared file.
const sqliteOptions = "_foreign_keys=on&_busy_timeout=5000"

// OpenSQLite opens the planner database at dbPath, creating the file
// and its directory if needed, and brings the schema up to date.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	database, err := gorm.Open(sqlite.Open(dbPath+"?"+sqliteOptions), &gorm.Config{
		Logger: newQueryLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return database, nil
}

// newQueryLogger reports slow queries and errors only; per-row reads
// would drown the request log of a CRUD service.
func newQueryLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
