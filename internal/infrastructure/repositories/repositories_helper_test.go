package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		billing_customer_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createSubscriptionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE subscriptions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		tier TEXT NOT NULL,
		chunks_limit INTEGER NOT NULL,
		rate_limit INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		billing_subscription_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createApiKeyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE api_keys (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		key_hash TEXT UNIQUE NOT NULL,
		key_prefix TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		last_used_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUsageLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE usage_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		api_key_id TEXT NOT NULL,
		endpoint TEXT NOT NULL,
		chunks_generated INTEGER NOT NULL,
		response_time_ms INTEGER NOT NULL,
		status_code INTEGER NOT NULL,
		created_at DATETIME
	);`)
}

func createGenerationRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE generation_records (
		id TEXT PRIMARY KEY,
		hash TEXT NOT NULL,
		hash_prefix TEXT NOT NULL,
		seed INTEGER NOT NULL,
		chunks INTEGER NOT NULL,
		created_at DATETIME
	);`)
}
