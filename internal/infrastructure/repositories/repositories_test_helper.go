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
		email TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSessionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		assertion TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createSigningKeyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE signing_keys (
		user_id TEXT PRIMARY KEY,
		public_key TEXT NOT NULL,
		sealed_private TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createWalletTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		user_id TEXT PRIMARY KEY,
		address TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createOnrampSessionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE onramp_sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL,
		amount_usdc TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createYieldPositionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE yield_positions (
		user_id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		apy REAL,
		accrued_usd REAL
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		hash TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		created_at DATETIME
	);`)
}
