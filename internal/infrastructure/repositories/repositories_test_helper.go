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

func createTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tokens (
		address TEXT PRIMARY KEY,
		like_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createLikeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE likes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		token_address TEXT NOT NULL,
		user_ip TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createChatMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE chat_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		message TEXT NOT NULL,
		user_ip TEXT,
		created_at DATETIME
	);`)
}

func seedToken(t *testing.T, db *gorm.DB, address string, likeCount int, createdAt time.Time) {
	t.Helper()
	mustExec(t, db, `INSERT INTO tokens(address, like_count, created_at) VALUES (?,?,?)`,
		address, likeCount, createdAt)
}

func seedLike(t *testing.T, db *gorm.DB, tokenAddress, userIP string, createdAt time.Time) {
	t.Helper()
	mustExec(t, db, `INSERT INTO likes(token_address, user_ip, created_at) VALUES (?,?,?)`,
		tokenAddress, userIP, createdAt)
}

func seedChatMessage(t *testing.T, db *gorm.DB, username, message string, createdAt time.Time) {
	t.Helper()
	mustExec(t, db, `INSERT INTO chat_messages(username, message, user_ip, created_at) VALUES (?,?,?,?)`,
		username, message, "127.0.0.1", createdAt)
}
