package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Gateway modes. "remote" talks to the hosted record store; "sqlite" and
// "mysql" run the gorm-backed local gateway instead.
const (
	GatewayModeRemote = "remote"
	GatewayModeSQLite = "sqlite"
	GatewayModeMySQL  = "mysql"
)

// GatewayMode reads GATEWAY_MODE, defaulting to the hosted store.
func GatewayMode() string {
	mode := os.Getenv("GATEWAY_MODE")
	if mode == "" {
		return GatewayModeRemote
	}
	return mode
}

// OpenLocalDB opens the gorm database for the local gateway modes.
func OpenLocalDB(mode string) (*gorm.DB, error) {
	switch mode {
	case GatewayModeSQLite:
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "tavolo.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	case GatewayModeMySQL:
		dsn := os.Getenv("MYSQL_DSN")
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				getenv("DB_USER", "root"),
				os.Getenv("DB_PASS"),
				getenv("DB_HOST", "127.0.0.1"),
				getenv("DB_PORT", "3306"),
				getenv("DB_NAME", "tavolo"),
			)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported gateway mode %q", mode)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
