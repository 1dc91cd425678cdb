package database

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"supplier-api/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnsupportedDriver is returned for a DB_DRIVER value that has no dialector.
var ErrUnsupportedDriver = errors.New("unsupported DB_DRIVER")

var dbNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Open connects to the configured store and creates the tables.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if err := EnsureDatabaseExists(cfg); err != nil {
		return nil, err
	}

	dialector, err := Dialector(cfg, cfg.DBName)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if cfg.LogLevel == "debug" {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	slog.Info("database ready", "driver", cfg.DBDriver, "name", cfg.DBName)
	return db, nil
}

// Dialector builds the GORM dialector for cfg.DBDriver pointing at dbName.
func Dialector(cfg *config.Config, dbName string) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "sqlite", "":
		return sqlite.Open(sqliteDSN(dbName)), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, dbName, portOr(cfg.DBPort, "5432"))
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, portOr(cfg.DBPort, "3306"), dbName)
		return mysql.Open(dsn), nil
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, portOr(cfg.DBPort, "1433"), dbName)
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.DBDriver)
	}
}

// EnsureDatabaseExists creates the database on a server driver when it is
// missing. sqlite creates its file on first open, so it is a no-op there.
func EnsureDatabaseExists(cfg *config.Config) error {
	var serverDB, stmt string
	switch cfg.DBDriver {
	case "sqlite", "":
		return nil
	case "postgres":
		serverDB = "postgres"
	case "mysql":
		serverDB = ""
		stmt = "CREATE DATABASE IF NOT EXISTS " + cfg.DBName
	case "mssql":
		serverDB = "master"
		stmt = "IF DB_ID('" + cfg.DBName + "') IS NULL CREATE DATABASE " + cfg.DBName
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.DBDriver)
	}

	if !dbNamePattern.MatchString(cfg.DBName) {
		return fmt.Errorf("invalid database name %q", cfg.DBName)
	}

	dialector, err := Dialector(cfg, serverDB)
	if err != nil {
		return err
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return fmt.Errorf("failed to connect to DB server: %w", err)
	}
	defer closeDB(db)

	if cfg.DBDriver == "postgres" {
		var exists bool
		if err := db.Raw("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = ?)", cfg.DBName).
			Scan(&exists).Error; err != nil {
			return err
		}
		if exists {
			return nil
		}
		stmt = "CREATE DATABASE " + cfg.DBName
	}

	return db.Exec(stmt).Error
}

func sqliteDSN(name string) string {
	if name == ":memory:" {
		return name
	}
	sep := "?"
	if strings.Contains(name, "?") {
		sep = "&"
	}
	return name + sep + "_foreign_keys=on"
}

func portOr(port, fallback string) string {
	if port == "" {
		return fallback
	}
	return port
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
