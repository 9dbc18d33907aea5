// Package database provides persistence for the prospect pain quantification
// service.
//
// This package includes:
//   - GORM + PostgreSQL connection management for company, profile, signal
//     and assessment records
//   - A separate raw database/sql connection used by the aggregate dashboard
//     queries in queries.go
//
// The engine itself (package pain) performs no I/O; everything here is the
// caller-side layer that materializes inputs and persists results.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the GORM database connection and provides access to the
// underlying DB instance.
type Database struct {
	db *gorm.DB
}

// DB returns the underlying GORM database instance for direct access when needed.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Connect establishes database connection using GORM
func Connect(host, port, dbname, user, password string) (*Database, error) {
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		host, port, dbname, user, password)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Silent logging for production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connection established")
	return &Database{db: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	log.Println("📡 Closing database connection...")
	return sqlDB.Close()
}

// StatsDB wraps a raw database/sql connection used for the aggregate
// dashboard queries, which are hand-written SQL rather than GORM chains.
type StatsDB struct {
	conn *sql.DB
}

// NewStatsConnection creates the raw connection for dashboard aggregates
func NewStatsConnection(host, port, dbname, user, password string) (*StatsDB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname,
	)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Dashboard traffic is light; keep the pool small
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &StatsDB{conn: conn}, nil
}

// Close closes the raw stats connection
func (s *StatsDB) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
