// Package dao implements the data access layer.
package dao

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/haierkeys/gormTracing"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig database connection configuration.
// DSN, when set, is the environment-supplied connection descriptor and
// takes precedence over the individual fields.
type DatabaseConfig struct {
	// Type database type: postgres, mysql or sqlite
	Type string
	// DSN full connection descriptor (postgres URL or mysql DSN)
	DSN string
	// Path sqlite database file path
	Path string
	// UserName user name
	UserName string
	// Password password
	Password string
	// Host host
	Host string
	// Name database name
	Name string
	// TablePrefix table name prefix
	TablePrefix string
	// Charset character set (mysql)
	Charset string
	// ParseTime whether to parse time (mysql)
	ParseTime bool
	// MaxIdleConns max idle connections in the pool
	MaxIdleConns int
	// MaxOpenConns max open connections
	MaxOpenConns int
	// ConnMaxLifetime max connection lifetime, e.g. 30m, 1h
	ConnMaxLifetime string
	// ConnMaxIdleTime max idle connection lifetime, e.g. 10m
	ConnMaxIdleTime string
	// RunMode release or debug; debug enables the gorm query log
	RunMode string
}

// Dao wraps the shared gorm connection. One Dao per execution context,
// reused across requests.
type Dao struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Dao {
	return &Dao{db: db}
}

func (d *Dao) DB() *gorm.DB {
	return d.db
}

// NewDBEngineWithConfig opens the gorm engine and tunes the underlying pool.
func NewDBEngineWithConfig(c DatabaseConfig, lg *zap.Logger) (*gorm.DB, error) {

	dialector, err := newDialector(c)
	if err != nil {
		return nil, err
	}

	logMode := logger.Default.LogMode(logger.Silent)
	if c.RunMode == "debug" {
		logMode = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logMode,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)

	if c.ConnMaxLifetime != "" {
		lifetime, err := time.ParseDuration(c.ConnMaxLifetime)
		if err != nil {
			return nil, errors.Wrapf(err, "parse conn-max-lifetime %q", c.ConnMaxLifetime)
		}
		sqlDB.SetConnMaxLifetime(lifetime)
	}
	if c.ConnMaxIdleTime != "" {
		idleTime, err := time.ParseDuration(c.ConnMaxIdleTime)
		if err != nil {
			return nil, errors.Wrapf(err, "parse conn-max-idle-time %q", c.ConnMaxIdleTime)
		}
		sqlDB.SetConnMaxIdleTime(idleTime)
	}

	if err := db.Use(&gormTracing.OpentracingPlugin{}); err != nil {
		lg.Warn("gorm tracing plugin register failed", zap.Error(err))
	}

	return db, nil
}

func newDialector(c DatabaseConfig) (gorm.Dialector, error) {
	switch c.Type {
	case "postgres":
		dsn := c.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s",
				c.Host,
				c.UserName,
				c.Password,
				c.Name,
			)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := c.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
				c.UserName,
				c.Password,
				c.Host,
				c.Name,
				c.Charset,
				c.ParseTime,
			)
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		if dir := filepath.Dir(c.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, errors.Wrap(err, "create sqlite directory")
			}
		}
		return sqlite.Open(c.Path), nil
	default:
		return nil, errors.Errorf("unsupported database type %q", c.Type)
	}
}
