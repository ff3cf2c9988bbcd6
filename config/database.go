package config

import (
	"fmt"
	"time"

	"hostel/models"
	"hostel/services/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func postgresDSN(p *PostgresConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		p.Host, p.User, p.Password, p.Name, p.Port, p.SSLMode)
}

// sqliteDSN bật foreign key, mặc định SQLite không kiểm tra
func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

func dialector(cfg *Config) gorm.Dialector {
	if cfg.DBDriver == "postgres" {
		return postgres.Open(postgresDSN(cfg.Postgres))
	}
	return sqlite.Open(sqliteDSN(cfg.SQLitePath))
}

// ConnectDB mở kết nối theo cấu hình và tạo bảng nếu chưa có
func ConnectDB(cfg *Config, log logger.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.LogLevel == "debug" {
		level = gormlogger.Info
	}

	db, err := OpenDB(dialector(cfg), level)
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// SQLite chỉ cho một writer, tránh SQLITE_BUSY giữa các connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("Successfully connected to db (%s)", cfg.DBDriver)
	return db, nil
}

// OpenDB mở gorm với TranslateError để lỗi unique trả về gorm.ErrDuplicatedKey
func OpenDB(d gorm.Dialector, level gormlogger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(d, &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         gormlogger.Default.LogMode(level),
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
