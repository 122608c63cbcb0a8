package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// SupabaseDB is used for raw aggregate queries.
	SupabaseDB *pgxpool.Pool
	// SupabaseGorm backs the products and orders tables.
	SupabaseGorm *gorm.DB
)

// InitDB connects to the Supabase Postgres database when SUPABASE_DB_URL is set.
// Without it the store runs without order recording and the supabase catalog source.
func InitDB() bool {
	dsn := os.Getenv("SUPABASE_DB_URL")
	if dsn == "" {
		log.Println("⚠️ SUPABASE_DB_URL not set, order recording disabled")
		return false
	}

	initPgx(dsn)
	initGORM(dsn)
	return true
}

func initPgx(dsn string) {
	var err error
	SupabaseDB, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("❌ Unable to connect to Supabase database: %v", err)
	}

	ctx, cancel := WithTimeout()
	defer cancel()
	if err = SupabaseDB.Ping(ctx); err != nil {
		log.Fatalf("❌ Supabase database ping failed: %v", err)
	}

	log.Println("✅ Supabase database connected (pgx)")
}

func initGORM(dsn string) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	SupabaseGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to Supabase database with GORM: %v", err)
	}
	if sqlDB, err := SupabaseGorm.DB(); err == nil {
		// Supabase pooler limits are small on the free tier
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Supabase database connected (GORM)")
}

func CloseDB() {
	if SupabaseDB != nil {
		SupabaseDB.Close()
		log.Println("✅ Supabase database connection closed (pgx)")
	}
	if SupabaseGorm != nil {
		if sqlDB, _ := SupabaseGorm.DB(); sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Supabase database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout for database and upstream calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
