// file: database/connect.go
package database

import (
	"os"
	"time"

	"codefest/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:123456@tcp(localhost:3306)/codefest?charset=utf8mb4&parseTime=True&loc=Local"
	}
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// MySQL closes idle connections after wait_timeout; recycle ours first.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("Database connection established and connection pool configured")
}

func MigrateTables() {
	err := DB.AutoMigrate(
		&models.Admin{},
		&models.Contest{},
		&models.Student{},
		&models.ContestSetting{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Info("Database migration completed")
}

// SeedDefaultAdmin creates the bootstrap admin account when no admin exists yet.
func SeedDefaultAdmin() {
	var count int64
	DB.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}
	admin := models.Admin{Username: "admin", Password: "password"}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create default admin: %v", err)
	}
	log.Warn("Default admin created (admin/password) - change the password")
}
