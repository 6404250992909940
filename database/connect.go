// file: database/connect.go
package database

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

var DB *gorm.DB

func Connect(dsn string) {
	var err error
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey so services can map them to conflicts.
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// MySQL closes idle connections after wait_timeout; recycle ours first.
	sqlDB.SetConnMaxLifetime(time.Hour)
}

func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Challenge{},
		&models.Prize{},
		&models.Application{},
		&models.TeamMember{},
		&models.Submission{},
		&models.Feedback{},
		&models.Form{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
