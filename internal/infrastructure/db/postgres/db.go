package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects through the given dialector and migrates the schema. Tests
// pass a sqlite dialector, the server passes postgres.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&ProductModel{}, &SaleModel{}, &UserModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

func OpenURL(dsn string) (*gorm.DB, error) {
	return Open(postgres.Open(dsn))
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
