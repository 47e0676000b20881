package testutils

import (
	"tasknest/tasknest/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the real schema,
// for tests that exercise actual query behavior.
func SetupTestDB() (*database.Database, func()) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	if err := database.RunMigrations(db); err != nil {
		panic(err)
	}

	testDB := &database.Database{DB: db}

	close := func() {
		testDB.Close()
	}

	return testDB, close
}
