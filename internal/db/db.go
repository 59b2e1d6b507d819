package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/levelspeak/ai-teacher/internal/catalog"
	"github.com/levelspeak/ai-teacher/internal/dialogue"
)

// Connect opens the MySQL connection or terminates the process; the service
// cannot run without its store.
func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	return gdb
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&dialogue.User{},
		&catalog.Level{},
		&catalog.Topic{},
		&catalog.GrammarTopic{},
		&catalog.Lesson{},
		&dialogue.Dialogue{},
		&dialogue.Message{},
	)
}
