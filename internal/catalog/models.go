package catalog

import "time"

type Level struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement"`
	Code  string `gorm:"type:varchar(2);uniqueIndex;not null"`
	Title string `gorm:"type:varchar(50);not null"`
}

func (Level) TableName() string { return "levels" }

type Topic struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	LevelID   uint64 `gorm:"index;not null"`
	Slug      string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Title     string `gorm:"type:varchar(160);not null"`
	Position  uint   `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Topic) TableName() string { return "topics" }

type GrammarTopic struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	LevelID   uint64 `gorm:"index;not null"`
	Slug      string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Title     string `gorm:"type:varchar(180);not null"`
	Position  uint   `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GrammarTopic) TableName() string { return "grammar_topics" }

type Lesson struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	TopicID      uint64  `gorm:"index;not null"`
	Title        string  `gorm:"type:varchar(180);not null"`
	SpeakingGoal string  `gorm:"type:varchar(255);not null"`
	GrammarFocus *string `gorm:"type:varchar(255)"`
	Position     uint    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Lesson) TableName() string { return "lessons" }
