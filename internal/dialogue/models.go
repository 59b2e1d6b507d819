package dialogue

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"type:varchar(190);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(16);not null;default:student" json:"role"`
	DisplayName  string    `gorm:"type:varchar(120);not null" json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

type Dialogue struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"index;not null" json:"-"`
	LessonID  *uint64   `gorm:"index" json:"lesson_id,omitempty"`
	LevelCode string    `gorm:"type:varchar(2);not null" json:"level"`
	TopicSlug string    `gorm:"type:varchar(120)" json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}

func (Dialogue) TableName() string { return "dialogues" }

type Message struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	DialogueID uint64    `gorm:"index;not null" json:"-"`
	Sender     string    `gorm:"type:varchar(16);not null" json:"sender"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	AudioURL   *string   `gorm:"type:varchar(255)" json:"audio_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Message) TableName() string { return "dialogue_messages" }
