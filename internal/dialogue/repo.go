package dialogue

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/levelspeak/ai-teacher/internal/ai"
)

const (
	historyCap   = 40
	fallbackUser = 1
)

type Repo struct {
	db        *gorm.DB
	demoEmail string
	demoName  string
}

func NewRepo(db *gorm.DB, demoEmail, demoName string) *Repo {
	if demoEmail == "" {
		demoEmail = "demo@ai-teacher.local"
	}
	if demoName == "" {
		demoName = "Demo User"
	}
	return &Repo{db: db, demoEmail: demoEmail, demoName: demoName}
}

// ResolveUserID returns the requested id when it exists, otherwise the
// well-known demo account (provisioned on first use). It never surfaces an
// error: identity resolution must not fail a turn.
func (r *Repo) ResolveUserID(ctx context.Context, requested uint64) uint64 {
	if requested > 0 {
		var u User
		if err := r.db.WithContext(ctx).Select("id").First(&u, requested).Error; err == nil {
			return u.ID
		}
	}
	return r.ensureDemoUser(ctx)
}

func (r *Repo) ensureDemoUser(ctx context.Context) uint64 {
	var existing User
	err := r.db.WithContext(ctx).Select("id").Where("email = ?", r.demoEmail).First(&existing).Error
	if err == nil {
		return existing.ID
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("demo user lookup failed: %v", err)
		return fallbackUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return fallbackUser
	}
	u := User{
		Email:        r.demoEmail,
		PasswordHash: string(hash),
		Role:         "student",
		DisplayName:  r.demoName,
	}
	// Insert-ignore keyed by the unique email; a concurrent insert wins and
	// the re-select below picks it up.
	_ = r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&u).Error

	if err := r.db.WithContext(ctx).Select("id").Where("email = ?", r.demoEmail).First(&existing).Error; err != nil {
		return fallbackUser
	}
	return existing.ID
}

func (r *Repo) DialogueBelongsToUser(ctx context.Context, dialogueID, userID uint64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&Dialogue{}).
		Where("id = ? AND user_id = ?", dialogueID, userID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *Repo) CreateDialogue(ctx context.Context, userID uint64, level, topic string) (uint64, error) {
	d := Dialogue{UserID: userID, LevelCode: level, TopicSlug: topic}
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return 0, err
	}
	return d.ID, nil
}

func (r *Repo) AddMessage(ctx context.Context, dialogueID uint64, sender, text string, audioURL *string) error {
	m := Message{
		DialogueID: dialogueID,
		Sender:     sender,
		Text:       text,
		AudioURL:   audioURL,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// RecentMessages returns up to limit messages in chronological order, mapped
// to provider roles. The limit is clamped to [1,40]; the query fetches
// newest-first and the slice is reversed.
func (r *Repo) RecentMessages(ctx context.Context, dialogueID uint64, limit int) ([]ai.Message, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > historyCap {
		limit = historyCap
	}

	var rows []Message
	err := r.db.WithContext(ctx).
		Where("dialogue_id = ?", dialogueID).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]ai.Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		role := SenderAssistant
		if rows[i].Sender == SenderUser {
			role = SenderUser
		}
		msgs = append(msgs, ai.Message{Role: role, Content: rows[i].Text})
	}
	return msgs, nil
}
