package event

import (
	"context"
	"time"

	"rwrd/core"

	"github.com/fox-one/pkg/store/db"
)

type eventStore struct {
	db *db.DB
}

// New new event store
func New(db *db.DB) core.IEventStore {
	return &eventStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Event{})
		if err := tx.AutoMigrate(core.Event{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *eventStore) Create(ctx context.Context, tx *db.DB, event *core.Event) error {
	return tx.Update().Create(event).Error
}

func (s *eventStore) List(ctx context.Context, fromID int64, limit int) ([]*core.Event, error) {
	var events []*core.Event
	if err := s.db.View().Where("id > ?", fromID).Limit(limit).Order("id").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (s *eventStore) DeleteBefore(ctx context.Context, t time.Time) error {
	return s.db.Update().Where("created_at < ?", t).Delete(core.Event{}).Error
}
