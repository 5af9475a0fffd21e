package schedule

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/trainlog/internal/blob"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
)

// Cache is the local-first store of generated schedule days. It owns the
// persisted representation exclusively: every mutation writes the whole
// collection back through the blob storage, which replaces it atomically.
//
// Cache is not safe for concurrent use by multiple goroutines; all mutations
// are expected to come from a single call site per process.
type Cache struct {
	store  blob.Storage
	days   []models.ScheduleDay
	loaded bool
}

func NewCache(store blob.Storage) *Cache {
	return &Cache{store: store}
}

// Load returns the persisted schedule, or an empty slice when none has ever
// been generated. A missing cache is not an error.
func (c *Cache) Load() ([]models.ScheduleDay, error) {
	if c.loaded {
		return c.days, nil
	}

	data, err := c.store.Load(constants.BlobKeySchedule)
	if err != nil {
		return nil, err
	}
	if data == nil {
		c.days = []models.ScheduleDay{}
		c.loaded = true
		return c.days, nil
	}

	var days []models.ScheduleDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("failed to parse schedule cache: %w", err)
	}
	c.days = days
	c.loaded = true
	return c.days, nil
}

// Replace overwrites the whole schedule, used when a new plan is generated.
func (c *Cache) Replace(days []models.ScheduleDay) error {
	if days == nil {
		days = []models.ScheduleDay{}
	}
	c.days = days
	c.loaded = true
	return c.persist()
}

// Complete marks the day matching date as done. Completion is one-way; a
// day that is already done stays done. Unknown dates are a no-op.
func (c *Cache) Complete(date string) error {
	if _, err := c.Load(); err != nil {
		return err
	}
	for i := range c.days {
		if c.days[i].Date == date {
			if c.days[i].Done {
				return nil
			}
			c.days[i].Done = true
			return c.persist()
		}
	}
	logger.Debug("complete: no schedule day for date", "date", date)
	return nil
}

// Toggle flips the done flag of the day matching date. It exists as an
// explicitly named alternative to the one-way Complete. Unknown dates are a
// no-op.
func (c *Cache) Toggle(date string) error {
	if _, err := c.Load(); err != nil {
		return err
	}
	for i := range c.days {
		if c.days[i].Date == date {
			c.days[i].Done = !c.days[i].Done
			return c.persist()
		}
	}
	logger.Debug("toggle: no schedule day for date", "date", date)
	return nil
}

// Remove deletes the day matching date. Removing an unknown date is an
// idempotent no-op.
func (c *Cache) Remove(date string) error {
	if _, err := c.Load(); err != nil {
		return err
	}
	for i := range c.days {
		if c.days[i].Date == date {
			c.days = append(c.days[:i], c.days[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// Clear empties the schedule entirely. Irreversible; callers must obtain an
// explicit confirmation before invoking it.
func (c *Cache) Clear() error {
	c.days = []models.ScheduleDay{}
	c.loaded = true
	return c.store.Delete(constants.BlobKeySchedule)
}

func (c *Cache) persist() error {
	data, err := json.MarshalIndent(c.days, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize schedule: %w", err)
	}
	return c.store.Save(constants.BlobKeySchedule, data)
}
