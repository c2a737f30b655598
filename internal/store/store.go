package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamenight-backend/internal/model"
	"gamenight-backend/internal/schedule"
	"gamenight-backend/internal/slot"
)

// Store defines the narrow read/write interface the rest of the service uses.
// Every call is its own unit of work; concurrent writers race at the
// granularity of a single (name, day, slot) upsert and the last commit wins.
type Store interface {
	RegisterUser(ctx context.Context, name string) error
	SetAvailability(ctx context.Context, name, day, slotLabel string, available bool) error
	UserGrid(ctx context.Context, name string) (map[schedule.Key]bool, error)
	GroupCounts(ctx context.Context, days []string) (map[schedule.Key]int, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// RegisterUser inserts the name into the user registry if absent. Registering
// an existing name is a no-op, never an error.
func (s *gormStore) RegisterUser(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty user name", schedule.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&model.User{Name: name}).Error
	if err != nil {
		return fmt.Errorf("failed to register user %q: %w", name, err)
	}
	return nil
}

// SetAvailability upserts the single (name, day, slot) cell. The write is
// atomic: either the full composite key gets the new value or nothing changes.
func (s *gormStore) SetAvailability(ctx context.Context, name, day, slotLabel string, available bool) error {
	if name == "" {
		return fmt.Errorf("%w: empty user name", schedule.ErrInvalidInput)
	}
	if !slot.Valid(slotLabel) {
		return fmt.Errorf("%w: unknown slot %q", schedule.ErrInvalidInput, slotLabel)
	}
	if err := schedule.ParseDay(day); err != nil {
		return err
	}

	record := model.Availability{
		Name:      name,
		Day:       day,
		Slot:      slotLabel,
		Available: available,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "day"}, {Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"available", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert availability for %q: %w", name, err)
	}
	return nil
}

// UserGrid returns the user's existing records as a sparse map. Absent cells
// default to false at the consumer layer; see schedule.BuildGrid.
func (s *gormStore) UserGrid(ctx context.Context, name string) (map[schedule.Key]bool, error) {
	var records []model.Availability
	err := s.db.WithContext(ctx).
		Where("name = ?", name).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for %q: %w", name, err)
	}

	grid := make(map[schedule.Key]bool, len(records))
	for _, r := range records {
		grid[schedule.Key{Day: r.Day, Slot: r.Slot}] = r.Available
	}
	return grid, nil
}

// countRow is the scan target for the group aggregation query.
type countRow struct {
	Day            string
	Slot           string
	AvailableCount int
}

// GroupCounts counts, per (day, slot) within the given day set, how many
// users are currently marked available. Keys with no true records are
// omitted; consumers default-fill to 0.
func (s *gormStore) GroupCounts(ctx context.Context, days []string) (map[schedule.Key]int, error) {
	counts := make(map[schedule.Key]int)
	if len(days) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := s.db.WithContext(ctx).
		Model(&model.Availability{}).
		Select("day, slot, COUNT(*) AS available_count").
		Where("available = ?", true).
		Where("day IN ?", days).
		Group("day").Group("slot").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate group availability: %w", err)
	}

	for _, row := range rows {
		counts[schedule.Key{Day: row.Day, Slot: row.Slot}] = row.AvailableCount
	}
	return counts, nil
}
