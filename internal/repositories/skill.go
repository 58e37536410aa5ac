package repositories

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talent-match/internal/models"
)

// upsertSkills inserts any skill names not yet present and returns the rows
// for all of them. Names are case-normalized to lowercase before insertion;
// ON CONFLICT DO NOTHING keeps the insert race-safe under concurrent batches.
func upsertSkills(tx *gorm.DB, names []string) ([]models.Skill, error) {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}
	if len(normalized) == 0 {
		return nil, nil
	}

	rows := make([]models.Skill, 0, len(normalized))
	for _, name := range normalized {
		rows = append(rows, models.Skill{ID: uuid.New(), Name: name})
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert skills: %w", err)
	}

	// Re-read to get the canonical IDs for names that already existed.
	var skills []models.Skill
	if err := tx.Where("name IN ?", normalized).Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	return skills, nil
}
