// Package testutil holds the shared database fixtures of the package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/database"
	"github.com/lshigami/certprep/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory database with every table migrated.
// A single connection keeps the in-memory schema alive and serializes writers.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// SeedCatalog creates one category per exam area holding quota+extra questions.
// Each question has four choices and a correct answer of index 1.
func SeedCatalog(t *testing.T, db *gorm.DB, exam config.ExamConfig, extra int) map[string][]model.Question {
	t.Helper()

	seeded := make(map[string][]model.Question, len(exam.Areas))
	for _, quota := range exam.Areas {
		category := model.Category{Name: quota.Area + " Fundamentals", ExamArea: quota.Area}
		require.NoError(t, db.Create(&category).Error)

		for i := 0; i < quota.Count+extra; i++ {
			q := SeedQuestion(t, db, category.ID, fmt.Sprintf("%s topic %d", quota.Area, i%3))
			seeded[quota.Area] = append(seeded[quota.Area], *q)
		}
	}
	return seeded
}

// SeedQuestion creates a four-choice question whose correct answer is index 1.
func SeedQuestion(t *testing.T, db *gorm.DB, categoryID uint, topic string) *model.Question {
	t.Helper()

	q := model.Question{
		CategoryID:    categoryID,
		Content:       "Which option is correct for " + topic + "?",
		Choices:       []string{"A", "B", "C", "D"},
		CorrectAnswer: 1,
		Explanation:   "B is correct.",
		Topic:         topic,
		Difficulty:    2,
	}
	require.NoError(t, db.Omit("Category").Create(&q).Error)
	return &q
}

// FixedClock returns the same instant until Advance is called.
type FixedClock struct {
	T time.Time
}

func NewFixedClock() *FixedClock {
	return &FixedClock{T: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *FixedClock) Now() time.Time { return c.T }

func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }
