package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ink-press/internal/model"
	"ink-press/pkg/config"
	"ink-press/pkg/database"
	"ink-press/pkg/logger"

	"gorm.io/gorm"
)

const (
	categoryCount    = 10
	postsPerCategory = 10
)

var loremWords = strings.Fields(
	"lorem ipsum dolor sit amet consectetuer adipiscing elit aenean commodo " +
		"ligula eget dolor aenean massa cum sociis natoque penatibus et magnis " +
		"dis parturient montes nascetur ridiculus mus donec quam felis ultricies " +
		"nec pellentesque eu pretium quis sem nulla consequat massa quis enim",
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	now := time.Now()

	for i := 0; i < categoryCount; i++ {
		category := model.CategoryModel{
			Name:     fmt.Sprintf("Category %d", i+1),
			IsActive: true,
		}
		if err := db.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}

		for j := 0; j < postsPerCategory; j++ {
			post := model.PostModel{
				Name:    fmt.Sprintf("Post %d in %s", j+1, category.Name),
				Content: fakeText(500),
				// Spread across the last and the next year so listings see a
				// mix of published and scheduled posts.
				PublishedAt: now.Add(time.Duration(rand.Intn(2*365*24)-365*24) * time.Hour),
				Categories:  []model.CategoryModel{category},
			}
			if err := db.Create(&post).Error; err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}
		}

		log.Info("Seeded %s with %d posts", category.Name, postsPerCategory)
	}

	return nil
}

func fakeText(maxLen int) string {
	var b strings.Builder
	for {
		word := loremWords[rand.Intn(len(loremWords))]
		if b.Len()+len(word)+1 > maxLen {
			return b.String()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
}
