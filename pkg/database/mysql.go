package database

import (
	"fmt"
	"log"

	"play_learn_spark_backend/internal/config"
	"play_learn_spark_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Learner{},
		&model.ContentItem{},
		&model.ActivityRecord{},
		&model.RewardGrant{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCatalog(db)

	return db, nil
}

// seedCatalog gives a fresh install something to recommend.
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.ContentItem{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.ContentItem{
		{
			Title:       "Counting Safari",
			Description: "Count the animals hiding in the savanna.",
			Type:        model.ContentGame,
			Category:    "Math",
			Tags:        []string{"animals", "numbers", "counting"},
			Skills:      []string{"Counting"},
			Difficulty:  "easy",
			AgeRange:    "3-5",
			Duration:    10,
			Points:      10,
		},
		{
			Title:       "Addition Adventure",
			Description: "Help the explorer add up treasure along the trail.",
			Type:        model.ContentActivity,
			Category:    "Math",
			Tags:        []string{"numbers", "addition"},
			Skills:      []string{"Addition"},
			Difficulty:  "medium",
			AgeRange:    "5-7",
			Duration:    15,
			Points:      15,
		},
		{
			Title:       "The Sleepy Letter Aleph",
			Description: "A bedtime story introducing the first Arabic letter.",
			Type:        model.ContentStory,
			Category:    "Arabic",
			Tags:        []string{"letters", "arabic", "reading"},
			Skills:      []string{"Arabic Letters"},
			Difficulty:  "easy",
			AgeRange:    "4-6",
			Duration:    8,
			Points:      10,
		},
		{
			Title:       "Shapes All Around",
			Description: "A sing-along video hunting shapes around the house.",
			Type:        model.ContentVideo,
			Category:    "Math",
			Tags:        []string{"shapes", "geometry"},
			Skills:      []string{"Shapes"},
			Difficulty:  "easy",
			AgeRange:    "3+",
			Duration:    6,
			Points:      5,
		},
		{
			Title:       "My First Habitats",
			Description: "A lesson on where animals live.",
			Type:        model.ContentLesson,
			Category:    "Science",
			Tags:        []string{"animals", "nature"},
			Skills:      []string{"Observation"},
			Difficulty:  "medium",
			AgeRange:    "5-8",
			Duration:    20,
			Points:      15,
		},
	}
	for i := range defaults {
		db.Create(&defaults[i])
	}
}
