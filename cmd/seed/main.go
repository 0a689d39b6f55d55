package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"myvoice/internal/model"
	"myvoice/internal/repository"
	"myvoice/internal/survey"
)

// Free-text samples attached to "Other" answers.
var customTexts = []string{
	"Depends heavily on the project I'm staffed on",
	"Mixed feelings, it changes too often to judge",
	"I'd want more clarity from my direct manager first",
	"Hard to say, my role shifted twice this year",
	"Somewhere between the listed options",
}

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "employee_survey"
	}

	count := 25
	if v := os.Getenv("SEED_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	store := repository.NewResponseStore(client.Database(dbName))
	questions := survey.Catalog()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	for i := 0; i < count; i++ {
		resp := &model.SurveyResponse{
			SessionID: model.NewSessionID(),
			// Spread submissions across the last two weeks so the daily
			// trend has something to show.
			Timestamp:     now.AddDate(0, 0, -rng.Intn(14)).Add(-time.Duration(rng.Intn(10)) * time.Hour),
			Answers:       make(map[string]string, len(questions.Questions)),
			SurveyVersion: questions.Version,
		}

		for _, q := range questions.Questions {
			code := pickCode(rng)
			resp.Answers[q.ID] = code
			if code == model.ChoiceOther {
				if resp.CustomAnswers == nil {
					resp.CustomAnswers = make(map[string]string)
				}
				resp.CustomAnswers[q.ID] = customTexts[rng.Intn(len(customTexts))]
			}
		}

		if err := store.Insert(ctx, resp); err != nil {
			log.Fatalf("Failed to insert response %d: %v", i+1, err)
		}
	}

	fmt.Printf("Successfully seeded %d survey responses into '%s'\n", count, dbName)
}

// pickCode returns a weighted answer code, skewed positive the way real
// datasets tend to look.
func pickCode(rng *rand.Rand) string {
	n := rng.Intn(100)
	switch {
	case n < 35:
		return model.ChoiceA
	case n < 65:
		return model.ChoiceB
	case n < 85:
		return model.ChoiceC
	case n < 95:
		return model.ChoiceD
	default:
		return model.ChoiceOther
	}
}
