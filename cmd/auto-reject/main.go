// Command auto-reject sweeps stale pending work arrangement requests and
// rejects them through the same transition primitive the API uses. Meant to
// run from cron.
package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"work-arrangement-api/config"
	"work-arrangement-api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	config.InitDB()

	olderThanDays := 0
	if raw := os.Getenv("AUTO_REJECT_AFTER_DAYS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.Fatalf("invalid AUTO_REJECT_AFTER_DAYS %q", raw)
		}
		olderThanDays = parsed
	}

	count, err := services.NewRequestService(config.DB).AutoRejectExpired(olderThanDays)
	if err != nil {
		log.Fatalf("auto-reject sweep failed: %v", err)
	}

	log.Printf("auto-reject sweep finished: %d request(s) rejected", count)
}
