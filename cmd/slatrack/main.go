package main

import (
	"log"

	"github.com/MrSnakeDoc/slatrack/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ slatrack failed to start: %v", err)
	}
}
