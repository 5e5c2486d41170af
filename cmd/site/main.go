package main

import (
	"log"

	"github.com/vivancedata/site/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ site failed to start: %v", err)
	}
}
