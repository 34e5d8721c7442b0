package main

import (
	"log"

	"pharmacenter-api/cmd/bootstrap"
)

func main() {
	app, err := bootstrap.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		app.Log.Fatalf("Server error: %v", err)
	}
}
