package main

import (
	"log"

	"Petrel/Config"
	"Petrel/FiberConfig"
	"Petrel/Models"
)

func main() {
	cfg := Config.Load()

	db, err := Models.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	FiberConfig.FiberConfig(cfg, db)
}
