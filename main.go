package main

import (
	"log"

	"github.com/cardb/mcp-server/server"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
