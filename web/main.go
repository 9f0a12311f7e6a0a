package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-recursive-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Recursive Raytracer Web Server")
	log.Printf("Stream renders from ws://localhost:%d/api/render?scene=sphere", *port)

	err := webServer.Start()
	webServer.Close()
	if err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
