package main

import (
	"flag"
	"log"

	"github.com/scatterlab/go-wavefront-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the web server")
	flag.Parse()

	srv := server.NewServer(*port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
