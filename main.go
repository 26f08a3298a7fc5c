package main

import (
	"flag"
	"log"

	"newsd/internal/di"
	"newsd/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	debugMode := flag.Bool("debug", false, "duplicate application logs to stdout")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debugMode,
	}

	if _, err := di.InitApp(flags); err != nil {
		log.Fatalf("newsd: %s", err)
	}
}
