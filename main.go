package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"principal-passwd/internal/app"
	"principal-passwd/internal/app/config"
)

var ProgramVersion = "dev"

const (
	ProgramName = "principal-passwd"
)

func main() {
	configFileFlag := flag.String("config", "", "Path to configuration YAML (optional)")
	outputFlag := flag.String("output", "", "File for the principal fragment (STDOUT by default)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s v.%s\n", ProgramName, ProgramVersion)
		return
	}

	var cfg *config.ProgramConfig
	var err error
	if *configFileFlag != "" {
		cfg, err = config.LoadConfig(*configFileFlag)
		if err != nil {
			panic(fmt.Errorf("cannot load --config=%s: %v", *configFileFlag, err))
		}
	} else {
		cfg, err = config.DefaultConfig()
		if err != nil {
			panic(err)
		}
	}

	cfg.PrintHello(ProgramName, ProgramVersion)

	tool, err := app.BuildPrincipalTool(cfg)
	if err != nil {
		panic(fmt.Errorf("cannot build principal tool: %v", err))
	}

	// nil destination keeps stdout plus the banner
	var dest io.Writer
	if *outputFlag != "" {
		f, err := os.Create(*outputFlag)
		if err != nil {
			log.Fatalf("cannot open --output=%s: %v", *outputFlag, err)
		}
		defer func() {
			_ = f.Close()
		}()
		dest = f
	}

	if err := tool.Run(dest); err != nil {
		log.Fatalf("%v", err)
	}
}
