package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	microformat "github.com/goliatone/go-microformat"
	"github.com/goliatone/go-microformat/pkg/loader"
)

func main() {
	docPath := flag.String("doc", "", "path to a microformat document (YAML or JSON)")
	rootType := flag.String("type", "", "override the document root type")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	path := strings.TrimSpace(*docPath)
	if path == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Path to microformat document:",
		}, &path, survey.WithValidator(survey.Required)); err != nil {
			log.Fatalf("Failed to read document path: %v", err)
		}
	}

	doc, err := loader.LoadFile(path)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}
	if *rootType != "" {
		doc.Type = *rootType
	}

	rendered, err := microformat.RenderDocument(doc)
	if err != nil {
		log.Fatalf("Failed to render document: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Fragment written to %s\n", *output)
	} else {
		fmt.Println(rendered)
	}
}
