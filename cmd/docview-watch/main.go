package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gen2brain/beeep"

	"github.com/docview/internal/parser"
)

var (
	watchDir = flag.String("watch-dir", "./watch", "Directory to watch for documents")
	notify   = flag.Bool("notify", false, "Raise a desktop notification when extraction fails")
)

func main() {
	flag.Parse()

	// Validate watch directory
	if _, err := os.Stat(*watchDir); os.IsNotExist(err) {
		log.Printf("Watch directory does not exist, creating: %s", *watchDir)
		if err := os.MkdirAll(*watchDir, 0755); err != nil {
			log.Fatalf("Failed to create watch directory: %v", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("Failed to create watcher: %v", err)
	}
	defer watcher.Close()

	if err := watcher.Add(*watchDir); err != nil {
		log.Fatalf("Failed to watch directory: %v", err)
	}

	log.Printf("Watching directory: %s", *watchDir)

	// Extract documents already in the directory
	processExistingFiles(*watchDir)

	// Watch for new files
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if parser.IsSupportedUpload(event.Name) && !parser.IsTemporaryFile(event.Name) {
					log.Printf("Detected document: %s", event.Name)
					processFile(event.Name)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func processExistingFiles(dir string) {
	log.Printf("Scanning existing documents in %s", dir)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && parser.IsSupportedUpload(path) && !parser.IsTemporaryFile(path) {
			processFile(path)
		}
		return nil
	})

	if err != nil {
		log.Printf("Error scanning directory: %v", err)
	}
}

func processFile(path string) {
	log.Printf("Extracting: %s", path)

	f, err := os.Open(path)
	if err != nil {
		log.Printf("Failed to open %s: %v", path, err)
		return
	}
	defer f.Close()

	text, err := parser.Extract(f)
	result := parser.ResultFrom(text, err)

	if result.Failed() {
		log.Printf("Failed to extract text from %s: %s", path, result.Err)
		if *notify {
			if err := beeep.Alert("docview", fmt.Sprintf("Extraction failed: %s", filepath.Base(path)), ""); err != nil {
				log.Printf("Failed to send notification: %v", err)
			}
		}
		return
	}

	// The extracted text goes to stdout, same as the web UI's display area
	fmt.Println(result.Text)
	log.Printf("Extracted %d characters from %s", len(result.Text), path)
}
