package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	serveAddr   string
	serveList   string
	serveEvents string
)

// serveCmd exposes the watch output files over local HTTP so live tooling
// can poll the current algorithm list without touching the filesystem.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve watch output (algorithms.json, events.json) over local HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveList == "" {
			return fmt.Errorf("--list is required (path to algorithms.json)")
		}
		// Validate the list file exists and is valid JSON once on startup
		// for faster feedback.
		f, err := os.Open(serveList)
		if err != nil {
			return fmt.Errorf("open --list: %w", err)
		}
		defer f.Close()
		var tmp interface{}
		if err := json.NewDecoder(f).Decode(&tmp); err != nil {
			return fmt.Errorf("invalid list JSON: %w", err)
		}
		if serveEvents == "" {
			serveEvents = filepath.Join(filepath.Dir(serveList), "events.json")
		}

		mux := http.NewServeMux()
		mux.HandleFunc("/algorithms.json", func(w http.ResponseWriter, r *http.Request) {
			serveJSONFile(w, serveList)
		})
		mux.HandleFunc("/events.json", func(w http.ResponseWriter, r *http.Request) {
			serveJSONFile(w, serveEvents)
		})

		log.Printf("listening on http://localhost%s (list: %s, events: %s)\n", serveAddr, serveList, serveEvents)
		return http.ListenAndServe(serveAddr, mux)
	},
}

// serveJSONFile streams the file from disk for each request to allow live
// reload after rescans.
func serveJSONFile(w http.ResponseWriter, path string) {
	f, err := os.Open(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	io.Copy(w, f)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on (e.g. :8080)")
	serveCmd.Flags().StringVar(&serveList, "list", "", "path to algorithms.json to serve at /algorithms.json")
	serveCmd.Flags().StringVar(&serveEvents, "events", "", "path to events.json to serve at /events.json")
}
