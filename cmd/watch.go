package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/AdamWu1979/mrtrix3/internal/algorithm"
)

var (
	watchList   string // file to write the algorithm list json
	watchEvents string // file to write events json (changed files + current list)
)

// watchCmd watches a script's algorithm directory and rewrites the list on
// changes, so editor/dashboard tooling can follow along.
var watchCmd = &cobra.Command{
	Use:   "watch <script>",
	Short: "Watch a script's algorithm directory and re-emit the list on changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchList == "" {
			return fmt.Errorf("--list is required (output algorithms.json path)")
		}
		script, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if watchEvents == "" {
			watchEvents = filepath.Join(filepath.Dir(watchList), "events.json")
		}

		// initial build (write full list)
		if err := rebuildList(script, watchList, watchEvents, nil); err != nil {
			return err
		}

		// watcher setup: the convention directory is flat, one Add is enough
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		if err := watcher.Add(algorithm.Dir(script)); err != nil {
			return err
		}

		// debounce changes
		var mu sync.Mutex
		pending := map[string]struct{}{}
		var timer *time.Timer
		flush := func() {
			mu.Lock()
			files := make([]string, 0, len(pending))
			for f := range pending {
				files = append(files, f)
			}
			pending = map[string]struct{}{}
			mu.Unlock()
			if err := rebuildList(script, watchList, watchEvents, files); err != nil {
				fmt.Fprintln(os.Stderr, "rebuild error:", err)
			}
		}

		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// only care about script files
				if !strings.HasSuffix(ev.Name, ".py") {
					continue
				}
				mu.Lock()
				pending[filepath.Clean(ev.Name)] = struct{}{}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(300*time.Millisecond, flush)
				mu.Unlock()
			case err := <-watcher.Errors:
				fmt.Fprintln(os.Stderr, "watch error:", err)
			}
		}
	},
}

// rebuildList re-lists the algorithms and rewrites both output files. The
// events file is written even when listing fails so consumers see the
// change notification either way.
func rebuildList(script, outList, outEvents string, changed []string) error {
	algos, err := algorithm.List(script)
	if err != nil {
		fmt.Fprintln(os.Stderr, "list error:", err)
	}
	if algos != nil {
		payload := struct {
			Script     string   `json:"script"`
			Algorithms []string `json:"algorithms"`
		}{Script: filepath.Base(script), Algorithms: algos}
		if err := writeJSONFile(outList, payload); err != nil {
			fmt.Fprintln(os.Stderr, "write list:", err)
		}
	}
	evt := struct {
		Timestamp  int64    `json:"ts"`
		Changed    []string `json:"changed"`
		Algorithms []string `json:"algorithms"`
	}{Timestamp: time.Now().UnixMilli(), Changed: changed, Algorithms: algos}
	return writeJSONFile(outEvents, evt)
}

func writeJSONFile(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchList, "list", "", "output algorithms.json path")
	watchCmd.Flags().StringVar(&watchEvents, "events", "", "output events.json path (default: sibling of --list)")
}
