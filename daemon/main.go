package main

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

var apps = map[string]bool{
	"vote":  true,
	"jokes": true,
	"items": true,
}

// Watchdog wrapper, keeps the target app running.
// Usage: webappsd <vote|jokes|items> [args...]
func main() {
	if len(os.Args) < 2 || !apps[os.Args[1]] {
		log.Fatal("Daemon: App name must be one of vote, jokes, items")
	}

	self, err := filepath.Abs(os.Args[0])
	if err != nil {
		log.Fatalf("Daemon: Failed to get path, error: %v", err)
	}
	// webappsd sits next to webapps, keeping any build suffix
	target := filepath.Join(filepath.Dir(self),
		strings.ReplaceAll(filepath.Base(self), "webappsd", "webapps"))
	args := append([]string{"run"}, os.Args[1:]...)

	for {
		cmd := exec.Command(target, args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
		if err = cmd.Run(); err != nil {
			log.Printf("Daemon: Program return error: %v", err)
		}
		log.Println("Daemon: Program exits, restarting...")
		time.Sleep(time.Second)
	}
}
