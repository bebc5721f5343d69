// Command healthcheck probes the local hellosvc instance and exits
// non-zero when it is unhealthy. It backs the container HEALTHCHECK
// instruction without pulling curl into the runtime image.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rbarriuso/hellosvc/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/health", cfg.HTTPPort))
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
