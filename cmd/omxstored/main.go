package main

import (
	"log"
	"os"
	"strings"

	"github.com/NVIDIA/omx-store/pkg/api"
)

func main() {
	// Store resource files come from the command line, or from the
	// OMX_STORE_CONFIG environment variable (comma-separated) when run
	// under a service manager.
	paths := os.Args[1:]
	if len(paths) == 0 {
		if env := os.Getenv("OMX_STORE_CONFIG"); env != "" {
			paths = strings.Split(env, ",")
		}
	}

	// Port 0 defers to the PORT environment variable or the default.
	if err := api.Serve(0, paths...); err != nil {
		log.Fatal(err)
	}
}
