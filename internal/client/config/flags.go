package config

import (
	"flag"
	"os"
	"time"

	"github.com/LabsDAO/data-gamify-network/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   path of the local state database (default from Config)
//	-d string   PostgreSQL DSN of the uploads backend
//	-t string   marketplace auth token (JWT)
//	-p string   object key prefix for uploads
//	-i int      probe step timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-t", "-p", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "path of the local state database")
	fs.StringVar(&cfg.UploadsDSN, "d", cfg.UploadsDSN, "PostgreSQL DSN of the uploads backend")
	fs.StringVar(&cfg.AuthToken, "t", cfg.AuthToken, "marketplace auth token")
	fs.StringVar(&cfg.UploadPath, "p", cfg.UploadPath, "object key prefix for uploads")
	probeStepTimeout := fs.Int("i", int(cfg.ProbeStepTimeout.Seconds()), "probe step timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ProbeStepTimeout = time.Duration(*probeStepTimeout) * time.Second
}
