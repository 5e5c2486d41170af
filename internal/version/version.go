package version

import (
	"runtime"
	"time"
)

var (
	Version   = "dev"                           // set with -ldflags "-X .../version.Version=v1.2.0"
	Commit    = "none"                          // ex: 9f1c2ab
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2026-10-18T09:12:00Z
	GoVersion = runtime.Version()
)
