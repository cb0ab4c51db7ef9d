package gpu

import (
	"log/slog"

	"github.com/gogpu/sdfray"
)

// logger returns the module-wide logger configured via sdfray.SetLogger.
func logger() *slog.Logger { return sdfray.Logger() }
