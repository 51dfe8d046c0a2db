package deps

import (
	"time"

	"github.com/MrSnakeDoc/slatrack/internal/logger"
	"github.com/MrSnakeDoc/slatrack/internal/registry"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time   // for testing, defaults to time.Now
	Registry  *registry.Registry // service registry (create/get/list/update/sla)
	Store     registry.Store     // backing store, pinged by readyz
}
