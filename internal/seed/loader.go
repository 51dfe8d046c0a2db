package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/slatrack/internal/domain"
	"github.com/MrSnakeDoc/slatrack/internal/logger"
	"github.com/MrSnakeDoc/slatrack/internal/registry"
)

// Entry is one service definition in the seed file.
type Entry struct {
	Name        string `yaml:"name"`
	Status      string `yaml:"status"`
	Description string `yaml:"description,omitempty"`
}

// Loader reads a YAML seed file listing services to register at startup.
//
// Seeding is one-shot and additive: entries whose name already exists are
// skipped, so the file never clobbers history accumulated through the API.
type Loader struct {
	filePath string
}

// NewLoader creates a seed loader for the given file.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file.
func (l *Loader) Load() ([]Entry, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return entries, nil
}

// Apply registers the loaded entries through the registry. Duplicate names
// and invalid entries are skipped with a log line; other errors abort.
// Returns the number of services actually created.
func (l *Loader) Apply(ctx context.Context, reg *registry.Registry, log logger.Logger) (int, error) {
	entries, err := l.Load()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, e := range entries {
		if e.Name == "" {
			log.Warn("skipping seed entry without a name")
			continue
		}

		_, err := reg.Create(ctx, e.Name, e.Status, e.Description)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicateName):
			log.Debug("seed entry already registered, skipping",
				logger.String("name", e.Name))
		case errors.Is(err, domain.ErrInvalidStatus):
			log.Warn("skipping seed entry with invalid status",
				logger.String("name", e.Name),
				logger.String("status", e.Status))
		default:
			return created, fmt.Errorf("failed to seed service %q: %w", e.Name, err)
		}
	}

	log.Info("seed file applied",
		logger.String("file", l.filePath),
		logger.Int("entries", len(entries)),
		logger.Int("created", created))

	return created, nil
}
