package file

import (
	"fmt"
	"sync"

	"daycraft/internal/task/repository"
	"daycraft/pkg/log"
)

const DefaultPath = "daycraft-tasks.json"

type implRepository struct {
	mu   sync.Mutex
	path string
	l    log.Logger
}

// New creates a repository keeping the whole collection in one JSON file.
// An empty path uses DefaultPath.
func New(path string, l log.Logger) repository.Repository {
	if path == "" {
		path = DefaultPath
	}
	return &implRepository{path: path, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/file.%s", method)
}
