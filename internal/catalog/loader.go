package catalog

import (
	"bytes"
	_ "embed"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

//go:embed categories.json
var defaultCategories []byte

// Loader resolves the category dictionary exactly once and caches it for the
// process lifetime. An empty path means the dictionary bundled with the binary.
type Loader struct {
	path   string
	logger *logrus.Logger

	once       sync.Once
	dictionary Dictionary
}

// NewLoader creates a Loader for the given source path. A nil logger falls
// back to the logrus standard logger.
func NewLoader(path string, logger *logrus.Logger) *Loader {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Loader{path: path, logger: logger}
}

// Load returns the dictionary, reading it on the first call. Concurrent first
// calls share a single load. A missing or malformed source degrades to the
// fallback dictionary with a logged warning; Load never fails the caller.
func (l *Loader) Load() Dictionary {
	l.once.Do(func() {
		l.dictionary = l.resolve()
	})
	return l.dictionary
}

func (l *Loader) resolve() Dictionary {
	source := defaultCategories
	if l.path != "" {
		fileContents, err := os.ReadFile(l.path)
		if err != nil {
			l.logger.WithError(err).WithField("path", l.path).Warn("catalog.Loader.read failed, using fallback dictionary")
			return Fallback()
		}
		source = fileContents
	}

	dictionary, err := Parse(bytes.NewReader(source))
	if err != nil {
		l.logger.WithError(err).WithField("path", l.path).Warn("catalog.Loader.parse failed, using fallback dictionary")
		return Fallback()
	}

	l.logger.WithField("categories", len(dictionary)).Info("catalog.Loader.loaded")
	return dictionary
}
