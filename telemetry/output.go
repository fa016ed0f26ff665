package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/snake/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir      string
	sessions csvFile
	summary  csvFile
	perf     csvFile
	bookmark csvFile
}

// csvFile tracks whether the header row has been written.
type csvFile struct {
	name          string
	f             *os.File
	headerWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{
		dir:      dir,
		sessions: csvFile{name: "sessions.csv"},
		summary:  csvFile{name: "summary.csv"},
		perf:     csvFile{name: "perf.csv"},
		bookmark: csvFile{name: "bookmarks.csv"},
	}
	for _, cf := range om.files() {
		f, err := os.Create(filepath.Join(dir, cf.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", cf.name, err)
		}
		cf.f = f
	}
	return om, nil
}

func (om *OutputManager) files() []*csvFile {
	return []*csvFile{&om.sessions, &om.summary, &om.perf, &om.bookmark}
}

// writeRecords appends records, including the header on first write.
func writeRecords[T any](cf *csvFile, records []T) error {
	if !cf.headerWritten {
		if err := gocsv.Marshal(records, cf.f); err != nil {
			return fmt.Errorf("writing %s: %w", cf.name, err)
		}
		cf.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, cf.f); err != nil {
		return fmt.Errorf("writing %s: %w", cf.name, err)
	}
	return nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSession writes a finished session to sessions.csv.
func (om *OutputManager) WriteSession(r SessionRecord) error {
	if om == nil {
		return nil
	}
	return writeRecords(&om.sessions, []SessionRecord{r})
}

// WriteSummary writes a window summary to summary.csv.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}
	return writeRecords(&om.summary, []Summary{s})
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd uint64) error {
	if om == nil {
		return nil
	}
	return writeRecords(&om.perf, []PerfStatsCSV{stats.ToCSV(windowEnd)})
}

// WriteBookmark writes a bookmark record to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	return writeRecords(&om.bookmark, []Bookmark{b})
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, cf := range om.files() {
		if cf.f == nil {
			continue
		}
		if err := cf.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		cf.f = nil
	}
	return firstErr
}
