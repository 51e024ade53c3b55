package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/snek/config"
)

// csvStream appends records to one CSV file, writing the header once.
type csvStream struct {
	name          string
	file          *os.File
	headerWritten bool
}

func openStream(dir, name string) (*csvStream, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvStream{name: name, file: f}, nil
}

func writeRecords[T any](s *csvStream, records []T) error {
	if s == nil {
		return nil
	}
	var err error
	if !s.headerWritten {
		err = gocsv.Marshal(records, s.file)
		s.headerWritten = true
	} else {
		err = gocsv.MarshalWithoutHeaders(records, s.file)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.name, err)
	}
	return nil
}

func (s *csvStream) close() error {
	if s == nil {
		return nil
	}
	return s.file.Close()
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	telemetry *csvStream
	perf      *csvStream
	runs      *csvStream
	events    *csvStream // nil unless the event log is enabled
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string, eventLog bool) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	streams := []struct {
		dst  **csvStream
		name string
	}{
		{&om.telemetry, "telemetry.csv"},
		{&om.perf, "perf.csv"},
		{&om.runs, "runs.csv"},
	}
	if eventLog {
		streams = append(streams, struct {
			dst  **csvStream
			name string
		}{&om.events, "events.csv"})
	}

	for _, s := range streams {
		stream, err := openStream(dir, s.name)
		if err != nil {
			om.Close()
			return nil, err
		}
		*s.dst = stream
	}
	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return writeRecords(om.telemetry, []WindowStats{stats})
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return writeRecords(om.perf, []PerfStatsCSV{stats.ToCSV(windowEnd)})
}

// WriteRun writes a finished run to runs.csv.
func (om *OutputManager) WriteRun(run RunStats) error {
	if om == nil {
		return nil
	}
	return writeRecords(om.runs, []RunStats{run})
}

// WriteEvents appends events to events.csv. A no-op when the event log is off.
func (om *OutputManager) WriteEvents(events []Event) error {
	if om == nil || om.events == nil || len(events) == 0 {
		return nil
	}
	return writeRecords(om.events, events)
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
	return errors.Join(
		om.telemetry.close(),
		om.perf.close(),
		om.runs.close(),
		om.events.close(),
	)
}
