package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type RunConfig struct {
	ID               int
	Mode             string
	Strategy         string
	Width            int
	Height           int
	Wumpuses         int
	Pits             int
	Gold             int
	Dynamic          bool
	NonDeterministic bool
}

type SessionRecord struct {
	ID     int
	Config int // RunConfig.ID
	Seed   uint64
	SessionMetric
}

type MoveRecord struct {
	Session int // SessionRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteRunConfigs(configs []RunConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Mode,
			c.Strategy,
			strconv.Itoa(c.Width),
			strconv.Itoa(c.Height),
			strconv.Itoa(c.Wumpuses),
			strconv.Itoa(c.Pits),
			strconv.Itoa(c.Gold),
			strconv.FormatBool(c.Dynamic),
			strconv.FormatBool(c.NonDeterministic),
		})
	}
	header := []string{"id", "mode", "strategy", "width", "height", "wumpuses", "pits", "gold", "dynamic", "non_deterministic"}
	return w.write("run_configs.csv", header, rows)
}

func (w *Writer) WriteSessionRecords(records []SessionRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Config),
			strconv.FormatUint(r.Seed, 10),
			r.Outcome,
			strconv.Itoa(r.Turns),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			strconv.FormatInt(r.HeapBytes, 10),
		})
	}
	header := []string{"id", "config", "seed", "outcome", "turns", "start_time", "end_time", "duration", "heap_bytes"}
	return w.write("session_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Session),
			strconv.Itoa(r.Step),
			r.Agent,
			r.Strategy,
			r.Duration.String(),
			strconv.Itoa(r.Expanded),
			strconv.Itoa(r.Generated),
			strconv.Itoa(r.PlanLength),
			strconv.FormatBool(r.Found),
		})
	}
	header := []string{"session", "step", "agent", "strategy", "duration", "expanded", "generated", "plan_length", "found"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
