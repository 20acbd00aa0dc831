package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/splice/internal/model"
)

const indexFileName = "_index.yaml"

// ReportStore persists and retrieves splice reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
	RegenerateIndex(path m.Path) error
}

// LocalReportStore writes one hashed YAML file per report into a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

type regionYAML struct {
	Recipe string `yaml:"recipe"`
	Start  int    `yaml:"start"`
	End    int    `yaml:"end"`
}

type reportYAML struct {
	File       string       `yaml:"file"`
	Status     string       `yaml:"status"`
	Regions    []regionYAML `yaml:"regions"`
	BeforeHash string       `yaml:"before_hash,omitempty"`
	AfterHash  string       `yaml:"after_hash,omitempty"`
	Time       time.Time    `yaml:"time"`
}

type indexEntry struct {
	TotalReports int            `yaml:"total_reports"`
	ByStatus     map[string]int `yaml:"by_status"`
	Files        []string       `yaml:"files"`
}

// SaveReports writes each report as <hash>.yaml under path and refreshes the index.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return errors.New("reports directory path is required")
	}

	if len(reports) == 0 {
		return nil
	}

	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(toReportYAML(report))
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", report.File, err)
		}

		name := rs.computeReportHash(data) + ".yaml"
		if err := os.WriteFile(filepath.Join(string(path), name), data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", name, err)
		}
	}

	return rs.RegenerateIndex(path)
}

// LoadReports reads every report in path, oldest first.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	if path == "" {
		return nil, errors.New("reports directory path is required")
	}

	entries, err := os.ReadDir(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return []m.Report{}, nil
		}

		return nil, err
	}

	reports := make([]m.Report, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == indexFileName || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		// #nosec G304 - entries come from the reports directory listing
		data, err := os.ReadFile(filepath.Join(string(path), entry.Name()))
		if err != nil {
			return nil, err
		}

		var decoded reportYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", entry.Name(), err)
		}

		reports = append(reports, fromReportYAML(decoded))
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Time.Before(reports[j].Time)
	})

	return reports, nil
}

// RegenerateIndex rewrites _index.yaml with totals over every stored report.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	reports, err := rs.LoadReports(path)
	if err != nil {
		return err
	}

	idx := indexEntry{ByStatus: map[string]int{}}
	seen := map[string]struct{}{}

	for _, report := range reports {
		idx.TotalReports++
		idx.ByStatus[string(report.Status)]++

		if _, ok := seen[string(report.File)]; !ok {
			seen[string(report.File)] = struct{}{}
			idx.Files = append(idx.Files, string(report.File))
		}
	}

	sort.Strings(idx.Files)

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	return os.WriteFile(filepath.Join(string(path), indexFileName), data, 0o600)
}

func (rs *LocalReportStore) computeReportHash(data []byte) string {
	sum := sha256.Sum256(data)

	return fmt.Sprintf("%x", sum[:8])
}

func toReportYAML(report m.Report) reportYAML {
	regions := make([]regionYAML, 0, len(report.Regions))
	for _, r := range report.Regions {
		regions = append(regions, regionYAML{Recipe: r.Recipe, Start: r.Start, End: r.End})
	}

	return reportYAML{
		File:       string(report.File),
		Status:     string(report.Status),
		Regions:    regions,
		BeforeHash: report.BeforeHash,
		AfterHash:  report.AfterHash,
		Time:       report.Time.UTC(),
	}
}

func fromReportYAML(r reportYAML) m.Report {
	regions := make([]m.RegionReport, 0, len(r.Regions))
	for _, region := range r.Regions {
		regions = append(regions, m.RegionReport{Recipe: region.Recipe, Start: region.Start, End: region.End})
	}

	return m.Report{
		File:       m.Path(r.File),
		Status:     m.Status(r.Status),
		Regions:    regions,
		BeforeHash: r.BeforeHash,
		AfterHash:  r.AfterHash,
		Time:       r.Time,
	}
}
