package happiness

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"happiness-etl/internal/dataset"
)

// ErrNoDatasets is returned when a directory contains no recognized yearly
// CSV files.
var ErrNoDatasets = errors.New("no yearly csv files found")

// LoadDatasets reads every .csv file in dir into a dataset keyed by the year
// parsed from the last four characters of the filename before the extension
// (e.g. happiness_2015.csv). A filename whose trailing characters are not a
// plausible year is an error, as is an empty directory: both point at a
// miswired data directory rather than a condition worth continuing past.
//
// Known limitation: the trailing-four-characters convention silently
// mis-parses names like report_v2015.csv where the digits are not a year.
func LoadDatasets(dir string) (map[int]*dataset.Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dataset directory: %w", err)
	}

	datasets := make(map[int]*dataset.Dataset)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		year, err := yearFromFilename(entry.Name())
		if err != nil {
			return nil, err
		}
		if _, dup := datasets[year]; dup {
			return nil, fmt.Errorf("duplicate dataset for year %d (file %s)", year, entry.Name())
		}

		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", entry.Name(), err)
		}
		ds, err := dataset.FromCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}

		slog.Debug("loaded dataset", "file", entry.Name(), "year", year, "shape", ds.Shape())
		datasets[year] = ds
	}

	if len(datasets) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDatasets, dir)
	}

	slog.Info("datasets loaded", "count", len(datasets), "dir", dir)
	return datasets, nil
}

// yearFromFilename parses the trailing four characters before the extension
// as a four-digit year.
func yearFromFilename(name string) (int, error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if len(base) < 4 {
		return 0, fmt.Errorf("filename %q too short to carry a year", name)
	}
	year, err := strconv.Atoi(base[len(base)-4:])
	if err != nil {
		return 0, fmt.Errorf("filename %q does not end in a year: %w", name, err)
	}
	if year < 1900 || year > 2999 {
		return 0, fmt.Errorf("filename %q ends in implausible year %d", name, year)
	}
	return year, nil
}
