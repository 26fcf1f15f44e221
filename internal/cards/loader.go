package cards

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadCatalogFromDataDir loads cards.csv and, if present, custom_cards.csv
// from a data directory.
func LoadCatalogFromDataDir(dataDir string) (*Catalog, error) {
	files := []struct {
		path     string
		optional bool
	}{
		{filepath.Join(dataDir, "cards.csv"), false},
		{filepath.Join(dataDir, "custom_cards.csv"), true},
	}

	var all []Card
	for _, f := range files {
		if _, err := os.Stat(f.path); err != nil {
			if f.optional {
				continue
			}
			return nil, errors.Wrapf(err, "no card list in %s", dataDir)
		}
		cs, err := loadSingleCSV(f.path)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", f.path)
		}
		all = append(all, cs...)
	}
	return NewCatalog(all)
}

func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func loadSingleCSV(path string) ([]Card, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, errors.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["index"]; !ok {
		return nil, errors.Errorf("csv %s has no index column", path)
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Card{}
	for n, row := range rows[1:] {
		line := n + 2
		id, err := strconv.Atoi(get(row, "index"))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad index", line)
		}
		typ, err := ParseCardType(get(row, "type"))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		c := Card{
			ID:       id,
			Name:     get(row, "name"),
			Type:     typ,
			Effect:   get(row, "effect"),
			Group:    get(row, "group"),
			ImageURL: get(row, "image_url"),
		}
		// cost / attack / defense
		if c.Cost, err = parseOptionalInt(get(row, "cost")); err != nil {
			return nil, errors.Wrapf(err, "line %d: bad cost", line)
		}
		if c.Attack, err = parseOptionalInt(get(row, "attack")); err != nil {
			return nil, errors.Wrapf(err, "line %d: bad attack", line)
		}
		if c.Defense, err = parseOptionalInt(get(row, "defense")); err != nil {
			return nil, errors.Wrapf(err, "line %d: bad defense", line)
		}
		out = append(out, c)
	}
	return out, nil
}
