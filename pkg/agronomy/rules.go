package agronomy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"ferti/entities"
)

// RulesEngine turns readings into agronomic guidance. Implementations are
// immutable once built and safe for concurrent use.
type RulesEngine interface {
	Advise(FertilizerInput) entities.AdvisoryResult
	PlanIrrigation(IrrigationInput) entities.IrrigationPlan
	Category(label string) Category
	Table() map[Category]Dosage
}

// Dosage is the per-family row of the fertilizer table.
type Dosage struct {
	QuantityKgHa int     `json:"quantity_kg_ha" yaml:"quantity_kg_ha"`
	Method       string  `json:"method" yaml:"method"`
	PricePerKg   float64 `json:"price_per_kg" yaml:"price_per_kg"`
}

// KCL labels resolve to Potash for both dose and price (22/kg). Earlier price
// sheets matched only POTASH/MOP and charged KCL the 32/kg fallback.
func defaultTable() map[Category]Dosage {
	return map[Category]Dosage{
		CategoryUrea:   {90, "Split into 2–3 doses (broadcast + incorporate).", 12},
		CategoryDAP:    {80, "Basal application near root zone (band placement).", 28},
		CategoryPotash: {60, "Side placement along rows; avoid direct seed contact.", 22},
		CategoryNPK:    {100, "Broadcast and incorporate; split if stage is later.", 30},
		CategoryOther:  {75, "Split application (2 doses) and irrigate lightly after.", 32},
	}
}

type rules struct {
	table map[Category]Dosage
}

// Default returns the engine with the built-in dosage and price table.
func Default() RulesEngine { return &rules{table: defaultTable()} }

// LoadFromFile starts from the built-in table and overrides rows from a
// .csv, .xlsx or .yaml file. An empty path yields Default().
func LoadFromFile(path string) (RulesEngine, error) {
	r := &rules{table: defaultTable()}
	if path == "" {
		return r, nil
	}
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		err = r.loadCSV(path)
	case ".xlsx":
		err = r.loadXLSX(path)
	case ".yaml", ".yml":
		err = r.loadYAML(path)
	default:
		err = fmt.Errorf("unsupported rules file %q", path)
	}
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	return r, nil
}

func (r *rules) Category(label string) Category { return CategoryOf(label) }

func (r *rules) Table() map[Category]Dosage {
	out := make(map[Category]Dosage, len(r.table))
	for k, v := range r.table {
		out[k] = v
	}
	return out
}

func (r *rules) dosage(c Category) Dosage {
	if d, ok := r.table[c]; ok {
		return d
	}
	return r.table[CategoryOther]
}

func (r *rules) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		rows = append(rows, rec)
	}
	return r.applyRows(rows)
}

func (r *rules) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return err
	}
	return r.applyRows(rows)
}

func (r *rules) loadYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc struct {
		Fertilizers []struct {
			Category     string   `yaml:"category"`
			QuantityKgHa *int     `yaml:"quantity_kg_ha"`
			Method       string   `yaml:"method"`
			PricePerKg   *float64 `yaml:"price_per_kg"`
		} `yaml:"fertilizers"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}
	for _, f := range doc.Fertilizers {
		c, err := ParseCategory(f.Category)
		if err != nil {
			return err
		}
		d := r.table[c]
		if f.QuantityKgHa != nil {
			d.QuantityKgHa = *f.QuantityKgHa
		}
		if m := strings.TrimSpace(f.Method); m != "" {
			d.Method = m
		}
		if f.PricePerKg != nil {
			d.PricePerKg = *f.PricePerKg
		}
		r.table[c] = d
	}
	return nil
}

// applyRows reads a header row followed by one row per category. Only the
// category column is required; blank cells keep the built-in value.
func (r *rules) applyRows(rows [][]string) error {
	if len(rows) == 0 {
		return errors.New("empty rules table")
	}
	head := rows[0]

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		s = strings.ReplaceAll(s, "/", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCat := findAny("Category", "fertilizer", "family")
	cQty := findAny("Quantity_kg_ha", "quantity", "dose", "kg/ha")
	cMethod := findAny("Method", "application_method")
	cPrice := findAny("Price_per_kg", "price", "inr/kg")
	if cCat == -1 {
		return fmt.Errorf("rules table missing Category column. Found headers: %v", head)
	}

	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		if get(cCat) == "" {
			continue
		}
		c, err := ParseCategory(get(cCat))
		if err != nil {
			return fmt.Errorf("row %d: %w", n+2, err)
		}
		d := r.table[c]
		if v := get(cQty); v != "" {
			q, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("row %d: quantity %q: %w", n+2, v, err)
			}
			d.QuantityKgHa = q
		}
		if v := get(cMethod); v != "" {
			d.Method = v
		}
		if v := get(cPrice); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("row %d: price %q: %w", n+2, v, err)
			}
			d.PricePerKg = p
		}
		r.table[c] = d
	}
	return nil
}
