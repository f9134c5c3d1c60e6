package agronomy

import (
	"fmt"
	"strings"
)

// Category is the fertilizer family a free-text label belongs to.
type Category int

const (
	CategoryOther Category = iota
	CategoryUrea
	CategoryDAP
	CategoryPotash
	CategoryNPK
)

var categoryNames = map[Category]string{
	CategoryOther:  "Other",
	CategoryUrea:   "Urea",
	CategoryDAP:    "DAP",
	CategoryPotash: "Potash",
	CategoryNPK:    "NPK",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// keyword order matters: the first family whose keyword occurs in the label wins
var categoryKeywords = []struct {
	cat  Category
	keys []string
}{
	{CategoryUrea, []string{"UREA"}},
	{CategoryDAP, []string{"DAP"}},
	{CategoryPotash, []string{"POTASH", "MOP", "KCL"}}, // KCL also takes the Potash price
	{CategoryNPK, []string{"NPK"}},
}

// CategoryOf maps a fertilizer label such as "Urea" or "14-35-14 (DAP)" to its family.
func CategoryOf(label string) Category {
	u := strings.ToUpper(strings.TrimSpace(label))
	if u == "" {
		return CategoryOther
	}
	for _, ck := range categoryKeywords {
		for _, k := range ck.keys {
			if strings.Contains(u, k) {
				return ck.cat
			}
		}
	}
	return CategoryOther
}

// ParseCategory reads a category name as written in a rules file.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		if strings.ToLower(n) == key {
			return c, nil
		}
	}
	switch key {
	case "mop", "kcl":
		return CategoryPotash, nil
	case "default", "":
		return CategoryOther, nil
	}
	return CategoryOther, fmt.Errorf("unknown fertilizer category %q", s)
}
