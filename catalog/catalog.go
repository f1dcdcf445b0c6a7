package catalog

import "strings"

// Entry holds per-unit nutrition for one known food.
type Entry struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Catalog is an ordered, immutable list of known foods. Order matters:
// free-text matching returns the first entry whose name appears in the
// text, so overlapping names ("apple" vs "apple pie") resolve to whichever
// is listed first.
type Catalog struct {
	entries []Entry
}

func New(entries []Entry) *Catalog {
	c := &Catalog{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Lookup returns the first entry whose name is a substring of the
// case-folded text. Absence is a normal result, not an error.
func (c *Catalog) Lookup(text string) (Entry, bool) {
	folded := strings.ToLower(text)
	for _, e := range c.entries {
		if strings.Contains(folded, e.Name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the full entry list in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int { return len(c.entries) }

// Default is the built-in food dataset. Names are lowercase; values are
// per single unit (one piece, one serving or one cup as appropriate).
func Default() *Catalog {
	return New([]Entry{
		{Name: "banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
		{Name: "apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
		{Name: "orange", Calories: 62, Protein: 1.2, Carbs: 15.4, Fat: 0.2},
		{Name: "egg", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3},
		{Name: "chapati", Calories: 104, Protein: 3.1, Carbs: 18, Fat: 2.5},
		{Name: "roti", Calories: 104, Protein: 3.1, Carbs: 18, Fat: 2.5},
		{Name: "rice", Calories: 206, Protein: 4.3, Carbs: 45, Fat: 0.4},
		{Name: "dal", Calories: 198, Protein: 12, Carbs: 34, Fat: 1.2},
		{Name: "idli", Calories: 58, Protein: 1.6, Carbs: 12, Fat: 0.4},
		{Name: "dosa", Calories: 133, Protein: 2.7, Carbs: 25, Fat: 2.3},
		{Name: "upma", Calories: 192, Protein: 4.4, Carbs: 30, Fat: 6.2},
		{Name: "paneer", Calories: 265, Protein: 18.3, Carbs: 1.2, Fat: 20.8},
		{Name: "chicken", Calories: 239, Protein: 27, Carbs: 0, Fat: 14},
		{Name: "milk", Calories: 103, Protein: 8, Carbs: 12, Fat: 2.4},
		{Name: "curd", Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3},
		{Name: "bread", Calories: 79, Protein: 2.7, Carbs: 14.7, Fat: 1},
		{Name: "salad", Calories: 33, Protein: 1.2, Carbs: 6.5, Fat: 0.4},
		{Name: "samosa", Calories: 262, Protein: 3.5, Carbs: 24, Fat: 17},
		{Name: "poha", Calories: 180, Protein: 2.5, Carbs: 27, Fat: 6.7},
		{Name: "oats", Calories: 158, Protein: 6, Carbs: 27, Fat: 3.2},
	})
}
