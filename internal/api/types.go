package api

// PrinterSummary is the catalog view of a single printer as returned by the
// backend. Fields mirror the wire shape; the client never derives or
// transforms values.
type PrinterSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Price           int      `json:"price"`
	BuildVolume     string   `json:"build_volume"`
	HasEnclosure    bool     `json:"has_enclosure"`
	HasAutoLeveling bool     `json:"has_auto_leveling"`
	Materials       []string `json:"materials"`
}

// RecommendRequest is the body posted to /printers/recommend. It is a
// field-for-field serialization of the quiz answers.
type RecommendRequest struct {
	SkillLevel         string `json:"skill_level"`
	UseCase            string `json:"use_case"`
	BudgetMin          int    `json:"budget_min"`
	BudgetMax          int    `json:"budget_max"`
	PreferEnclosure    bool   `json:"prefer_enclosure"`
	PreferAutoLeveling bool   `json:"prefer_auto_leveling"`
}

// RecommendationResult is one scored entry from the recommendation endpoint.
// MatchScore is a backend-computed integer in [0, 100].
type RecommendationResult struct {
	Printer    PrinterSummary `json:"printer"`
	MatchScore int            `json:"match_score"`
	Reasons    []string       `json:"reasons"`
}

// Material describes one printing material in the catalog.
type Material struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	NozzleTemp string `json:"nozzle_temp"`
	BedTemp    string `json:"bed_temp"`
	Difficulty string `json:"difficulty"`
}

// Guide describes one troubleshooting guide in the catalog.
type Guide struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Problem  string   `json:"problem"`
	Fixes    []string `json:"fixes"`
}
