package analytics

// SkillCount is one row of a skill ranking table
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillCombination counts how often an unordered skill pair co-occurs.
// Pair is normalized to "A + B" with A < B lexicographically.
type SkillCombination struct {
	Pair  string `json:"pair"`
	Count int    `json:"count"`
}

// SkillWeight ranks a skill by proficiency-weighted demand
type SkillWeight struct {
	Skill           string         `json:"skill"`
	Frequency       int            `json:"frequency"`
	TotalWeight     int            `json:"total_weight"`
	AvgWeight       float64        `json:"avg_weight"`
	ImportanceScore int            `json:"importance_score"`
	Levels          map[string]int `json:"level_distribution"`
}

// LocationSkill is one row of the top-skills-per-city table
type LocationSkill struct {
	City  string `json:"city"`
	Rank  int    `json:"rank"`
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SenioritySkill is one cell of the seniority/skill cross-tab
type SenioritySkill struct {
	Seniority string `json:"seniority"`
	Skill     string `json:"skill"`
	Count     int    `json:"count"`
}

// Summary holds dataset-level market statistics
type Summary struct {
	TotalJobs        int      `json:"total_jobs"`
	UniqueCompanies  int      `json:"unique_companies"`
	UniqueCities     int      `json:"unique_cities"`
	AvgSkillsPerJob  float64  `json:"avg_skills_per_job"`
	TopSeniority     string   `json:"top_seniority"`
	TopCity          string   `json:"top_city"`
	TopCompany       string   `json:"top_company"`
	RemotePct        *float64 `json:"remote_pct,omitempty"`
	TopSkill         string   `json:"top_skill,omitempty"`
	TopSkillCount    int      `json:"top_skill_count,omitempty"`
	TopSkillSharePct float64  `json:"top_skill_share_pct,omitempty"`
}

// RegressionResult is an OLS fit of salary against one predictor
type RegressionResult struct {
	Predictor  string  `json:"predictor"`
	Slope      float64 `json:"slope"`
	Intercept  float64 `json:"intercept"`
	RSquared   float64 `json:"r_squared"`
	Equation   string  `json:"equation"`
	DataPoints int     `json:"data_point_count"`
}

// SalaryStats summarizes non-null salary_avg values of a record subset
type SalaryStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Std    float64 `json:"std"`
	Count  int     `json:"count"`
}

// SkillDetail is the full analytics bundle for one skill
type SkillDetail struct {
	Skill                 string         `json:"skill"`
	TotalOffers           int            `json:"total_offers"`
	MarketSharePct        float64        `json:"market_share_pct"`
	LevelDistribution     map[string]int `json:"level_distribution"`
	SeniorityDistribution map[string]int `json:"seniority_distribution"`
	Salary                *SalaryStats   `json:"salary_stats,omitempty"`
	TopCompanies          []SkillCount   `json:"top_companies"`
	TopCities             []SkillCount   `json:"top_cities"`
}

// SkillSeniorityStat describes one seniority tier's uptake of a skill
type SkillSeniorityStat struct {
	Seniority string  `json:"seniority"`
	Total     int     `json:"total_offers"`
	WithSkill int     `json:"offers_with_skill"`
	SharePct  float64 `json:"share_pct"`
	TopLevel  string  `json:"top_level,omitempty"`
}

// LevelSalary is the salary distribution at one required proficiency level
type LevelSalary struct {
	Level  string      `json:"level"`
	Salary SalaryStats `json:"salary_stats"`
}

// TrendPoint is one month of demand and salary history
type TrendPoint struct {
	Month     string   `json:"month"` // YYYY-MM
	Offers    int      `json:"offers"`
	AvgSalary *float64 `json:"avg_salary,omitempty"`
}
