package model

import "time"

type DashboardStats struct {
	Basic struct {
		TotalBooks int `json:"totalBooks"`
		TotalUsers int `json:"totalUsers"`
	} `json:"basic"`
	Requests struct {
		Pending int `json:"pending"`
	} `json:"requests"`
	Loans struct {
		Overdue int `json:"overdue"`
	} `json:"loans"`
	CategoryBookCounts []CategoryBookCount `json:"categoryBookCounts"`
	TimeSeries         TimeSeries          `json:"timeSeries"`
	StatusDistribution []StatusCount       `json:"statusDistribution"`
	LanguageDist       []LanguageCount     `json:"languageDistribution"`
}

type CategoryBookCount struct {
	Name       string `json:"name" db:"name"`
	TotalBooks int    `json:"totalBooks" db:"total_books"`
}

type StatusCount struct {
	Status RequestStatus `json:"status" db:"status"`
	Total  int           `json:"total" db:"total"`
}

type LanguageCount struct {
	Language string `json:"language" db:"language_code"`
	Total    int    `json:"total" db:"total"`
}

// TimeSeries buckets borrow-request creation by day (period=month) or by
// month (period=year); gaps are zero-filled.
type TimeSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

type BucketCount struct {
	Bucket int `db:"bucket"`
	Count  int `db:"count"`
}

type CategoryStats struct {
	Hierarchy struct {
		TopLevel          []CategoryInfo `json:"topLevelCategories"`
		DepthDistribution map[int]int    `json:"depthDistribution"`
	} `json:"hierarchy"`
	Popular []CategoryInfo `json:"popularCategories"`
	Parents []CategoryInfo `json:"parentCategories"`
	Empty   []CategoryInfo `json:"emptyCategories"`
	Summary struct {
		Total    int `json:"totalCategories"`
		TopLevel int `json:"topLevelCount"`
		MaxDepth int `json:"maxDepth"`
	} `json:"summary"`
}

type PublisherStats struct {
	Popular []PublisherInfo `json:"popularPublishers"`
	ByYear  []YearCount     `json:"publishersByYear"`
	Empty   []PublisherInfo `json:"emptyPublishers"`
	Summary struct {
		Total          int  `json:"totalPublishers"`
		WithBooks      int  `json:"withBooks"`
		WithoutBooks   int  `json:"withoutBooks"`
		WithWebsite    int  `json:"withWebsite"`
		WithoutWebsite int  `json:"withoutWebsite"`
		OldestYear     *int `json:"oldestYear"`
		NewestYear     *int `json:"newestYear"`
	} `json:"summary"`
}

type AuthorStats struct {
	Popular     []AuthorInfo `json:"popularAuthors"`
	ByBirthYear []YearCount  `json:"authorsByBirthYear"`
	Empty       []AuthorInfo `json:"emptyAuthors"`
	Summary     struct {
		Total        int `json:"totalAuthors"`
		WithBooks    int `json:"withBooks"`
		WithoutBooks int `json:"withoutBooks"`
		Living       int `json:"living"`
		Deceased     int `json:"deceased"`
	} `json:"summary"`
}

type YearCount struct {
	Year  int `json:"year" db:"year"`
	Count int `json:"count" db:"count"`
}

type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
	Type      string    `json:"type"`
}
