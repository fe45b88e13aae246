package models

import "time"

// ScrapedContent is one page of the knowledge base. URL is unique; the
// scraper upserts by URL so there is never more than one row per page.
type ScrapedContent struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	URL       string    `gorm:"uniqueIndex;size:2048;not null" json:"url"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ScrapedAt time.Time `gorm:"not null" json:"scrapedAt"`
}

// ContentInput is the writable part of a ScrapedContent row.
type ContentInput struct {
	URL     string
	Title   string
	Content string
}
