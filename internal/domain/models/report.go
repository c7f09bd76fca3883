package models

import "time"

// ExportArchive is one published CSV export as stored in MongoDB.
type ExportArchive struct {
	FileName    string    `bson:"file_name" json:"file_name"`
	Content     string    `bson:"content" json:"content"`
	RecordCount int       `bson:"record_count" json:"record_count"`
	TotalArea   float64   `bson:"total_area" json:"total_area"`
	TotalProfit float64   `bson:"total_profit" json:"total_profit"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
