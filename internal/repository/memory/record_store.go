package memory

import (
	"sort"

	"github.com/mamadbah2/plantio/internal/domain/models"
)

// RecordStore is the session's ordered, append-only list of planting records.
// It is not safe for concurrent use; the owning service serializes access.
type RecordStore struct {
	records []models.PlantingRecord
}

// NewRecordStore returns an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Insert appends a record at the end of the list.
func (s *RecordStore) Insert(record models.PlantingRecord) {
	s.records = append(s.records, record)
}

// SortByDateDescending puts the most recent planting first. Records sharing a
// date keep their insertion order.
func (s *RecordStore) SortByDateDescending() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].PlantingDate.After(s.records[j].PlantingDate.Time)
	})
}

// All returns a copy of the records in their current order.
func (s *RecordStore) All() []models.PlantingRecord {
	out := make([]models.PlantingRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports how many records are stored.
func (s *RecordStore) Len() int {
	return len(s.records)
}
