package stats

import (
	"encoding/json"
	"fmt"
	"os"

	"singlelist/list"
)

// ListStats represents the summary written for a processed list
type ListStats struct {
	Source         string         `json:"source"`
	Size           int            `json:"size"`
	IsEmpty        bool           `json:"isEmpty"`
	Front          string         `json:"front,omitempty"`
	DistinctValues int            `json:"distinctValues"`
	TotalBytes     int            `json:"totalBytes"`
	AverageLength  float64        `json:"averageLength"`
	Occurrences    map[string]int `json:"occurrences"`
	Values         []string       `json:"values"`
}

// NewListStats creates a new ListStats instance with initialized maps
func NewListStats(source string) *ListStats {
	return &ListStats{
		Source:      source,
		IsEmpty:     true,
		Occurrences: make(map[string]int),
		Values:      []string{},
	}
}

// AddValue accounts for one value, in list order
func (ls *ListStats) AddValue(value string) {
	if ls.Size == 0 {
		ls.Front = value
	}
	ls.Size++
	ls.TotalBytes += len(value)
	ls.Occurrences[value]++
	ls.Values = append(ls.Values, value)
}

// Finalize calculates derived fields from accumulated data
func (ls *ListStats) Finalize() {
	ls.IsEmpty = ls.Size == 0
	ls.DistinctValues = len(ls.Occurrences)
	if ls.Size > 0 {
		ls.AverageLength = float64(ls.TotalBytes) / float64(ls.Size)
	}
}

// Collect builds finalized stats for values
func Collect(source string, values *list.LinkedList[string]) *ListStats {
	ls := NewListStats(source)
	for value := range values.All() {
		ls.AddValue(value)
	}
	ls.Finalize()
	return ls
}

// WriteFile writes the stats as indented JSON to path
func (ls *ListStats) WriteFile(path string) error {
	content, err := json.MarshalIndent(ls, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}
	err = os.WriteFile(path, content, 0644)
	if err != nil {
		return fmt.Errorf("failed to write stats to '%v': %v", path, err)
	}
	return nil
}
