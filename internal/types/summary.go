package types

import (
	"bytes"
	"encoding/json"

	"github.com/elliotchance/orderedmap/v2"
)

// VersionCounts maps version labels to counts, preserving insertion order.
type VersionCounts struct {
	m *orderedmap.OrderedMap[string, int]
}

// NewVersionCounts returns an empty VersionCounts.
func NewVersionCounts() *VersionCounts {
	return &VersionCounts{m: orderedmap.NewOrderedMap[string, int]()}
}

// Set records the count for a version.
func (vc *VersionCounts) Set(version string, n int) {
	vc.m.Set(version, n)
}

// Get returns the count for a version, zero if absent.
func (vc *VersionCounts) Get(version string) int {
	n, _ := vc.m.Get(version)
	return n
}

// Versions returns the version labels in insertion order.
func (vc *VersionCounts) Versions() []string {
	out := make([]string, 0, vc.m.Len())
	for el := vc.m.Front(); el != nil; el = el.Next() {
		out = append(out, el.Key)
	}
	return out
}

// Sum adds up all counts.
func (vc *VersionCounts) Sum() int {
	total := 0
	for el := vc.m.Front(); el != nil; el = el.Next() {
		total += el.Value
	}
	return total
}

// MarshalJSON encodes the counts as an object in insertion order.
func (vc *VersionCounts) MarshalJSON() ([]byte, error) {
	return marshalOrdered(vc.m)
}

// VersionNames maps version labels to sorted name lists, preserving
// insertion order.
type VersionNames struct {
	m *orderedmap.OrderedMap[string, []string]
}

// NewVersionNames returns an empty VersionNames.
func NewVersionNames() *VersionNames {
	return &VersionNames{m: orderedmap.NewOrderedMap[string, []string]()}
}

// Set stores the sorted contents of names for a version.
func (vn *VersionNames) Set(version string, names NameSet) {
	vn.m.Set(version, names.Sorted())
}

// Get returns the stored names for a version.
func (vn *VersionNames) Get(version string) []string {
	names, _ := vn.m.Get(version)
	return names
}

// MarshalJSON encodes the names as an object in insertion order.
func (vn *VersionNames) MarshalJSON() ([]byte, error) {
	return marshalOrdered(vn.m)
}

// RunSummary is the summary record persisted after a run.
type RunSummary struct {
	Requests           *VersionCounts `json:"requests"`
	ResultsCount       *VersionCounts `json:"results_count"`
	TotalRequests      int            `json:"total_requests"`
	TotalUniqueRecords int            `json:"total_unique_records"`
}

func marshalOrdered[V any](m *orderedmap.OrderedMap[string, V]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for el := m.Front(); el != nil; el = el.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(el.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
