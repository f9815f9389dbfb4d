package pipeline

import (
	"sort"

	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
)

// TopParameterCount is how many entries each ranked list keeps.
const TopParameterCount = 5

// TopK returns the k highest entries of m by key, highest first. Entries with
// equal keys keep the map's insertion order. m is not modified.
func TopK[V any](m *models.OrderedMap[V], key func(V) float64, k int) []models.Pair[V] {
	entries := m.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return key(entries[i].Value) > key(entries[j].Value)
	})
	if k < 0 {
		k = 0
	}
	if len(entries) > k {
		entries = entries[:k]
	}
	if entries == nil {
		entries = []models.Pair[V]{}
	}
	return entries
}

func ratingKey(v float64) float64 { return v }

func impactKey(r models.ImpactRecord) float64 { return r.OverallImpact }
