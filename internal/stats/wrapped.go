// Package stats computes the yearly "Wrapped" summary from an in-memory
// snapshot of asado records. It is a pure fold: no database access, no
// mutation of its input.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/franciscocavallaro/asado-counter/internal/models"
)

// unknownName is attributed to join rows whose cut or guest record is
// missing. The weight was still recorded, so the row is counted rather
// than skipped.
const unknownName = "Unknown"

// CutRank is one entry of the cut ranking. Count is the number of join
// rows referencing the cut, not the number of events: an asado listing
// the same cut twice counts twice.
type CutRank struct {
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	TotalKg decimal.Decimal `json:"total_kg"`
}

// GuestRank is one entry of the guest ranking
type GuestRank struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Wrapped is the yearly aggregated summary
type Wrapped struct {
	Year              int             `json:"year"`
	TotalAsados       int             `json:"total_asados"`
	TotalKg           decimal.Decimal `json:"total_kg"`
	TotalUniqueGuests int             `json:"total_unique_guests"`
	AverageRating     decimal.Decimal `json:"average_rating"`
	CutRanking        []CutRank       `json:"cut_ranking"`
	GuestRanking      []GuestRank     `json:"guest_ranking"`
}

// ComputeYearly aggregates the given events into a Wrapped summary.
// The caller is responsible for having filtered the events to the year.
//
// TotalKg is rounded to 2 decimal places, AverageRating to 1. Rankings
// are sorted by count descending; ties keep first-encounter order.
func ComputeYearly(asados []models.Asado, year int) Wrapped {
	wrapped := Wrapped{
		Year:          year,
		TotalKg:       decimal.Zero,
		AverageRating: decimal.Zero,
		CutRanking:    []CutRank{},
		GuestRanking:  []GuestRank{},
	}
	if len(asados) == 0 {
		return wrapped
	}

	totalKg := decimal.Zero
	ratingSum := 0
	cutIndex := make(map[string]int)
	guestIndex := make(map[string]int)
	uniqueGuests := make(map[string]struct{})

	for _, asado := range asados {
		ratingSum += asado.Rating

		for _, asadoCut := range asado.Cuts {
			name := unknownName
			if asadoCut.Cut != nil && asadoCut.Cut.Name != "" {
				name = asadoCut.Cut.Name
			}
			totalKg = totalKg.Add(asadoCut.WeightKg)

			idx, seen := cutIndex[name]
			if !seen {
				idx = len(wrapped.CutRanking)
				cutIndex[name] = idx
				wrapped.CutRanking = append(wrapped.CutRanking, CutRank{Name: name, TotalKg: decimal.Zero})
			}
			wrapped.CutRanking[idx].Count++
			wrapped.CutRanking[idx].TotalKg = wrapped.CutRanking[idx].TotalKg.Add(asadoCut.WeightKg)
		}

		for _, asadoGuest := range asado.Guests {
			name := unknownName
			if asadoGuest.Guest != nil && asadoGuest.Guest.Name != "" {
				name = asadoGuest.Guest.Name
			}
			uniqueGuests[name] = struct{}{}

			idx, seen := guestIndex[name]
			if !seen {
				idx = len(wrapped.GuestRanking)
				guestIndex[name] = idx
				wrapped.GuestRanking = append(wrapped.GuestRanking, GuestRank{Name: name})
			}
			wrapped.GuestRanking[idx].Count++
		}
	}

	wrapped.TotalAsados = len(asados)
	wrapped.TotalKg = totalKg.Round(2)
	wrapped.TotalUniqueGuests = len(uniqueGuests)
	wrapped.AverageRating = decimal.NewFromInt(int64(ratingSum)).
		Div(decimal.NewFromInt(int64(len(asados)))).
		Round(1)

	sort.SliceStable(wrapped.CutRanking, func(i, j int) bool {
		return wrapped.CutRanking[i].Count > wrapped.CutRanking[j].Count
	})
	sort.SliceStable(wrapped.GuestRanking, func(i, j int) bool {
		return wrapped.GuestRanking[i].Count > wrapped.GuestRanking[j].Count
	})

	return wrapped
}
