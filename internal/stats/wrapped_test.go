package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscocavallaro/asado-counter/internal/models"
)

func cutRow(name string, weight string) models.AsadoCut {
	return models.AsadoCut{
		WeightKg: decimal.RequireFromString(weight),
		Cut:      &models.Cut{Name: name},
	}
}

func guestRow(name string) models.AsadoGuest {
	return models.AsadoGuest{Guest: &models.Guest{Name: name}}
}

func TestComputeYearlyEmpty(t *testing.T) {
	wrapped := ComputeYearly(nil, 2024)

	assert.Equal(t, 0, wrapped.TotalAsados)
	assert.True(t, wrapped.TotalKg.IsZero())
	assert.Equal(t, 0, wrapped.TotalUniqueGuests)
	assert.True(t, wrapped.AverageRating.IsZero())
	assert.Empty(t, wrapped.CutRanking)
	assert.Empty(t, wrapped.GuestRanking)
}

func TestComputeYearlyScenario(t *testing.T) {
	asados := []models.Asado{
		{
			Date:   "2024-01-05",
			Rating: 8,
			Cuts:   []models.AsadoCut{cutRow("vacío", "1.2"), cutRow("asado de tira", "2.0")},
			Guests: []models.AsadoGuest{guestRow("Ana"), guestRow("Beto")},
		},
		{
			Date:   "2024-03-10",
			Rating: 7,
			Cuts:   []models.AsadoCut{cutRow("vacío", "0.8")},
			Guests: []models.AsadoGuest{guestRow("Ana")},
		},
		{
			Date:   "2024-07-20",
			Rating: 9,
			Cuts:   []models.AsadoCut{cutRow("asado de tira", "1.5"), cutRow("chorizo", "0.5")},
			Guests: []models.AsadoGuest{guestRow("Beto"), guestRow("Carla")},
		},
	}

	wrapped := ComputeYearly(asados, 2024)

	assert.Equal(t, 2024, wrapped.Year)
	assert.Equal(t, 3, wrapped.TotalAsados)
	assert.Equal(t, "6", wrapped.TotalKg.String())
	assert.Equal(t, 3, wrapped.TotalUniqueGuests)
	assert.Equal(t, "8", wrapped.AverageRating.String())

	require.Len(t, wrapped.CutRanking, 3)
	// vacío and asado de tira tie on count 2; vacío was encountered first
	assert.Equal(t, "vacío", wrapped.CutRanking[0].Name)
	assert.Equal(t, 2, wrapped.CutRanking[0].Count)
	assert.Equal(t, "2", wrapped.CutRanking[0].TotalKg.String())
	assert.Equal(t, "asado de tira", wrapped.CutRanking[1].Name)
	assert.Equal(t, 2, wrapped.CutRanking[1].Count)
	assert.Equal(t, "3.5", wrapped.CutRanking[1].TotalKg.String())
	assert.Equal(t, "chorizo", wrapped.CutRanking[2].Name)
	assert.Equal(t, 1, wrapped.CutRanking[2].Count)
	assert.Equal(t, "0.5", wrapped.CutRanking[2].TotalKg.String())

	require.Len(t, wrapped.GuestRanking, 3)
	assert.Equal(t, GuestRank{Name: "Ana", Count: 2}, wrapped.GuestRanking[0])
	assert.Equal(t, GuestRank{Name: "Beto", Count: 2}, wrapped.GuestRanking[1])
	assert.Equal(t, GuestRank{Name: "Carla", Count: 1}, wrapped.GuestRanking[2])
}

func TestComputeYearlyCountsRowsNotEvents(t *testing.T) {
	// The same cut twice in one asado counts twice in the ranking
	asados := []models.Asado{
		{
			Rating: 5,
			Cuts:   []models.AsadoCut{cutRow("chorizo", "0.5"), cutRow("chorizo", "0.7")},
		},
	}

	wrapped := ComputeYearly(asados, 2024)

	require.Len(t, wrapped.CutRanking, 1)
	assert.Equal(t, 2, wrapped.CutRanking[0].Count)
	assert.Equal(t, "1.2", wrapped.CutRanking[0].TotalKg.String())
}

func TestComputeYearlyDanglingReferences(t *testing.T) {
	asados := []models.Asado{
		{
			Rating: 6,
			Cuts: []models.AsadoCut{
				{WeightKg: decimal.RequireFromString("1.5")}, // cut record lost
				cutRow("vacío", "1.0"),
			},
			Guests: []models.AsadoGuest{
				{}, // guest record lost
				guestRow("Ana"),
			},
		},
	}

	wrapped := ComputeYearly(asados, 2024)

	// The weight is still counted, attributed to "Unknown"
	assert.Equal(t, "2.5", wrapped.TotalKg.String())
	require.Len(t, wrapped.CutRanking, 2)
	assert.Equal(t, "Unknown", wrapped.CutRanking[0].Name)
	assert.Equal(t, "1.5", wrapped.CutRanking[0].TotalKg.String())

	assert.Equal(t, 2, wrapped.TotalUniqueGuests)
	require.Len(t, wrapped.GuestRanking, 2)
	assert.Equal(t, "Unknown", wrapped.GuestRanking[0].Name)
}

func TestComputeYearlyRounding(t *testing.T) {
	asados := []models.Asado{
		{Rating: 7, Cuts: []models.AsadoCut{cutRow("vacío", "1.115"), cutRow("vacío", "1.12")}},
		{Rating: 8, Cuts: []models.AsadoCut{cutRow("vacío", "0.9")}},
	}

	wrapped := ComputeYearly(asados, 2024)

	// 3.135 rounds half-up on the cent digit
	assert.Equal(t, "3.14", wrapped.TotalKg.String())
	// (7+8)/2 = 7.5, one decimal place
	assert.Equal(t, "7.5", wrapped.AverageRating.String())
}

func TestComputeYearlyDoesNotMutateInput(t *testing.T) {
	asados := []models.Asado{
		{Rating: 5, Cuts: []models.AsadoCut{cutRow("vacío", "1.0")}},
	}
	before := asados[0].Cuts[0].WeightKg.String()

	_ = ComputeYearly(asados, 2024)

	assert.Equal(t, before, asados[0].Cuts[0].WeightKg.String())
}
