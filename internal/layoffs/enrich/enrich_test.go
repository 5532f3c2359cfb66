package enrich

import (
	"testing"

	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/dkravets/layoffpulse/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEnricher(t *testing.T, tables Tables) *Enricher {
	t.Helper()
	return NewEnricher(tables, zap.NewNop())
}

func TestEnrich_DivisionOverride(t *testing.T) {
	enricher := newTestEnricher(t, Tables{
		Overrides: map[string]models.DivisionOverride{
			OverrideKey("Globex", "4/11/2025"): {Division: "Cloud", AIRelated: utils.Ptr(true)},
		},
	})

	base := []models.LayoffRecord{
		{Company: "Globex", Date: "4/11/2025"},
		{Company: "Globex", Date: "5/2/2025"}, // different date, no override
		{Company: "Globex", Date: "4/11/2025", Division: "Hardware"},
	}

	out := enricher.Enrich(base)
	require.Len(t, out, 3)

	assert.Equal(t, "Cloud", out[0].Division)
	assert.True(t, out[0].AIRelated)

	assert.Equal(t, "", out[1].Division)
	assert.False(t, out[1].AIRelated)

	// A division already present on the record wins over the override.
	assert.Equal(t, "Hardware", out[2].Division)
}

func TestEnrich_AIPatterns(t *testing.T) {
	enricher := newTestEnricher(t, Tables{
		AIPatterns: []models.AIPattern{
			{Company: "Initech"},
			{Company: "Hooli", DateAfter: "1/1/2024"},
		},
	})

	tests := []struct {
		name   string
		rec    models.LayoffRecord
		wantAI bool
	}{
		{name: "undated pattern always matches", rec: models.LayoffRecord{Company: "Initech", Date: "3/3/2022"}, wantAI: true},
		{name: "dated pattern after threshold", rec: models.LayoffRecord{Company: "Hooli", Date: "2/15/2024"}, wantAI: true},
		{name: "dated pattern on threshold", rec: models.LayoffRecord{Company: "Hooli", Date: "1/1/2024"}, wantAI: true},
		{name: "dated pattern before threshold", rec: models.LayoffRecord{Company: "Hooli", Date: "12/30/2023"}, wantAI: false},
		{name: "unparseable record date never matches dated pattern", rec: models.LayoffRecord{Company: "Hooli", Date: "unknown"}, wantAI: false},
		{name: "other company unaffected", rec: models.LayoffRecord{Company: "Vandelay", Date: "2/15/2024"}, wantAI: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := enricher.Enrich([]models.LayoffRecord{tt.rec})
			require.Len(t, out, 1)
			assert.Equal(t, tt.wantAI, out[0].AIRelated)
		})
	}
}

func TestEnrich_AIFlagIsSticky(t *testing.T) {
	// An explicit false override must not erase a flag the record already
	// carries, and must not block an undated pattern either.
	enricher := newTestEnricher(t, Tables{
		Overrides: map[string]models.DivisionOverride{
			OverrideKey("Initech", "3/3/2022"): {AIRelated: utils.Ptr(false)},
		},
		AIPatterns: []models.AIPattern{{Company: "Initech"}},
	})

	out := enricher.Enrich([]models.LayoffRecord{
		{Company: "Initech", Date: "3/3/2022"},
		{Company: "Initech", Date: "3/3/2022", AIRelated: true},
	})
	require.Len(t, out, 2)
	assert.True(t, out[0].AIRelated, "pattern still applies when override says false")
	assert.True(t, out[1].AIRelated, "flag already on the record survives")
}

func TestEnrich_WorkforceAndPercentage(t *testing.T) {
	enricher := newTestEnricher(t, Tables{
		Workforce: map[string]int{"Globex": 10000},
	})

	base := []models.LayoffRecord{
		{Company: "Globex", Date: "1/10/2025", LaidOff: utils.Ptr(1000)},
		{Company: "Globex", Date: "2/10/2025", LaidOff: utils.Ptr(1000), Percentage: utils.Ptr(3.0)},
		{Company: "Globex", Date: "3/10/2025"},
		{Company: "Vandelay", Date: "1/10/2025", LaidOff: utils.Ptr(500)},
	}

	out := enricher.Enrich(base)
	require.Len(t, out, 4)

	require.NotNil(t, out[0].EstEmployees)
	assert.Equal(t, 10000, *out[0].EstEmployees)
	require.NotNil(t, out[0].Percentage)
	assert.Equal(t, 10.0, *out[0].Percentage)

	// A reported percentage is never recomputed.
	require.NotNil(t, out[1].Percentage)
	assert.Equal(t, 3.0, *out[1].Percentage)

	// No laid-off count, no derivation.
	assert.Nil(t, out[2].Percentage)

	// No workforce estimate, no derivation.
	assert.Nil(t, out[3].EstEmployees)
	assert.Nil(t, out[3].Percentage)
}

func TestEnrich_PercentageRoundsToOneDecimal(t *testing.T) {
	enricher := newTestEnricher(t, Tables{
		Workforce: map[string]int{"Globex": 6000},
	})

	out := enricher.Enrich([]models.LayoffRecord{
		{Company: "Globex", Date: "1/10/2025", LaidOff: utils.Ptr(100)},
	})
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Percentage)
	assert.Equal(t, 1.7, *out[0].Percentage)
}

func TestEnrich_SupplementalAppendedAndConservation(t *testing.T) {
	supplemental := []models.LayoffRecord{
		{Company: "Extra", Date: "6/1/2025", LaidOff: utils.Ptr(42)},
	}
	enricher := newTestEnricher(t, Tables{Supplemental: supplemental})

	base := []models.LayoffRecord{
		{Company: "A", Date: "1/1/2025"},
		{Company: "B", Date: "2/1/2025"},
	}

	out := enricher.Enrich(base)
	require.Len(t, out, len(base)+len(supplemental))
	assert.Equal(t, "A", out[0].Company)
	assert.Equal(t, "B", out[1].Company)
	assert.Equal(t, "Extra", out[2].Company)

	// The input slice is untouched.
	assert.Equal(t, "", base[0].Division)
}

func TestEnrich_Idempotent(t *testing.T) {
	enricher := newTestEnricher(t, Tables{
		Overrides: map[string]models.DivisionOverride{
			OverrideKey("Globex", "4/11/2025"): {Division: "Cloud", AIRelated: utils.Ptr(true)},
		},
		Workforce: map[string]int{"Globex": 10000},
	})

	base := []models.LayoffRecord{
		{Company: "Globex", Date: "4/11/2025", LaidOff: utils.Ptr(1000)},
	}

	once := enricher.Enrich(base)
	twice := enricher.Enrich(once)
	assert.Equal(t, once, twice)
}
