package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trade-tools/estimate-press/pkg/models/domain"
	"github.com/trade-tools/estimate-press/pkg/services/theme"
)

func specByName(t *testing.T, name string) SectionSpec {
	t.Helper()
	for _, s := range Sections() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("unknown section spec %q", name)
	return SectionSpec{}
}

func TestBuildSection_EmptyCollectionIsOmitted(t *testing.T) {
	th := theme.Resolve("electrical")
	spec := specByName(t, "devices")

	assert.Nil(t, BuildSection(spec, nil, th))
	assert.Nil(t, BuildSection(spec, []domain.ItemRecord{}, th))
}

func TestBuildSection_PreservesInputOrder(t *testing.T) {
	th := theme.Resolve("electrical")
	spec := specByName(t, "devices")

	items := []domain.ItemRecord{
		{"type": "Outlet A"},
		{"type": "Switch B"},
		{"type": "Panel C"},
	}

	table := BuildSection(spec, items, th)
	require.NotNil(t, table)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Outlet A", table.Rows[0][0])
	assert.Equal(t, "Switch B", table.Rows[1][0])
	assert.Equal(t, "Panel C", table.Rows[2][0])
}

func TestBuildSection_AggregateRow(t *testing.T) {
	th := theme.Resolve("electrical")
	spec := specByName(t, "devices")

	items := []domain.ItemRecord{
		{"type": "Outlet", "quantity": 10, "laborHours": 1.5},
		{"type": "Switch", "qty": 4, "laborHours": 2.0},
		{"type": "Panel", "quantity": 1, "hours": 3.25},
	}

	table := BuildSection(spec, items, th)
	require.NotNil(t, table)
	require.NotNil(t, table.Total)

	assert.Equal(t, "TOTAL", table.Total[0])
	assert.Equal(t, "15", table.Total[1])
	assert.Equal(t, "6.75", table.Total[2])
	// Non-aggregated columns stay blank in the total row.
	assert.Equal(t, "", table.Total[3])
}

func TestBuildSection_AliasAndDefaultResolution(t *testing.T) {
	th := theme.Resolve("electrical")
	spec := specByName(t, "devices")

	items := []domain.ItemRecord{
		{"item": "Receptacle", "qty": 5},
	}

	table := BuildSection(spec, items, th)
	require.NotNil(t, table)
	require.Len(t, table.Rows, 1)

	row := table.Rows[0]
	assert.Equal(t, "Receptacle", row[0])
	assert.Equal(t, "5", row[1])
	assert.Equal(t, "0.00", row[2]) // laborHours absent -> numeric default
	assert.Equal(t, "PASS", row[3]) // necCompliant absent -> defaults to compliant
}

func TestBuildSection_ComplianceFlag(t *testing.T) {
	th := theme.Resolve("electrical")
	spec := specByName(t, "devices")

	items := []domain.ItemRecord{
		{"type": "Outlet", "necCompliant": false},
		{"type": "Switch", "nec_compliant": true},
	}

	table := BuildSection(spec, items, th)
	require.NotNil(t, table)
	assert.Equal(t, "FAIL", table.Rows[0][3])
	assert.Equal(t, "PASS", table.Rows[1][3])
}

func TestBuildSection_HeaderThemingPerSection(t *testing.T) {
	th := theme.Resolve("hvac")
	item := []domain.ItemRecord{{"from": "a"}}

	routes := BuildSection(specByName(t, "wireRoutes"), item, th)
	devices := BuildSection(specByName(t, "devices"), []domain.ItemRecord{{"type": "x"}}, th)
	conduit := BuildSection(specByName(t, "conduitRuns"), []domain.ItemRecord{{"size": "1/2"}}, th)

	require.NotNil(t, routes)
	require.NotNil(t, devices)
	require.NotNil(t, conduit)
	assert.Equal(t, th.Primary, routes.HeaderFill)
	assert.Equal(t, th.Secondary, devices.HeaderFill)
	assert.Equal(t, th.Accent, conduit.HeaderFill)
}

func TestBuildSection_GarbageRowsStillEmitted(t *testing.T) {
	th := theme.Resolve("electrical")
	spec := specByName(t, "wireRoutes")

	items := make([]domain.ItemRecord, 0, 3)
	for i := 0; i < 3; i++ {
		items = append(items, domain.ItemRecord{
			"from":   fmt.Sprintf("panel-%d", i),
			"length": "garbage",
		})
	}

	table := BuildSection(spec, items, th)
	require.NotNil(t, table)
	require.Len(t, table.Rows, 3)
	for _, row := range table.Rows {
		assert.Equal(t, "0.0", row[3])
	}
	assert.Equal(t, "0.0", table.Total[3])
}
