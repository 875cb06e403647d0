package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Inventario-web/internal/application/inventory"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

func sampleSnapshot() []*entity.Product {
	mk := func(id, name, sku, typ string, qty int) *entity.Product {
		p := product(id, qty, "1.00")
		p.Name, p.SKU, p.Type = name, sku, typ
		return p
	}
	return []*entity.Product{
		mk("1", "Teclado mecánico", "TEC-001", "electrónica", 0),
		mk("2", "Mouse inalámbrico", "MOU-002", "electrónica", 5),
		mk("3", "Cuaderno rayado", "CUA-003", "papelería", 10),
		mk("4", "Monitor 27", "MON-004", "electrónica", 11),
	}
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_CriteriosVaciosDevuelveElSnapshot(t *testing.T) {
	snapshot := sampleSnapshot()
	got := inventory.Filter(snapshot, inventory.Criteria{}, 10)
	assert.Equal(t, ids(snapshot), ids(got), "sin predicados activos el snapshot pasa intacto y en orden")
}

func TestFilter_StockBajo(t *testing.T) {
	got := inventory.Filter(sampleSnapshot(), inventory.Criteria{StockFilter: entity.StockStatusLow}, 10)
	assert.Equal(t, []string{"2", "3"}, ids(got),
		"cantidades 5 y 10 son stock bajo, en el orden original")
}

func TestFilter_BusquedaInsensibleAMayusculas(t *testing.T) {
	snapshot := sampleSnapshot()

	porNombre := inventory.Filter(snapshot, inventory.Criteria{SearchText: "MECÁNICO"}, 10)
	assert.Equal(t, []string{"1"}, ids(porNombre), "la búsqueda por nombre ignora mayúsculas")

	porSKU := inventory.Filter(snapshot, inventory.Criteria{SearchText: "mou-"}, 10)
	assert.Equal(t, []string{"2"}, ids(porSKU), "la búsqueda también aplica sobre el SKU")
}

func TestFilter_TipoExacto(t *testing.T) {
	got := inventory.Filter(sampleSnapshot(), inventory.Criteria{TypeFilter: "papelería"}, 10)
	assert.Equal(t, []string{"3"}, ids(got))

	// La igualdad es exacta: un prefijo no empata.
	got = inventory.Filter(sampleSnapshot(), inventory.Criteria{TypeFilter: "papel"}, 10)
	assert.Empty(t, ids(got))
}

func TestFilter_CombinacionAND(t *testing.T) {
	criteria := inventory.Criteria{
		SearchText:  "o",
		TypeFilter:  "electrónica",
		StockFilter: entity.StockStatusIn,
	}
	got := inventory.Filter(sampleSnapshot(), criteria, 10)
	assert.Equal(t, []string{"4"}, ids(got), "solo el monitor satisface los tres predicados")
}

func TestFilter_Idempotente(t *testing.T) {
	criteria := inventory.Criteria{TypeFilter: "electrónica"}
	once := inventory.Filter(sampleSnapshot(), criteria, 10)
	twice := inventory.Filter(once, criteria, 10)
	require.Equal(t, ids(once), ids(twice), "filtrar un resultado ya filtrado con el mismo criterio es identidad")
}

func TestFilter_NoMutaElSnapshot(t *testing.T) {
	snapshot := sampleSnapshot()
	inventory.Filter(snapshot, inventory.Criteria{StockFilter: entity.StockStatusOut}, 10)
	assert.Len(t, snapshot, 4, "el snapshot de entrada no cambia")
}

// ──────────────────────────────────────────────────────────────────────────────
// DistinctTypes
// ──────────────────────────────────────────────────────────────────────────────

func TestDistinctTypes_ColapsaDuplicados(t *testing.T) {
	got := inventory.DistinctTypes(sampleSnapshot())
	assert.Equal(t, []string{"electrónica", "papelería"}, got)
}

func TestDistinctTypes_SnapshotVacio(t *testing.T) {
	assert.Empty(t, inventory.DistinctTypes(nil))
}
