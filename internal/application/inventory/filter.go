package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// Criteria criterios de filtrado del listado de productos.
// Un campo vacío no restringe. Los predicados activos se combinan con AND.
type Criteria struct {
	SearchText  string             // substring sobre Name o SKU, sin distinguir mayúsculas
	TypeFilter  string             // igualdad exacta contra Type
	StockFilter entity.StockStatus // pertenencia a la clase de stock
}

// Empty indica si ningún predicado está activo.
func (c Criteria) Empty() bool {
	return c.SearchText == "" && c.TypeFilter == "" && c.StockFilter == ""
}

// Filter aplica los criterios sobre el snapshot y devuelve la subsecuencia que
// satisface todos los predicados activos, preservando el orden relativo
// original (filtro estable, nunca re-ordena). Función pura: no muta el
// snapshot y el resultado comparte los punteros de entrada.
func Filter(snapshot []*entity.Product, c Criteria, lowThreshold int) []*entity.Product {
	if c.Empty() {
		return snapshot
	}

	// Case folding Unicode para el predicado de búsqueda ("ÁCIDO" encuentra "ácido").
	fold := cases.Fold()
	needle := fold.String(c.SearchText)

	out := make([]*entity.Product, 0, len(snapshot))
	for _, p := range snapshot {
		if needle != "" &&
			!strings.Contains(fold.String(p.Name), needle) &&
			!strings.Contains(fold.String(p.SKU), needle) {
			continue
		}
		if c.TypeFilter != "" && p.Type != c.TypeFilter {
			continue
		}
		if c.StockFilter != "" && p.StockStatus(lowThreshold) != c.StockFilter {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DistinctTypes devuelve los valores únicos de Type presentes en el snapshot,
// ordenados alfabéticamente para que el control de filtro sea estable.
func DistinctTypes(snapshot []*entity.Product) []string {
	seen := make(map[string]struct{}, len(snapshot))
	types := make([]string, 0, len(snapshot))
	for _, p := range snapshot {
		if _, ok := seen[p.Type]; ok {
			continue
		}
		seen[p.Type] = struct{}{}
		types = append(types, p.Type)
	}
	sort.Strings(types)
	return types
}
