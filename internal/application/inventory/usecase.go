package inventory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/application/notify"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
	"github.com/jhoicas/Inventario-web/pkg/logger"
)

const recentProductsCount = 5 // productos recientes en el widget del dashboard

// Options parámetros de presentación del caso de uso.
type Options struct {
	LowStockThreshold int // umbral de stock bajo (referencia: 10)
	PageSize          int // tope del snapshot (referencia: 100)
}

// UseCase orquesta el motor de estado de vista del inventario: mantiene el
// snapshot transitorio, deriva las vistas de dashboard y listado, y canaliza
// las mutaciones (crear producto, actualizar cantidad) hacia el backend.
type UseCase struct {
	repo     repository.ProductRepository
	notifier *notify.Notifier
	coord    *Coordinator
	log      *logger.Logger
	opts     Options

	mu       sync.RWMutex
	snapshot []*entity.Product
	loaded   bool
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository, notifier *notify.Notifier, log *logger.Logger, opts Options) *UseCase {
	if opts.LowStockThreshold <= 0 {
		opts.LowStockThreshold = entity.DefaultLowStockThreshold
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	return &UseCase{
		repo:     repo,
		notifier: notifier,
		coord:    NewCoordinator(),
		log:      log,
		opts:     opts,
	}
}

// Refresh re-consulta el snapshot al backend. Si la consulta falla se conserva
// el último snapshot conocido (la vista nunca se vacía por un fallo de red) y
// el fallo se notifica al usuario.
func (uc *UseCase) Refresh(ctx context.Context) error {
	products, err := uc.repo.FetchProducts(ctx, uc.opts.PageSize)
	if err != nil {
		uc.log.Warn().Err(err).Msg("refresco de snapshot falló; se conserva el anterior")
		uc.notifier.Error("No se pudieron cargar los productos")
		return errors.Join(domain.ErrFetchFailure, err)
	}
	uc.mu.Lock()
	uc.snapshot = products
	uc.loaded = true
	uc.mu.Unlock()
	return nil
}

// Snapshot devuelve el snapshot vigente, consultando al backend la primera vez.
func (uc *UseCase) Snapshot(ctx context.Context) ([]*entity.Product, error) {
	uc.mu.RLock()
	loaded := uc.loaded
	current := uc.snapshot
	uc.mu.RUnlock()
	if loaded {
		return current, nil
	}
	if err := uc.Refresh(ctx); err != nil {
		return nil, err
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snapshot, nil
}

// DashboardView deriva las métricas agregadas y los productos recientes.
func (uc *UseCase) DashboardView(ctx context.Context) (*dto.DashboardView, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(snapshot, uc.opts.LowStockThreshold)

	recent := snapshot
	if len(recent) > recentProductsCount {
		recent = recent[:recentProductsCount]
	}
	recentViews := make([]dto.ProductView, 0, len(recent))
	for _, p := range recent {
		recentViews = append(recentViews, dto.ToProductView(p, uc.opts.LowStockThreshold))
	}

	return &dto.DashboardView{
		TotalProducts:  stats.TotalCount,
		TotalValue:     stats.TotalValue.Round(2),
		AverageValue:   stats.AverageValue.Round(2),
		InStock:        stats.InStockCount,
		LowStock:       stats.LowStockCount,
		OutOfStock:     stats.OutOfStockCount,
		RecentProducts: recentViews,
		Notifications:  uc.notifier.Drain(),
	}, nil
}

// ProductsView deriva el listado filtrado más los tipos únicos del snapshot completo.
func (uc *UseCase) ProductsView(ctx context.Context, criteria Criteria) (*dto.ProductListView, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filtered := Filter(snapshot, criteria, uc.opts.LowStockThreshold)
	items := make([]dto.ProductView, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, dto.ToProductView(p, uc.opts.LowStockThreshold))
	}
	return &dto.ProductListView{
		Items:         items,
		Types:         DistinctTypes(snapshot),
		TotalInStore:  len(snapshot),
		Notifications: uc.notifier.Drain(),
	}, nil
}

// Create da de alta un producto con el juego completo de campos y refresca el
// snapshot. Los errores de validación se devuelven sin notificar; un rechazo
// del backend sí se notifica.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductView, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, repository.CreateProductInput{
		Name:        strings.TrimSpace(in.Name),
		Type:        strings.TrimSpace(in.Type),
		SKU:         strings.TrimSpace(in.SKU),
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price.String(),
	})
	if err != nil {
		uc.notifier.Error(backendMessage(err, "No se pudo guardar el producto"))
		return nil, err
	}
	uc.notifier.Success("Producto creado correctamente")
	// El snapshot se re-consulta: el backend pudo normalizar campos.
	_ = uc.Refresh(ctx)
	view := dto.ToProductView(created, uc.opts.LowStockThreshold)
	return &view, nil
}

// UpdateQuantity ejecuta el ciclo completo de edición de cantidad para un
// producto: Viewing → Editing → Committing → Viewing, con la propuesta del
// formulario. Un envío sin cambios no toca la red; un rechazo del backend
// conserva la cantidad confirmada previa y se notifica.
func (uc *UseCase) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	committed, ok := uc.committedQuantity(id)
	if !ok {
		return domain.ErrNotFound
	}
	if err := uc.coord.BeginEdit(id, committed); err != nil {
		return err
	}
	if err := uc.coord.Propose(id, quantity); err != nil {
		// Propuesta inválida: se abandona la edición localmente.
		_ = uc.coord.Cancel(id)
		return err
	}
	sent, err := uc.coord.Submit(ctx, id, func(ctx context.Context, q int) error {
		_, commitErr := uc.repo.UpdateQuantity(ctx, id, q)
		return commitErr
	})
	if err != nil {
		uc.notifier.Error(backendMessage(err, "No se pudo actualizar la cantidad"))
		return err
	}
	if !sent {
		// Envío sin cambios: vuelta directa a Viewing, sin red y sin toast.
		return nil
	}
	uc.notifier.Success("Cantidad actualizada correctamente")
	_ = uc.Refresh(ctx)
	return nil
}

// EditState expone el estado de edición de un producto (para deshabilitar el
// control mientras hay un commit en vuelo).
func (uc *UseCase) EditState(id string) EditState {
	return uc.coord.State(id)
}

func (uc *UseCase) committedQuantity(id string) (int, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, p := range uc.snapshot {
		if p.ID == id {
			return p.Quantity, true
		}
	}
	return 0, false
}

func validateCreate(in dto.CreateProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewFieldError("name", "el nombre es requerido")
	}
	if strings.TrimSpace(in.Type) == "" {
		return domain.NewFieldError("type", "el tipo es requerido")
	}
	if strings.TrimSpace(in.SKU) == "" {
		return domain.NewFieldError("sku", "el SKU es requerido")
	}
	if in.Quantity < 0 {
		return domain.NewFieldError("quantity", "la cantidad debe ser 0 o mayor")
	}
	if in.Price.LessThan(decimal.Zero) {
		return domain.NewFieldError("price", "el precio debe ser 0 o mayor")
	}
	return nil
}

// backendMessage devuelve el mensaje legible del backend o el fallback genérico.
func backendMessage(err error, fallback string) string {
	var be *domain.BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
