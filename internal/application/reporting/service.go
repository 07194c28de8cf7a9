// Package reporting orquesta la generación de reportes: consulta en paralelo las cuatro
// colecciones de entidades, ejecuta el motor de agregación y entrega un snapshot atómico.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/reportes-taller/internal/domain"
	"github.com/jhoicas/reportes-taller/internal/domain/entity"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
	"github.com/jhoicas/reportes-taller/internal/domain/repository"
)

// State etapa del ciclo de generación de un reporte.
type State string

// Idle → Fetching → Aggregating → Ready; cualquier falla termina en Error.
const (
	StateIdle        State = "idle"
	StateFetching    State = "fetching"
	StateAggregating State = "aggregating"
	StateReady       State = "ready"
	StateError       State = "error"
)

// Nombres de entidad usados en FetchError.
const (
	EntityProducts       = "products"
	EntitySuppliers      = "suppliers"
	EntityStockMovements = "stock_movements"
	EntitySales          = "sales"
)

// Service genera reportes a partir de un ReportRepository.
// No guarda estado entre solicitudes: cada llamada produce su propio snapshot.
type Service struct {
	repo          repository.ReportRepository
	log           zerolog.Logger
	now           func() time.Time
	newID         func() string
	movementLimit int
	observer      func(State)
}

// Option configura el Service.
type Option func(*Service)

// WithLogger inyecta el logger estructurado.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock sobreescribe el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sobreescribe el generador de IDs de snapshot (tests).
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithMovementLimit tope de movimientos de stock por reporte. Se ajusta a
// (0, report.MaxMovementLimit]; <= 0 deja el valor por defecto.
func WithMovementLimit(n int) Option {
	return func(s *Service) {
		s.movementLimit = report.ClampMovementLimit(n)
	}
}

// WithStateObserver recibe cada transición de estado.
func WithStateObserver(fn func(State)) Option {
	return func(s *Service) { s.observer = fn }
}

// NewService construye el orquestador.
func NewService(repo repository.ReportRepository, opts ...Option) *Service {
	s := &Service{
		repo:          repo,
		log:           zerolog.Nop(),
		now:           time.Now,
		newID:         uuid.NewString,
		movementLimit: report.DefaultMovementLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MovementLimit tope de movimientos efectivo, ya ajustado.
func (s *Service) MovementLimit() int { return s.movementLimit }

// fetched resultado de las cuatro consultas; cada goroutine escribe solo su campo.
type fetched struct {
	products  []entity.Product
	suppliers []entity.Supplier
	movements []entity.StockMovement
	sales     []entity.Sale
}

// GenerateReport construye el ReportData del rango indicado.
//
// Las cuatro consultas se lanzan en paralelo. Si alguna falla se devuelve el primer
// error como *domain.FetchError y nunca un reporte parcial. Los timeouts son
// responsabilidad del adaptador de datos.
func (s *Service) GenerateReport(ctx context.Context, r repository.DateRange) (*report.ReportData, error) {
	if r.Start.IsZero() || r.End.IsZero() || r.Start.After(r.End) {
		return nil, fmt.Errorf("reporting: rango %s – %s: %w",
			r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly), domain.ErrInvalidInput)
	}

	started := s.now()
	log := s.log.With().
		Time("start", r.Start).
		Time("end", r.End).
		Logger()

	s.transition(log, StateIdle)
	s.transition(log, StateFetching)

	data, err := s.fetch(ctx, r)
	if err != nil {
		s.transition(log, StateError)
		log.Error().Err(err).Msg("consulta de entidades para reporte")
		return nil, err
	}

	s.transition(log, StateAggregating)
	snapshot, err := report.Build(report.Input{
		Products:      data.products,
		Suppliers:     data.suppliers,
		Movements:     data.movements,
		Sales:         data.sales,
		MovementLimit: s.movementLimit,
	})
	if err != nil {
		s.transition(log, StateError)
		log.Error().Err(err).Msg("agregación de reporte")
		return nil, fmt.Errorf("reporting: %w", err)
	}

	snapshot.ID = s.newID()
	snapshot.Period = report.Period{Start: r.Start, End: r.End}
	snapshot.GeneratedAt = s.now()
	s.transition(log, StateReady)

	log.Info().
		Str("report_id", snapshot.ID).
		Int("products", snapshot.TotalProducts).
		Int("sales", len(data.sales)).
		Str("revenue", snapshot.PeriodRevenue.StringFixed(2)).
		Dur("elapsed", snapshot.GeneratedAt.Sub(started)).
		Msg("reporte generado")

	return snapshot, nil
}

func (s *Service) fetch(ctx context.Context, r repository.DateRange) (*fetched, error) {
	var out fetched
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.repo.FetchProducts(gctx)
		out.products = rows
		return domain.NewFetchError(EntityProducts, err)
	})
	g.Go(func() error {
		rows, err := s.repo.FetchSuppliers(gctx)
		out.suppliers = rows
		return domain.NewFetchError(EntitySuppliers, err)
	})
	g.Go(func() error {
		rows, err := s.repo.FetchStockMovements(gctx, r, s.movementLimit)
		out.movements = rows
		return domain.NewFetchError(EntityStockMovements, err)
	})
	g.Go(func() error {
		rows, err := s.repo.FetchSales(gctx, r)
		out.sales = rows
		return domain.NewFetchError(EntitySales, err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) transition(log zerolog.Logger, st State) {
	log.Debug().Str("state", string(st)).Msg("reporte: transición de estado")
	if s.observer != nil {
		s.observer(st)
	}
}
