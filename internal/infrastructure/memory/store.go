// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Es la implementación de composición para tests y corridas locales;
// la de producción es el paquete postgres. La selección ocurre en el
// composition root, nunca con banderas dispersas en la lógica de negocio.
package memory

import (
	"sync"

	"github.com/jhoicas/Ventario-api/internal/domain/entity"
)

// Store agrupa las colecciones en memoria y el lock que las protege.
// Los repositorios devuelven copias para evitar aliasing con los callers.
type Store struct {
	mu           sync.RWMutex
	products     map[string]*entity.Product
	movements    []*entity.StockMovement
	reservations map[string]*entity.ProductReservation
	acks         map[string]*entity.AlertAck
	sales        map[string]*entity.Sale
	audits       []*entity.InventoryAudit
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:     make(map[string]*entity.Product),
		reservations: make(map[string]*entity.ProductReservation),
		acks:         make(map[string]*entity.AlertAck),
		sales:        make(map[string]*entity.Sale),
	}
}

// ProductRepository devuelve el adaptador de productos sobre este almacén.
func (s *Store) ProductRepository() *ProductRepo { return &ProductRepo{s: s} }

// MovementRepository devuelve el adaptador del libro de movimientos.
func (s *Store) MovementRepository() *MovementRepo { return &MovementRepo{s: s} }

// ReservationRepository devuelve el adaptador de reservas.
func (s *Store) ReservationRepository() *ReservationRepo { return &ReservationRepo{s: s} }

// AlertAckRepository devuelve el adaptador de reconocimientos de alertas.
func (s *Store) AlertAckRepository() *AlertAckRepo { return &AlertAckRepo{s: s} }

// SaleRepository devuelve el adaptador de ventas.
func (s *Store) SaleRepository() *SaleRepo { return &SaleRepo{s: s} }

// AuditRepository devuelve el adaptador de auditorías.
func (s *Store) AuditRepository() *AuditRepo { return &AuditRepo{s: s} }

// TxRunner devuelve el runner transaccional sobre este almacén.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

func ackKey(userID, productID, alertType string) string {
	return userID + "|" + productID + "|" + alertType
}

func copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

func copyMovement(m *entity.StockMovement) *entity.StockMovement {
	cp := *m
	return &cp
}

func copyReservation(r *entity.ProductReservation) *entity.ProductReservation {
	cp := *r
	return &cp
}

func copySale(s *entity.Sale) *entity.Sale {
	cp := *s
	cp.Items = make([]entity.SaleItem, len(s.Items))
	copy(cp.Items, s.Items)
	return &cp
}

func copyAudit(a *entity.InventoryAudit) *entity.InventoryAudit {
	cp := *a
	return &cp
}
