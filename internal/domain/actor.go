package domain

// Actor identifica a quien ejecuta una operación. Lo provee el proveedor de
// identidad externo (token JWT); toda escritura al libro, reservas o ventas
// lo exige y falla con ErrUnauthenticated si falta.
type Actor struct {
	UserID   string
	UserName string
}

// Valid indica si hay contexto de actor utilizable.
func (a Actor) Valid() bool {
	return a.UserID != ""
}
