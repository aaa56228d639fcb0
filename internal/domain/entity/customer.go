package entity

// Customer cliente final. Puede crearse explícitamente o al vuelo desde una venta.
type Customer struct {
	ID    int64
	Name  string
	Phone string
	Zone  string
	Notes string
}

// NotesCreatedFromSale nota que llevan los clientes creados implícitamente por una venta.
const NotesCreatedFromSale = "Creado desde venta"
