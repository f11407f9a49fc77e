package repository

import "resource-converter/internal/infrastructure/database"

// Factory builds repositories bound to an open connection.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Labels returns a label repository for conn.
func (f *Factory) Labels(conn *database.Conn) LabelRepository {
	return NewSQLLabelRepository(conn)
}

// ErrorMessages returns an error message repository for conn.
func (f *Factory) ErrorMessages(conn *database.Conn) ErrorMessageRepository {
	return NewSQLErrorMessageRepository(conn)
}
