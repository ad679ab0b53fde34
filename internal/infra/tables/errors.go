package tables

import "errors"

var (
	// ErrTableNotFound возвращается при запросе неизвестного стола
	ErrTableNotFound = errors.New("tables.registry: table not found")

	// ErrDuplicateTable возвращается, когда каталог содержит два стола с одним ID
	ErrDuplicateTable = errors.New("tables.registry: duplicate table id")
)
