package psqlbuilder

import "github.com/Masterminds/squirrel"

// psql builder с PostgreSQL placeholder'ами ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT builder с $ placeholder'ами
func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

// Insert возвращает INSERT builder с $ placeholder'ами
func Insert(into string) squirrel.InsertBuilder {
	return psql.Insert(into)
}

// Update возвращает UPDATE builder с $ placeholder'ами
func Update(table string) squirrel.UpdateBuilder {
	return psql.Update(table)
}

// Delete возвращает DELETE builder с $ placeholder'ами
func Delete(from string) squirrel.DeleteBuilder {
	return psql.Delete(from)
}
