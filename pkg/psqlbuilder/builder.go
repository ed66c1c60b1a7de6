// Package psqlbuilder exposes squirrel builders preconfigured for PostgreSQL placeholders.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return psql.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return psql.Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return psql.Delete(table)
}
