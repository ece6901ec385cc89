package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"fyyur/internal/interfaces"
)

// withTx runs fn inside a transaction. fn's error rolls the transaction back
// and is returned unchanged; otherwise the transaction is committed.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("Error rolling back transaction: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE pattern matching the
// term anywhere in the column. An empty term matches every row.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func nonNil(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}

// requireRow reports ErrNotFound when a write touched no rows.
func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}
