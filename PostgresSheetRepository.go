package main

import (
	"collabSheet/contracts"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const createSpreadsheetsTable = `CREATE TABLE IF NOT EXISTS spreadsheets (
	id SERIAL PRIMARY KEY,
	row_index INTEGER NOT NULL,
	col_index INTEGER NOT NULL,
	value TEXT NOT NULL DEFAULT '',
	UNIQUE (row_index, col_index)
)`

// PostgresSheetRepository keeps one row per cell, like the relational layout the spreadsheet started with.
type PostgresSheetRepository struct {
	db   *sql.DB
	rows int
	cols int
}

func NewPostgresSheetRepository(databaseUrl string, rows int, cols int) (*PostgresSheetRepository, error) {
	db, err := sql.Open("postgres", databaseUrl)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err == nil {
		_, err = db.Exec(createSpreadsheetsTable)
	}

	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return &PostgresSheetRepository{db: db, rows: rows, cols: cols}, nil
}

func (s *PostgresSheetRepository) GetGrid() (contracts.Grid, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}

	result, err := s.db.Query(`SELECT row_index, col_index, value FROM spreadsheets ORDER BY row_index, col_index`)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	grid := contracts.Grid{}
	var row, col int
	var value string
	for result.Next() {
		if err = result.Scan(&row, &col, &value); err != nil {
			return nil, err
		}

		for len(grid) <= row {
			grid = append(grid, []string{})
		}
		for len(grid[row]) <= col {
			grid[row] = append(grid[row], "")
		}
		grid[row][col] = value
	}

	return grid, result.Err()
}

func (s *PostgresSheetRepository) SaveGrid(data contracts.Grid) (err error) {
	if err = s.ensureSeeded(); err != nil {
		return
	}

	tx, err := s.db.Begin()
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	statement, err := tx.Prepare(`UPDATE spreadsheets SET value = $1 WHERE row_index = $2 AND col_index = $3`)
	if err != nil {
		return
	}
	defer statement.Close()

	for row, rowData := range data {
		for col, text := range rowData {
			if _, err = statement.Exec(text, row, col); err != nil {
				return fmt.Errorf("save %s: %w", contracts.FormatCellId(row, col), err)
			}
		}
	}

	return tx.Commit()
}

func (s *PostgresSheetRepository) SetCell(cellId string, text string) error {
	row, col, err := contracts.ParseCellId(cellId)
	if err != nil {
		return err
	}

	if err = s.ensureSeeded(); err != nil {
		return err
	}

	result, err := s.db.Exec(`UPDATE spreadsheets SET value = $1 WHERE row_index = $2 AND col_index = $3`, text, row, col)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		err = fmt.Errorf("%s: %w", cellId, contracts.CellOutOfRangeError)
	}

	return err
}

func (s *PostgresSheetRepository) Close() error {
	return s.db.Close()
}

func (s *PostgresSheetRepository) ensureSeeded() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM spreadsheets`).Scan(&count); err != nil || count > 0 {
		return err
	}

	err := s.seed()

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		// seeded concurrently by another request
		return nil
	}

	return err
}

func (s *PostgresSheetRepository) seed() (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	statement, err := tx.Prepare(pq.CopyIn("spreadsheets", "row_index", "col_index", "value"))
	if err != nil {
		return
	}

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			if _, err = statement.Exec(row, col, contracts.FormatCellId(row, col)); err != nil {
				_ = statement.Close()
				return
			}
		}
	}

	if _, err = statement.Exec(); err != nil {
		_ = statement.Close()
		return
	}

	if err = statement.Close(); err != nil {
		return
	}

	return tx.Commit()
}
