package main

import (
	"collabSheet/contracts"
	"encoding/binary"
	"fmt"
	"go.etcd.io/bbolt"
)

const DefaultRows = 10
const DefaultCols = 10

var sheetBucket = []byte("spreadsheet")

type SheetRepository struct {
	db         *bbolt.DB
	serializer contracts.CellSerializer
	rows       int
	cols       int
}

func NewSheetRepository(db *bbolt.DB, serializer contracts.CellSerializer, rows int, cols int) *SheetRepository {
	return &SheetRepository{
		db:         db,
		serializer: serializer,
		rows:       rows,
		cols:       cols,
	}
}

// GetGrid returns the stored spreadsheet, seeding it with its own cell ids (A1, B1, ...) on first access.
func (s *SheetRepository) GetGrid() (grid contracts.Grid, err error) {
	var seeded bool
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetBucket)
		seeded = bucket != nil && !isEmptyBucket(bucket)
		if seeded {
			grid, err = s.readGrid(bucket)
		}
		return err
	})

	if err != nil || seeded {
		return
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := s.ensureSeeded(tx)
		if err != nil {
			return err
		}

		grid, err = s.readGrid(bucket)
		return err
	})

	return
}

// SaveGrid overwrites every stored cell that has a value in data. Cells outside the stored grid are ignored.
func (s *SheetRepository) SaveGrid(data contracts.Grid) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := s.ensureSeeded(tx)
		if err != nil {
			return err
		}

		for row, rowData := range data {
			for col, text := range rowData {
				key := positionKey(row, col)
				if bucket.Get(key) == nil {
					continue
				}

				err = bucket.Put(key, s.serializer.Marshal(contracts.CellRecord{Id: contracts.FormatCellId(row, col), Text: text}))
				if err != nil {
					return fmt.Errorf("save %s: %w", contracts.FormatCellId(row, col), err)
				}
			}
		}

		return nil
	})
}

func (s *SheetRepository) SetCell(cellId string, text string) error {
	row, col, err := contracts.ParseCellId(cellId)
	if err != nil {
		return err
	}

	key := positionKey(row, col)
	serializedData := s.serializer.Marshal(contracts.CellRecord{Id: contracts.FormatCellId(row, col), Text: text})

	return s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := s.ensureSeeded(tx)
		if err != nil {
			return err
		}

		if bucket.Get(key) == nil {
			return fmt.Errorf("%s: %w", cellId, contracts.CellOutOfRangeError)
		}

		return bucket.Put(key, serializedData)
	})
}

func (s *SheetRepository) Close() error {
	return s.db.Close()
}

func (s *SheetRepository) ensureSeeded(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	bucket, err := tx.CreateBucketIfNotExists(sheetBucket)
	if err != nil || !isEmptyBucket(bucket) {
		return bucket, err
	}

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			cellId := contracts.FormatCellId(row, col)
			err = bucket.Put(positionKey(row, col), s.serializer.Marshal(contracts.CellRecord{Id: cellId, Text: cellId}))
			if err != nil {
				return nil, err
			}
		}
	}

	return bucket, nil
}

func (s *SheetRepository) readGrid(bucket *bbolt.Bucket) (contracts.Grid, error) {
	grid := contracts.Grid{}

	c := bucket.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		row, col := parsePositionKey(k)
		record, err := s.serializer.Unmarshal(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", contracts.FormatCellId(row, col), err)
		}

		for len(grid) <= row {
			grid = append(grid, []string{})
		}
		for len(grid[row]) <= col {
			grid[row] = append(grid[row], "")
		}
		grid[row][col] = record.Text
	}

	return grid, nil
}

func isEmptyBucket(bucket *bbolt.Bucket) bool {
	k, _ := bucket.Cursor().First()
	return k == nil
}

// positionKey is big-endian so a bucket cursor walks the grid row by row
func positionKey(row int, col int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint32(key, uint32(row))
	binary.BigEndian.PutUint32(key[4:], uint32(col))
	return key
}

func parsePositionKey(key []byte) (row int, col int) {
	return int(binary.BigEndian.Uint32(key)), int(binary.BigEndian.Uint32(key[4:]))
}
