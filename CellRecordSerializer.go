package main

import (
	"collabSheet/contracts"
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized cell record")

const idLengthSize = 2

// CellRecordSerializer packs a record as {uint16 LE id length}{id}{text}
type CellRecordSerializer struct {
}

func NewCellRecordSerializer() *CellRecordSerializer {
	return &CellRecordSerializer{}
}

func (s *CellRecordSerializer) Marshal(record contracts.CellRecord) []byte {
	serializedData := make([]byte, 0, idLengthSize+len(record.Id)+len(record.Text))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(record.Id)))
	serializedData = append(serializedData, record.Id...)
	serializedData = append(serializedData, record.Text...)
	return serializedData
}

func (s *CellRecordSerializer) Unmarshal(data []byte) (record contracts.CellRecord, err error) {
	if len(data) < idLengthSize {
		return record, fmt.Errorf("%w: should be at least %d bytes (data: %q)", SerializerError, idLengthSize, data)
	}

	idLength := int(binary.LittleEndian.Uint16(data))
	if len(data) < idLength+idLengthSize {
		return record, fmt.Errorf("%w: id length exceeds record size (idLength: %d; data: %q)", SerializerError, idLength, data)
	}

	record.Id = string(data[idLengthSize : idLength+idLengthSize])
	record.Text = string(data[idLength+idLengthSize:])
	return
}
