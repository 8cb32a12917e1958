package record

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// EmployeeRecord is the on-disk form of one employee. Every field has a
// fixed width so that a data file is a plain concatenation of records.
type EmployeeRecord struct {
	ID      int32                   // Business key
	Name    [NameCapacityBytes]byte // UTF-8, NUL padded
	Salary  float64
	Bonus   float64
	InTime  [ClockTimeSizeBytes]byte // "HH:MM"
	OutTime [ClockTimeSizeBytes]byte // "HH:MM"
}

const (
	IDSizeBytes        = 4
	NameCapacityBytes  = 64
	AmountSizeBytes    = 8
	ClockTimeSizeBytes = 5
)

// ID (4) + Name (64) + Salary (8) + Bonus (8) + InTime (5) + OutTime (5)
const RecordSizeBytes = IDSizeBytes + NameCapacityBytes + 2*AmountSizeBytes + 2*ClockTimeSizeBytes

func CreateRecord(id int32, name string, salary, bonus float64, inTime, outTime string) EmployeeRecord {
	record := EmployeeRecord{
		ID:     id,
		Salary: salary,
		Bonus:  bonus,
	}

	putText(record.Name[:], name)
	putText(record.InTime[:], inTime)
	putText(record.OutTime[:], outTime)

	return record
}

func (r *EmployeeRecord) NameString() string {
	return textFrom(r.Name[:])
}

func (r *EmployeeRecord) InTimeString() string {
	return textFrom(r.InTime[:])
}

func (r *EmployeeRecord) OutTimeString() string {
	return textFrom(r.OutTime[:])
}

func EncodeRecordToBytes(record *EmployeeRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(RecordSizeBytes)

	if err := binary.Write(buf, binary.LittleEndian, record.ID); err != nil {
		return nil, err
	}
	if _, err := buf.Write(record.Name[:]); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, record.Salary); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, record.Bonus); err != nil {
		return nil, err
	}
	if _, err := buf.Write(record.InTime[:]); err != nil {
		return nil, err
	}
	if _, err := buf.Write(record.OutTime[:]); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func DecodeRecordFromBytes(data []byte) (*EmployeeRecord, error) {
	if len(data) != RecordSizeBytes {
		return nil, fmt.Errorf("invalid record size: got %d bytes, want %d", len(data), RecordSizeBytes)
	}

	var record EmployeeRecord

	buf := bytes.NewReader(data)

	if err := binary.Read(buf, binary.LittleEndian, &record.ID); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &record.Name); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &record.Salary); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &record.Bonus); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &record.InTime); err != nil {
		return nil, err
	}
	if err := binary.Read(buf, binary.LittleEndian, &record.OutTime); err != nil {
		return nil, err
	}

	return &record, nil
}

// putText copies s into dst, cutting it at the last rune boundary that fits.
// Unused trailing bytes stay zero.
func putText(dst []byte, s string) {
	b := []byte(s)
	if len(b) > len(dst) {
		cut := len(dst)
		for cut > 0 && !utf8.RuneStart(b[cut]) {
			cut--
		}
		b = b[:cut]
	}
	copy(dst, b)
}

func textFrom(src []byte) string {
	return string(bytes.TrimRight(src, "\x00"))
}
