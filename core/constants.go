package core

import "github.com/0xRadioAc7iv/go-employees/internal/record"

const (
	DefaultDataFileName = "employees.dat"
	DefaultFileMode     = 0644

	// Largest ID the on-disk int32 field can hold
	MaximumEmployeeID = 1<<31 - 1

	NameCapacityBytes = record.NameCapacityBytes
	RecordSizeBytes   = record.RecordSizeBytes
)
