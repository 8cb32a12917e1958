package core

import (
	"github.com/0xRadioAc7iv/go-employees/internal/record"
	"github.com/0xRadioAc7iv/go-employees/internal/shift"
)

// Employee is a single stored record. The validate tags are checked by
// ValidateEmployee before anything reaches the data file.
type Employee struct {
	ID      int     `validate:"gte=1,lte=2147483647"`
	Name    string  `validate:"required,recordname"`
	Salary  float64 `validate:"finiteamount,gte=0"`
	Bonus   float64 `validate:"finiteamount,gte=0"`
	InTime  string  `validate:"clocktime"`
	OutTime string  `validate:"clocktime"`
}

func (e Employee) TotalSalary() float64 {
	return e.Salary + e.Bonus
}

// Row is an Employee together with the values derived from it for display.
type Row struct {
	Employee
	WorkedMinutes      int
	WorkedHHMM         string
	WorkedDecimalHours float64
	TotalSalary        float64
}

// UnknownWorkedHHMM is shown for records whose stored times do not parse,
// which only happens if the data file was written by something else.
const UnknownWorkedHHMM = "?:??"

func NewRow(e Employee) Row {
	row := Row{
		Employee:    e,
		TotalSalary: e.TotalSalary(),
		WorkedHHMM:  UnknownWorkedHHMM,
	}

	minutes, err := shift.MinutesBetween(e.InTime, e.OutTime)
	if err != nil {
		return row
	}

	row.WorkedMinutes = minutes
	row.WorkedHHMM = shift.FormatMinutesToHHMM(minutes)
	row.WorkedDecimalHours = shift.MinutesToDecimalHours(minutes)

	return row
}

func employeeToRecord(e Employee) record.EmployeeRecord {
	return record.CreateRecord(int32(e.ID), e.Name, e.Salary, e.Bonus, e.InTime, e.OutTime)
}

func employeeFromRecord(r *record.EmployeeRecord) Employee {
	return Employee{
		ID:      int(r.ID),
		Name:    r.NameString(),
		Salary:  r.Salary,
		Bonus:   r.Bonus,
		InTime:  r.InTimeString(),
		OutTime: r.OutTimeString(),
	}
}
