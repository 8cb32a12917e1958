package core_test

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xRadioAc7iv/go-employees/core"
)

func newService(t *testing.T) (*core.Service, string) {
	t.Helper()

	path := tempDataFile(t)
	return core.NewService(core.NewFileStore(path), nil), path
}

func addAll(t *testing.T, svc *core.Service, employees []core.Employee) {
	t.Helper()

	for _, e := range employees {
		require.NoError(t, svc.Add(e))
	}
}

func TestAddThenSearch(t *testing.T) {
	svc, _ := newService(t)

	for _, e := range sampleEmployees() {
		require.NoError(t, svc.Add(e))

		row, err := svc.Search(e.ID)
		require.NoError(t, err)
		assert.Equal(t, e, row.Employee)
		assert.Equal(t, e.Salary+e.Bonus, row.TotalSalary)
	}
}

func TestAddDuplicateLeavesStoreUnchanged(t *testing.T) {
	svc, path := newService(t)
	addAll(t, svc, sampleEmployees())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	dup := core.Employee{ID: 3, Name: "Somebody Else", Salary: 1, Bonus: 1, InTime: "08:00", OutTime: "09:00"}
	err = svc.Add(dup)
	require.ErrorIs(t, err, core.ErrDuplicateID)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	n, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, len(sampleEmployees()), n)
}

func TestAddValidation(t *testing.T) {
	valid := core.Employee{ID: 1, Name: "Valid Name", Salary: 10, Bonus: 0, InTime: "09:00", OutTime: "17:00"}

	tests := []struct {
		name   string
		mutate func(*core.Employee)
		field  string
	}{
		{"zero id", func(e *core.Employee) { e.ID = 0 }, "ID"},
		{"negative id", func(e *core.Employee) { e.ID = -5 }, "ID"},
		{"id beyond int32", func(e *core.Employee) { e.ID = core.MaximumEmployeeID + 1 }, "ID"},
		{"empty name", func(e *core.Employee) { e.Name = "" }, "Name"},
		{"name over capacity", func(e *core.Employee) { e.Name = strings.Repeat("n", core.NameCapacityBytes+1) }, "Name"},
		{"name with NUL", func(e *core.Employee) { e.Name = "a\x00b" }, "Name"},
		{"negative salary", func(e *core.Employee) { e.Salary = -0.01 }, "Salary"},
		{"NaN salary", func(e *core.Employee) { e.Salary = math.NaN() }, "Salary"},
		{"infinite bonus", func(e *core.Employee) { e.Bonus = math.Inf(1) }, "Bonus"},
		{"negative bonus", func(e *core.Employee) { e.Bonus = -1 }, "Bonus"},
		{"bad in time", func(e *core.Employee) { e.InTime = "24:00" }, "InTime"},
		{"bad out time", func(e *core.Employee) { e.OutTime = "7:00" }, "OutTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, path := newService(t)

			e := valid
			tt.mutate(&e)

			err := svc.Add(e)
			require.ErrorIs(t, err, core.ErrValidation)

			var fe *core.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)

			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "nothing should be written for invalid input")
		})
	}
}

func TestAddMaximumID(t *testing.T) {
	svc, _ := newService(t)

	e := core.Employee{ID: core.MaximumEmployeeID, Name: "Max", Salary: 0, Bonus: 0, InTime: "00:00", OutTime: "00:00"}
	require.NoError(t, svc.Add(e))

	row, err := svc.Search(core.MaximumEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, e, row.Employee)
}

func TestAddNameAtCapacityRoundTrips(t *testing.T) {
	svc, _ := newService(t)

	name := strings.Repeat("é", core.NameCapacityBytes/2)
	e := core.Employee{ID: 1, Name: name, Salary: 1, Bonus: 1, InTime: "10:00", OutTime: "11:00"}
	require.NoError(t, svc.Add(e))

	row, err := svc.Search(1)
	require.NoError(t, err)
	assert.Equal(t, name, row.Name)
}

func TestAddAppendsInInsertionOrder(t *testing.T) {
	svc, _ := newService(t)
	addAll(t, svc, sampleEmployees())

	rows, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, len(sampleEmployees()))

	for i, e := range sampleEmployees() {
		assert.Equal(t, e, rows[i].Employee)
	}
}

func TestListAllEmptySignalsNoRecords(t *testing.T) {
	svc, _ := newService(t)

	rows, err := svc.ListAll()
	require.ErrorIs(t, err, core.ErrNoRecords)
	assert.Nil(t, rows)
}

func TestListAllDerivedValues(t *testing.T) {
	svc, _ := newService(t)
	addAll(t, svc, sampleEmployees())

	rows, err := svc.ListAll()
	require.NoError(t, err)

	assert.Equal(t, 510, rows[0].WorkedMinutes)
	assert.Equal(t, "8:30", rows[0].WorkedHHMM)
	assert.Equal(t, 8.5, rows[0].WorkedDecimalHours)
	assert.Equal(t, 7500.0, rows[0].TotalSalary)

	assert.Equal(t, 480, rows[1].WorkedMinutes)
	assert.Equal(t, "8:00", rows[1].WorkedHHMM)
	assert.Equal(t, 8.0, rows[1].WorkedDecimalHours)

	assert.Equal(t, 1439, rows[2].WorkedMinutes)
	assert.Equal(t, "23:59", rows[2].WorkedHHMM)
}

func TestSearchNotFound(t *testing.T) {
	svc, _ := newService(t)
	addAll(t, svc, sampleEmployees())

	_, err := svc.Search(999)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newService(t)
	addAll(t, svc, sampleEmployees())

	require.NoError(t, svc.Delete(3))

	_, err := svc.Search(3)
	require.ErrorIs(t, err, core.ErrNotFound)

	rows, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, len(sampleEmployees())-1)

	assert.Equal(t, sampleEmployees()[0], rows[0].Employee)
	assert.Equal(t, sampleEmployees()[2], rows[1].Employee)
}

func TestDeleteNotFoundLeavesStoreUnchanged(t *testing.T) {
	svc, path := newService(t)
	addAll(t, svc, sampleEmployees())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(42), core.ErrNotFound)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteLastRecordLeavesEmptyStore(t *testing.T) {
	svc, _ := newService(t)
	addAll(t, svc, sampleEmployees()[:1])

	require.NoError(t, svc.Delete(10))

	_, err := svc.ListAll()
	require.ErrorIs(t, err, core.ErrNoRecords)
}

func TestUpdateAllBlankIsNoOp(t *testing.T) {
	svc, path := newService(t)
	addAll(t, svc, sampleEmployees())

	before, err := os.ReadFile(path)
	require.NoError(t, err)
	beforeInfo, err := os.Stat(path)
	require.NoError(t, err)

	result, err := svc.Update(3, core.FieldEdits{})
	require.NoError(t, err)
	assert.Empty(t, result.Changed)
	assert.Empty(t, result.Rejected)
	assert.Equal(t, sampleEmployees()[1], result.Employee)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	afterInfo, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, beforeInfo.ModTime(), afterInfo.ModTime())
}

func TestUpdateAllFields(t *testing.T) {
	svc, _ := newService(t)
	addAll(t, svc, sampleEmployees())

	result, err := svc.Update(10, core.FieldEdits{
		Name:    "Augusta Ada King",
		Salary:  " 7200.5 ",
		Bonus:   "0",
		InTime:  "21:15",
		OutTime: "05:45",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Salary", "Bonus", "InTime", "OutTime"}, result.Changed)
	assert.Empty(t, result.Rejected)

	want := core.Employee{ID: 10, Name: "Augusta Ada King", Salary: 7200.5, Bonus: 0, InTime: "21:15", OutTime: "05:45"}
	assert.Equal(t, want, result.Employee)

	row, err := svc.Search(10)
	require.NoError(t, err)
	assert.Equal(t, want, row.Employee)
	assert.Equal(t, "8:30", row.WorkedHHMM)
}

func TestUpdateRejectsInvalidFieldsIndependently(t *testing.T) {
	svc, _ := newService(t)
	addAll(t, svc, sampleEmployees())

	result, err := svc.Update(3, core.FieldEdits{
		Salary:  "-100",
		Bonus:   "99.5",
		InTime:  "9am",
		OutTime: "07:00",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bonus", "OutTime"}, result.Changed)
	require.Len(t, result.Rejected, 2)

	assert.Equal(t, "Salary", result.Rejected[0].Field)
	assert.Equal(t, "-100", result.Rejected[0].Value)
	assert.ErrorIs(t, result.Rejected[0], core.ErrValidation)
	assert.Equal(t, "InTime", result.Rejected[1].Field)

	row, err := svc.Search(3)
	require.NoError(t, err)
	assert.Equal(t, 8100.75, row.Salary)
	assert.Equal(t, 99.5, row.Bonus)
	assert.Equal(t, "22:00", row.InTime)
	assert.Equal(t, "07:00", row.OutTime)
}

func TestUpdateOnlyInvalidFieldsDoesNotSave(t *testing.T) {
	svc, path := newService(t)
	addAll(t, svc, sampleEmployees())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	result, err := svc.Update(7, core.FieldEdits{Salary: "abc", Name: strings.Repeat("x", core.NameCapacityBytes+1)})
	require.NoError(t, err)
	assert.Empty(t, result.Changed)
	assert.Len(t, result.Rejected, 2)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newService(t)
	addAll(t, svc, sampleEmployees())

	_, err := svc.Update(404, core.FieldEdits{Name: "Nobody"})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestStorageWriteFailureIsReturned(t *testing.T) {
	svc := core.NewService(core.NewFileStore(t.TempDir()+"/missing/employees.dat"), nil)

	err := svc.Add(sampleEmployees()[0])
	require.ErrorIs(t, err, core.ErrStorageWrite)
}

// memStore is a Store kept in memory, used to check that the service
// reloads on every call instead of caching.
type memStore struct {
	employees []core.Employee
	loads     int
	saves     int
}

func (m *memStore) Load() ([]core.Employee, error) {
	m.loads++
	return append([]core.Employee(nil), m.employees...), nil
}

func (m *memStore) Save(employees []core.Employee) error {
	m.saves++
	m.employees = append([]core.Employee(nil), employees...)
	return nil
}

func TestServiceReloadsOnEveryCall(t *testing.T) {
	store := &memStore{}
	svc := core.NewService(store, nil)

	require.NoError(t, svc.Add(sampleEmployees()[0]))

	// Changed behind the service's back.
	store.employees = append(store.employees, sampleEmployees()[1])

	row, err := svc.Search(sampleEmployees()[1].ID)
	require.NoError(t, err)
	assert.Equal(t, sampleEmployees()[1], row.Employee)

	assert.Equal(t, 2, store.loads)
	assert.Equal(t, 1, store.saves)
}
