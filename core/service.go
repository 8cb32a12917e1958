package core

import (
	"errors"
	"fmt"
	"log/slog"
)

// Service implements the employee operations. Each call loads the full set
// from the Store, works on it, and saves it back if something changed; no
// state is kept between calls.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{
		store:  store,
		logger: logger,
	}
}

// FieldEdits holds the raw replacement text for each editable field. An
// empty string keeps the current value.
type FieldEdits struct {
	Name    string
	Salary  string
	Bonus   string
	InTime  string
	OutTime string
}

// UpdateResult reports what an Update did to the record.
type UpdateResult struct {
	Employee Employee      // Record as stored after the update
	Changed  []string      // Fields whose value was replaced
	Rejected []*FieldError // Fields whose new value was invalid and ignored
}

func (s *Service) Add(emp Employee) error {
	if err := ValidateEmployee(emp); err != nil {
		return err
	}

	employees, err := s.store.Load()
	if err != nil {
		return err
	}

	if indexOf(employees, emp.ID) >= 0 {
		s.logger.Info("rejected duplicate employee", "id", emp.ID)
		return fmt.Errorf("employee %d: %w", emp.ID, ErrDuplicateID)
	}

	employees = append(employees, emp)

	return s.store.Save(employees)
}

// ListAll returns every employee in stored order. An empty store yields
// ErrNoRecords rather than an empty slice.
func (s *Service) ListAll() ([]Row, error) {
	employees, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	if len(employees) == 0 {
		return nil, ErrNoRecords
	}

	rows := make([]Row, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, NewRow(emp))
	}

	return rows, nil
}

func (s *Service) Search(id int) (Row, error) {
	employees, err := s.store.Load()
	if err != nil {
		return Row{}, err
	}

	i := indexOf(employees, id)
	if i < 0 {
		return Row{}, fmt.Errorf("employee %d: %w", id, ErrNotFound)
	}

	return NewRow(employees[i]), nil
}

// Update applies each non-empty edit independently. Invalid values are
// reported in the result and leave the old value in place; they do not fail
// the call.
func (s *Service) Update(id int, edits FieldEdits) (UpdateResult, error) {
	employees, err := s.store.Load()
	if err != nil {
		return UpdateResult{}, err
	}

	i := indexOf(employees, id)
	if i < 0 {
		return UpdateResult{}, fmt.Errorf("employee %d: %w", id, ErrNotFound)
	}

	emp := &employees[i]
	result := UpdateResult{}

	if edits.Name != "" {
		name, err := ParseName(edits.Name)
		result.apply("Name", err, name != emp.Name, func() { emp.Name = name })
	}
	if edits.Salary != "" {
		salary, err := ParseAmount("Salary", edits.Salary)
		result.apply("Salary", err, salary != emp.Salary, func() { emp.Salary = salary })
	}
	if edits.Bonus != "" {
		bonus, err := ParseAmount("Bonus", edits.Bonus)
		result.apply("Bonus", err, bonus != emp.Bonus, func() { emp.Bonus = bonus })
	}
	if edits.InTime != "" {
		inTime, err := ParseClockTime("InTime", edits.InTime)
		result.apply("InTime", err, inTime != emp.InTime, func() { emp.InTime = inTime })
	}
	if edits.OutTime != "" {
		outTime, err := ParseClockTime("OutTime", edits.OutTime)
		result.apply("OutTime", err, outTime != emp.OutTime, func() { emp.OutTime = outTime })
	}

	for _, fe := range result.Rejected {
		s.logger.Info("kept previous value for rejected edit", "id", id, "field", fe.Field, "err", fe.Err)
	}

	result.Employee = *emp

	if len(result.Changed) == 0 {
		return result, nil
	}

	if err := s.store.Save(employees); err != nil {
		return result, err
	}

	return result, nil
}

func (r *UpdateResult) apply(field string, err error, differs bool, set func()) {
	if err != nil {
		var fe *FieldError
		if !errors.As(err, &fe) {
			fe = &FieldError{Field: field, Err: err}
		}
		r.Rejected = append(r.Rejected, fe)
		return
	}

	if differs {
		set()
		r.Changed = append(r.Changed, field)
	}
}

// Delete removes the first employee with the given id.
func (s *Service) Delete(id int) error {
	employees, err := s.store.Load()
	if err != nil {
		return err
	}

	i := indexOf(employees, id)
	if i < 0 {
		return fmt.Errorf("employee %d: %w", id, ErrNotFound)
	}

	employees = append(employees[:i], employees[i+1:]...)

	return s.store.Save(employees)
}

func (s *Service) Count() (int, error) {
	employees, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	return len(employees), nil
}

func indexOf(employees []Employee, id int) int {
	for i := range employees {
		if employees[i].ID == id {
			return i
		}
	}
	return -1
}
