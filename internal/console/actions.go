package console

import (
	"errors"
	"fmt"

	"github.com/0xRadioAc7iv/go-employees/core"
)

// Each action returns only input errors. Service failures are reported to
// the user and the menu carries on.

func (c *Console) add() error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Add New Employee:")

	id, err := promptUntilValid(c, "Enter Employee ID (positive integer): ", core.ParseID)
	if err != nil {
		return err
	}

	// Checked up front so the user is not asked for fields that will be thrown away.
	if _, err := c.svc.Search(id); err == nil {
		c.failure.Fprintf(c.out, "Employee with ID %d already exists. Cannot add duplicate.\n", id)
		return nil
	} else if !errors.Is(err, core.ErrNotFound) {
		c.reportError(err)
		return nil
	}

	name, err := promptUntilValid(c, "Enter Name (non-empty): ", core.ParseName)
	if err != nil {
		return err
	}
	salary, err := promptUntilValid(c, "Enter Salary (>= 0): ", amountParser("Salary"))
	if err != nil {
		return err
	}
	bonus, err := promptUntilValid(c, "Enter Bonus (>= 0): ", amountParser("Bonus"))
	if err != nil {
		return err
	}

	// Out-time earlier than in-time is an overnight shift, not an error.
	inTime, err := promptUntilValid(c, "Enter In-Time (HH:MM 24-hour format): ", clockTimeParser("InTime"))
	if err != nil {
		return err
	}
	outTime, err := promptUntilValid(c, "Enter Out-Time (HH:MM 24-hour format): ", clockTimeParser("OutTime"))
	if err != nil {
		return err
	}

	emp := core.Employee{
		ID:      id,
		Name:    name,
		Salary:  salary,
		Bonus:   bonus,
		InTime:  inTime,
		OutTime: outTime,
	}

	if err := c.svc.Add(emp); err != nil {
		if errors.Is(err, core.ErrDuplicateID) {
			c.failure.Fprintf(c.out, "Employee with ID %d already exists. Cannot add duplicate.\n", id)
			return nil
		}
		c.reportError(err)
		return nil
	}

	c.success.Fprintln(c.out, "Employee added successfully.")
	return nil
}

func (c *Console) displayAll() error {
	rows, err := c.svc.ListAll()
	if err != nil {
		if errors.Is(err, core.ErrNoRecords) {
			fmt.Fprintln(c.out)
			c.notice.Fprintln(c.out, "No employees to display.")
			return nil
		}
		c.reportError(err)
		return nil
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "All Employees:")
	renderTable(c.out, rows)

	return nil
}

func (c *Console) search(arg string) error {
	fmt.Fprintln(c.out)

	id, err := c.readID("Enter Employee ID to search: ", arg)
	if err != nil {
		return err
	}

	row, err := c.svc.Search(id)
	if err != nil {
		c.reportLookupError(id, err)
		return nil
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Employee Found:")
	renderDetails(c.out, row)

	return nil
}

func (c *Console) update(arg string) error {
	fmt.Fprintln(c.out)

	id, err := c.readID("Enter Employee ID to update: ", arg)
	if err != nil {
		return err
	}

	row, err := c.svc.Search(id)
	if err != nil {
		c.reportLookupError(id, err)
		return nil
	}

	fmt.Fprintf(c.out, "Editing Employee: %s\n", row.Name)
	fmt.Fprintln(c.out, "Press enter without typing anything to keep the current value.")

	var edits core.FieldEdits

	fields := []struct {
		current string
		prompt  string
		dst     *string
	}{
		{"Current Name: " + row.Name, "New Name: ", &edits.Name},
		{"Current Salary: " + formatAmount(row.Salary), "New Salary (or blank to keep): ", &edits.Salary},
		{"Current Bonus: " + formatAmount(row.Bonus), "New Bonus (or blank to keep): ", &edits.Bonus},
		{"Current In-Time: " + row.InTime, "New In-Time (HH:MM or blank to keep): ", &edits.InTime},
		{"Current Out-Time: " + row.OutTime, "New Out-Time (HH:MM or blank to keep): ", &edits.OutTime},
	}

	for _, f := range fields {
		fmt.Fprintln(c.out, f.current)
		line, err := c.in.Prompt(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = line
	}

	result, err := c.svc.Update(id, edits)
	for _, fe := range result.Rejected {
		c.notice.Fprintf(c.out, "%v. Keeping old value.\n", fe)
	}
	if err != nil {
		c.reportLookupError(id, err)
		return nil
	}

	if len(result.Changed) == 0 {
		c.notice.Fprintln(c.out, "No changes made.")
		return nil
	}

	c.success.Fprintln(c.out, "Employee updated successfully.")
	return nil
}

func (c *Console) delete(arg string) error {
	fmt.Fprintln(c.out)

	id, err := c.readID("Enter Employee ID to delete: ", arg)
	if err != nil {
		return err
	}

	if err := c.svc.Delete(id); err != nil {
		c.reportLookupError(id, err)
		return nil
	}

	c.success.Fprintln(c.out, "Employee deleted successfully.")
	return nil
}

func (c *Console) reportLookupError(id int, err error) {
	if errors.Is(err, core.ErrNotFound) {
		c.failure.Fprintf(c.out, "Employee with ID %d not found.\n", id)
		return
	}
	c.reportError(err)
}
