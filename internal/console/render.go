package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/0xRadioAc7iv/go-employees/core"
)

var tableHeader = []string{
	"ID", "Name", "Salary", "Bonus", "In", "Out", "Worked(HH:MM)", "HoursDec", "TotalSalary",
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func renderTable(w io.Writer, rows []core.Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCaption(true, fmt.Sprintf("%d employee(s)", len(rows)))

	for _, r := range rows {
		table.Append([]string{
			strconv.Itoa(r.ID),
			r.Name,
			formatAmount(r.Salary),
			formatAmount(r.Bonus),
			r.InTime,
			r.OutTime,
			r.WorkedHHMM,
			formatAmount(r.WorkedDecimalHours),
			formatAmount(r.TotalSalary),
		})
	}

	table.Render()
}

func renderDetails(w io.Writer, r core.Row) {
	fmt.Fprintf(w, "ID: %d\n", r.ID)
	fmt.Fprintf(w, "Name: %s\n", r.Name)
	fmt.Fprintf(w, "Salary: %s\n", formatAmount(r.Salary))
	fmt.Fprintf(w, "Bonus: %s\n", formatAmount(r.Bonus))
	fmt.Fprintf(w, "In-Time: %s\n", r.InTime)
	fmt.Fprintf(w, "Out-Time: %s\n", r.OutTime)
	fmt.Fprintf(w, "Worked (HH:MM): %s\n", r.WorkedHHMM)
	fmt.Fprintf(w, "Worked (decimal hours): %s\n", formatAmount(r.WorkedDecimalHours))
	fmt.Fprintf(w, "Total Salary: %s\n", formatAmount(r.TotalSalary))
}
