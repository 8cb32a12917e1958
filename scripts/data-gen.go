/*
	Basic Script that fills a data file with random employees, for trying out
	the menu against a realistic amount of data.
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jaswdr/faker"
	"github.com/spf13/pflag"

	"github.com/0xRadioAc7iv/go-employees/core"
	"github.com/0xRadioAc7iv/go-employees/internal/lock"
)

const (
	defaultCount   = 50
	defaultStartID = 1000

	// Amounts are generated in cents
	minSalaryCents = 2_000_000
	maxSalaryCents = 12_000_000
	maxBonusCents  = 1_500_000

	progressEvery = 10
)

func main() {
	file := pflag.StringP("file", "f", core.DefaultDataFileName, "employee data file to append to")
	count := pflag.IntP("count", "n", defaultCount, "number of employees to generate")
	startID := pflag.Int("start-id", defaultStartID, "first employee ID to try")
	pflag.Parse()

	if err := run(*file, *count, *startID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(file string, count, startID int) error {
	start := time.Now()
	fmt.Printf("Generating %d employees into %s\n", count, file)

	lockFile, err := lock.LockDataFile(file)
	if err != nil {
		return err
	}
	defer lock.UnlockDataFile(lockFile)

	svc := core.NewService(core.NewFileStore(file), nil)
	gen := faker.New()

	added, skipped := 0, 0
	for id := startID; added < count && id <= core.MaximumEmployeeID; id++ {
		err := svc.Add(randomEmployee(gen, id))
		switch {
		case err == nil:
			added++
		case errors.Is(err, core.ErrDuplicateID), errors.Is(err, core.ErrValidation):
			skipped++
			continue
		default:
			return err
		}

		if added%progressEvery == 0 {
			fmt.Printf("added %d employees\n", added)
		}
	}

	total, err := svc.Count()
	if err != nil {
		return err
	}

	fmt.Printf("Added %d, skipped %d, %d stored, finished in %v\n", added, skipped, total, time.Since(start))
	return nil
}

func randomEmployee(gen faker.Faker, id int) core.Employee {
	person := gen.Person()

	inHour := gen.IntBetween(0, 23)
	shiftHours := gen.IntBetween(4, 12)
	minute := gen.RandomIntElement([]int{0, 15, 30, 45})

	return core.Employee{
		ID:      id,
		Name:    person.FirstName() + " " + person.LastName(),
		Salary:  float64(gen.IntBetween(minSalaryCents, maxSalaryCents)) / 100,
		Bonus:   float64(gen.IntBetween(0, maxBonusCents)) / 100,
		InTime:  fmt.Sprintf("%02d:%02d", inHour, minute),
		OutTime: fmt.Sprintf("%02d:%02d", (inHour+shiftHours)%24, minute),
	}
}
