package contract

import "time"

// PickApplicable selects the contract that pays (month, year): the one
// with the latest start date on or before the first day of that month.
// EndDate is not consulted, so an expired contract can still be picked;
// that matches the payroll rules this system inherited. Returns nil
// when no contract qualifies, which excludes the employee from the run.
//
// If several contracts share the maximal start date the result is
// whichever comes first in the input; callers must not rely on the
// order.
func PickApplicable(contracts []Contract, month int, year int) *Contract {
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	var picked *Contract
	for i := range contracts {
		c := &contracts[i]
		if c.StartDate.After(firstOfMonth) {
			continue
		}
		if picked == nil || c.StartDate.After(picked.StartDate) {
			picked = c
		}
	}
	return picked
}
