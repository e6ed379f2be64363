package campus

import (
	"time"

	"github.com/umleo/schedview/pkg/constants"
)

// annArbor's extract is already close to the canonical schema: no renames,
// day presence is "Y" under abbreviated day columns.
var annArbor = &Campus{
	ID:            AnnArbor,
	Name:          "Ann Arbor",
	SourceFile:    constants.AnnArborFile,
	IDColumn:      "Class Instr ID",
	SubjectColumn: "Subject",
	DayColumns: map[time.Weekday]string{
		time.Monday:    "Mon",
		time.Tuesday:   "Tues",
		time.Wednesday: "Wed",
		time.Thursday:  "Thurs",
		time.Friday:    "Fri",
	},
	DayConvention: `cell equals "Y"`,
	dayPresent:    func(cell string) bool { return cell == "Y" },
	DropColumns: []string{
		"Class Instr ID", "Facility ID",
		"Employee Last Name", "Employee First Name",
		"UM ID", "Rec #", "Class Indc", "Job Code", "Hire Begin Date", "Appointment Start Date",
		"Appointment End Date", "Comp Frequency", "Appointment Period", "Appointment Period Descr",
		"Comp Rate", "Home Address 1", "Home Address 2", "Home Address 3", "Home City", "Home State",
		"Home Postal", "Home County", "Home Country", "Home Phone", "UM Address 1", "UM Address 2",
		"UM Address 3", "UM City", "UM State", "UM Postal", "UM County", "UM Country", "UM Phone",
		"Employee Status", "Employeee Status Descr", "uniqname", "Class Mtg Nbr",
		"Term", "Class Nbr", "Department ID", "Employee Status Descr",
	},
}
