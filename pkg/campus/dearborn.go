package campus

import (
	"time"

	"github.com/umleo/schedview/pkg/constants"
)

// dearbornDayCodes are the letter codes that count as "meets on that day" in
// the Dearborn extract. The extract mixes per-day letters with a generic "X";
// all of them mean present.
var dearbornDayCodes = map[string]bool{
	"M": true, "T": true, "W": true, "R": true, "F": true, "X": true,
}

// dearborn's extract uses full descriptive headers and letter-coded day
// indicators. It is the only campus that derives a composite Location from
// the building code, and the only extract exported with trailing blank
// columns and padded headers.
var dearborn = &Campus{
	ID:            Dearborn,
	Name:          "Dearborn",
	SourceFile:    constants.DearbornFile,
	IDColumn:      "Instructor ID",
	SubjectColumn: "Subject",
	cleanHeaders:  true,
	Rename: map[string]string{
		"Subject Code":                  "Subject",
		"SEQ Number":                    "Seq Number",
		"Primary Instructor ID":         "Instructor ID",
		"Primary Instructor Last Name":  "Last",
		"Primary Instructor First Name": "First",
		"Room Code":                     "Room",
		"Building Code":                 "Bldg",
		"Monday Indicator":              "Monday",
		"Tuesday Indicator":             "Tuesday",
		"Wednesday Indicator":           "Wednesday",
		"Thursday Indicator":            "Thursday",
		"Friday Indicator":              "Friday",
		"Saturday Indicator":            "Saturday",
		"Sunday Indicator":              "Sunday",
	},
	DayColumns: map[time.Weekday]string{
		time.Monday:    "Monday",
		time.Tuesday:   "Tuesday",
		time.Wednesday: "Wednesday",
		time.Thursday:  "Thursday",
		time.Friday:    "Friday",
	},
	DayConvention:  `cell in {M, T, W, R, F, X}`,
	dayPresent:     func(cell string) bool { return dearbornDayCodes[cell] },
	DeriveLocation: true,
	DropColumns: []string{
		"Class Instr ID", "Facility ID", "Facility Descr", "Employee Last Name", "Employee First Name",
		"UM ID", "Rec #", "Class Indc", "Job Code", "Hire Begin Date", "Appointment Start Date",
		"Appointment End Date", "Comp Frequency", "Appointment Period", "Appointment Period Descr",
		"Comp Rate", "Home Address 1", "Home Address 2", "Home Address 3", "Home City", "Home State",
		"Home Postal", "Home County", "Home Country", "Home Phone", "UM Address 1", "UM Address 2",
		"UM Address 3", "UM City", "UM State", "UM Postal", "UM County", "UM Country", "UM Phone",
		"Employee Status", "Employeee Status Descr", "uniqname", "Class Mtg Nbr",
		"Term", "Class Nbr", "Department ID", "Employee Status Descr",
		"Term Code", "Seq Number", "Instructor ID",
	},
}
