package campus

import (
	"time"

	"github.com/umleo/schedview/pkg/constants"
)

// flint's extract uses UPPER_SNAKE headers; day presence is "X" under
// abbreviated day columns once renamed.
var flint = &Campus{
	ID:            Flint,
	Name:          "Flint",
	SourceFile:    constants.FlintFile,
	IDColumn:      "Instructor ID",
	SubjectColumn: "Subject",
	Rename: map[string]string{
		"TERM":               "Term",
		"TERM_DESCRSHORT":    "Term Descrshort",
		"CRSE_DESCR":         "Crse Descr",
		"SUBJECT":            "Subject",
		"CATALOG_NUMBR":      "Catalog Nbr",
		"CLASS_INST_ID":      "Instructor ID",
		"CLASS_INSTR_NAME":   "Class Instr Name",
		"CLASS_MTG_NBR":      "Class Mtg Nbr",
		"FACILITY_ID":        "Facility ID",
		"FACILITY_DESC":      "Facility Descr",
		"MEETING_START_DT":   "Meeting Start Dt",
		"MEETING_END_DT":     "Meeting End Dt",
		"MEETING_TIME_START": "Meeting Time Start",
		"MEETING_TIME_END":   "Meeting Time End",
		"MON":                "Mon",
		"TUES":               "Tues",
		"WED":                "Wed",
		"THURS":              "Thurs",
		"FRI":                "Fri",
		"SAT":                "Sat",
		"SUN":                "Sun",
		"JOBCODE_DESCR":      "Job Code Descr",
	},
	DayColumns: map[time.Weekday]string{
		time.Monday:    "Mon",
		time.Tuesday:   "Tues",
		time.Wednesday: "Wed",
		time.Thursday:  "Thurs",
		time.Friday:    "Fri",
	},
	DayConvention: `cell equals "X"`,
	dayPresent:    func(cell string) bool { return cell == "X" },
	DropColumns: []string{
		"Instructor ID", "Facility ID", "Employee Last Name", "Employee First Name",
		"UM ID", "Rec #", "Class Indc", "Job Code", "Hire Begin Date", "Appointment Start Date",
		"Appointment End Date", "Comp Frequency", "Appointment Period", "Appointment Period Descr",
		"Comp Rate", "Home Address 1", "Home Address 2", "Home Address 3", "Home City", "Home State",
		"Home Postal", "Home County", "Home Country", "Home Phone", "UM Address 1", "UM Address 2",
		"UM Address 3", "UM City", "UM State", "UM Postal", "UM County", "UM Country", "UM Phone",
		"Employee Status", "Employeee Status Descr", "uniqname", "Class Mtg Nbr",
		"Term", "Class Nbr", "Department ID", "Employee Status Descr",
	},
}
