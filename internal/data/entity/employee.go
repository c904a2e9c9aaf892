package entity

import "github.com/google/uuid"

// Employee is a directory record. It lives in the employee directory, not in
// this service's database.
type Employee struct {
	EightDigitEmpNo string
	Name            string
	Email           string
	CellNo          string
	ImageGUID       uuid.UUID
}
