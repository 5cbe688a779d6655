package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessCard is one persisted contact record. Rows are keyed by CardHolder
// for update and delete: two holders with identical names are
// indistinguishable to those operations, a known limitation of the schema.
type BusinessCard struct {
	ID           uuid.UUID `db:"id"`
	CompanyName  string    `db:"company_name"`
	CardHolder   string    `db:"card_holder"`
	Designation  string    `db:"designation"`
	MobileNumber string    `db:"mobile_number"`
	Email        string    `db:"email"`
	Website      string    `db:"website"`
	Area         string    `db:"area"`
	City         string    `db:"city"`
	State        string    `db:"state"`
	PinCode      string    `db:"pin_code"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
