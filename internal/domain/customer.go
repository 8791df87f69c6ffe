package domain

import "errors"

var ErrCustomerNotFound = errors.New("customer not found")
var ErrCustomerAlreadyExists = errors.New("customer already exists")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrInvalidAmount = errors.New("invalid amount")

type Customer struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	TaxID     string      `json:"taxId"`
	Statement []Operation `json:"statement"`
}
