package domain

import (
	"github.com/google/uuid"
)

// ItemStatus is the outcome of one detail line.
type ItemStatus string

const (
	ItemStatusCreated   ItemStatus = "created"
	ItemStatusDuplicate ItemStatus = "duplicate"
	ItemStatusInvalid   ItemStatus = "invalid"
)

// ItemResult reports what happened to one detail line. ID, Token and Last4 are
// set for created and duplicate items, Error and Code for invalid ones.
type ItemResult struct {
	Line   int
	Status ItemStatus
	ID     *uuid.UUID
	Token  string
	Last4  string
	Error  string
	Code   string
}

// Summary aggregates the item results. Received is the quantity declared in the header.
type Summary struct {
	Received   int
	Created    int
	Duplicates int
	Failed     int
}

// UploadResult is the report of one ingested file. Items follow file order.
type UploadResult struct {
	Header  Header
	Summary Summary
	Items   []ItemResult
}
