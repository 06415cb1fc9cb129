// Package dto provides data transfer objects for batch upload responses.
package dto

import (
	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
)

// HeaderResponse echoes the parsed header.
type HeaderResponse struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Lot      string `json:"lot"`
	Quantity int    `json:"quantity"`
}

// SummaryResponse aggregates the item outcomes.
type SummaryResponse struct {
	Received   int `json:"received"`
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}

// ItemResponse is the outcome of one detail line.
type ItemResponse struct {
	Line   int    `json:"line"`
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
	Token  string `json:"token,omitempty"`
	Last4  string `json:"last4,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

// UploadResponse is the report of an ingested file.
type UploadResponse struct {
	Header  HeaderResponse  `json:"header"`
	Summary SummaryResponse `json:"summary"`
	Items   []ItemResponse  `json:"items"`
}

// MapUploadResultToResponse converts an ingestion report to an API response.
func MapUploadResultToResponse(result *batchDomain.UploadResult) UploadResponse {
	items := make([]ItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		response := ItemResponse{
			Line:   item.Line,
			Status: string(item.Status),
			Token:  item.Token,
			Last4:  item.Last4,
			Error:  item.Error,
			Code:   item.Code,
		}
		if item.ID != nil {
			response.ID = item.ID.String()
		}
		items = append(items, response)
	}

	return UploadResponse{
		Header: HeaderResponse{
			Name:     result.Header.Name,
			Date:     result.Header.Date.Format("2006-01-02"),
			Lot:      result.Header.Lot,
			Quantity: result.Header.Quantity,
		},
		Summary: SummaryResponse{
			Received:   result.Summary.Received,
			Created:    result.Summary.Created,
			Duplicates: result.Summary.Duplicates,
			Failed:     result.Summary.Failed,
		},
		Items: items,
	}
}

// ParseErrorResponse is returned when a file is rejected during parsing.
type ParseErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line"`
}

// MapParseErrorToResponse converts a parse failure to an API response.
func MapParseErrorToResponse(err *batchDomain.ParseError) ParseErrorResponse {
	return ParseErrorResponse{
		Error:   "invalid_batch",
		Message: err.Error(),
		Code:    err.Code(),
		Line:    err.Line,
	}
}
