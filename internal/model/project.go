package model

import "time"

// Project is a calendar entry items can reference by name.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Color       string    `json:"color"`
	PDFDocument string    `json:"pdf_document,omitempty"`
	PDFURL      string    `json:"pdf_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
