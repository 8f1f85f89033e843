package edusphere

import "context"

// SheetsService is the boundary to Google Sheets. Mock mode only: it returns
// a sample results set and never fails.
type SheetsService struct{}

// NewSheetsService creates the sheets adapter.
func NewSheetsService() *SheetsService {
	return &SheetsService{}
}

// GetQuizResults reads quiz results from a form-responses spreadsheet.
func (ss *SheetsService) GetQuizResults(ctx context.Context, spreadsheetID string) []StudentResult {
	return []StudentResult{
		{Student: "Student 1", Score: 85, Total: 100},
		{Student: "Student 2", Score: 92, Total: 100},
		{Student: "Student 3", Score: 78, Total: 100},
		{Student: "Student 4", Score: 88, Total: 100},
	}
}
