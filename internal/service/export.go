package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"myvoice/internal/model"
)

// customColumnSuffix marks the free-text column paired with a question.
const customColumnSuffix = "_custom"

// exportTimeLayout keeps timestamps exact through an export/import round
// trip.
const exportTimeLayout = time.RFC3339Nano

// WriteCSV streams the filtered flattened rows as delimited text. Columns
// are session_id, timestamp, one column per question in questionnaire
// order, then a <questionID>_custom column for every question with at least
// one non-empty custom text among the exported rows. Unanswered cells stay
// empty.
func (s *ReportService) WriteCSV(ctx context.Context, w io.Writer, filter model.Filter) error {
	rows, err := s.Rows(ctx, filter)
	if err != nil {
		return err
	}
	return writeRowsCSV(w, s.questions, rows)
}

func writeRowsCSV(w io.Writer, questions model.Questionnaire, rows []model.FlatRow) error {
	withCustom := make(map[string]bool)
	for _, row := range rows {
		for id := range row.Custom {
			withCustom[id] = true
		}
	}

	header := []string{"session_id", "timestamp"}
	for _, q := range questions.Questions {
		header = append(header, q.ID)
	}
	customIDs := make([]string, 0, len(withCustom))
	for _, q := range questions.Questions {
		if withCustom[q.ID] {
			customIDs = append(customIDs, q.ID)
			header = append(header, q.ID+customColumnSuffix)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, 0, len(header))
	for _, row := range rows {
		record = record[:0]
		record = append(record, row.SessionID, row.Timestamp.Format(exportTimeLayout))
		for _, q := range questions.Questions {
			record = append(record, row.Answers[q.ID])
		}
		for _, id := range customIDs {
			record = append(record, row.Custom[id])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
