package task_services

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/gestorai/gestorai/internal/domain"
)

const ExportFilename = "tarefas.csv"

// taskExportRow fixes the export column order: id,title,isCompleted,createdAt.
type taskExportRow struct {
	ID          uint   `csv:"id"`
	Title       string `csv:"title"`
	IsCompleted bool   `csv:"isCompleted"`
	CreatedAt   string `csv:"createdAt"`
}

// taskImportRow reads the flag as text so any value other than "true" or "1" means false.
type taskImportRow struct {
	Title       string `csv:"title"`
	IsCompleted string `csv:"isCompleted"`
}

// EncodeTasksCSV writes tasks with a header row.
func EncodeTasksCSV(tasks []domain.Task) ([]byte, error) {
	rows := make([]*taskExportRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, &taskExportRow{
			ID:          t.ID,
			Title:       t.Title,
			IsCompleted: t.IsCompleted,
			CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	if len(rows) == 0 {
		// Header only.
		return []byte("id,title,isCompleted,createdAt\n"), nil
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return nil, fmt.Errorf("encode tasks csv: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeTasksCSV parses a header-first CSV into unsaved tasks for userID.
// Rows with a blank title are dropped.
func DecodeTasksCSV(r io.Reader, userID uint) ([]*domain.Task, error) {
	rows := []*taskImportRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decode tasks csv: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		title := strings.TrimSpace(row.Title)
		if title == "" {
			continue
		}
		tasks = append(tasks, &domain.Task{
			UserID:      userID,
			Title:       title,
			IsCompleted: parseCompleted(row.IsCompleted),
		})
	}
	return tasks, nil
}

func parseCompleted(value string) bool {
	v := strings.TrimSpace(value)
	return v == "true" || v == "1"
}
