package reservations

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var csvHeader = []string{"Table", "Date", "Time", "Type", "Status", "CustomerName"}

// writeCSV сериализует список броней в CSV для выгрузки менеджером
func writeCSV(list []*domain.Reservation, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writeCSV - write header: %w", err)
	}

	for _, res := range list {
		record := []string{
			domain.TableDisplayName(res.TableID),
			res.StartTime.Format(domain.DateFormat),
			res.StartTime.Format(domain.TimeFormat),
			res.TypeLabel(),
			res.StatusLabel(now),
			res.CustomerName,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writeCSV - write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writeCSV - flush: %w", err)
	}
	return buf.Bytes(), nil
}
