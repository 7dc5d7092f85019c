package utils

import "time"

// ParseDate interpreta datas YYYY-MM-DD de query string. String vazia
// significa filtro ausente e devolve nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
