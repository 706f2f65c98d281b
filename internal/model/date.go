package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date представляет календарную дату без времени суток.
// В JSON и в базе данных сериализуется в формате YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate создает дату из года, месяца и дня (в UTC).
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON сериализует дату в строку формата YYYY-MM-DD.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON разбирает дату из строки формата YYYY-MM-DD.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("некорректная дата %q, ожидается формат YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// Value реализует driver.Valuer для записи в базу данных.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan реализует sql.Scanner для чтения из базы данных.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("невозможно преобразовать %T в Date", src)
	}
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("невозможно разобрать дату %q: %w", s, err)
	}
	d.Time = t
	return nil
}
