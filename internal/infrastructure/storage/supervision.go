package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// supervisionColumns имя файла, класс, cx, cy, радиус
const supervisionColumns = 5

// SupervisionReader читает CSV-файл разметки. Первая строка считается заголовком.
type SupervisionReader struct{}

// NewSupervisionReader создаёт читатель разметки.
func NewSupervisionReader() *SupervisionReader {
	return &SupervisionReader{}
}

// Read возвращает корректные записи. Строки без координат (например, класс NORM в MIAS)
// или с нечисловыми полями пропускаются и попадают в список ошибок.
func (s *SupervisionReader) Read(ctx context.Context, path string) ([]entity.RegionDescriptor, []error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, []error{fmt.Errorf("open supervision csv: %w", err)}
	}
	defer f.Close()

	return s.Parse(ctx, f)
}

// Parse разбирает разметку из потока.
func (s *SupervisionReader) Parse(ctx context.Context, r io.Reader) ([]entity.RegionDescriptor, []error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Заголовок выбрасываем
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("read header: %w", err)}
	}

	var (
		regions []entity.RegionDescriptor
		errs    []error
	)
	for {
		if err := ctx.Err(); err != nil {
			return regions, append(errs, err)
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ParseError уже содержит номер строки
			errs = append(errs, err)
			continue
		}

		line, _ := reader.FieldPos(0)
		region, err := parseRegion(record)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		regions = append(regions, region)
	}

	return regions, errs
}

func parseRegion(record []string) (entity.RegionDescriptor, error) {
	if len(record) < supervisionColumns {
		return entity.RegionDescriptor{}, fmt.Errorf("expected %d columns, got %d", supervisionColumns, len(record))
	}

	nums := make([]int, 3)
	for i, field := range record[2:supervisionColumns] {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return entity.RegionDescriptor{}, fmt.Errorf("column %d: %w", i+3, err)
		}
		nums[i] = v
	}

	return entity.RegionDescriptor{
		Name:       strings.TrimSpace(record[0]),
		ClassLabel: strings.TrimSpace(record[1]),
		CenterX:    nums[0],
		CenterY:    nums[1],
		Radius:     nums[2],
	}, nil
}

// Проверка реализации интерфейса
var _ port.SupervisionSource = (*SupervisionReader)(nil)
