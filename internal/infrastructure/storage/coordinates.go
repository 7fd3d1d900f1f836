package storage

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"mammo-regions/internal/domain/entity"
	"mammo-regions/internal/domain/port"
)

// CoordinateWriter пишет координаты области построчно: "row,col".
type CoordinateWriter struct{}

// NewCoordinateWriter создаёт writer координат.
func NewCoordinateWriter() *CoordinateWriter {
	return &CoordinateWriter{}
}

// Write создаёт файл path и записывает в него координаты.
func (w *CoordinateWriter) Write(ctx context.Context, path string, result *entity.SelectionResult) error {
	_ = ctx
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open output file to write positions: %w", err)
	}

	if err := WriteCoordinates(f, result); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteCoordinates записывает координаты в поток.
func WriteCoordinates(out io.Writer, result *entity.SelectionResult) error {
	bw := bufio.NewWriter(out)
	if result != nil {
		buf := make([]byte, 0, 16)
		for _, p := range result.Points {
			buf = buf[:0]
			buf = strconv.AppendInt(buf, int64(p.Row), 10)
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, int64(p.Col), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Проверка реализации интерфейса
var _ port.CoordinateSink = (*CoordinateWriter)(nil)
