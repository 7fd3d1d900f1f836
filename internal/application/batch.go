package app

import (
	"context"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"mammo-regions/internal/domain/entity"
)

// BatchSummary итог пакетной обработки.
type BatchSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Fallback  int // выбрана наибольшая компонента, критериям никто не удовлетворил
	Empty     int // маска пустая
}

// ProcessAll обрабатывает записи разметки пулом из workers горутин.
// Отчёты возвращаются в порядке входных записей. Ошибка одной записи не останавливает остальные.
func (s *RegionService) ProcessAll(ctx context.Context, regions []entity.RegionDescriptor, workers int) []entity.RegionReport {
	return s.runBatch(ctx, regions, workers, s.ProcessOne)
}

// CropAll только вырезает области для всех записей.
func (s *RegionService) CropAll(ctx context.Context, regions []entity.RegionDescriptor, workers int) []entity.RegionReport {
	return s.runBatch(ctx, regions, workers, s.CropOne)
}

type regionJob func(ctx context.Context, region entity.RegionDescriptor, outputName string) entity.RegionReport

func (s *RegionService) runBatch(ctx context.Context, regions []entity.RegionDescriptor, workers int, job regionJob) []entity.RegionReport {
	reports := make([]entity.RegionReport, len(regions))
	if len(regions) == 0 {
		return reports
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(regions) {
		workers = len(regions)
	}

	names := OutputNames(regions)
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					reports[i] = entity.RegionReport{Region: regions[i], Err: err}
					continue
				}
				reports[i] = job(ctx, regions[i], names[i])
				if reports[i].Failed() {
					s.log.WithError(reports[i].Err).WithField("region", regions[i].Name).Error("region failed")
				}
			}
		}()
	}

	for i := range regions {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	summary := Summarize(reports)
	s.log.WithFields(logrus.Fields{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"fallback":  summary.Fallback,
		"empty":     summary.Empty,
	}).Info("batch finished")

	return reports
}

// OutputNames даёт каждой записи уникальное базовое имя выходных файлов.
// В MIAS на одном снимке бывает несколько масс: mdb005, mdb005_2, ...
func OutputNames(regions []entity.RegionDescriptor) []string {
	names := make([]string, len(regions))
	seen := make(map[string]int, len(regions))
	for i, r := range regions {
		seen[r.Name]++
		if n := seen[r.Name]; n > 1 {
			names[i] = r.Name + "_" + strconv.Itoa(n)
		} else {
			names[i] = r.Name
		}
	}
	return names
}

// Summarize считает итоги по отчётам.
func Summarize(reports []entity.RegionReport) BatchSummary {
	summary := BatchSummary{Total: len(reports)}
	for _, r := range reports {
		if r.Failed() {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		if r.Result == nil {
			continue
		}
		switch r.Result.State {
		case entity.StateFallback:
			summary.Fallback++
		case entity.StateEmpty:
			summary.Empty++
		}
	}
	return summary
}
