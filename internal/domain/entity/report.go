package entity

// RegionReport итог обработки одной записи разметки в пакетном режиме.
type RegionReport struct {
	Region          RegionDescriptor // исходная запись разметки
	Result          *SelectionResult // nil при ошибке
	CoordinatesPath string           // файл с координатами, если записан
	CropPath        string           // вырезанная область, если записана
	OverlayPath     string           // картинка с подсветкой, если записана
	Err             error            // ошибка обработки этой записи
}

// Failed true, если запись не обработана.
func (r RegionReport) Failed() bool {
	return r.Err != nil
}
