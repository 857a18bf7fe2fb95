package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/librelinkup/models"
)

const SheetNameMeasurements = "Measurements"

var measurementColumns = []string{
	"Timestamp",
	"Factory Timestamp (UTC)",
	"Glucose (mg/dL)",
	"Value",
	"Units",
	"Colour",
	"High",
	"Low",
}

// MeasurementsReport renders glucose readings as a spreadsheet.
type MeasurementsReport struct {
	title        string
	generatedAt  time.Time
	measurements []models.GlucoseMeasurement
}

func NewMeasurementsReport(title string, measurements []models.GlucoseMeasurement) MeasurementsReport {
	return MeasurementsReport{
		title:        title,
		generatedAt:  time.Now(),
		measurements: measurements,
	}
}

func (r MeasurementsReport) Generate() (*xlsx.File, error) {
	file := xlsx.NewFile()
	sh, err := file.AddSheet(SheetNameMeasurements)
	if err != nil {
		return nil, err
	}

	r.addHeader(sh)
	r.addMeasurements(sh)

	return file, nil
}

// Save generates the report and writes it to path.
func (r MeasurementsReport) Save(path string) error {
	file, err := r.Generate()
	if err != nil {
		return err
	}
	if err := file.Save(path); err != nil {
		return fmt.Errorf("unable to save report to %s: %w", path, err)
	}
	return nil
}

func (r MeasurementsReport) addHeader(sh *xlsx.Sheet) {
	sh.AddRow().AddCell().SetValue(r.title)

	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue("Report Generated")
	currentRow.AddCell().SetValue(r.generatedAt.Format(time.RFC3339))

	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Measurements")
	currentRow.AddCell().SetValue(len(r.measurements))
	sh.AddRow()

	currentRow = sh.AddRow()
	for _, column := range measurementColumns {
		currentRow.AddCell().SetValue(column)
	}
}

func (r MeasurementsReport) addMeasurements(sh *xlsx.Sheet) {
	for _, m := range r.measurements {
		currentRow := sh.AddRow()
		currentRow.AddCell().SetValue(m.Timestamp.Format(time.DateTime))
		currentRow.AddCell().SetValue(m.FactoryTimestamp.UTC().Format(time.DateTime))
		currentRow.AddCell().SetValue(m.ValueInMgPerDl)
		currentRow.AddCell().SetValue(m.Value)
		currentRow.AddCell().SetValue(m.GlucoseUnits)
		currentRow.AddCell().SetValue(m.MeasurementColor.String())
		currentRow.AddCell().SetValue(strconv.FormatBool(m.IsHigh))
		currentRow.AddCell().SetValue(strconv.FormatBool(m.IsLow))
	}
}
