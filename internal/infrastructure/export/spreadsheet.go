// Package export proyecta movimientos contables a XLSX y CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Gestion-api/internal/application/accounting"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

var _ accounting.SpreadsheetExporter = (*Exporter)(nil)

const sheetName = "Contabilidad"

var headers = []string{"Fecha", "Concepto", "Cargo", "Abono", "Saldo", "Estado", "Notas"}

// Exporter implementa accounting.SpreadsheetExporter.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// MovementsXLSX escribe una hoja con encabezado y una fila por movimiento.
// Los importes se guardan como números con formato de moneda.
func (e *Exporter) MovementsXLSX(movements []*entity.Movement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("export: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: estilo encabezado: %w", err)
	}
	moneyFmt := `"$"#,##0.00;-"$"#,##0.00`
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("export: estilo moneda: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return nil, err
	}

	for idx, m := range movements {
		row := idx + 2
		values := []any{Date(m.Date), m.Concept, nil, nil, m.Balance.InexactFloat64(), StatusLabel(m.Status), m.Notes}
		if m.Debit != nil {
			values[2] = m.Debit.InexactFloat64()
		}
		if m.Credit != nil {
			values[3] = m.Credit.InexactFloat64()
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("export: fila %d: %w", row, err)
		}
		from, _ := excelize.CoordinatesToCellName(3, row)
		to, _ := excelize.CoordinatesToCellName(5, row)
		if err := f.SetCellStyle(sheetName, from, to, moneyStyle); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 40)
	_ = f.SetColWidth(sheetName, "C", "E", 15)
	_ = f.SetColWidth(sheetName, "F", "F", 12)
	_ = f.SetColWidth(sheetName, "G", "G", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// MovementsCSV escribe el CSV con BOM UTF-8 para que Excel respete los acentos.
func (e *Exporter) MovementsCSV(movements []*entity.Movement) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, m := range movements {
		record := []string{
			Date(m.Date),
			m.Concept,
			OptionalMoney(m.Debit),
			OptionalMoney(m.Credit),
			Money(m.Balance),
			StatusLabel(m.Status),
			m.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: escribir csv: %w", err)
	}
	return buf.Bytes(), nil
}
