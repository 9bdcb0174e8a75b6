// Package export writes job analyses and ranked profile assets to Excel
// workbooks for review outside the terminal.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/application-assistant/internal/ranking"
	"github.com/jonathan/application-assistant/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names written by WriteWorkbook
const (
	AnalysisSheet = "Job Analysis"
	RankedSheet   = "Ranked Assets"
)

// Score bands used for row colouring on the ranked sheet
const (
	strongScore = 7.0
	keepScore   = 5.0
	weakScore   = 3.0
)

var rankedHeaders = []string{"Rank", "Title", "Kind", "Score", "Matching Skills", "Matching Concepts", "Notes", "Description"}

// Error reports a workbook that could not be built or saved
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WriteWorkbook saves analysis and ranked to an xlsx file at path and
// returns the path written. A missing .xlsx extension is appended.
func WriteWorkbook(path string, analysis *types.JobAnalysis, ranked []types.ProfileAsset) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f, err := NewWorkbook(analysis, ranked)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to build workbook", Cause: err}
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return "", &Error{Path: path, Message: "failed to save workbook", Cause: err}
	}
	return path, nil
}

// NewWorkbook builds the in-memory workbook. Callers own the returned file
// and must Close it.
func NewWorkbook(analysis *types.JobAnalysis, ranked []types.ProfileAsset) (*excelize.File, error) {
	if analysis == nil {
		analysis = &types.JobAnalysis{}
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", AnalysisSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(RankedSheet); err != nil {
		f.Close()
		return nil, err
	}

	styles, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}
	if err := writeAnalysisSheet(f, styles, analysis, len(ranked)); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create analysis sheet: %w", err)
	}
	if err := writeRankedSheet(f, styles, ranked); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create ranked sheet: %w", err)
	}
	return f, nil
}

type styles struct {
	header int
	label  int
	wrap   int
	bands  [4]int // strong, keep, weak, poor
}

func newStyles(f *excelize.File) (*styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var s styles
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}
	s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	s.wrap, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}
	for i, color := range []string{"C6EFCE", "FFEB9C", "FFC7CE", "FF9999"} {
		s.bands[i], err = f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
			Border:    border,
		})
		if err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (s *styles) band(score float64) int {
	switch {
	case score >= strongScore:
		return s.bands[0]
	case score >= keepScore:
		return s.bands[1]
	case score >= weakScore:
		return s.bands[2]
	default:
		return s.bands[3]
	}
}

func writeAnalysisSheet(f *excelize.File, s *styles, analysis *types.JobAnalysis, rankedCount int) error {
	sheet := AnalysisSheet
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 70); err != nil {
		return err
	}

	rows := [][2]any{
		{"Job Title", analysis.JobTitle},
		{"Company", analysis.CompanyName},
		{"Category", analysis.Category},
		{"Required Experience (years)", analysis.RequiredExperienceYears},
		{"Required Skills", strings.Join(analysis.RequiredSkills, ", ")},
		{"Key Concepts", strings.Join(analysis.KeyConcepts, ", ")},
		{"Key Responsibilities", strings.Join(analysis.KeyResponsibilities, "\n")},
		{"Simplified Analysis", analysis.Degraded},
		{"Assets Ranked", rankedCount},
		{"Generated", time.Now().Format("2006-01-02 15:04:05")},
	}

	for i, r := range rows {
		row := i + 1
		label, _ := excelize.CoordinatesToCellName(1, row)
		value, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(sheet, label, r[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, value, r[1]); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, label, label, s.label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, value, value, s.wrap); err != nil {
			return err
		}
	}
	return nil
}

func writeRankedSheet(f *excelize.File, s *styles, ranked []types.ProfileAsset) error {
	sheet := RankedSheet
	widths := []float64{8, 30, 12, 8, 30, 30, 45, 60}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	for i, header := range rankedHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, s.header); err != nil {
			return err
		}
	}

	for i, asset := range ranked {
		row := i + 2
		values := []any{
			i + 1,
			asset.Title,
			string(asset.Kind),
			asset.Score,
			strings.Join(asset.MatchingSkills, ", "),
			strings.Join(asset.MatchingConcepts, ", "),
			ranking.Explain(asset),
			asset.Description,
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, first, &values); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(values), row)
		if err := f.SetCellStyle(sheet, first, last, s.band(asset.Score)); err != nil {
			return err
		}
	}

	if len(ranked) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(rankedHeaders))
		if err := f.AutoFilter(sheet, fmt.Sprintf("A1:%s%d", lastCol, len(ranked)+1), []excelize.AutoFilterOptions{}); err != nil {
			return err
		}
	}

	// Freeze top row
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
