package report

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"emptrack/internal/abstraction"
	"emptrack/internal/dto"
	"emptrack/internal/factory"
	"emptrack/internal/model"
	"emptrack/internal/repository"
	"emptrack/pkg/util/general"
	"emptrack/pkg/util/response"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Service interface {
	Find(ctx *abstraction.Context, payload *dto.ReportTaskRequest) (map[string]interface{}, error)
	Export(ctx *abstraction.Context, payload *dto.ReportTaskExportRequest) (string, *bytes.Buffer, string, error)
}

type service struct {
	TaskRepository repository.Task

	DB *gorm.DB
}

func NewService(f *factory.Factory) Service {
	return &service{
		TaskRepository: f.TaskRepository,

		DB: f.Db,
	}
}

func (s *service) Find(ctx *abstraction.Context, payload *dto.ReportTaskRequest) (map[string]interface{}, error) {
	tasks, sel, err := s.load(ctx, payload)
	if err != nil {
		return nil, err
	}

	opts, sel := filterOptions(tasks, sel)
	filtered := filterTasks(tasks, sel)

	var rows []map[string]interface{} = nil
	for _, v := range filtered {
		rows = append(rows, map[string]interface{}{
			"task_id":       v.TaskID,
			"emp_code":      v.EmpCode,
			"emp_name":      v.Employee.Name,
			"project":       v.Project,
			"module":        v.Module,
			"submodule":     v.Submodule,
			"task_details":  v.TaskDetails,
			"assigned_from": v.AssignedFrom,
			"status":        v.Status,
			"created_at":    general.FormatWithZWithoutChangingTime(v.CreatedAt),
		})
	}

	return map[string]interface{}{
		"data": rows,
		"filters": map[string]interface{}{
			"employees": opts.Employees,
			"projects":  opts.Projects,
			"statuses":  opts.Statuses,
		},
		"selection": map[string]interface{}{
			"employee":  sel.Employee,
			"project":   sel.Project,
			"status":    sel.Status,
			"search":    sel.Search,
			"from_date": general.FormatDateOnly(sel.From),
			"to_date":   general.FormatDateOnly(sel.To),
		},
	}, nil
}

func (s *service) Export(ctx *abstraction.Context, payload *dto.ReportTaskExportRequest) (string, *bytes.Buffer, string, error) {
	tasks, sel, err := s.load(ctx, &payload.ReportTaskRequest)
	if err != nil {
		return "", nil, "", err
	}

	_, sel = filterOptions(tasks, sel)
	data := filterTasks(tasks, sel)
	stamp := general.Now().Format("20060102")

	if payload.Format == "pdf" {
		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.SetMargins(10, 10, 10)
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, "EmpTrack - Task Report")
		pdf.Ln(12)
		pdf.SetFont("Arial", "B", 10)
		header := []string{
			"Task ID", "Employee Name", "Employee Code", "Project",
			"Module", "Submodule", "Task Details", "Assigned At", "Assigned From", "Status",
		}
		colWidths := []float64{
			18, 34, 24, 28, 28, 28, 52, 28, 26, 22,
		}
		xStart := pdf.GetX()
		yStart := pdf.GetY()
		headerHeight := 8.0

		for i, str := range header {
			pdf.Rect(xStart, yStart, colWidths[i], headerHeight, "D")
			pdf.MultiCell(colWidths[i], 5, str, "", "C", false)
			xStart += colWidths[i]
			pdf.SetXY(xStart, yStart)
		}
		pdf.Ln(headerHeight)
		pdf.SetFont("Arial", "", 9)

		for _, v := range data {
			row := []string{
				fmt.Sprintf("%d", v.TaskID),
				v.Employee.Name,
				v.EmpCode,
				v.Project,
				v.Module,
				v.Submodule,
				v.TaskDetails,
				general.FormatTimestampInReportZone(v.CreatedAt),
				v.AssignedFrom,
				v.Status,
			}

			startX := pdf.GetX()
			startY := pdf.GetY()
			maxHeight := 0.0
			for j, txt := range row {
				lines := pdf.SplitLines([]byte(txt), colWidths[j])
				h := float64(len(lines)) * 5
				if h > maxHeight {
					maxHeight = h
				}
			}
			x := startX
			for j, txt := range row {
				y := pdf.GetY()
				pdf.Rect(x, y, colWidths[j], maxHeight, "D")
				pdf.MultiCell(colWidths[j], 5, txt, "", "", false)
				x += colWidths[j]
				pdf.SetXY(x, y)
			}
			pdf.SetXY(startX, startY+maxHeight)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}

		filename := fmt.Sprintf("(%s) EmpTrack - Task Report.pdf", stamp)
		return filename, &buf, "pdf", nil

	} else {
		f := excelize.NewFile()
		sheet := "Task Report"
		index, err := f.NewSheet(general.TruncateSheetName(sheet))
		if err != nil {
			return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		f.DeleteSheet("Sheet1")
		f.SetActiveSheet(index)
		f.SetCellValue(sheet, "A1", "Task ID")
		f.SetCellValue(sheet, "B1", "Employee Name")
		f.SetCellValue(sheet, "C1", "Employee Code")
		f.SetCellValue(sheet, "D1", "Project")
		f.SetCellValue(sheet, "E1", "Module")
		f.SetCellValue(sheet, "F1", "Submodule")
		f.SetCellValue(sheet, "G1", "Task Details")
		f.SetCellValue(sheet, "H1", "Assigned At")
		f.SetCellValue(sheet, "I1", "Assigned From")
		f.SetCellValue(sheet, "J1", "Status")
		for i, v := range data {
			rowNum := i + 2
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), v.TaskID)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), v.Employee.Name)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), v.EmpCode)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), v.Project)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), v.Module)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), v.Submodule)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), v.TaskDetails)
			f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), general.FormatTimestampInReportZone(v.CreatedAt))
			f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), v.AssignedFrom)
			f.SetCellValue(sheet, fmt.Sprintf("J%d", rowNum), v.Status)
		}

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return "", nil, "", response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
		}
		filename := fmt.Sprintf("(%s) EmpTrack - Task Report.xlsx", stamp)
		return filename, &buf, "excel", nil
	}
}

func (s *service) load(ctx *abstraction.Context, payload *dto.ReportTaskRequest) ([]*model.TaskEntityModel, selection, error) {
	tasks, err := s.TaskRepository.FindAll(ctx)
	if err != nil && err.Error() != "record not found" {
		return nil, selection{}, response.ErrorBuilder(http.StatusInternalServerError, err, "server_error")
	}

	sel := selection{
		Employee: payload.Employee,
		Project:  payload.Project,
		Status:   payload.Status,
		Search:   payload.Search,
		From:     parseSelectionDate(payload.FromDate),
		To:       parseSelectionDate(payload.ToDate),
	}
	return tasks, sel, nil
}

func parseSelectionDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	return general.ParseDateOnly(&value)
}
