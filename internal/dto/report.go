package dto

type ReportTaskRequest struct {
	Employee string `query:"employee"`
	Project  string `query:"project"`
	Status   string `query:"status"`
	Search   string `query:"search"`
	FromDate string `query:"from_date"`
	ToDate   string `query:"to_date"`
}

type ReportTaskExportRequest struct {
	ReportTaskRequest

	Format string `query:"format" validate:"omitempty,oneof=excel pdf"`
}
