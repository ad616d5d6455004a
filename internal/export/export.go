package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/askmcp/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatJSON  Format = "json"
)

type WriteOptions struct {
	ColorEnabled bool
}

// Table is a flat rendering of upstream records. Raw is written as-is for
// JSON output.
type Table struct {
	Header []string
	Rows   [][]string
	Raw    any
}

func Applications(apps []models.JobApplication) Table {
	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		gender := ""
		if app.Gender != nil {
			gender = *app.Gender
		}
		rows = append(rows, []string{
			app.FullName,
			app.Email,
			app.Phone.String(),
			gender,
			app.JobTitle,
			app.CreatedAt,
			app.ResumeURL,
		})
	}
	if apps == nil {
		apps = []models.JobApplication{}
	}
	return Table{
		Header: []string{"full_name", "email", "phone", "gender", "job_title", "created_at", "resume_url"},
		Rows:   rows,
		Raw:    apps,
	}
}

func Schedules(schedules []models.InterviewSchedule) Table {
	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, []string{
			s.AppFullName,
			s.AppEmail,
			s.AppPhone.String(),
			s.JobTitle,
			s.ScheduleDate,
			s.InterviewType,
			s.EmployeeID.String(),
			s.Status,
		})
	}
	if schedules == nil {
		schedules = []models.InterviewSchedule{}
	}
	return Table{
		Header: []string{"app_full_name", "app_email", "app_phone", "job_title", "schedule_date", "interview_type", "employee_id", "status"},
		Rows:   rows,
		Raw:    schedules,
	}
}

func Write(w io.Writer, table Table, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, table.Raw)
	case FormatCSV:
		return writeCSV(w, table, ',')
	case FormatTSV:
		return writeCSV(w, table, '\t')
	default:
		return writeTable(w, table, opts)
	}
}

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	case "json":
		return FormatJSON, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeCSV(w io.Writer, table Table, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(table.Header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, table Table, opts WriteOptions) error {
	if len(table.Rows) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	output := termenv.NewOutput(w)
	header := make([]string, len(table.Header))
	for i, name := range table.Header {
		header[i] = name
		if opts.ColorEnabled {
			header[i] = output.String(name).Bold().String()
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = safe(cell)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func safe(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	return strings.ReplaceAll(value, "\t", " ")
}
