package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jimezsa/askmcp/internal/models"
)

func sampleApps() []models.JobApplication {
	gender := "Female"
	return []models.JobApplication{
		{FullName: "Priya Sharma", Email: "priya@example.com", Phone: "9000000001", Gender: &gender, JobTitle: "PHP Developer", CreatedAt: "2026-10-18T08:15:00Z", ResumeURL: "https://cdn.example.com/1.pdf"},
		{FullName: "Rahul, Jr.", Email: "rahul@example.com", JobTitle: "Marketing", CreatedAt: "2026-10-17T08:15:00Z"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Applications(sampleApps()), FormatCSV, WriteOptions{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "full_name" || records[2][0] != "Rahul, Jr." {
		t.Fatalf("unexpected csv: %v", records)
	}
	if records[2][3] != "" {
		t.Fatalf("missing gender should be empty, got %q", records[2][3])
	}
}

func TestWriteTSV(t *testing.T) {
	schedules := []models.InterviewSchedule{
		{AppFullName: "Akhilesh Kumar", JobTitle: "Online Developer", ScheduleDate: "2026-10-18T10:30:00Z", InterviewType: "online", EmployeeID: "7", Status: "scheduled"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, Schedules(schedules), FormatTSV, WriteOptions{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "Akhilesh Kumar\t") {
		t.Fatalf("unexpected tsv:\n%s", buf.String())
	}
}

func TestWriteJSONKeepsUpstreamShape(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Applications(sampleApps()), FormatJSON, WriteOptions{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(decoded) != 2 || decoded[0]["full_name"] != "Priya Sharma" {
		t.Fatalf("unexpected json: %s", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, Schedules(nil), FormatJSON, WriteOptions{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("empty list should encode as [], got %q", buf.String())
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Applications(sampleApps()), FormatTable, WriteOptions{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "full_name") || !strings.Contains(out, "Priya Sharma") {
		t.Fatalf("unexpected table:\n%s", out)
	}

	buf.Reset()
	if err := Write(&buf, Applications(nil), FormatTable, WriteOptions{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != "No results.\n" {
		t.Fatalf("empty table = %q", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"csv":   FormatCSV,
		" TSV ": FormatTSV,
		"json":  FormatJSON,
		"":      FormatTable,
		"table": FormatTable,
	}
	for value, want := range cases {
		got, err := ParseFormat(value)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", value, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}
