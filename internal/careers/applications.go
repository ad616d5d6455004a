package careers

import (
	"fmt"
	"strings"
	"time"

	"github.com/jimezsa/askmcp/internal/models"
	"github.com/jimezsa/askmcp/internal/query"
)

const NoApplications = "❌ No job applications found."

var jobTitleKeywords = []string{"php", "developer", "marketing"}

func applicationSteps(now time.Time) []query.Step[models.JobApplication] {
	today := Today(now)
	return []query.Step[models.JobApplication]{
		{
			When: query.Any("today"),
			Filter: func(_ query.Question, _, current []models.JobApplication) []models.JobApplication {
				return query.Keep(current, func(a models.JobApplication) bool {
					return strings.HasPrefix(a.CreatedAt, today)
				})
			},
		},
		{
			When: query.Any("name"),
			Filter: func(q query.Question, _, current []models.JobApplication) []models.JobApplication {
				name := q.Without("name")
				return query.Keep(current, func(a models.JobApplication) bool {
					return query.ContainsFold(a.FullName, name)
				})
			},
		},
		{
			// The whole question, not the keyword, is matched against the title.
			When: query.Any(jobTitleKeywords...),
			Filter: func(q query.Question, _, current []models.JobApplication) []models.JobApplication {
				return query.Keep(current, func(a models.JobApplication) bool {
					return query.ContainsFold(a.JobTitle, q.Text)
				})
			},
		},
		{
			When: query.Any("how many", "count"),
			Answer: func(current []models.JobApplication) string {
				return fmt.Sprintf("📊 Total applications found: %d", len(current))
			},
		},
		{
			// latest ignores earlier filters and takes the head of the raw list.
			When: query.Any("latest"),
			Filter: func(_ query.Question, all, _ []models.JobApplication) []models.JobApplication {
				if len(all) > latestMax {
					return all[:latestMax]
				}
				return all
			},
		},
	}
}

// AnswerApplications filters apps by the keywords in question and renders
// what is left, or a count when the question asks for one.
func AnswerApplications(apps []models.JobApplication, question string, now time.Time) string {
	filtered, answer, done := query.Pipeline(applicationSteps(now), query.New(question), apps)
	if done {
		return answer
	}
	if len(filtered) == 0 {
		return NoApplications
	}

	entries := make([]string, 0, len(filtered))
	for _, app := range filtered {
		entries = append(entries, renderApplication(app))
	}
	return joinEntries(entries)
}

func renderApplication(a models.JobApplication) string {
	gender := "N/A"
	if a.Gender != nil {
		gender = *a.Gender
	}
	date, _ := splitTimestamp(a.CreatedAt)

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", a.FullName)
	fmt.Fprintf(&b, "📧 Email: %s\n", a.Email)
	fmt.Fprintf(&b, "📞 Phone: %s\n", a.Phone)
	fmt.Fprintf(&b, "🧑 Gender: %s\n", gender)
	fmt.Fprintf(&b, "💼 Job: %s\n", a.JobTitle)
	fmt.Fprintf(&b, "📅 Date: %s\n", date)
	fmt.Fprintf(&b, "📄 Resume: %s\n", a.ResumeURL)
	return b.String()
}
