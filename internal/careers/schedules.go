package careers

import (
	"fmt"
	"strings"
	"time"

	"github.com/jimezsa/askmcp/internal/models"
	"github.com/jimezsa/askmcp/internal/query"
)

const NoSchedules = "❌ No interview schedules found."

func interviewTypeStep(kind string) query.Step[models.InterviewSchedule] {
	return query.Step[models.InterviewSchedule]{
		When: query.Any(kind),
		Filter: func(_ query.Question, _, current []models.InterviewSchedule) []models.InterviewSchedule {
			return query.Keep(current, func(s models.InterviewSchedule) bool {
				return s.InterviewType == kind
			})
		},
	}
}

func scheduleSteps(now time.Time) []query.Step[models.InterviewSchedule] {
	today := Today(now)
	return []query.Step[models.InterviewSchedule]{
		{
			When: query.Any("today"),
			Filter: func(_ query.Question, _, current []models.InterviewSchedule) []models.InterviewSchedule {
				return query.Keep(current, func(s models.InterviewSchedule) bool {
					return strings.HasPrefix(s.ScheduleDate, today)
				})
			},
		},
		{
			When: query.Any("akhilesh", "name"),
			Filter: func(q query.Question, _, current []models.InterviewSchedule) []models.InterviewSchedule {
				name := q.Without("name")
				return query.Keep(current, func(s models.InterviewSchedule) bool {
					return query.ContainsFold(s.AppFullName, name)
				})
			},
		},
		{
			When: query.Any("marketing", "php", "developer"),
			Filter: func(q query.Question, _, current []models.InterviewSchedule) []models.InterviewSchedule {
				return query.Keep(current, func(s models.InterviewSchedule) bool {
					return query.ContainsFold(s.JobTitle, q.Text)
				})
			},
		},
		interviewTypeStep(models.InterviewOffline),
		interviewTypeStep(models.InterviewOnline),
		{
			When: query.Any("how many", "count"),
			Answer: func(current []models.InterviewSchedule) string {
				return fmt.Sprintf("📊 Total interviews found: %d", len(current))
			},
		},
	}
}

// AnswerSchedules filters schedules by the keywords in question and renders
// what is left, or a count when the question asks for one.
func AnswerSchedules(schedules []models.InterviewSchedule, question string, now time.Time) string {
	filtered, answer, done := query.Pipeline(scheduleSteps(now), query.New(question), schedules)
	if done {
		return answer
	}
	if len(filtered) == 0 {
		return NoSchedules
	}

	entries := make([]string, 0, len(filtered))
	for _, schedule := range filtered {
		entries = append(entries, renderSchedule(schedule))
	}
	return joinEntries(entries)
}

func renderSchedule(s models.InterviewSchedule) string {
	date, clock := splitTimestamp(s.ScheduleDate)

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "👤 Candidate: %s\n", s.AppFullName)
	fmt.Fprintf(&b, "📧 Email: %s\n", s.AppEmail)
	fmt.Fprintf(&b, "📞 Phone: %s\n", s.AppPhone)
	fmt.Fprintf(&b, "💼 Job: %s\n", s.JobTitle)
	fmt.Fprintf(&b, "🗓 Date: %s\n", date)
	fmt.Fprintf(&b, "⏰ Time: %s\n", clock)
	fmt.Fprintf(&b, "📍 Type: %s\n", s.InterviewType)
	fmt.Fprintf(&b, "👨‍💼 Employee ID: %s\n", s.EmployeeID)
	fmt.Fprintf(&b, "📌 Status: %s\n", s.Status)
	return b.String()
}
