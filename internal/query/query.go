// Package query turns free-text questions into ordered keyword rules.
//
// Two runners are provided. FirstMatch picks exactly one rule, in order.
// Pipeline applies every matching step in order, letting a step end the run
// early with a final answer.
package query

import "strings"

// Question is a free-text question with its lowercased form cached.
type Question struct {
	Raw  string
	Text string
}

func New(raw string) Question {
	return Question{Raw: raw, Text: strings.ToLower(raw)}
}

func (q Question) Has(keyword string) bool {
	return strings.Contains(q.Text, keyword)
}

// Without removes the first occurrence of keyword and trims the rest.
func (q Question) Without(keyword string) string {
	return strings.TrimSpace(strings.Replace(q.Text, keyword, "", 1))
}

// Matcher decides whether a rule applies to a question.
type Matcher func(Question) bool

// Any matches when the question contains at least one keyword.
func Any(keywords ...string) Matcher {
	return func(q Question) bool {
		for _, keyword := range keywords {
			if q.Has(keyword) {
				return true
			}
		}
		return false
	}
}

type Rule[T any] struct {
	When Matcher
	Then func(T) string
}

// FirstMatch answers with the first rule whose matcher accepts q,
// or with fallback when none does.
func FirstMatch[T any](rules []Rule[T], q Question, value T, fallback func(T) string) string {
	for _, rule := range rules {
		if rule.When(q) {
			return rule.Then(value)
		}
	}
	return fallback(value)
}

// Step is one stage of a Pipeline. Filter narrows or replaces the working
// set; Answer, when set, stops the pipeline with a final text.
type Step[T any] struct {
	When   Matcher
	Filter func(q Question, all, current []T) []T
	Answer func(current []T) string
}

// Pipeline runs every matching step in order, starting from all.
// done reports whether a step produced a final answer.
func Pipeline[T any](steps []Step[T], q Question, all []T) (current []T, answer string, done bool) {
	current = all
	for _, step := range steps {
		if !step.When(q) {
			continue
		}
		if step.Filter != nil {
			current = step.Filter(q, all, current)
		}
		if step.Answer != nil {
			return current, step.Answer(current), true
		}
	}
	return current, "", false
}

// Keep returns the items accepted by keep, preserving order.
func Keep[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// ContainsFold reports whether needle occurs in the lowercased haystack.
// needle is expected to be lowercase already.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
