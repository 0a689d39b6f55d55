package service

import (
	"sort"
	"strings"
	"time"

	"myvoice/internal/model"
	"myvoice/internal/survey"
)

// trendDateLayout buckets the daily trend by calendar date.
const trendDateLayout = "2006-01-02"

// flattenRecords projects stored records onto flat reporting rows: one row
// per record, one answer cell per question answered. Custom texts survive
// the projection only when non-empty.
func flattenRecords(records []model.SurveyResponse) []model.FlatRow {
	rows := make([]model.FlatRow, 0, len(records))
	for _, rec := range records {
		row := model.FlatRow{
			SessionID: rec.SessionID,
			Timestamp: rec.Timestamp,
			Answers:   make(map[string]string, len(rec.Answers)),
		}
		for id, code := range rec.Answers {
			row.Answers[id] = code
		}
		for id, text := range rec.CustomAnswers {
			if strings.TrimSpace(text) == "" {
				continue
			}
			if row.Custom == nil {
				row.Custom = make(map[string]string)
			}
			row.Custom[id] = text
		}
		rows = append(rows, row)
	}
	return rows
}

// filterRows keeps the rows matching the session/date filter. The filter is
// applied before any aggregation so every derived number describes the same
// subset.
func filterRows(rows []model.FlatRow, filter model.Filter) []model.FlatRow {
	filtered := make([]model.FlatRow, 0, len(rows))
	for _, row := range rows {
		if filter.Matches(row.SessionID, row.Timestamp) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// distributionFor tallies choice codes for one question across the rows
// that answered it. Percentages are shares of those answering rows, so they
// sum to 100 whenever anyone answered.
func distributionFor(question model.Question, rows []model.FlatRow) model.QuestionDistribution {
	dist := model.QuestionDistribution{
		QuestionID:  question.ID,
		Prompt:      question.Prompt,
		Counts:      make(map[string]int),
		Percentages: make(map[string]float64),
	}

	for _, row := range rows {
		code, ok := row.Answers[question.ID]
		if !ok {
			continue
		}
		dist.Answered++
		dist.Counts[code]++
		if text, ok := row.Custom[question.ID]; ok {
			dist.CustomTexts = append(dist.CustomTexts, text)
		}
	}

	for code, count := range dist.Counts {
		dist.Percentages[code] = percent(count, dist.Answered)
	}
	return dist
}

// concernScores ranks every question by the share of concern-leaning
// answers, highest first. The sort is stable, so questions with equal
// scores keep their questionnaire order.
func concernScores(questions model.Questionnaire, rows []model.FlatRow) []model.ConcernScore {
	scores := make([]model.ConcernScore, 0, len(questions.Questions))
	for _, q := range questions.Questions {
		answered, concerned := 0, 0
		for _, row := range rows {
			code, ok := row.Answers[q.ID]
			if !ok {
				continue
			}
			answered++
			if model.IsConcernCode(code) {
				concerned++
			}
		}
		scores = append(scores, model.ConcernScore{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Score:      percent(concerned, answered),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	for i := range scores {
		scores[i].Rank = i + 1
	}
	return scores
}

// sentimentSummary classifies each question by comparing positive-leaning
// answers (first two codes) against concern-leaning ones (last two), then
// tallies the classes into area counts.
func sentimentSummary(questions model.Questionnaire, rows []model.FlatRow) model.SentimentSummary {
	summary := model.SentimentSummary{
		Questions: make([]model.QuestionSentiment, 0, len(questions.Questions)),
	}

	for _, q := range questions.Questions {
		qs := model.QuestionSentiment{QuestionID: q.ID}
		for _, row := range rows {
			code, ok := row.Answers[q.ID]
			if !ok {
				continue
			}
			switch {
			case model.IsPositiveCode(code):
				qs.PositiveCount++
			case model.IsConcernCode(code):
				qs.ConcernCount++
			}
		}

		switch {
		case qs.PositiveCount > qs.ConcernCount:
			qs.Class = model.SentimentPositive
			summary.PositiveAreas++
		case qs.ConcernCount > qs.PositiveCount:
			qs.Class = model.SentimentConcern
			summary.ConcernAreas++
		default:
			qs.Class = model.SentimentNeutral
			summary.NeutralAreas++
		}
		summary.Questions = append(summary.Questions, qs)
	}
	return summary
}

// satisfactionPct is the share of top-choice answers over the maximum
// possible: answered-A count divided by rows times questions.
func satisfactionPct(questions model.Questionnaire, rows []model.FlatRow) float64 {
	cells := len(rows) * len(questions.Questions)
	if cells == 0 {
		return 0
	}

	top := 0
	for _, row := range rows {
		for _, q := range questions.Questions {
			if row.Answers[q.ID] == model.ChoiceA {
				top++
			}
		}
	}
	return float64(top) / float64(cells) * 100
}

// dailyTrend buckets rows by calendar date, oldest first.
func dailyTrend(rows []model.FlatRow) []model.TrendPoint {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Timestamp.Format(trendDateLayout)]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trend := make([]model.TrendPoint, 0, len(dates))
	for _, date := range dates {
		trend = append(trend, model.TrendPoint{Date: date, Count: counts[date]})
	}
	return trend
}

// buildReport assembles every aggregate over an already-filtered row set.
// An empty row set produces the defined no-data report: zero overview,
// empty sections, NoData set, and no error.
func buildReport(questions model.Questionnaire, rows []model.FlatRow, now time.Time) *model.Report {
	report := &model.Report{
		GeneratedAt:   now,
		Distributions: []model.QuestionDistribution{},
		Concerns:      []model.ConcernScore{},
		Sentiment:     model.SentimentSummary{Questions: []model.QuestionSentiment{}},
		Trend:         []model.TrendPoint{},
	}
	if len(rows) == 0 {
		report.NoData = true
		return report
	}

	for _, q := range questions.Questions {
		report.Distributions = append(report.Distributions, distributionFor(q, rows))
	}
	report.Concerns = concernScores(questions, rows)
	report.Sentiment = sentimentSummary(questions, rows)
	report.Trend = dailyTrend(rows)

	report.Overview = model.Overview{
		TotalResponses: len(rows),
		Satisfaction:   satisfactionPct(questions, rows),
	}
	for _, c := range report.Concerns {
		switch c.QuestionID {
		case survey.QuestionRetention:
			report.Overview.RetentionConcern = c.Score
		case survey.QuestionWorkload:
			report.Overview.HighStress = c.Score
		}
	}
	return report
}

// percent guards the division: zero when nothing was counted, never NaN.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
