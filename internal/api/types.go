package api

import (
	"encoding/json"
	"math"
	"time"

	"github.com/prepgenius/prepgenius/internal/quiz"
)

// DefaultDailyGoal is assumed when the dashboard omits dailyGoal.
const DefaultDailyGoal = 4

// DashboardSummary is the response of GET /api/dashboard.
type DashboardSummary struct {
	DayStreak    int
	NotesCreated int
	QuizzesTaken int
	TodayActions int
	DailyGoal    int
	GoalProgress int
}

// UnmarshalJSON fills missing numeric fields with 0 and a missing goal with
// DefaultDailyGoal.
func (d *DashboardSummary) UnmarshalJSON(data []byte) error {
	var raw struct {
		DayStreak    *int `json:"dayStreak"`
		NotesCreated *int `json:"notesCreated"`
		QuizzesTaken *int `json:"quizzesTaken"`
		TodayActions *int `json:"todayActions"`
		DailyGoal    *int `json:"dailyGoal"`
		GoalProgress *int `json:"goalProgress"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = DashboardSummary{
		DayStreak:    intOr(raw.DayStreak, 0),
		NotesCreated: intOr(raw.NotesCreated, 0),
		QuizzesTaken: intOr(raw.QuizzesTaken, 0),
		TodayActions: intOr(raw.TodayActions, 0),
		DailyGoal:    intOr(raw.DailyGoal, DefaultDailyGoal),
		GoalProgress: intOr(raw.GoalProgress, 0),
	}
	return nil
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// HistoryEntry is a single activity record.
type HistoryEntry struct {
	Kind    string
	Title   string
	Details string
	// CreatedAt is zero when createdAt is missing or not RFC 3339.
	CreatedAt time.Time
	// RawCreatedAt is createdAt as sent.
	RawCreatedAt string
}

// UnmarshalJSON parses createdAt per entry so one bad timestamp does not
// fail the whole list.
func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind      string          `json:"kind"`
		Title     string          `json:"title"`
		Details   string          `json:"details"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var stamp string
	if err := json.Unmarshal(raw.CreatedAt, &stamp); err != nil {
		stamp = string(raw.CreatedAt)
	}
	*h = HistoryEntry{
		Kind:         raw.Kind,
		Title:        raw.Title,
		Details:      raw.Details,
		RawCreatedAt: stamp,
	}
	if t, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
		h.CreatedAt = t
	}
	return nil
}

type historyResponse struct {
	Items []HistoryEntry `json:"items"`
}

// NoAnswer is the answer index of a question whose answer_index is missing
// or not an integer. No selection matches it.
const NoAnswer = -1

// QuizQuestion is the wire form of a generated question.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

// UnmarshalJSON decodes answer_index leniently: anything but an integral
// number becomes NoAnswer, so the question still renders.
func (q *QuizQuestion) UnmarshalJSON(data []byte) error {
	var raw struct {
		Question    string          `json:"question"`
		Options     []string        `json:"options"`
		AnswerIndex json.RawMessage `json:"answer_index"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*q = QuizQuestion{
		Question:    raw.Question,
		Options:     raw.Options,
		AnswerIndex: answerIndex(raw.AnswerIndex),
	}
	return nil
}

func answerIndex(raw json.RawMessage) int {
	var n *float64
	if err := json.Unmarshal(raw, &n); err != nil || n == nil {
		return NoAnswer
	}
	if *n != math.Trunc(*n) || *n < 0 || *n > math.MaxInt32 {
		return NoAnswer
	}
	return int(*n)
}

// ToQuestions converts wire questions into quiz questions.
func ToQuestions(in []QuizQuestion) []quiz.Question {
	out := make([]quiz.Question, 0, len(in))
	for _, q := range in {
		out = append(out, quiz.NewQuestion(q.Question, q.Options, q.AnswerIndex))
	}
	return out
}

// NotesRequest is the form for POST /api/notes.
type NotesRequest struct {
	FilePath string
	Prompt   string
}

// QuestionsRequest is the form for POST /api/questions.
type QuestionsRequest struct {
	FilePath string
	Prompt   string
}

// QuizRequest is the form for POST /api/quiz.
type QuizRequest struct {
	FilePath     string
	NumQuestions string
}

// ChatRequest is the JSON body for POST /api/chat.
type ChatRequest struct {
	Question string `json:"question"`
}

// MentorRequest is the JSON body for POST /api/mentor.
type MentorRequest struct {
	Subject     string `json:"subject"`
	TotalDays   string `json:"totalDays"`
	HoursPerDay string `json:"hoursPerDay"`
	Level       string `json:"level"`
	Notes       string `json:"notes"`
}

// envelope decodes the fields any POST endpoint may return.
type envelope struct {
	Error     json.RawMessage `json:"error"`
	Notes     string          `json:"notes"`
	Questions json.RawMessage `json:"questions"`
	Answer    string          `json:"answer"`
	Plan      string          `json:"plan"`
}
