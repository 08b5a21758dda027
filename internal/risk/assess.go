package risk

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const profileKey = "risk_profile"

// Answer records one selected option.
type Answer struct {
	QuestionID int            `json:"question_id"`
	Category   AnswerCategory `json:"category"`
	Score      int            `json:"score"`
}

// Assessment walks the questionnaire one question at a time. Going
// back keeps the recorded answer; re-answering overwrites it.
type Assessment struct {
	index   int
	answers []Answer
}

// NewAssessment starts at the first question.
func NewAssessment() *Assessment {
	return &Assessment{answers: make([]Answer, len(Questions))}
}

// Current returns the pending question, or false once complete.
func (a *Assessment) Current() (Question, bool) {
	if a.Complete() {
		return Question{}, false
	}
	return Questions[a.index], true
}

// Progress reports the zero-based question index and the total count.
func (a *Assessment) Progress() (int, int) {
	return a.index, len(Questions)
}

// Answer records score for the current question and advances. It
// rejects scores outside 1..MaxScore and answers after completion.
func (a *Assessment) Answer(score int) error {
	if a.Complete() {
		return fmt.Errorf("assessment already complete")
	}
	if score < 1 || score > MaxScore {
		return fmt.Errorf("score %d out of range 1..%d", score, MaxScore)
	}
	q := Questions[a.index]
	a.answers[a.index] = Answer{QuestionID: q.ID, Category: q.Category, Score: score}
	a.index++
	return nil
}

// Previous steps back one question without erasing its answer. It is a
// no-op at the first question and once the assessment is complete.
func (a *Assessment) Previous() {
	if a.index > 0 && !a.Complete() {
		a.index--
	}
}

// Complete reports whether every question has been answered.
func (a *Assessment) Complete() bool {
	return a.index >= len(Questions)
}

// Answers returns the recorded answers. Only valid once Complete.
func (a *Assessment) Answers() []Answer {
	return a.answers
}

// Allocation is a stocks/bonds/cash split in whole percent.
type Allocation struct {
	Stocks int `json:"stocks"`
	Bonds  int `json:"bonds"`
	Cash   int `json:"cash"`
}

// Profile names.
const (
	ProfileConservative           = "Conservative"
	ProfileModeratelyConservative = "Moderately Conservative"
	ProfileModerate               = "Moderate"
	ProfileModeratelyAggressive   = "Moderately Aggressive"
	ProfileAggressive             = "Aggressive"
)

// band covers score percentages below Upper.
type band struct {
	Upper float64
	Name  string
	Alloc Allocation
}

var bands = []band{
	{30, ProfileConservative, Allocation{Stocks: 20, Bonds: 60, Cash: 20}},
	{50, ProfileModeratelyConservative, Allocation{Stocks: 40, Bonds: 50, Cash: 10}},
	{70, ProfileModerate, Allocation{Stocks: 60, Bonds: 35, Cash: 5}},
	{85, ProfileModeratelyAggressive, Allocation{Stocks: 75, Bonds: 20, Cash: 5}},
	{math.Inf(1), ProfileAggressive, Allocation{Stocks: 90, Bonds: 10, Cash: 0}},
}

// Profile is the computed assessment result.
type Profile struct {
	ID         string                 `json:"id"`
	ScorePct   float64                `json:"score_pct"`
	Name       string                 `json:"profile"`
	Categories map[AnswerCategory]int `json:"categories"`
	Allocation Allocation             `json:"allocation"`
	Date       time.Time              `json:"date"`
}

// ComputeProfile scores a full answer set. The overall score is the
// percentage of the maximum attainable; per-category scores are
// rounded to the nearest whole percent.
func ComputeProfile(answers []Answer) (Profile, error) {
	if len(answers) != len(Questions) {
		return Profile{}, fmt.Errorf("expected %d answers, got %d", len(Questions), len(answers))
	}

	var total int
	sums := make(map[AnswerCategory]int)
	counts := make(map[AnswerCategory]int)
	for _, ans := range answers {
		if ans.Score < 1 || ans.Score > MaxScore {
			return Profile{}, fmt.Errorf("answer for question %d has score %d out of range", ans.QuestionID, ans.Score)
		}
		total += ans.Score
		sums[ans.Category] += ans.Score
		counts[ans.Category]++
	}

	pct := float64(total) / float64(len(Questions)*MaxScore) * 100

	cats := make(map[AnswerCategory]int, len(sums))
	for cat, sum := range sums {
		cats[cat] = int(math.Round(float64(sum) / float64(counts[cat]*MaxScore) * 100))
	}

	p := Profile{
		ID:         uuid.NewString(),
		ScorePct:   pct,
		Categories: cats,
		Date:       time.Now().UTC(),
	}
	for _, b := range bands {
		if pct < b.Upper {
			p.Name = b.Name
			p.Allocation = b.Alloc
			break
		}
	}
	return p, nil
}

// AllocationForScore returns the stocks/bonds/cash split for a score
// percentage.
func AllocationForScore(pct float64) Allocation {
	for _, b := range bands {
		if pct < b.Upper {
			return b.Alloc
		}
	}
	return bands[len(bands)-1].Alloc
}

// Snapshots is the persistence surface for saved profiles.
type Snapshots interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
}

// SaveProfile persists p as the current profile.
func SaveProfile(snaps Snapshots, p Profile) error {
	if err := snaps.Set(profileKey, p); err != nil {
		return fmt.Errorf("saving risk profile: %w", err)
	}
	return nil
}

// LoadProfile returns the saved profile, if any.
func LoadProfile(snaps Snapshots) (Profile, bool, error) {
	var p Profile
	ok, err := snaps.Get(profileKey, &p)
	if err != nil {
		return Profile{}, false, fmt.Errorf("loading risk profile: %w", err)
	}
	return p, ok, nil
}
