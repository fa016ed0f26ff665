package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/snake/components"
)

// Summary holds aggregated statistics for a window of sessions.
type Summary struct {
	Window       int `csv:"window"`
	FirstSession int `csv:"first_session"`
	LastSession  int `csv:"last_session"`
	Sessions     int `csv:"sessions"`

	// Score distribution
	ScoreMean float64 `csv:"score_mean"`
	ScoreStd  float64 `csv:"score_std"`
	ScoreP50  float64 `csv:"score_p50"`
	ScoreP90  float64 `csv:"score_p90"`
	ScoreMax  float64 `csv:"score_max"`

	LengthMean float64 `csv:"length_mean"`
	TicksMean  float64 `csv:"ticks_mean"`

	// Death causes
	WallDeaths int `csv:"wall_deaths"`
	SelfDeaths int `csv:"self_deaths"`

	// Share of autopilot decisions by chain step
	FoodShare   float64 `csv:"food_share"`
	TailShare   float64 `csv:"tail_share"`
	RandomShare float64 `csv:"random_share"`
	HoldShare   float64 `csv:"hold_share"`
}

// Quantile returns the empirical p-quantile of sorted. Returns 0 if sorted is empty.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summarize aggregates records into window's summary.
func Summarize(window int, records []SessionRecord) Summary {
	s := Summary{Window: window, Sessions: len(records)}
	if len(records) == 0 {
		return s
	}
	s.FirstSession = records[0].Session
	s.LastSession = records[len(records)-1].Session

	scores := make([]float64, len(records))
	lengths := make([]float64, len(records))
	ticks := make([]float64, len(records))
	var food, tail, random, hold int
	for i, r := range records {
		scores[i] = float64(r.Score)
		lengths[i] = float64(r.Length)
		ticks[i] = float64(r.Ticks)
		switch components.DeathCause(r.Cause) {
		case components.CauseWallCollision:
			s.WallDeaths++
		case components.CauseSelfCollision:
			s.SelfDeaths++
		}
		food += r.FoodMoves
		tail += r.TailMoves
		random += r.RandomMoves
		hold += r.HoldMoves
	}

	s.ScoreMean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.ScoreStd = stat.StdDev(scores, nil)
	}
	s.LengthMean = stat.Mean(lengths, nil)
	s.TicksMean = stat.Mean(ticks, nil)

	sort.Float64s(scores)
	s.ScoreP50 = Quantile(scores, 0.50)
	s.ScoreP90 = Quantile(scores, 0.90)
	s.ScoreMax = floats.Max(scores)

	if total := food + tail + random + hold; total > 0 {
		s.FoodShare = float64(food) / float64(total)
		s.TailShare = float64(tail) / float64(total)
		s.RandomShare = float64(random) / float64(total)
		s.HoldShare = float64(hold) / float64(total)
	}
	return s
}

// LogStats logs the summary using slog.
func (s Summary) LogStats() {
	slog.Info("summary", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window", s.Window),
		slog.Int("sessions", s.Sessions),
		slog.Float64("score_mean", s.ScoreMean),
		slog.Float64("score_std", s.ScoreStd),
		slog.Float64("score_p50", s.ScoreP50),
		slog.Float64("score_p90", s.ScoreP90),
		slog.Float64("score_max", s.ScoreMax),
		slog.Float64("length_mean", s.LengthMean),
		slog.Float64("ticks_mean", s.TicksMean),
		slog.Int("wall_deaths", s.WallDeaths),
		slog.Int("self_deaths", s.SelfDeaths),
		slog.Float64("food_share", s.FoodShare),
		slog.Float64("tail_share", s.TailShare),
		slog.Float64("random_share", s.RandomShare),
	)
}
