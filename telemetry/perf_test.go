package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePlan)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseResolve)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.PhaseAvg[PhasePlan] <= 0 {
		t.Error("expected plan phase to be tracked")
	}
	if stats.PhaseAvg[PhaseResolve] <= 0 {
		t.Error("expected resolve phase to be tracked")
	}
	if stats.PhaseAvg[PhaseTelemetry] != 0 {
		t.Error("telemetry phase was never started")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	reports := 0
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseResolve)
		time.Sleep(10 * time.Microsecond)
		if pc.EndTick() {
			reports++
		}
	}

	if reports != 2 {
		t.Errorf("window reports = %d, want 2", reports)
	}
	if pc.Ticks() != 10 {
		t.Errorf("ticks = %d, want 10", pc.Ticks())
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePlan)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseResolve)
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct[PhaseResolve] <= stats.PhasePct[PhasePlan] {
		t.Errorf("expected resolve (%v%%) > plan (%v%%)", stats.PhasePct[PhaseResolve], stats.PhasePct[PhasePlan])
	}

	csv := stats.ToCSV(50)
	if csv.WindowEnd != 50 || csv.ResolvePct != stats.PhasePct[PhaseResolve] {
		t.Errorf("csv = %+v", csv)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)
	stats := pc.Stats()
	if stats.AvgTickDuration != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("expected zero stats for empty collector, got %+v", stats)
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with a 16ms frame, got %v", stats.FPS)
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePlan.String() != "plan" || PhaseResolve.String() != "resolve" || Phase(99).String() != "unknown" {
		t.Error("unexpected phase names")
	}
}
