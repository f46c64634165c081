package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/crt-invaders/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome game.RoundOutcomeReason
	endTick int

	firstShotTick   int
	firstKillTick   int
	firstHitTick    int
	firstBounceTick int

	shotsFired     int
	kills          int
	livesLost      int
	shieldHits     int
	formationSteps int
	bounces        int

	killsByArchetype map[string]int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot rounds")
	flag.IntVar(&ticks, "ticks", 36000, "tick limit per round")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Println("=== Headless Round Report ===")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runOne(i+1, seed, ticks)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

func runOne(runIndex int, seed int64, ticks int) runStats {
	ts := game.NewTestSim(game.WithSimSeed(seed), game.WithAutopilot())
	end := ts.RunUntil(game.RoundOver, ticks)

	entries := ts.SimLog.Entries()
	byArchetype := map[string]int{}
	for _, e := range ts.SimLog.Filter("kill", "") {
		byArchetype[e.Key]++
	}

	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		outcome:          game.DetermineRoundOutcome(ts.Session),
		endTick:          end,
		firstShotTick:    firstTick(entries, "shot", "fired", ""),
		firstKillTick:    firstTick(entries, "kill", "", ""),
		firstHitTick:     firstTick(entries, "hit", "player", ""),
		firstBounceTick:  firstTick(entries, "formation", "bounce", ""),
		shotsFired:       ts.Session.Stats.ShotsFired,
		kills:            ts.Session.Stats.Kills,
		livesLost:        ts.Session.Stats.LivesLost,
		shieldHits:       ts.Session.Stats.ShieldHits,
		formationSteps:   ts.Session.Stats.FormationSteps,
		bounces:          ts.SimLog.CountCategory("formation", "bounce"),
		killsByArchetype: byArchetype,
	}
}

// firstTick returns the tick of the first entry matching category and,
// when non-empty, key and a value substring; -1 if none.
func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s end_tick=%d reason=%q\n", rs.outcome.Outcome, rs.endTick, rs.outcome.Description)
	fmt.Printf("result: score=%d lives=%d alive=%d accuracy=%.1f%%\n",
		rs.outcome.Score, rs.outcome.Lives, rs.outcome.Alive, rs.outcome.Accuracy*100)
	fmt.Printf("phase_markers: first_shot=%d first_kill=%d first_player_hit=%d first_bounce=%d\n",
		rs.firstShotTick, rs.firstKillTick, rs.firstHitTick, rs.firstBounceTick)
	fmt.Printf("event_totals: shots=%d kills=%d lives_lost=%d shield_hits=%d formation_steps=%d bounces=%d\n",
		rs.shotsFired, rs.kills, rs.livesLost, rs.shieldHits, rs.formationSteps, rs.bounces)
	fmt.Printf("kills_by_archetype: %s\n", joinCounts(rs.killsByArchetype))
	fmt.Println()
}

type aggregate struct {
	runs         int
	outcomes     map[game.RoundOutcome]int
	avgScore     float64
	avgKills     float64
	avgAccuracy  float64
	avgEndTick   string
	avgFirstKill string
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), outcomes: map[game.RoundOutcome]int{}}
	totalScore := 0
	totalKills := 0
	accuracySum := 0.0
	endTicks := make([]int, 0, len(all))
	killTicks := make([]int, 0, len(all))
	for _, rs := range all {
		agg.outcomes[rs.outcome.Outcome]++
		totalScore += rs.outcome.Score
		totalKills += rs.kills
		accuracySum += rs.outcome.Accuracy
		if rs.endTick >= 0 {
			endTicks = append(endTicks, rs.endTick)
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
	}
	agg.avgScore = avg(totalScore, len(all))
	agg.avgKills = avg(totalKills, len(all))
	if len(all) > 0 {
		agg.avgAccuracy = accuracySum / float64(len(all))
	}
	agg.avgEndTick = avgTickString(endTicks)
	agg.avgFirstKill = avgTickString(killTicks)
	return agg
}

// winRate is the share of runs that cleared the formation, in percent.
func (a aggregate) winRate() float64 {
	if a.runs == 0 {
		return 0
	}
	return float64(a.outcomes[game.OutcomeCleared]) / float64(a.runs) * 100
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d win_rate=%.0f%%\n", agg.runs, agg.winRate())
	fmt.Printf("outcomes: cleared=%d shot_down=%d invaded=%d inconclusive=%d\n",
		agg.outcomes[game.OutcomeCleared], agg.outcomes[game.OutcomeShotDown],
		agg.outcomes[game.OutcomeInvaded], agg.outcomes[game.OutcomeInconclusive])
	fmt.Printf("avg_per_run: score=%.1f kills=%.1f accuracy=%.1f%%\n",
		agg.avgScore, agg.avgKills, agg.avgAccuracy*100)
	fmt.Printf("avg_ticks: round_end=%s first_kill=%s\n", agg.avgEndTick, agg.avgFirstKill)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, ",")
}
