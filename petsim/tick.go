package petsim

import "time"

// Daily decay applied on the first tick of each day.
const (
	decayEnergy = 10
	decayMood   = 6
	decayHealth = 4
)

// TickResult reports what the daily tick did.
type TickResult struct {
	AlreadyApplied    bool
	IncidentTriggered bool
}

// ApplyDailyTick advances the pet by one simulated day. Idempotent per
// calendar day: a second call on the same date key is a no-op reporting
// AlreadyApplied. probabilityCap and draw feed the incident roll.
func ApplyDailyTick(p *Pet, now time.Time, probabilityCap float64, draw func() float64) TickResult {
	todayKey := DateKey(now)

	if p.Daily.DateKey == todayKey && p.Daily.TickApplied {
		return TickResult{AlreadyApplied: true}
	}

	// Open today's budget; carry the configured budget size across days.
	if p.Daily.DateKey != todayKey {
		maxActions := p.Daily.MaxActions
		if maxActions < 1 {
			maxActions = DefaultMaxActions
		}
		p.Daily = Daily{DateKey: todayKey, MaxActions: maxActions}
	}

	p.Status.Energy = Clamp(p.Status.Energy - decayEnergy)
	p.Status.Mood = Clamp(p.Status.Mood - decayMood)
	p.Status.Health = Clamp(p.Status.Health - decayHealth)

	p.Risk = CalculateRisk(p.Posture)

	triggered := false
	if !p.HasActiveIncident() {
		if incident := RollIncident(p.Risk, p.Posture, probabilityCap, now, draw); incident != nil {
			p.ActiveIncident = *incident
			triggered = true
		}
	}

	updateStreak(&p.Streak, todayKey, YesterdayKey(now))

	p.Daily.TickApplied = true
	p.LastUpdated = now

	return TickResult{IncidentTriggered: triggered}
}

// updateStreak advances the consecutive-check-in counter: continued when the
// last check-in was yesterday, restarted otherwise. The same-day case is
// guarded by tick idempotence.
func updateStreak(s *Streak, todayKey, yesterdayKey string) {
	if s.LastCheckInDateKey != todayKey {
		if s.LastCheckInDateKey == yesterdayKey {
			s.Current++
		} else {
			s.Current = 1
		}
	}
	if s.Current > s.Best {
		s.Best = s.Current
	}
	s.LastCheckInDateKey = todayKey
}
