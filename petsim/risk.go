package petsim

import "math"

// RiskLevel maps a risk score to its three-tier level.
func RiskLevel(score int) string {
	switch {
	case score >= 70:
		return LevelHigh
	case score >= 40:
		return LevelMedium
	default:
		return LevelLow
	}
}

// CalculateRisk derives the risk score and level from a posture snapshot.
// Pure: same posture always yields the same result.
func CalculateRisk(posture Posture) Risk {
	strength := Clamp(posture.StrengthScore)

	score := 25
	score += int(math.Round(float64(100-strength) * 0.45))
	if posture.ReusedPassword {
		score += 20
	}
	if !posture.TwoFactorEnabled {
		score += 20
	}
	if !posture.BreachMonitoringEnabled {
		score += 10
	}

	score = Clamp(score)
	return Risk{Score: score, Level: RiskLevel(score)}
}

// riskFromBaseline recomputes risk from the posture baseline and applies one
// fresh delta on top. Deltas never compound on a previously cached score;
// "fixing" this into accumulation would be a bug.
func riskFromBaseline(posture Posture, delta int) Risk {
	score := Clamp(CalculateRisk(posture).Score + delta)
	return Risk{Score: score, Level: RiskLevel(score)}
}
