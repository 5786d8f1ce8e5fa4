package audit

import (
	"math"

	"github.com/democracydevelopers/raire-go/ballot"
)

// Difficulty is the estimated sample size (sometimes "average sample
// number") needed to confirm an assertion at a metric's confidence level.
// Larger means more ballots must be audited; math.Inf(1) means the
// assertion cannot be confirmed by this kind of audit at all.
type Difficulty = float64

// Metric scores how hard it would be to audit a claim that winnerTally beats
// loserTally out of total ballots. If winnerTally <= loserTally the result
// must be +Inf.
type Metric interface {
	Difficulty(winnerTally, loserTally ballot.BallotPaperCount, total ballot.BallotPaperCount) Difficulty
}

// BRAVO is a ballot-polling audit difficulty metric with confidence level
// Confidence in (0, 1), dividing the log-likelihood term by
// TotalAuditableBallots; the total argument passed to Difficulty is ignored.
type BRAVO struct {
	Confidence            float64
	TotalAuditableBallots ballot.BallotPaperCount
}

// Difficulty implements Metric.
func (m BRAVO) Difficulty(winnerTally, loserTally ballot.BallotPaperCount, _ ballot.BallotPaperCount) Difficulty {
	if winnerTally <= loserTally {
		return math.Inf(1)
	}
	w := winnerTally.Float64()
	l := loserTally.Float64()
	s := w / (w + l)
	a := 2 * s
	lnA := math.Log(a)
	numerator := 0.5*lnA - math.Log(m.Confidence)
	logLikelihood := w * lnA
	if l > 0 {
		// with no loser votes ln(2-a) is -Inf and 0*-Inf would be NaN.
		logLikelihood += l * math.Log(2-a)
	}
	denominator := logLikelihood / m.TotalAuditableBallots.Float64()
	return numerator / denominator
}

// MACRO is a ballot-comparison audit difficulty metric with confidence
// Confidence in (0, 1) and error-inflation factor Gamma >= 1.
type MACRO struct {
	Confidence            float64
	ErrorInflationFactor  float64
	TotalAuditableBallots ballot.BallotPaperCount
}

// Difficulty implements Metric.
func (m MACRO) Difficulty(winnerTally, loserTally ballot.BallotPaperCount, _ ballot.BallotPaperCount) Difficulty {
	if winnerTally <= loserTally {
		return math.Inf(1)
	}
	margin := winnerTally.Sub(loserTally).Float64()
	u := 2 * m.ErrorInflationFactor * m.TotalAuditableBallots.Float64() / margin
	return -math.Log(m.Confidence) * u
}

// OneOverMargin scores difficulty as TotalAuditableBallots divided by the
// diluted margin (winnerTally - loserTally).
type OneOverMargin struct {
	TotalAuditableBallots ballot.BallotPaperCount
}

// Difficulty implements Metric.
func (m OneOverMargin) Difficulty(winnerTally, loserTally ballot.BallotPaperCount, _ ballot.BallotPaperCount) Difficulty {
	if winnerTally <= loserTally {
		return math.Inf(1)
	}
	margin := winnerTally.Sub(loserTally).Float64()
	return m.TotalAuditableBallots.Float64() / margin
}

// OneOverMarginSquared is OneOverMargin squared; it is the natural metric
// for ballot-polling audits rather than ballot-comparison ones.
type OneOverMarginSquared struct {
	TotalAuditableBallots ballot.BallotPaperCount
}

// Difficulty implements Metric.
func (m OneOverMarginSquared) Difficulty(winnerTally, loserTally ballot.BallotPaperCount, _ ballot.BallotPaperCount) Difficulty {
	if winnerTally <= loserTally {
		return math.Inf(1)
	}
	margin := winnerTally.Sub(loserTally).Float64()
	reciprocal := m.TotalAuditableBallots.Float64() / margin
	return reciprocal * reciprocal
}
