package unfold

import "github.com/foldline/foldline/pkg/pattern"

// Strategy names one of the three unfolding algorithms.
type Strategy string

const (
	// StrategyFoldedStrip lays the walls out as one continuous strip
	// with fold lines, for foldable stock.
	StrategyFoldedStrip Strategy = "folded-strip"
	// StrategySeparatePanel cuts every wall and roof face as an
	// independent piece, for rigid stock.
	StrategySeparatePanel Strategy = "separate-panel"
	// StrategyScoreAndFold is the folded strip with fold lines scored
	// part-way through, for thin chipboard.
	StrategyScoreAndFold Strategy = "score-and-fold"
)

// FoldThicknessThreshold is the chipboard thickness in inches up to
// which the stock still folds cleanly along a scored line. Thicker
// chipboard is cut into separate panels instead.
const FoldThicknessThreshold = 0.03

// StrategyFor selects the unfolding algorithm for a material. The
// selection is a pure decision table: thin chipboard scores and folds,
// rigid stock separates, foldable stock becomes a strip.
func StrategyFor(m pattern.MaterialConfig) Strategy {
	switch {
	case m.Type == pattern.MaterialChipboard && m.Thickness <= FoldThicknessThreshold:
		return StrategyScoreAndFold
	case m.Type.Foldable():
		return StrategyFoldedStrip
	default:
		return StrategySeparatePanel
	}
}
