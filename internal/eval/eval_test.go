package eval

import (
	"testing"

	"github.com/ilygor/chessjerk/internal/chess"
	"github.com/ilygor/chessjerk/internal/config"
	"github.com/ilygor/chessjerk/internal/testutil"
)

func TestEvaluate_Components(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Breakdown
	}{
		{
			// White rook d1 attacks an undefended knight.
			name: "undefended target",
			fen:  "4k3/8/8/3n4/8/8/8/3RK3 b - - 0 1",
			want: Breakdown{Targeting: 3, Backup: 0.5, Center: 1.9},
		},
		{
			// The knight also attacks an undefended white pawn.
			name: "mutual attack",
			fen:  "4k3/8/8/3n4/8/4P3/8/3RK3 b - - 0 1",
			want: Breakdown{Targeting: 3, Targeted: -2, Backup: 0.5, Center: 2.4},
		},
		{
			// A defended knight is worth nothing to a rook.
			name: "defended target",
			fen:  "4k3/8/4p3/3n4/8/8/8/3RK3 b - - 0 1",
			want: Breakdown{Backup: 0.5, Center: 1.9},
		},
	}

	ev := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ev.Evaluate(testutil.MustFEN(t, tt.fen))
			testutil.AssertEqual(t, res.Breakdown, tt.want)
			testutil.AssertScore(t, res.Total, tt.want.Sum())
			testutil.AssertFalse(t, res.InCheck, "InCheck")
			testutil.AssertFalse(t, res.Checkmate, "Checkmate")
		})
	}
}

func TestEvaluate_BackupDivisor(t *testing.T) {
	cfg := config.NewEvalConfig()
	cfg.BackupDivisor = 20
	res := New(cfg).Evaluate(testutil.MustFEN(t, "4k3/8/8/3n4/8/8/8/3RK3 b - - 0 1"))
	testutil.AssertScore(t, res.Breakdown.Backup, 0.3)
}

// The score belongs to the side that just moved. Leaving your own king
// attacked is penalised; attacking a king that cannot move is rewarded.
func TestEvaluate_SignConvention(t *testing.T) {
	ev := New(nil)

	t.Run("mover left in check", func(t *testing.T) {
		// Black to move, so white moved last with its king attacked.
		res := ev.Evaluate(testutil.MustFEN(t, "4k3/8/8/8/8/8/4r3/4K3 b - - 0 1"))
		testutil.AssertTrue(t, res.InCheck, "InCheck")
		testutil.AssertScore(t, res.Total, -1000)
	})

	t.Run("mover gives check", func(t *testing.T) {
		// White moved last and attacks the black king, which can step aside.
		res := ev.Evaluate(testutil.MustFEN(t, "4k3/8/8/8/8/8/8/4RK2 b - - 0 1"))
		testutil.AssertFalse(t, res.InCheck, "InCheck")
		testutil.AssertFalse(t, res.Checkmate, "Checkmate")
		testutil.AssertTrue(t, res.Total > 0, "total %v should be positive", res.Total)
	})

	t.Run("mover traps the king", func(t *testing.T) {
		res := ev.Evaluate(testutil.MustFEN(t, "6rk/5Npp/8/8/8/8/8/K7 b - - 0 1"))
		testutil.AssertTrue(t, res.Checkmate, "Checkmate")
		testutil.AssertFalse(t, res.InCheck, "InCheck")
		testutil.AssertScore(t, res.Breakdown.Mate, 500)
		testutil.AssertTrue(t, res.Total >= 500, "total %v should include the mate bonus", res.Total)
	})

	t.Run("same position from the trapped side", func(t *testing.T) {
		// With white to move, black is the mover and its king is attacked.
		res := ev.Evaluate(testutil.MustFEN(t, "6rk/5Npp/8/8/8/8/8/K7 w - - 0 1"))
		testutil.AssertTrue(t, res.InCheck, "InCheck")
		testutil.AssertFalse(t, res.Checkmate, "Checkmate")
		testutil.AssertScore(t, res.Total, -1000)
	})
}

func TestEvaluate_KingCaptured(t *testing.T) {
	pos := testutil.MustFEN(t, "4k3/8/8/8/4r3/8/8/R3K3 w - - 0 1")
	testutil.MustPlay(t, pos, "a1", "a8", "e4", "e1")

	res := New(nil).Evaluate(pos)
	testutil.AssertTrue(t, res.Checkmate, "opponent king captured")
	testutil.AssertScore(t, res.Breakdown.Capture, 9)
	// The white rook on a8 still attacks the black king.
	testutil.AssertTrue(t, res.InCheck, "InCheck")
	testutil.AssertScore(t, res.Total, -1000)
}

func TestEvaluate_CaptureScore(t *testing.T) {
	pos := testutil.MustFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	testutil.MustPlay(t, pos, "e4", "d5")

	ev := New(nil)
	testutil.AssertScore(t, ev.Evaluate(pos).Breakdown.Capture, 1)

	// From black's side after a quiet reply, the lost pawn counts against it.
	testutil.MustPlay(t, pos, "e8", "f8")
	testutil.AssertScore(t, ev.Evaluate(pos).Breakdown.Capture, -1)
}

func TestValue(t *testing.T) {
	ev := New(nil)
	want := map[chess.Kind]float64{
		chess.Pawn: 1, chess.Knight: 3, chess.Bishop: 3,
		chess.Rook: 5, chess.Queen: 9, chess.King: 9,
	}
	for kind, v := range want {
		testutil.AssertScore(t, ev.Value(kind), v, "Value(%s)", kind)
	}
	testutil.AssertScore(t, ev.Value(chess.NumKinds), 0)
}

func TestRound1(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.25, 0.3},
		{1.04, 1.0},
		{-2.36, -2.4},
		{0.1 + 0.2, 0.3},
	}
	for _, tt := range tests {
		testutil.AssertScore(t, round1(tt.in), tt.want, "round1(%v)", tt.in)
	}
}
