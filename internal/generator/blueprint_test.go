package generator

import (
	"errors"
	"testing"
)

func TestBlueprintQuotas(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		easy      float64
		moderate  float64
		wantEasy  int
		wantMod   int
		wantDiff  int
	}{
		{"standard 30/40/30", 10, 0.3, 0.4, 3, 4, 3},
		{"remainder lands in difficult", 10, 0.33, 0.33, 3, 3, 4},
		{"all easy", 5, 1.0, 0.0, 5, 0, 0},
		{"zero total", 0, 0.3, 0.4, 0, 0, 0},
		{"fractions below one item", 3, 0.2, 0.2, 0, 0, 3},
		{"uneven split", 7, 0.5, 0.25, 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := Blueprint{SubjectID: "S1", TotalItems: tt.total, EasyPct: tt.easy, ModeratePct: tt.moderate}
			q := bp.Quotas()
			if q.Easy != tt.wantEasy || q.Moderate != tt.wantMod || q.Difficult != tt.wantDiff {
				t.Errorf("Quotas() = %+v, want %d/%d/%d", q, tt.wantEasy, tt.wantMod, tt.wantDiff)
			}
			if q.Easy+q.Moderate+q.Difficult != tt.total {
				t.Errorf("quotas sum to %d, want %d", q.Easy+q.Moderate+q.Difficult, tt.total)
			}
		})
	}
}

func TestBlueprintQuotas_SumAlwaysTotal(t *testing.T) {
	// The difficult bucket absorbs every rounding remainder, so the sum
	// must hold for any percentage pair.
	for total := 0; total <= 50; total++ {
		for e := 0.0; e <= 1.0; e += 0.07 {
			for m := 0.0; e+m <= 1.0; m += 0.07 {
				bp := Blueprint{SubjectID: "S1", TotalItems: total, EasyPct: e, ModeratePct: m}
				q := bp.Quotas()
				if q.Easy+q.Moderate+q.Difficult != total {
					t.Fatalf("total=%d easy=%g moderate=%g: quotas %+v do not sum to total", total, e, m, q)
				}
				if q.Easy < 0 || q.Moderate < 0 || q.Difficult < 0 {
					t.Fatalf("total=%d easy=%g moderate=%g: negative quota %+v", total, e, m, q)
				}
			}
		}
	}
}

func TestBlueprintValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Blueprint)
		wantErr bool
	}{
		{"valid", func(b *Blueprint) {}, false},
		{"empty subject", func(b *Blueprint) { b.SubjectID = "" }, true},
		{"negative total", func(b *Blueprint) { b.TotalItems = -1 }, true},
		{"negative percentage", func(b *Blueprint) { b.EasyPct = -0.1 }, true},
		{"percentage above one", func(b *Blueprint) { b.ModeratePct = 1.5 }, true},
		{"easy plus moderate above one", func(b *Blueprint) { b.EasyPct, b.ModeratePct = 0.6, 0.6 }, true},
		{"zero total is fine", func(b *Blueprint) { b.TotalItems = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := Blueprint{SubjectID: "S1", TotalItems: 10, EasyPct: 0.3, ModeratePct: 0.4, DifficultPct: 0.3}
			tt.mutate(&bp)
			err := bp.Validate()
			if tt.wantErr {
				var bpErr *BlueprintError
				if !errors.As(err, &bpErr) {
					t.Errorf("Validate() = %v, want BlueprintError", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
