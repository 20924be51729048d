package diario_test

import (
	"testing"

	domain "github.com/sped/diario-import/internal/domain/diario"
)

func TestMapStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]domain.Status{
		"Falta":            domain.StatusFalta,
		"Presente":         domain.StatusPresente,
		"Abonada (atraso)": domain.StatusAbonada,
		"??":               domain.StatusPresente,
		"":                 domain.StatusPresente,
		"  FALTA  ":        domain.StatusFalta,
		"presença parcial": domain.StatusPresente,
		"Falta abonada":    domain.StatusFalta,
		"ABONO":            domain.StatusAbonada,
	}

	for raw, want := range cases {
		if got := domain.MapStatus(raw); got != want {
			t.Fatalf("MapStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}
