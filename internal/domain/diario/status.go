package diario

import (
	"strings"

	"golang.org/x/text/cases"
)

type Status string

const (
	StatusPresente Status = "presente"
	StatusFalta    Status = "falta"
	StatusAbonada  Status = "abonada"
)

// statusLabels is only consulted when no keyword matches.
var statusLabels = map[string]Status{
	"Presente": StatusPresente,
	"Falta":    StatusFalta,
	"Abonada":  StatusAbonada,
}

var statusKeywords = []struct {
	keyword string
	status  Status
}{
	{keyword: "presen", status: StatusPresente},
	{keyword: "falta", status: StatusFalta},
	{keyword: "abon", status: StatusAbonada},
}

// MapStatus normalizes a free-text attendance marker. Keywords are matched
// case-insensitively in priority order; unmatched tokens fall back to the
// exact label table and finally to StatusPresente.
func MapStatus(raw string) Status {
	folded := cases.Fold().String(raw)
	for _, kw := range statusKeywords {
		if strings.Contains(folded, kw.keyword) {
			return kw.status
		}
	}

	if status, ok := statusLabels[strings.TrimSpace(raw)]; ok {
		return status
	}
	return StatusPresente
}
