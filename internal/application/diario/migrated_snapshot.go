package diario

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	domain "github.com/sped/diario-import/internal/domain/diario"
)

type rawMigratedItem struct {
	IDItemSharepoint any `json:"id_item_sharepoint"`
}

// itemID returns the string form of the id when it is set. Empty strings and
// zero numbers count as unset.
func (i rawMigratedItem) itemID() (string, bool) {
	switch v := i.IDItemSharepoint.(type) {
	case string:
		return v, v != ""
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", false
		}
		return v.String(), true
	default:
		return "", false
	}
}

// LoadDedupSet streams a JSON array of migrated diario rows and collects
// their id_item_sharepoint values.
func LoadDedupSet(r io.Reader) (domain.DedupSet, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	token, err := dec.Token()
	if err != nil {
		return domain.DedupSet{}, fmt.Errorf("read json start token: %w", err)
	}

	delim, ok := token.(json.Delim)
	if !ok || delim != '[' {
		return domain.DedupSet{}, errors.New("migrated snapshot must be a JSON array")
	}

	ids := make([]string, 0)
	var index int64
	for dec.More() {
		var item rawMigratedItem
		if err := dec.Decode(&item); err != nil {
			return domain.DedupSet{}, fmt.Errorf("decode item at index %d: %w", index, err)
		}
		if id, ok := item.itemID(); ok {
			ids = append(ids, id)
		}
		index++
	}

	if _, err := dec.Token(); err != nil {
		return domain.DedupSet{}, fmt.Errorf("read json end token: %w", err)
	}

	return domain.NewDedupSet(ids...), nil
}
