package dispatch

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-dispatch/internal/fftypes"
)

// EntryInfo is the inspectable metadata of one registered evaluator, in
// the order selection would consult it.
type EntryInfo struct {
	Name       string `json:"name"`
	Key        string `json:"key"`
	Provenance string `json:"provenance"`
	CTValid    bool   `json:"ct_valid"`
}

// Snapshot returns the registered entries in selection order: user
// entries first, most recently registered first within each provenance
// tier.
func (r *Registry[T]) Snapshot() []EntryInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]EntryInfo, 0, len(r.entries))

	for _, prov := range []fftypes.Provenance{fftypes.ProvenanceUser, fftypes.ProvenanceBuiltin} {
		for i := len(r.entries) - 1; i >= 0; i-- {
			e := r.entries[i]
			if e.Provenance != prov {
				continue
			}

			infos = append(infos, EntryInfo{
				Name:       e.Name,
				Key:        e.Key.String(),
				Provenance: e.Provenance.String(),
				CTValid:    e.CTValid,
			})
		}
	}

	return infos
}

// ExportTo writes the registry snapshot as indented JSON.
func (r *Registry[T]) ExportTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r.Snapshot()); err != nil {
		return errors.Wrap(err, "failed to encode registry snapshot")
	}

	return nil
}
