package algodispatch

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-dispatch/internal/dispatch"
)

// RegistryDump is the JSON document produced by ExportRegistry: the
// default registries' entries per element type, in selection order.
type RegistryDump struct {
	Complex64  []dispatch.EntryInfo `json:"complex64"`
	Complex128 []dispatch.EntryInfo `json:"complex128"`
}

// ExportRegistry saves the current contents of the default registries to
// a JSON file. Useful for diagnosing which evaluators are visible and in
// what order selection will consult them.
func ExportRegistry(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create registry dump file")
	}

	defer file.Close()

	return ExportRegistryTo(file)
}

// ExportRegistryTo writes the registry dump to w as indented JSON.
func ExportRegistryTo(w io.Writer) error {
	dump := RegistryDump{
		Complex64:  dispatch.Registry64.Snapshot(),
		Complex128: dispatch.Registry128.Snapshot(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(dump); err != nil {
		return errors.Wrap(err, "failed to encode registry dump")
	}

	return nil
}
