package capabilities

import (
	"encoding/json"
	"os"

	"github.com/agentstation/modelcaps/pkg/errors"
)

// Load reads a previously generated JSON table.
func Load(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("capabilities file", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}
