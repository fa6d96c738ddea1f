package analysis

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/P1NHE4D/it3105-project01/core"
	"github.com/P1NHE4D/it3105-project01/util"
)

// ExportTables dumps the learned artifact of a run to dir: the policy table
// as JSONL (one state per line), the value table and the final epsilon as
// JSON. The trainer itself never serialises anything, this is the external
// consumer of its tables.
func ExportTables(dir string, acm *core.ACM) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := WritePolicy(filepath.Join(dir, "policy.jsonl"), acm.Actor().PolicyTable()); err != nil {
		return err
	}
	if err := util.SaveJson(filepath.Join(dir, "values.json"), acm.Critic().Values()); err != nil {
		return err
	}
	return util.SaveJson(filepath.Join(dir, "run.json"), map[string]interface{}{
		"epsilon": acm.Epsilon(),
	})
}

// WritePolicy records a policy table as JSONL, one document per state.
func WritePolicy(path string, policy map[string]map[string]float64) error {
	bs := new(bytes.Buffer)

	for state, entries := range policy {
		doc := map[string]interface{}{
			"state":   state,
			"entries": entries,
		}
		stateBS, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("error serialising state %s: %w", state, err)
		}
		bs.Write(stateBS)
		bs.WriteByte('\n')
	}

	return os.WriteFile(path, bs.Bytes(), 0644)
}

// ReadPolicy loads a policy table previously written by WritePolicy.
func ReadPolicy(path string) (map[string]map[string]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	defer file.Close()

	policy := make(map[string]map[string]float64)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		in := make(map[string]interface{})
		if err := json.Unmarshal(scanner.Bytes(), &in); err != nil {
			return nil, fmt.Errorf("error reading file contents: %w", err)
		}
		state := in["state"].(string)
		entries := make(map[string]float64)
		for k, v := range in["entries"].(map[string]interface{}) {
			entries[k] = v.(float64)
		}
		policy[state] = entries
	}
	return policy, scanner.Err()
}
