package gateway

import (
	"encoding/json"
)

// normalizeIDs rewrites every "_id" key in a decoded JSON document to
// "id", recursively. Some upstream endpoints return Mongo-style "_id"
// and others "id"; this is the single place the difference is erased,
// so nothing downstream ever branches on which key arrived. When both
// keys are present "id" wins.
func normalizeIDs(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return raw, nil
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeValue(doc))
}

func normalizeValue(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		if underscore, ok := value["_id"]; ok {
			if _, alsoPlain := value["id"]; !alsoPlain {
				value["id"] = underscore
			}
			delete(value, "_id")
		}
		for key, nested := range value {
			value[key] = normalizeValue(nested)
		}
		return value
	case []interface{}:
		for i, nested := range value {
			value[i] = normalizeValue(nested)
		}
		return value
	default:
		return v
	}
}
