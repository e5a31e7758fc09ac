package flatten

type entry struct {
	value  map[string]interface{}
	prefix string
}

// Flatten collapses a nested string-keyed map into a single level map with
// dot-joined key paths. Nested maps are traversed with an explicit worklist,
// everything else (scalars, nil and arrays) is kept as a leaf value.
func Flatten(value map[string]interface{}) map[string]interface{} {
	flat := map[string]interface{}{}

	pending := []entry{{value: value}}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for key, value := range current.value {
			flatKey := key
			if current.prefix != "" {
				flatKey = current.prefix + "." + key
			}

			if nested, ok := value.(map[string]interface{}); ok && nested != nil {
				pending = append(pending, entry{value: nested, prefix: flatKey})
				continue
			}

			flat[flatKey] = value
		}
	}

	return flat
}
