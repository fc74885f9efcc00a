package rtr

// Payload is the namespace attached to a terminal segment. The trie never
// looks inside it beyond key-wise merging: whatever is registered is what a
// successful lookup returns.
type Payload map[string]any

// merge copies src into p, overwriting existing keys. Re-registering a
// template therefore extends its namespace instead of discarding it.
func (p Payload) merge(src Payload) {
	for k, v := range src {
		p[k] = v
	}
}
