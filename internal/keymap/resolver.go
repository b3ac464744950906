package keymap

// Resolver looks up the action bound to a key and lists the keys of an
// action for hints.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings. A key bound twice resolves to the later
// binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
		}
		r.keys[b.Action] = append(r.keys[b.Action], b.Keys...)
	}
	for a, keys := range r.keys {
		r.keys[a] = dedupe(keys)
	}
	return r
}

// Resolve returns the action bound to key, or "".
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to a, in binding order.
func (r *Resolver) KeysFor(a Action) []string {
	return r.keys[a]
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// ForWidget returns a resolver for the global bindings plus the bindings of
// one widget context.
func ForWidget(context string) *Resolver {
	return NewResolver(append(ByContext("global"), ByContext(context)...))
}
