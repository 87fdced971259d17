package manifest

func lookup(t Table, name string) (string, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

func asMap(t Table) map[string]string {
	out := make(map[string]string, len(t))
	for _, e := range t {
		out[e.Name] = e.Value
	}
	return out
}
