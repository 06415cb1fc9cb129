package domain

// Zero overwrites a byte slice with zeros to clear key material from memory.
func Zero(b []byte) {
	clear(b)
}
