package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// It is used to reduce the lifetime of passwords in memory after they have
// been handed off to the transport layer.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
