package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	nanoidSize     = 24
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoID returns an opaque identifier used for session ids.
func NanoID() string {
	return NanoIDSize(nanoidSize)
}

func NanoIDSize(size int) string {
	if size <= 0 {
		size = nanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}
