package interfaces

import "time"

// SecretScheme is a threshold secret-sharing primitive over raw bytes.
type SecretScheme interface {
	Split(secret []byte, parts, threshold int) ([][]byte, error)
	Combine(parts [][]byte) ([]byte, error)
}

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}
