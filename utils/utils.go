package utils

import (
	"crypto/rand"
	"os"

	"golang.org/x/exp/constraints"
)

const randLetter = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandString returns n length random string [a-zA-Z0-9]+ from crypto/rand.
// Bytes >= 248 are rejected to keep the letter distribution uniform.
func RandString(n int) string {
	ret := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(ret) < n {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		for _, b := range buf {
			if int(b) >= 4*len(randLetter) {
				continue
			}
			ret = append(ret, randLetter[int(b)%len(randLetter)])
			if len(ret) == n {
				break
			}
		}
	}
	return string(ret)
}

// FileExist returns whether file in path exist.
func FileExist(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// Min returns the smaller one in a and b.
func Min[T constraints.Ordered](a T, b T) T {
	if a > b {
		return b
	}
	return a
}

// Max returns the bigger one in a and b.
func Max[T constraints.Ordered](a T, b T) T {
	if a > b {
		return a
	}
	return b
}
