package util

import (
	"os"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func ReadFileOrPanic(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	return string(data)
}
