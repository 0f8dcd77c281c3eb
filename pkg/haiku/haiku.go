package haiku

import "github.com/yelinaung/go-haikunator"

// RunName gives a seed a memorable name such as "quiet-bird".
// The same seed always yields the same name.
func RunName(seed uint64) string {
	return haikunator.New(int64(seed)).Haikunate()
}
