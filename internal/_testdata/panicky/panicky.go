package panicky

import "errors"

var errMissing = errors.New("missing")

type box struct {
	v  int
	ok bool
}

func (b box) Unwrap() int {
	if !b.ok {
		panic("empty box")
	}

	return b.v
}

func (b box) MustGet() int {
	return b.Unwrap()
}

// UnwrapOrLog is the non-panicking accessor shape the scanner must ignore.
func (b box) UnwrapOrLog(fallback int) int {
	if !b.ok {
		return fallback
	}

	return b.v
}

func Must(v int, err error) int {
	if err != nil {
		panic(err)
	}

	return v
}

func lookup(key string) (int, error) {
	if key == "" {
		return 0, errMissing
	}

	return len(key), nil
}

func Use() []int {
	b := box{v: 1, ok: true}

	return []int{
		b.Unwrap(),
		b.MustGet(),
		b.UnwrapOrLog(0),
		Must(lookup("key")),
	}
}
