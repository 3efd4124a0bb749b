package core

import "strconv"

// MakeNameUnique returns name unchanged when taken reports it free; otherwise
// it appends delim plus an integer counter starting at 2 and returns the first
// candidate that is not taken. The first declaration in a scope keeps the
// unsuffixed name, later collisions get suffixes in declaration order.
func MakeNameUnique(name string, taken func(string) bool, delim string) string {
	if !taken(name) {
		return name
	}
	for i := 2; ; i++ {
		candidate := name + delim + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}
