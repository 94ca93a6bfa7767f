// Package label allocates the monotonic alphabetic labels shown to the
// user for points: A, B, ..., Z, A1, B1, ..., Z1, A2, ...
package label

import "strconv"

// Allocator is a process-local monotonic counter. The zero value is
// ready to use and yields "A" on the first call to Next.
type Allocator struct {
	k int
}

// Next returns the next label and advances the counter. It is called on
// every point creation, including solver-internal points (e.g. the
// center of a THREE_POINTS circle) and points added by intersection
// synthesis.
func (a *Allocator) Next() string {
	letter := byte('A' + a.k%26)
	suffix := a.k / 26
	a.k++
	if suffix == 0 {
		return string(letter)
	}
	return string(letter) + strconv.Itoa(suffix)
}

// Count returns the number of labels handed out so far.
func (a *Allocator) Count() int {
	return a.k
}

// Reset rewinds the counter to zero, used only when recreating a fresh
// document state.
func (a *Allocator) Reset() {
	a.k = 0
}
