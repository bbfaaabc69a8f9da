// Package disalloweq provides a method for disallowing struct comparisons
// with the `==` operator.
package disalloweq

// DisallowEqual can be embedded in a struct to cause the compiler to
// reject attempts to compare values of that struct with `==`.  Every
// secret-bearing or constant-time-sensitive type in this module embeds
// it so that accidental non-constant-time comparisons fail to compile.
//
// See: https://twitter.com/bradfitz/status/860145039573385216
type DisallowEqual [0]func()
