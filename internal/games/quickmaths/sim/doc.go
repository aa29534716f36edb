// Package sim implements the Quick Maths arena simulation: the player,
// numbered enemies, bullets with particle trails, kill effects and the
// per-frame collision rules that tie them together.
//
// The package never draws, logs or touches the OS clock. Time advances only
// through the dt passed to Update, and all randomness comes from an injected
// core.Random, so identical inputs replay identically.
package sim
