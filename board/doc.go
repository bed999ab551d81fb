// Package board shapes schedule feed entries for display consumers.
//
// The feed itself is unordered; this package owns the consumer contract:
// ranking by proximity to the relevant event, truncation to a display
// count, and grouping into the three presentation panels (commuter,
// feeder shuttle, intercity) a station board renders side by side.
package board
