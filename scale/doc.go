// Package scale picks axis ranges, tick positions, and tick labels.
//
// The centerpiece is the Date scale. It works on serial-day values (package
// xdate) and chooses steps in calendar units rather than raw day counts: a
// range spanning several years gets year boundaries, a three-hour range gets
// 15-minute boundaries, and so on. Classification walks an ordered tier
// table from coarse to fine; the winning tier fixes the major unit, the
// label format, and the niceness rules for the major and minor steps.
//
// Linear and Log cover ordinary numeric axes. Linear carries the
// engineering-notation magnitude that the date scale deliberately forces to
// zero.
//
// # Picking
//
// A scale is picked once per render pass. Pick pads degenerate ranges,
// selects steps for whichever fields are still in automatic mode, coarsens
// the step when a label estimator says fewer labels fit, and snaps the
// automatic range ends outward to whole unit boundaries:
//
//	d := scale.NewDate(min, max)
//	if err := d.Pick(scale.PickConfig{}); err != nil {
//		...
//	}
//	for _, tick := range d.MajorTicks() {
//		draw(tick.Value, tick.Label)
//	}
//
// Callers may pin any subset of the fields (range ends, units, steps,
// format) by clearing the matching Auto flag; Pick only writes fields whose
// flag is set.
//
// # Concurrency
//
// Scales are plain mutable values. Picking and tick enumeration are
// synchronous and touch only the one scale involved, so distinct scales may
// be used from distinct goroutines without locking; sharing one scale
// across goroutines needs external synchronization.
package scale
